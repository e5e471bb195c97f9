package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	return form.File["file"][0]
}

func TestSaveWritesBlobUnderNamespace(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStorage(root)
	if err != nil {
		t.Fatalf("new disk storage: %v", err)
	}

	path, err := store.Save(uploadHeader(t, "sofa.jpg", "jpeg bytes"), "products")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(path, "products/") || !strings.HasSuffix(path, ".jpg") {
		t.Fatalf("unexpected stored path %q", path)
	}

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if string(data) != "jpeg bytes" {
		t.Fatalf("blob content mismatch: %q", data)
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, err := NewDiskStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new disk storage: %v", err)
	}

	first, err := store.Save(uploadHeader(t, "sofa.jpg", "a"), "products")
	if err != nil {
		t.Fatalf("save first: %v", err)
	}
	second, err := store.Save(uploadHeader(t, "sofa.jpg", "b"), "products")
	if err != nil {
		t.Fatalf("save second: %v", err)
	}
	if first == second {
		t.Fatalf("same client name produced the same stored path %q", first)
	}
}

func TestDeleteRemovesBlob(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStorage(root)
	if err != nil {
		t.Fatalf("new disk storage: %v", err)
	}

	path, err := store.Save(uploadHeader(t, "sofa.jpg", "jpeg bytes"), "products")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(path); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(path))); !os.IsNotExist(err) {
		t.Fatalf("blob still present after delete: %v", err)
	}

	// deleting an already-removed blob is not an error
	if err := store.Delete(path); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
