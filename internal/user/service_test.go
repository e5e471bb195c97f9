package user

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCreateHashesPassword(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	created, err := svc.Create(1, Command{Name: "Ann", Email: "ann@example.com", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.Password == "secret-pass" {
		t.Fatal("password stored in clear text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestCreateRequiresActor(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.Create(0, Command{Name: "Ann", Email: "ann@example.com", Password: "secret-pass"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.Create(1, Command{Name: "Ann", Email: "ann@example.com", Password: "secret-pass"}); err != nil {
		t.Fatalf("create first user: %v", err)
	}
	if _, err := svc.Create(1, Command{Name: "Other", Email: "ann@example.com", Password: "secret-pass"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestUpdateBlankPasswordKeepsHash(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	created, err := svc.Create(1, Command{Name: "Ann", Email: "ann@example.com", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	updated, err := svc.Update(1, created.ID, Command{Name: "Ann B", Email: "ann@example.com"})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.Name != "Ann B" {
		t.Fatalf("name not updated, got %q", updated.Name)
	}
	if updated.Password != created.Password {
		t.Fatal("blank password replaced the stored hash")
	}
	if _, err := svc.Authenticate("ann@example.com", "secret-pass"); err != nil {
		t.Fatalf("authenticate after update: %v", err)
	}
}

func TestUpdateNewPasswordRehashes(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	created, err := svc.Create(1, Command{Name: "Ann", Email: "ann@example.com", Password: "secret-pass"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := svc.Update(1, created.ID, Command{Name: "Ann", Email: "ann@example.com", Password: "new-secret"}); err != nil {
		t.Fatalf("update user: %v", err)
	}
	if _, err := svc.Authenticate("ann@example.com", "new-secret"); err != nil {
		t.Fatalf("authenticate with new password: %v", err)
	}
	if _, err := svc.Authenticate("ann@example.com", "secret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password still accepted, got %v", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	if _, err := svc.Authenticate("nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateCommand(t *testing.T) {
	if ves := ValidateCommand(Command{Name: "Ann", Email: "ann@example.com", Password: "secret-pass"}, true); len(ves) > 0 {
		t.Fatalf("valid command rejected: %v", ves)
	}
	if ves := ValidateCommand(Command{Email: "not-an-email", Password: "short"}, true); len(ves) != 3 {
		t.Fatalf("expected name, email and password errors, got %v", ves)
	}
	// Password is optional on update.
	if ves := ValidateCommand(Command{Name: "Ann", Email: "ann@example.com"}, false); len(ves) > 0 {
		t.Fatalf("update without password rejected: %v", ves)
	}
}
