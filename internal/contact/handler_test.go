package contact

import (
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeApp(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": float64(id)}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterAdminRoutes(app)
	return app
}

func TestSubmitContactForm(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	app := makeApp(NewHandler(NewService(repo, &recordingMailer{})))

	req := httptest.NewRequest("POST", "/contact", strings.NewReader(`{"message":"Do you deliver upcountry?"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	if n, _ := repo.Count(); n != 1 {
		t.Fatalf("expected 1 stored message, got %d", n)
	}
}

func TestSubmitRequiresMessage(t *testing.T) {
	app := makeApp(NewHandler(NewService(NewInMemoryRepository(nil), &recordingMailer{})))

	req := httptest.NewRequest("POST", "/contact", strings.NewReader(`{"name":"Ann"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestDeleteMessageWithoutActor(t *testing.T) {
	repo := NewInMemoryRepository([]Message{{ID: 1, Message: "hello"}})
	app := makeApp(NewHandler(NewService(repo, &recordingMailer{})))

	req := httptest.NewRequest("DELETE", "/admin/contact-messages/1", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("DELETE", "/admin/contact-messages/1", nil)
	req.Header.Set("X-User-ID", "1")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
}
