package user

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAdminApp(h *Handler) *fiber.App {
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

func newTestHandler() *Handler {
	return NewHandler(NewService(NewInMemoryRepository(nil)), "test-secret")
}

func TestLoginIssuesToken(t *testing.T) {
	h := newTestHandler()
	app := makeAdminApp(h)

	req := httptest.NewRequest("POST", "/admin/users", strings.NewReader(`{"name":"Ann","email":"ann@example.com","password":"secret-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("POST", "/admin/sign-in", strings.NewReader(`{"email":"ann@example.com","password":"secret-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Token == "" {
		t.Fatal("expected a signed token in the response")
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(body.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["email"] != "ann@example.com" {
		t.Fatalf("unexpected email claim %v", claims["email"])
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	h := makeHandlerWithUser(t)
	app := makeAdminApp(h)

	req := httptest.NewRequest("POST", "/admin/sign-in", strings.NewReader(`{"email":"ann@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}

func TestCreateUserWithoutActor(t *testing.T) {
	h := newTestHandler()
	app := makeAdminApp(h)

	req := httptest.NewRequest("POST", "/admin/users", strings.NewReader(`{"name":"Ann","email":"ann@example.com","password":"secret-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.StatusCode)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	h := makeHandlerWithUser(t)
	app := makeAdminApp(h)

	req := httptest.NewRequest("POST", "/admin/users", strings.NewReader(`{"name":"Other","email":"ann@example.com","password":"secret-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", res.StatusCode)
	}
}

func TestUserResponseHidesPassword(t *testing.T) {
	h := makeHandlerWithUser(t)
	app := makeAdminApp(h)

	req := httptest.NewRequest("GET", "/admin/users/1", nil)
	req.Header.Set("X-User-ID", "1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if strings.Contains(string(body), "password") || strings.Contains(string(body), "$2a$") {
		t.Fatalf("password leaked in response: %s", body)
	}
}

func TestDeleteMissingUser(t *testing.T) {
	h := newTestHandler()
	app := makeAdminApp(h)

	req := httptest.NewRequest("DELETE", "/admin/users/99", nil)
	req.Header.Set("X-User-ID", "1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func makeHandlerWithUser(t *testing.T) *Handler {
	t.Helper()
	svc := NewService(NewInMemoryRepository(nil))
	if _, err := svc.Create(1, Command{Name: "Ann", Email: "ann@example.com", Password: "secret-pass"}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewHandler(svc, "test-secret")
}
