package user

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/modernhome/storefront-backend/internal/auth"
)

const adminPerPage = 20

type Handler struct {
	service   *Service
	jwtSecret string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewHandler(service *Service, jwtSecret string) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/admin/sign-in", h.login)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/admin/users", h.listUsers)
	app.Post("/admin/users", h.createUser)
	app.Get("/admin/users/:id", h.getUser)
	app.Put("/admin/users/:id", h.updateUser)
	app.Delete("/admin/users/:id", h.deleteUser)
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	u, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    u,
		"token":   signed,
	})
}

func (h *Handler) listUsers(c *fiber.Ctx) error {
	page := 1
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}

	users, total, err := h.service.List(page, adminPerPage)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{
		"users":       users,
		"total":       total,
		"currentPage": page,
		"perPage":     adminPerPage,
	})
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	u, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("User not found")
	}
	return c.JSON(u)
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	cmd := new(Command)
	if err := c.BodyParser(cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := ValidateCommand(*cmd, true); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(auth.UserID(c), *cmd)
	if err != nil {
		return h.mutationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	cmd := new(Command)
	if err := c.BodyParser(cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := ValidateCommand(*cmd, false); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(auth.UserID(c), id, *cmd)
	if err != nil {
		return h.mutationError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Delete(auth.UserID(c), id); err != nil {
		return h.mutationError(c, err)
	}
	return c.SendString("User deleted")
}

func (h *Handler) mutationError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).SendString("User not found")
	case ErrEmailExists:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email already exists"})
	case ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
