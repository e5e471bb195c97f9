package contact

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/modernhome/storefront-backend/internal/auth"
)

const adminPerPage = 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/contact", h.submit)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/admin/contact-messages", h.listMessages)
	app.Get("/admin/contact-messages/:id", h.getMessage)
	app.Delete("/admin/contact-messages/:id", h.deleteMessage)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	cmd := new(Command)
	if err := c.BodyParser(cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := ValidateCommand(*cmd); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	if _, err := h.service.Submit(*cmd); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your message has been sent successfully. We will get back to you soon!",
	})
}

func (h *Handler) listMessages(c *fiber.Ctx) error {
	page := 1
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}

	messages, total, err := h.service.List(page, adminPerPage)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{
		"messages":    messages,
		"total":       total,
		"currentPage": page,
		"perPage":     adminPerPage,
	})
}

func (h *Handler) getMessage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	m, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Message not found")
	}
	return c.JSON(m)
}

func (h *Handler) deleteMessage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	switch err := h.service.Delete(auth.UserID(c), id); err {
	case nil:
		return c.SendString("Message deleted")
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).SendString("Message not found")
	case ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
