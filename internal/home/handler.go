package home

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/modernhome/storefront-backend/internal/product"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/", h.landing)
	app.Get("/products/:id", h.show)
}

func (h *Handler) landing(c *fiber.Ctx) error {
	sections, err := h.service.Landing()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"categories": sections})
}

func (h *Handler) show(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	detail, err := h.service.Show(id)
	if err == product.ErrNotFound {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(detail)
}
