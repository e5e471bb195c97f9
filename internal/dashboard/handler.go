package dashboard

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/admin/dashboard", h.overview)
}

func (h *Handler) overview(c *fiber.Ctx) error {
	stats, err := h.service.Overview()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"stats": stats})
}
