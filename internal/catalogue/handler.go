package catalogue

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/catalogue", h.browse)
}

func (h *Handler) browse(c *fiber.Ctx) error {
	f := Filters{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}
	if v, err := strconv.Atoi(c.Query("category_id")); err == nil {
		f.CategoryID = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		f.Page = v
	}

	page, err := h.service.Browse(f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(page)
}
