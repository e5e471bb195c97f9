package category

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

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/admin/categories", h.listCategories)
	app.Post("/admin/categories", h.createCategory)
	app.Get("/admin/categories/:id", h.getCategory)
	app.Put("/admin/categories/:id", h.updateCategory)
	app.Delete("/admin/categories/:id", h.deleteCategory)
}

func (h *Handler) listCategories(c *fiber.Ctx) error {
	page := 1
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}

	categories, total, err := h.service.List(page, adminPerPage)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{
		"categories":  categories,
		"total":       total,
		"currentPage": page,
		"perPage":     adminPerPage,
	})
}

func (h *Handler) getCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	cat, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Category not found")
	}
	return c.JSON(cat)
}

func (h *Handler) createCategory(c *fiber.Ctx) error {
	cmd := new(Command)
	if err := c.BodyParser(cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := ValidateCommand(*cmd); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	// image is optional on create
	file, _ := c.FormFile("image")

	created, err := h.service.Create(auth.UserID(c), *cmd, file)
	if err != nil {
		if err == ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	cmd := new(Command)
	if err := c.BodyParser(cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := ValidateCommand(*cmd); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	file, _ := c.FormFile("image")

	updated, err := h.service.Update(auth.UserID(c), id, *cmd, file)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Category not found")
		case ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deleteCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if err := h.service.Delete(auth.UserID(c), id); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Category not found")
		case ErrHasProducts:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "category still has products"})
		case ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.SendString("Category deleted")
}
