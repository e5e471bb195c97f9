package product

import (
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/modernhome/storefront-backend/internal/auth"
	"github.com/modernhome/storefront-backend/internal/image"
)

const adminPerPage = 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/admin/products", h.listProducts)
	app.Post("/admin/products", h.createProduct)
	app.Get("/admin/products/:id", h.getProduct)
	app.Put("/admin/products/:id", h.updateProduct)
	app.Delete("/admin/products/:id", h.deleteProduct)
	app.Delete("/admin/products/:id/images/:imageId", h.deleteProductImage)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	page := 1
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}

	products, total, err := h.service.List(page, adminPerPage)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{
		"products":    products,
		"total":       total,
		"currentPage": page,
		"perPage":     adminPerPage,
	})
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	cmd := new(Command)
	if err := c.BodyParser(cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := ValidateCommand(*cmd); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(auth.UserID(c), *cmd, formImages(c))
	if err != nil {
		return h.mutationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
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

	updated, err := h.service.Update(auth.UserID(c), id, *cmd, formImages(c))
	if err != nil {
		return h.mutationError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Delete(auth.UserID(c), id); err != nil {
		return h.mutationError(c, err)
	}
	return c.SendString("Product deleted")
}

func (h *Handler) deleteProductImage(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	imageID, err := strconv.Atoi(c.Params("imageId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if err := h.service.RemoveImage(auth.UserID(c), productID, imageID); err != nil {
		switch err {
		case image.ErrNotFound:
			return c.Status(fiber.StatusNotFound).SendString("Image not found")
		case image.ErrNotOwned:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
		case ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) mutationError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	case ErrCategoryNotFound:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fiber.Map{"categoryId": "selected category does not exist"}})
	case ErrTagNotFound:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fiber.Map{"tagIds": "one or more tags do not exist"}})
	case ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}

// formImages pulls the uploaded image files out of the multipart form, in
// input order. JSON requests simply have none.
func formImages(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}
