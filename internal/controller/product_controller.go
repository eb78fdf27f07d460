package controller

import (
	"strings"

	"restaurant-pos-be/internal/dto"
	"restaurant-pos-be/internal/pkg/apperror"
	"restaurant-pos-be/internal/pkg/serverutils"
	"restaurant-pos-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
}

type productController struct {
	service service.IProductService
}

func NewProductController(service service.IProductService) IProductController {
	return &productController{service: service}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/products")
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Remove)
}

func (c *productController) Index(ctx *fiber.Ctx) error {
	nameFragment := ctx.Query("name")

	res, err := c.service.Search(ctx.Context(), nameFragment)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *productController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *productController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	req.Id = id
	req.Name = strings.TrimSpace(req.Name)

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *productController) Remove(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Remove(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"id": id})
}
