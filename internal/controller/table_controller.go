package controller

import (
	"restaurant-pos-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITableController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
}

type tableController struct {
	service service.ITableService
}

func NewTableController(service service.ITableService) ITableController {
	return &tableController{service: service}
}

func (c *tableController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tables")
	h.Get("", c.Index)
}

func (c *tableController) Index(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
