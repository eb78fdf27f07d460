package controller

import (
	"restaurant-pos-be/internal/dto"
	"restaurant-pos-be/internal/pkg/apperror"
	"restaurant-pos-be/internal/pkg/serverutils"
	"restaurant-pos-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type orderController struct {
	service service.IOrderService
}

func NewOrderController(service service.IOrderService) IOrderController {
	return &orderController{service: service}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/orders")
	h.Post("", c.Create)
	h.Get(":table_session_id", c.Index)
	h.Get(":table_session_id/total", c.Show)
}

func (c *orderController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *orderController) Index(ctx *fiber.Ctx) error {
	sessionID, err := serverutils.ParseIDParam(ctx, "table_session_id")
	if err != nil {
		return err
	}

	res, err := c.service.ListBySession(ctx.Context(), sessionID)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *orderController) Show(ctx *fiber.Ctx) error {
	sessionID, err := serverutils.ParseIDParam(ctx, "table_session_id")
	if err != nil {
		return err
	}

	res, err := c.service.Summarize(ctx.Context(), sessionID)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
