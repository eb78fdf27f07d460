package controller

import (
	"restaurant-pos-be/internal/dto"
	"restaurant-pos-be/internal/pkg/apperror"
	"restaurant-pos-be/internal/pkg/serverutils"
	"restaurant-pos-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITableSessionController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type tableSessionController struct {
	service service.ITableSessionService
}

func NewTableSessionController(service service.ITableSessionService) ITableSessionController {
	return &tableSessionController{service: service}
}

func (c *tableSessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tables-sessions")
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
}

func (c *tableSessionController) Index(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *tableSessionController) Create(ctx *fiber.Ctx) error {
	var req dto.OpenTableSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Open(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

// Update closes the session; the only mutation a session ever receives.
func (c *tableSessionController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Close(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
