package serverutils

import (
	"strconv"

	"restaurant-pos-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ParseIDParam reads a numeric route parameter. Non-numeric values are a
// validation failure, not a not-found.
func ParseIDParam(ctx *fiber.Ctx, name string) (uint, error) {
	raw := ctx.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.Validation(name + " must be a number")
	}
	return uint(id), nil
}
