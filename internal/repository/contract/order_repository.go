package contract

import (
	"context"

	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/repository/specification"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindLinesBySession returns the session's orders joined with the product
	// name and the computed line total, newest first.
	FindLinesBySession(ctx context.Context, sessionID uint) ([]*entity.OrderLine, error)

	// SummarizeBySession aggregates the session's bill, zero-defaulted when the
	// session has no orders.
	SummarizeBySession(ctx context.Context, sessionID uint) (*entity.OrderSummary, error)
}
