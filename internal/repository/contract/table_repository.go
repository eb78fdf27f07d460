package contract

import (
	"context"

	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/repository/specification"
)

// TableRepository is read-mostly: tables are static reference data created by
// the seeder.
type TableRepository interface {
	Create(ctx context.Context, table *entity.Table) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Table, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Table, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
