package contract

import (
	"context"

	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/repository/specification"
)

type TableSessionRepository interface {
	Create(ctx context.Context, session *entity.TableSession) error
	Update(ctx context.Context, session *entity.TableSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TableSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TableSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
