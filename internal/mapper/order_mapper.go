package mapper

import (
	"time"

	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	return &entity.Order{
		Id:             o.Id,
		TableSessionId: o.TableSessionId,
		ProductId:      o.ProductId,
		Quantity:       o.Quantity,
		Price:          o.Price,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	return &model.Order{
		Id:             o.Id,
		TableSessionId: o.TableSessionId,
		ProductId:      o.ProductId,
		Quantity:       o.Quantity,
		Price:          o.Price,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *OrderMapper) ToEntities(orders []*model.Order) []*entity.Order {
	entities := make([]*entity.Order, len(orders))
	for i, o := range orders {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
