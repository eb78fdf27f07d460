package mapper

import (
	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/model"
)

type TableMapper struct{}

func NewTableMapper() *TableMapper {
	return &TableMapper{}
}

func (m *TableMapper) ToEntity(t *model.Table) *entity.Table {
	if t == nil {
		return nil
	}
	return &entity.Table{
		Id:     t.Id,
		Number: t.Number,
	}
}

func (m *TableMapper) ToModel(t *entity.Table) *model.Table {
	if t == nil {
		return nil
	}
	return &model.Table{
		Id:     t.Id,
		Number: t.Number,
	}
}

func (m *TableMapper) ToEntities(tables []*model.Table) []*entity.Table {
	entities := make([]*entity.Table, len(tables))
	for i, t := range tables {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
