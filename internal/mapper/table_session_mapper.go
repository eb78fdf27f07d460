package mapper

import (
	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/model"
)

type TableSessionMapper struct{}

func NewTableSessionMapper() *TableSessionMapper {
	return &TableSessionMapper{}
}

func (m *TableSessionMapper) ToEntity(s *model.TableSession) *entity.TableSession {
	if s == nil {
		return nil
	}
	return &entity.TableSession{
		Id:       s.Id,
		TableId:  s.TableId,
		OpenedAt: s.OpenedAt,
		ClosedAt: s.ClosedAt,
	}
}

func (m *TableSessionMapper) ToModel(s *entity.TableSession) *model.TableSession {
	if s == nil {
		return nil
	}
	return &model.TableSession{
		Id:       s.Id,
		TableId:  s.TableId,
		OpenedAt: s.OpenedAt,
		ClosedAt: s.ClosedAt,
	}
}

func (m *TableSessionMapper) ToEntities(sessions []*model.TableSession) []*entity.TableSession {
	entities := make([]*entity.TableSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
