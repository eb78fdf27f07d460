package implementation

import (
	"context"
	"errors"

	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/mapper"
	"restaurant-pos-be/internal/model"
	"restaurant-pos-be/internal/repository/contract"
	"restaurant-pos-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TableSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TableSessionMapper
}

func NewTableSessionRepository(db *gorm.DB) contract.TableSessionRepository {
	return &TableSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTableSessionMapper(),
	}
}

func (r *TableSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TableSessionRepositoryImpl) Create(ctx context.Context, session *entity.TableSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *TableSessionRepositoryImpl) Update(ctx context.Context, session *entity.TableSession) error {
	m := r.mapper.ToModel(session)
	// Save rather than Updates: closing a session writes a previously-NULL
	// closed_at, which Updates would skip as a zero value.
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *TableSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TableSession, error) {
	var m model.TableSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TableSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TableSession, error) {
	var models []*model.TableSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TableSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TableSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
