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

type TableRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TableMapper
}

func NewTableRepository(db *gorm.DB) contract.TableRepository {
	return &TableRepositoryImpl{
		db:     db,
		mapper: mapper.NewTableMapper(),
	}
}

func (r *TableRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TableRepositoryImpl) Create(ctx context.Context, table *entity.Table) error {
	m := r.mapper.ToModel(table)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*table = *r.mapper.ToEntity(m)
	return nil
}

func (r *TableRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Table, error) {
	var m model.Table
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TableRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Table, error) {
	var models []*model.Table
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TableRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Table{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
