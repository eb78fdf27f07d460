package implementation

import (
	"context"
	"time"

	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/mapper"
	"restaurant-pos-be/internal/model"
	"restaurant-pos-be/internal/repository/contract"
	"restaurant-pos-be/internal/repository/specification"

	"gorm.io/gorm"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entity.Order) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var models []*model.Order
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *OrderRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Order{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type orderLineRow struct {
	Id             uint
	TableSessionId uint
	ProductId      uint
	ProductName    string
	Quantity       int
	Price          float64
	Total          float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (r *OrderRepositoryImpl) FindLinesBySession(ctx context.Context, sessionID uint) ([]*entity.OrderLine, error) {
	var rows []orderLineRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(`orders.id,
			orders.table_session_id,
			orders.product_id,
			products.name AS product_name,
			orders.quantity,
			orders.price,
			(orders.price * orders.quantity) AS total,
			orders.created_at,
			orders.updated_at`).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.table_session_id = ?", sessionID).
		Order("orders.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	lines := make([]*entity.OrderLine, len(rows))
	for i, row := range rows {
		var updatedAt *time.Time
		if !row.UpdatedAt.IsZero() {
			t := row.UpdatedAt
			updatedAt = &t
		}
		lines[i] = &entity.OrderLine{
			Id:             row.Id,
			TableSessionId: row.TableSessionId,
			ProductId:      row.ProductId,
			ProductName:    row.ProductName,
			Quantity:       row.Quantity,
			Price:          row.Price,
			Total:          row.Total,
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      updatedAt,
		}
	}
	return lines, nil
}

func (r *OrderRepositoryImpl) SummarizeBySession(ctx context.Context, sessionID uint) (*entity.OrderSummary, error) {
	var summary entity.OrderSummary
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(`COALESCE(SUM(orders.price * orders.quantity), 0) AS total,
			COALESCE(SUM(orders.quantity), 0) AS quantity`).
		Where("orders.table_session_id = ?", sessionID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
