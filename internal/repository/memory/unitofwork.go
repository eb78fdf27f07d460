package memory

import (
	"context"

	"restaurant-pos-be/internal/repository/contract"
	"restaurant-pos-be/internal/repository/unitofwork"
)

// Factory satisfies unitofwork.RepositoryFactory over the in-memory fakes so
// services can be unit tested without a database. The fakes are not
// transactional: Begin/Commit/Rollback are accepted and ignored, which is fine
// for tests because every service writes at most one row per operation after
// its checks pass.
type Factory struct {
	Products *ProductRepository
	Tables   *TableRepository
	Sessions *TableSessionRepository
	Orders   *OrderRepository
}

func NewFactory() *Factory {
	products := NewProductRepository()
	return &Factory{
		Products: products,
		Tables:   NewTableRepository(),
		Sessions: NewTableSessionRepository(),
		Orders:   NewOrderRepository(products),
	}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{factory: f}
}

type unitOfWork struct {
	factory *Factory
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) ProductRepository() contract.ProductRepository {
	return u.factory.Products
}

func (u *unitOfWork) TableRepository() contract.TableRepository {
	return u.factory.Tables
}

func (u *unitOfWork) TableSessionRepository() contract.TableSessionRepository {
	return u.factory.Sessions
}

func (u *unitOfWork) OrderRepository() contract.OrderRepository {
	return u.factory.Orders
}
