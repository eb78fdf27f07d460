package unitofwork

import (
	"context"

	"restaurant-pos-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one request, optionally inside a
// transaction. Check-then-write sequences (open a table, order against a
// session) must run between Begin and Commit so row locks hold.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	TableRepository() contract.TableRepository
	TableSessionRepository() contract.TableSessionRepository
	OrderRepository() contract.OrderRepository
}
