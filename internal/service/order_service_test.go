package service

import (
	"context"
	"testing"

	"restaurant-pos-be/internal/dto"
	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/pkg/apperror"
	"restaurant-pos-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	factory  *memory.Factory
	sessions ITableSessionService
	orders   IOrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	factory := memory.NewFactory()
	for number := 1; number <= 3; number++ {
		err := factory.Tables.Create(context.Background(), &entity.Table{Number: number})
		require.NoError(t, err)
	}
	err := factory.Products.Create(context.Background(), &entity.Product{Name: "Spaghetti Bolognese", Price: 45})
	require.NoError(t, err)

	return &orderFixture{
		factory:  factory,
		sessions: NewTableSessionService(factory, nopLogger{}),
		orders:   NewOrderService(factory, nopLogger{}),
	}
}

func (f *orderFixture) openSession(t *testing.T, tableId uint) *dto.TableSessionResponse {
	t.Helper()
	session, err := f.sessions.Open(context.Background(), &dto.OpenTableSessionRequest{TableId: tableId})
	require.NoError(t, err)
	return session
}

func TestCreateOrderSessionNotFound(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Create(context.Background(), &dto.CreateOrderRequest{
		TableSessionId: 77,
		ProductId:      1,
		Quantity:       1,
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateOrderProductNotFound(t *testing.T) {
	f := newOrderFixture(t)
	session := f.openSession(t, 1)

	_, err := f.orders.Create(context.Background(), &dto.CreateOrderRequest{
		TableSessionId: session.Id,
		ProductId:      99,
		Quantity:       1,
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateOrderAgainstClosedSession(t *testing.T) {
	f := newOrderFixture(t)
	session := f.openSession(t, 1)

	_, err := f.sessions.Close(context.Background(), session.Id)
	require.NoError(t, err)

	_, err = f.orders.Create(context.Background(), &dto.CreateOrderRequest{
		TableSessionId: session.Id,
		ProductId:      1,
		Quantity:       1,
	})
	assert.True(t, apperror.IsConflict(err))

	// no order row created by the failed attempt
	count, err := f.factory.Orders.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestOrderPriceIsSnapshot(t *testing.T) {
	f := newOrderFixture(t)
	session := f.openSession(t, 1)

	order, err := f.orders.Create(context.Background(), &dto.CreateOrderRequest{
		TableSessionId: session.Id,
		ProductId:      1,
		Quantity:       2,
	})
	require.NoError(t, err)
	assert.Equal(t, 45.0, order.Price)

	// raise the catalog price after the order was placed
	product := &entity.Product{Id: 1, Name: "Spaghetti Bolognese", Price: 60}
	require.NoError(t, f.factory.Products.Update(context.Background(), product))

	lines, err := f.orders.ListBySession(context.Background(), session.Id)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 45.0, lines[0].Price)
	assert.Equal(t, 90.0, lines[0].Total)

	summary, err := f.orders.Summarize(context.Background(), session.Id)
	require.NoError(t, err)
	assert.Equal(t, 90.0, summary.Total)
}

func TestListBySessionNewestFirst(t *testing.T) {
	f := newOrderFixture(t)
	session := f.openSession(t, 1)

	first, err := f.orders.Create(context.Background(), &dto.CreateOrderRequest{
		TableSessionId: session.Id,
		ProductId:      1,
		Quantity:       1,
	})
	require.NoError(t, err)

	second, err := f.orders.Create(context.Background(), &dto.CreateOrderRequest{
		TableSessionId: session.Id,
		ProductId:      1,
		Quantity:       3,
	})
	require.NoError(t, err)

	lines, err := f.orders.ListBySession(context.Background(), session.Id)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, second.Id, lines[0].Id)
	assert.Equal(t, first.Id, lines[1].Id)
	assert.Equal(t, "Spaghetti Bolognese", lines[0].Name)
}

func TestSummaryDefaultsToZero(t *testing.T) {
	f := newOrderFixture(t)
	session := f.openSession(t, 1)

	summary, err := f.orders.Summarize(context.Background(), session.Id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.Total)
	assert.Equal(t, 0, summary.Quantity)
}

func TestSessionBillingScenario(t *testing.T) {
	f := newOrderFixture(t)

	// open table 3, order 2x a 45 product, bill, close, order again
	session := f.openSession(t, 3)

	_, err := f.orders.Create(context.Background(), &dto.CreateOrderRequest{
		TableSessionId: session.Id,
		ProductId:      1,
		Quantity:       2,
	})
	require.NoError(t, err)

	summary, err := f.orders.Summarize(context.Background(), session.Id)
	require.NoError(t, err)
	assert.Equal(t, 90.0, summary.Total)
	assert.Equal(t, 2, summary.Quantity)

	_, err = f.sessions.Close(context.Background(), session.Id)
	require.NoError(t, err)

	_, err = f.orders.Create(context.Background(), &dto.CreateOrderRequest{
		TableSessionId: session.Id,
		ProductId:      1,
		Quantity:       1,
	})
	assert.True(t, apperror.IsConflict(err))
}
