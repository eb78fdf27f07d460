package service

import (
	"context"
	"testing"

	"restaurant-pos-be/internal/dto"
	"restaurant-pos-be/internal/pkg/apperror"
	"restaurant-pos-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture(t *testing.T) (*memory.Factory, IProductService) {
	t.Helper()
	factory := memory.NewFactory()
	return factory, NewProductService(factory)
}

func TestCreateProduct(t *testing.T) {
	_, svc := newProductFixture(t)

	res, err := svc.Create(context.Background(), &dto.CreateProductRequest{
		Name:  "Caesar Salad",
		Price: 28,
	})
	require.NoError(t, err)

	assert.NotZero(t, res.Id)
	assert.Equal(t, "Caesar Salad", res.Name)
	assert.Equal(t, 28.0, res.Price)
	assert.False(t, res.CreatedAt.IsZero())
}

func TestSearchProducts(t *testing.T) {
	_, svc := newProductFixture(t)

	for _, p := range []dto.CreateProductRequest{
		{Name: "Mushroom Risotto", Price: 48},
		{Name: "Margherita Pizza", Price: 52},
		{Name: "Grilled Salmon", Price: 74},
	} {
		req := p
		_, err := svc.Create(context.Background(), &req)
		require.NoError(t, err)
	}

	t.Run("empty fragment matches all, alphabetical", func(t *testing.T) {
		all, err := svc.Search(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Grilled Salmon", all[0].Name)
		assert.Equal(t, "Margherita Pizza", all[1].Name)
		assert.Equal(t, "Mushroom Risotto", all[2].Name)
	})

	t.Run("case-insensitive substring", func(t *testing.T) {
		matched, err := svc.Search(context.Background(), "riso")
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "Mushroom Risotto", matched[0].Name)
	})
}

func TestUpdateProduct(t *testing.T) {
	_, svc := newProductFixture(t)

	created, err := svc.Create(context.Background(), &dto.CreateProductRequest{
		Name:  "Tiramisu Classic",
		Price: 22,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), &dto.UpdateProductRequest{
		Id:    created.Id,
		Name:  "Tiramisu",
		Price: 24,
	})
	require.NoError(t, err)

	assert.Equal(t, "Tiramisu", updated.Name)
	assert.Equal(t, 24.0, updated.Price)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestUpdateProductNotFound(t *testing.T) {
	_, svc := newProductFixture(t)

	_, err := svc.Update(context.Background(), &dto.UpdateProductRequest{
		Id:    123,
		Name:  "Ghost Dish",
		Price: 10,
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestRemoveProduct(t *testing.T) {
	_, svc := newProductFixture(t)

	created, err := svc.Create(context.Background(), &dto.CreateProductRequest{
		Name:  "Sparkling Water",
		Price: 8,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), created.Id))

	all, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRemoveProductNotFound(t *testing.T) {
	_, svc := newProductFixture(t)

	err := svc.Remove(context.Background(), 999)
	assert.True(t, apperror.IsNotFound(err))
}
