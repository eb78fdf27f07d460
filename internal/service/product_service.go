package service

import (
	"context"
	"time"

	"restaurant-pos-be/internal/dto"
	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/pkg/apperror"
	"restaurant-pos-be/internal/repository/specification"
	"restaurant-pos-be/internal/repository/unitofwork"
)

type IProductService interface {
	Search(ctx context.Context, nameFragment string) ([]*dto.ProductResponse, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Remove(ctx context.Context, id uint) error
}

type productService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProductService(uowFactory unitofwork.RepositoryFactory) IProductService {
	return &productService{
		uowFactory: uowFactory,
	}
}

func (c *productService) Search(ctx context.Context, nameFragment string) ([]*dto.ProductResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	products, err := uow.ProductRepository().FindAll(ctx,
		specification.NameLike{Fragment: nameFragment},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProductResponse, 0, len(products))
	for _, product := range products {
		result = append(result, toProductResponse(product))
	}
	return result, nil
}

func (c *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	product := entity.Product{
		Name:      req.Name,
		Price:     req.Price,
		CreatedAt: time.Now(),
	}

	if err := uow.ProductRepository().Create(ctx, &product); err != nil {
		return nil, err
	}

	return toProductResponse(&product), nil
}

func (c *productService) Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NotFound("product not found")
	}

	now := time.Now()
	product.Name = req.Name
	product.Price = req.Price
	product.UpdatedAt = &now

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

func (c *productService) Remove(ctx context.Context, id uint) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NotFound("product not found")
	}

	return uow.ProductRepository().Delete(ctx, id)
}

func toProductResponse(product *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Id:        product.Id,
		Name:      product.Name,
		Price:     product.Price,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}
