package service

import (
	"context"

	"restaurant-pos-be/internal/dto"
	"restaurant-pos-be/internal/repository/specification"
	"restaurant-pos-be/internal/repository/unitofwork"
)

type ITableService interface {
	GetAll(ctx context.Context) ([]*dto.TableResponse, error)
}

type tableService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTableService(uowFactory unitofwork.RepositoryFactory) ITableService {
	return &tableService{
		uowFactory: uowFactory,
	}
}

func (c *tableService) GetAll(ctx context.Context) ([]*dto.TableResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	tables, err := uow.TableRepository().FindAll(ctx, specification.OrderBy{Field: "number"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TableResponse, 0, len(tables))
	for _, table := range tables {
		result = append(result, &dto.TableResponse{
			Id:     table.Id,
			Number: table.Number,
		})
	}
	return result, nil
}
