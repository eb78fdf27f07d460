package service

import (
	"context"
	"time"

	"restaurant-pos-be/internal/dto"
	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/pkg/apperror"
	"restaurant-pos-be/internal/pkg/logger"
	"restaurant-pos-be/internal/repository/specification"
	"restaurant-pos-be/internal/repository/unitofwork"
)

type IOrderService interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	ListBySession(ctx context.Context, sessionID uint) ([]*dto.OrderLineResponse, error)
	Summarize(ctx context.Context, sessionID uint) (*dto.OrderSummaryResponse, error)
}

type orderService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewOrderService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IOrderService {
	return &orderService{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Create records one line item against an open session. The session row is
// locked for the duration of the transaction so a concurrent close cannot land
// between the open check and the insert.
func (c *orderService) Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.TableSessionRepository().FindOne(ctx,
		specification.ByID{ID: req.TableSessionId},
		specification.ForUpdate{},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("session table not found")
	}
	if !session.IsOpen() {
		return nil, apperror.Conflict("this table is closed")
	}

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.ProductId})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NotFound("product not found")
	}

	// Price is copied at insert time; later catalog updates must not change
	// what this session gets billed.
	order := entity.Order{
		TableSessionId: req.TableSessionId,
		ProductId:      req.ProductId,
		Quantity:       req.Quantity,
		Price:          product.Price,
		CreatedAt:      time.Now(),
	}
	if err := uow.OrderRepository().Create(ctx, &order); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.log.Info("order", "order placed", map[string]interface{}{
		"order_id":   order.Id,
		"session_id": order.TableSessionId,
		"product_id": order.ProductId,
		"quantity":   order.Quantity,
	})

	return &dto.OrderResponse{
		Id:             order.Id,
		TableSessionId: order.TableSessionId,
		ProductId:      order.ProductId,
		Quantity:       order.Quantity,
		Price:          order.Price,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}, nil
}

func (c *orderService) ListBySession(ctx context.Context, sessionID uint) ([]*dto.OrderLineResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	lines, err := uow.OrderRepository().FindLinesBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.OrderLineResponse, 0, len(lines))
	for _, line := range lines {
		result = append(result, &dto.OrderLineResponse{
			Id:             line.Id,
			TableSessionId: line.TableSessionId,
			ProductId:      line.ProductId,
			Name:           line.ProductName,
			Quantity:       line.Quantity,
			Price:          line.Price,
			Total:          line.Total,
			CreatedAt:      line.CreatedAt,
			UpdatedAt:      line.UpdatedAt,
		})
	}
	return result, nil
}

func (c *orderService) Summarize(ctx context.Context, sessionID uint) (*dto.OrderSummaryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	summary, err := uow.OrderRepository().SummarizeBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &dto.OrderSummaryResponse{
		Total:    summary.Total,
		Quantity: summary.Quantity,
	}, nil
}
