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

type ITableSessionService interface {
	Open(ctx context.Context, req *dto.OpenTableSessionRequest) (*dto.TableSessionResponse, error)
	Close(ctx context.Context, id uint) (*dto.TableSessionResponse, error)
	GetAll(ctx context.Context) ([]*dto.TableSessionResponse, error)
}

type tableSessionService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewTableSessionService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ITableSessionService {
	return &tableSessionService{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Open starts a session for a table. The open-session check and the insert run
// in one transaction with the existing open row locked, and the partial unique
// index on (table_id) WHERE closed_at IS NULL rejects whatever still slips
// through, so two racing opens cannot both succeed.
func (c *tableSessionService) Open(ctx context.Context, req *dto.OpenTableSessionRequest) (*dto.TableSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	table, err := uow.TableRepository().FindOne(ctx, specification.ByID{ID: req.TableId})
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NotFound("table not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	open, err := uow.TableSessionRepository().FindOne(ctx,
		specification.ByTableID{TableID: req.TableId},
		specification.Open{},
		specification.ForUpdate{},
	)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, apperror.Conflict("this table is already open")
	}

	session := entity.TableSession{
		TableId:  req.TableId,
		OpenedAt: time.Now(),
	}
	if err := uow.TableSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.log.Info("table-session", "session opened", map[string]interface{}{
		"session_id": session.Id,
		"table_id":   session.TableId,
	})

	return toTableSessionResponse(&session), nil
}

func (c *tableSessionService) Close(ctx context.Context, id uint) (*dto.TableSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.TableSessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ForUpdate{},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("session table not found")
	}
	if !session.IsOpen() {
		return nil, apperror.Conflict("this session table is already closed")
	}

	now := time.Now()
	session.ClosedAt = &now

	if err := uow.TableSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.log.Info("table-session", "session closed", map[string]interface{}{
		"session_id": session.Id,
		"table_id":   session.TableId,
	})

	return toTableSessionResponse(session), nil
}

func (c *tableSessionService) GetAll(ctx context.Context) ([]*dto.TableSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.TableSessionRepository().FindAll(ctx, specification.OpenSessionsFirst{})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TableSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, toTableSessionResponse(session))
	}
	return result, nil
}

func toTableSessionResponse(session *entity.TableSession) *dto.TableSessionResponse {
	return &dto.TableSessionResponse{
		Id:       session.Id,
		TableId:  session.TableId,
		OpenedAt: session.OpenedAt,
		ClosedAt: session.ClosedAt,
	}
}
