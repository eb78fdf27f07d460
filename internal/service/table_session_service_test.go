package service

import (
	"context"
	"testing"

	"restaurant-pos-be/internal/dto"
	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/pkg/apperror"
	"restaurant-pos-be/internal/repository/memory"
	"restaurant-pos-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newSessionFixture(t *testing.T, tableCount int) (*memory.Factory, ITableSessionService) {
	t.Helper()
	factory := memory.NewFactory()
	for number := 1; number <= tableCount; number++ {
		err := factory.Tables.Create(context.Background(), &entity.Table{Number: number})
		require.NoError(t, err)
	}
	return factory, NewTableSessionService(factory, nopLogger{})
}

func TestOpenSession(t *testing.T) {
	_, svc := newSessionFixture(t, 1)

	res, err := svc.Open(context.Background(), &dto.OpenTableSessionRequest{TableId: 1})
	require.NoError(t, err)

	assert.NotZero(t, res.Id)
	assert.Equal(t, uint(1), res.TableId)
	assert.False(t, res.OpenedAt.IsZero())
	assert.Nil(t, res.ClosedAt)
}

func TestOpenSessionTableNotFound(t *testing.T) {
	_, svc := newSessionFixture(t, 1)

	_, err := svc.Open(context.Background(), &dto.OpenTableSessionRequest{TableId: 99})
	assert.True(t, apperror.IsNotFound(err))
}

func TestOpenSessionConflictLeavesStoreUnchanged(t *testing.T) {
	factory, svc := newSessionFixture(t, 1)

	_, err := svc.Open(context.Background(), &dto.OpenTableSessionRequest{TableId: 1})
	require.NoError(t, err)

	_, err = svc.Open(context.Background(), &dto.OpenTableSessionRequest{TableId: 1})
	assert.True(t, apperror.IsConflict(err))

	count, err := factory.Sessions.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestReopenAfterClose(t *testing.T) {
	factory, svc := newSessionFixture(t, 1)

	first, err := svc.Open(context.Background(), &dto.OpenTableSessionRequest{TableId: 1})
	require.NoError(t, err)

	_, err = svc.Close(context.Background(), first.Id)
	require.NoError(t, err)

	second, err := svc.Open(context.Background(), &dto.OpenTableSessionRequest{TableId: 1})
	require.NoError(t, err)
	assert.NotEqual(t, first.Id, second.Id)

	// at most one open session per table, ever
	openCount, err := factory.Sessions.Count(context.Background(),
		specification.ByTableID{TableID: 1},
		specification.Open{},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(1), openCount)
}

func TestCloseSessionNotFound(t *testing.T) {
	_, svc := newSessionFixture(t, 1)

	_, err := svc.Close(context.Background(), 42)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCloseSessionTwice(t *testing.T) {
	factory, svc := newSessionFixture(t, 1)

	opened, err := svc.Open(context.Background(), &dto.OpenTableSessionRequest{TableId: 1})
	require.NoError(t, err)

	closed, err := svc.Close(context.Background(), opened.Id)
	require.NoError(t, err)
	require.NotNil(t, closed.ClosedAt)

	_, err = svc.Close(context.Background(), opened.Id)
	assert.True(t, apperror.IsConflict(err))

	// closed_at untouched by the failed attempt
	stored, err := factory.Sessions.FindOne(context.Background(), specification.ByID{ID: opened.Id})
	require.NoError(t, err)
	require.NotNil(t, stored.ClosedAt)
	assert.True(t, stored.ClosedAt.Equal(*closed.ClosedAt))
}

func TestGetAllListsOpenSessionsFirst(t *testing.T) {
	_, svc := newSessionFixture(t, 2)

	closedSession, err := svc.Open(context.Background(), &dto.OpenTableSessionRequest{TableId: 1})
	require.NoError(t, err)
	_, err = svc.Close(context.Background(), closedSession.Id)
	require.NoError(t, err)

	openSession, err := svc.Open(context.Background(), &dto.OpenTableSessionRequest{TableId: 2})
	require.NoError(t, err)

	sessions, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, openSession.Id, sessions[0].Id)
	assert.Nil(t, sessions[0].ClosedAt)
	assert.Equal(t, closedSession.Id, sessions[1].Id)
	assert.NotNil(t, sessions[1].ClosedAt)
}
