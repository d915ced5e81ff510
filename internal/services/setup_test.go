package services

import (
	"context"
	"testing"

	"crm-system/internal/repositories"
	"crm-system/pkg/contextkeys"
	"crm-system/pkg/eventbus"
	"crm-system/pkg/kvstore"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testEnv поднимает полный сервисный слой поверх хранилища в памяти с
// начальными данными (клиент cl1, очередь q1 "SUP", задача t1 и т.д.).
type testEnv struct {
	db      *repositories.DB
	history *HistoryService
	tasks   *TaskService
	clients *ClientService
	queues  *QueueService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	kv, err := kvstore.OpenInMemory()
	require.NoError(t, err, "Не удалось открыть хранилище в памяти")
	t.Cleanup(func() { kv.Close() })

	db, err := repositories.NewDB(kv)
	require.NoError(t, err, "Не удалось инициализировать коллекции")

	logger := zap.NewNop()
	bus := eventbus.New(logger)
	history := NewHistoryService(db, bus, logger)

	return &testEnv{
		db:      db,
		history: history,
		tasks:   NewTaskService(db, history, logger),
		clients: NewClientService(db, history, logger),
		queues:  NewQueueService(db, history, logger),
	}
}

// adminCtx — контекст запроса от имени пользователя u1.
func adminCtx() context.Context {
	return context.WithValue(context.Background(), contextkeys.UserIDKey, "u1")
}

func zapNop() *zap.Logger { return zap.NewNop() }
