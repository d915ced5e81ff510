package services

import (
	"context"
	"testing"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateWritesAuditRecordWithDiff(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clients.UpdateClient(adminCtx(), "cl1", dto.UpdateClientDTO{
		ShortName: utils.StringPtr("Ламмер"),
	})
	require.NoError(t, err)

	logs := env.history.GetHistoryByClient(adminCtx(), "cl1")
	require.Len(t, logs, 1)
	record := logs[0]
	assert.Equal(t, entities.EntityClient, record.EntityType)
	assert.Equal(t, entities.ActionUpdate, record.Action)
	assert.Equal(t, "Administrator", record.UserName)
	assert.Contains(t, record.Details, "short_name: TechStore -> Ламмер")
}

func TestUpdateWithoutChangesStillLogged(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clients.UpdateClient(adminCtx(), "cl1", dto.UpdateClientDTO{
		ShortName: utils.StringPtr("TechStore"),
	})
	require.NoError(t, err)

	logs := env.history.GetHistoryByClient(adminCtx(), "cl1")
	require.Len(t, logs, 1)
	assert.Equal(t, "Изменения не обнаружены", logs[0].Details)
}

func TestFailedMutationLeavesNoAuditRecord(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clients.UpdateClient(adminCtx(), "нет-такого", dto.UpdateClientDTO{
		ShortName: utils.StringPtr("x"),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, env.history.GetHistory(adminCtx()), "Неудачная мутация не оставляет следа в журнале")
}

func TestRejectedClosingLeavesNoAuditRecord(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tasks.ChangeStatus(adminCtx(), "t1", dto.ChangeTaskStatusDTO{Status: "Закрыта"})
	assert.ErrorIs(t, err, apperrors.ErrRatingRequired)
	assert.Empty(t, env.history.GetHistory(adminCtx()))
}

func TestClosingLoggedAsComplete(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tasks.ChangeStatus(adminCtx(), "t1", dto.ChangeTaskStatusDTO{
		Status:           "Закрыта",
		CompletionRating: utils.IntPtr(5),
		ContactRating:    utils.IntPtr(5),
	})
	require.NoError(t, err)

	logs := env.history.GetHistoryByClient(adminCtx(), "cl1")
	require.Len(t, logs, 1)
	assert.Equal(t, entities.ActionComplete, logs[0].Action)
	assert.Contains(t, logs[0].Details, "status: Новая -> Закрыта")
}

func TestActorNameFallsBackToSystem(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, "Administrator", env.history.ActorName(adminCtx()))
	assert.Equal(t, SystemUserName, env.history.ActorName(context.Background()),
		"Без пользователя в контексте автор — системный")

	_, err := env.clients.UpdateClient(context.Background(), "cl1", dto.UpdateClientDTO{
		ShortName: utils.StringPtr("Безымянный"),
	})
	require.NoError(t, err)
	logs := env.history.GetHistoryByClient(context.Background(), "cl1")
	require.Len(t, logs, 1)
	assert.Equal(t, SystemUserName, logs[0].UserName)
}

func TestUsersAreNotAudited(t *testing.T) {
	env := newTestEnv(t)
	users := NewUserService(env.db, zapNop())

	_, err := users.CreateUser(adminCtx(), dto.CreateUserDTO{
		Name: "Новый", Email: "new@crm.local", Password: "secret", Role: "user",
	})
	require.NoError(t, err)
	assert.Empty(t, env.history.GetHistory(adminCtx()), "Учётные записи в журнал не попадают")
}
