package services

import (
	"testing"

	"crm-system/internal/dto"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closeTaskWithRating(t *testing.T, env *testEnv, taskID string, rating int) {
	t.Helper()
	_, err := env.tasks.ChangeStatus(adminCtx(), taskID, dto.ChangeTaskStatusDTO{
		Status:           "Закрыта",
		CompletionRating: utils.IntPtr(rating),
	})
	require.NoError(t, err, "Не удалось закрыть задачу %s", taskID)
}

func TestGetClientStatsAveragesClosedTasks(t *testing.T) {
	env := newTestEnv(t)

	for _, rating := range []int{5, 4, 3} {
		task := createTask(t, env, baseTaskPayload())
		closeTaskWithRating(t, env, task.ID, rating)
	}
	// Открытая задача в средний рейтинг не входит (t1 из начальных
	// данных тоже открыта).
	createTask(t, env, baseTaskPayload())

	stats, err := env.clients.GetClientStats(adminCtx(), "cl1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, stats.AvgRating)
	assert.Equal(t, 3, stats.TaskCount)
}

func TestGetClientStatsRounding(t *testing.T) {
	env := newTestEnv(t)

	for _, rating := range []int{5, 4, 4} {
		task := createTask(t, env, baseTaskPayload())
		closeTaskWithRating(t, env, task.ID, rating)
	}

	stats, err := env.clients.GetClientStats(adminCtx(), "cl1")
	require.NoError(t, err)
	assert.Equal(t, 4.3, stats.AvgRating, "Средний рейтинг округляется до одного знака")
}

func TestGetClientStatsEmpty(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.clients.GetClientStats(adminCtx(), "cl1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.AvgRating)
	assert.Equal(t, 0, stats.TaskCount)

	_, err = env.clients.GetClientStats(adminCtx(), "нет-такого")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteClientCascades(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tasks.AddComment(adminCtx(), "t1", dto.AddCommentDTO{Text: "до удаления"})
	require.NoError(t, err)

	require.NoError(t, env.clients.DeleteClient(adminCtx(), "cl1"))

	_, ok := env.db.Clients.GetByID("cl1")
	assert.False(t, ok)
	assert.Empty(t, env.db.Contacts.GetAll(), "Контакты клиента удаляются вместе с ним")
	assert.Empty(t, env.db.Contracts.GetAll())
	assert.Empty(t, env.db.Databases.GetAll())
	assert.Empty(t, env.db.Tasks.GetAll())
	assert.Empty(t, env.db.TaskComments.GetAll())

	assert.ErrorIs(t, env.clients.DeleteClient(adminCtx(), "cl1"), apperrors.ErrNotFound)
}

func TestUpdateClientAppliesPartialPayload(t *testing.T) {
	env := newTestEnv(t)

	updated, err := env.clients.UpdateClient(adminCtx(), "cl1", dto.UpdateClientDTO{
		ShortName: utils.StringPtr("НоваяВывеска"),
	})
	require.NoError(t, err)
	assert.Equal(t, "НоваяВывеска", updated.ShortName)
	assert.Equal(t, "TechStore Ltd.", updated.FullName, "Необъявленные поля не меняются")
}
