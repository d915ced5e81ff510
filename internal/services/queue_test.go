package services

import (
	"testing"

	"crm-system/internal/dto"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQueueFromTemplateCopiesStatuses(t *testing.T) {
	env := newTestEnv(t)

	queue, err := env.queues.CreateQueue(adminCtx(), dto.CreateQueueDTO{
		Name:       "Проекты",
		Prefix:     "PRJ",
		TemplateID: utils.StringPtr("qt1"),
	})
	require.NoError(t, err)
	require.Len(t, queue.Statuses, 3)
	assert.Equal(t, "qt1", queue.TemplateID)

	// Изменение шаблона не должно трогать уже созданную очередь.
	_, err = env.queues.UpdateQueueTemplate(adminCtx(), "qt1", dto.UpdateQueueTemplateDTO{
		Statuses: []dto.QueueStatusDTO{{Name: "Одна"}},
	})
	require.NoError(t, err)

	reloaded, err := env.queues.FindQueue(adminCtx(), queue.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Statuses, 3, "Очередь живёт независимо от шаблона после создания")
}

func TestCreateQueueRequiresTemplateOrStatuses(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.queues.CreateQueue(adminCtx(), dto.CreateQueueDTO{Name: "Пустая", Prefix: "EMP"})
	require.Error(t, err)

	_, err = env.queues.CreateQueue(adminCtx(), dto.CreateQueueDTO{
		Name: "Сломанная", Prefix: "BRK", TemplateID: utils.StringPtr("нет-такого"),
	})
	require.Error(t, err)
}

func TestCreateQueueExplicitClosingFlag(t *testing.T) {
	env := newTestEnv(t)

	queue, err := env.queues.CreateQueue(adminCtx(), dto.CreateQueueDTO{
		Name:   "Особая",
		Prefix: "SPC",
		Statuses: []dto.QueueStatusDTO{
			{Name: "Новая"},
			{Name: "Финал", IsClosing: utils.BoolPtr(true)},
		},
	})
	require.NoError(t, err)
	assert.True(t, queue.Statuses[1].IsClosing,
		"Явный флаг важнее словаря ключевых слов")
}

func TestDeleteQueueNotFound(t *testing.T) {
	env := newTestEnv(t)
	assert.ErrorIs(t, env.queues.DeleteQueue(adminCtx(), "нет-такой"), apperrors.ErrNotFound)
}
