package services

import (
	"testing"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTask(t *testing.T, env *testEnv, payload dto.CreateTaskDTO) *entities.Task {
	t.Helper()
	task, err := env.tasks.CreateTask(adminCtx(), payload)
	require.NoError(t, err, "Не удалось создать задачу")
	return task
}

func baseTaskPayload() dto.CreateTaskDTO {
	return dto.CreateTaskDTO{
		QueueID:  "q1",
		ClientID: "cl1",
		Type:     "request",
		Priority: "medium",
		Title:    "Обновить план счетов",
	}
}

func TestCreateTaskNumbering(t *testing.T) {
	env := newTestEnv(t)

	// В начальных данных уже есть t1 с номерами 1/1.
	second := createTask(t, env, baseTaskPayload())
	assert.Equal(t, 2, second.TaskNo)
	assert.Equal(t, 2, second.QueueTaskNo)

	third := createTask(t, env, baseTaskPayload())
	assert.Equal(t, 3, third.TaskNo)
	assert.Equal(t, 3, third.QueueTaskNo)

	// Во второй очереди своя нумерация, а сквозная продолжается.
	devQueue, err := env.queues.CreateQueue(adminCtx(), dto.CreateQueueDTO{
		Name:     "Разработка",
		Prefix:   "DEV",
		Statuses: []dto.QueueStatusDTO{{Name: "Новая"}, {Name: "Закрыта"}},
	})
	require.NoError(t, err)

	payload := baseTaskPayload()
	payload.QueueID = devQueue.ID
	devTask := createTask(t, env, payload)
	assert.Equal(t, 4, devTask.TaskNo, "Сквозной номер растёт по всем очередям")
	assert.Equal(t, 1, devTask.QueueTaskNo, "Номер внутри новой очереди начинается с 1")
}

func TestCreateTaskDefaultStatus(t *testing.T) {
	env := newTestEnv(t)
	task := createTask(t, env, baseTaskPayload())
	assert.Equal(t, "Новая", task.Status, "Новая задача получает первый статус очереди")
}

func TestCreateTaskUnknownQueue(t *testing.T) {
	env := newTestEnv(t)
	payload := baseTaskPayload()
	payload.QueueID = "нет-такой"
	_, err := env.tasks.CreateTask(adminCtx(), payload)
	require.Error(t, err)
}

func TestChangeStatusUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.tasks.ChangeStatus(adminCtx(), "t1", dto.ChangeTaskStatusDTO{Status: "Отменена"})
	assert.ErrorIs(t, err, apperrors.ErrStatusNotInQueue)
}

func TestChangeStatusNonClosing(t *testing.T) {
	env := newTestEnv(t)
	task, err := env.tasks.ChangeStatus(adminCtx(), "t1", dto.ChangeTaskStatusDTO{Status: "В работе"})
	require.NoError(t, err)
	assert.Equal(t, "В работе", task.Status)
	assert.Nil(t, task.CompletionRating)
}

func TestChangeStatusNonClosingRejectsRating(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.tasks.ChangeStatus(adminCtx(), "t1", dto.ChangeTaskStatusDTO{
		Status:           "В работе",
		CompletionRating: utils.IntPtr(5),
	})
	assert.ErrorIs(t, err, apperrors.ErrRatingNotAllowed)

	task, ok := env.db.Tasks.GetByID("t1")
	require.True(t, ok)
	assert.Equal(t, "Новая", task.Status, "Отклонённый переход не меняет статус")
}

func TestChangeStatusClosingRequiresRatings(t *testing.T) {
	env := newTestEnv(t)

	// У t1 есть контакт, значит нужны обе оценки.
	_, err := env.tasks.ChangeStatus(adminCtx(), "t1", dto.ChangeTaskStatusDTO{Status: "Закрыта"})
	assert.ErrorIs(t, err, apperrors.ErrRatingRequired)

	_, err = env.tasks.ChangeStatus(adminCtx(), "t1", dto.ChangeTaskStatusDTO{
		Status:           "Закрыта",
		CompletionRating: utils.IntPtr(5),
	})
	assert.ErrorIs(t, err, apperrors.ErrRatingRequired, "Без оценки контакта закрытие не проходит")

	task, ok := env.db.Tasks.GetByID("t1")
	require.True(t, ok)
	assert.Equal(t, "Новая", task.Status, "До полного набора оценок статус не меняется")

	closed, err := env.tasks.ChangeStatus(adminCtx(), "t1", dto.ChangeTaskStatusDTO{
		Status:           "Закрыта",
		CompletionRating: utils.IntPtr(5),
		ContactRating:    utils.IntPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "Закрыта", closed.Status)
	require.NotNil(t, closed.CompletionRating)
	assert.Equal(t, 5, *closed.CompletionRating)
	require.NotNil(t, closed.ContactRating)
	assert.Equal(t, 4, *closed.ContactRating)
}

func TestChangeStatusClosingWithoutContact(t *testing.T) {
	env := newTestEnv(t)
	task := createTask(t, env, baseTaskPayload())

	closed, err := env.tasks.ChangeStatus(adminCtx(), task.ID, dto.ChangeTaskStatusDTO{
		Status:           "Закрыта",
		CompletionRating: utils.IntPtr(3),
	})
	require.NoError(t, err, "Без контакта достаточно оценки клиента")
	assert.Equal(t, "Закрыта", closed.Status)
	assert.Nil(t, closed.ContactRating)
}

func TestCompleteTaskFallbackStatus(t *testing.T) {
	env := newTestEnv(t)

	queue, err := env.queues.CreateQueue(adminCtx(), dto.CreateQueueDTO{
		Name:     "Без финала",
		Prefix:   "NF",
		Statuses: []dto.QueueStatusDTO{{Name: "Новая"}, {Name: "В работе"}},
	})
	require.NoError(t, err)

	payload := baseTaskPayload()
	payload.QueueID = queue.ID
	task := createTask(t, env, payload)

	closed, err := env.tasks.CompleteTask(adminCtx(), task.ID, dto.CompleteTaskDTO{CompletionRating: 4})
	require.NoError(t, err)
	assert.Equal(t, "В работе", closed.Status, "Без завершающего статуса закрытие ведёт в последний статус очереди")
}

func TestToggleChecklistItem(t *testing.T) {
	env := newTestEnv(t)

	task, err := env.tasks.ToggleChecklistItem(adminCtx(), "t1", "i2")
	require.NoError(t, err)
	assert.True(t, task.Checklist[1].IsDone)

	task, err = env.tasks.ToggleChecklistItem(adminCtx(), "t1", "i2")
	require.NoError(t, err)
	assert.False(t, task.Checklist[1].IsDone)

	_, err = env.tasks.ToggleChecklistItem(adminCtx(), "t1", "нет-такого")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAddTimeLogAccumulates(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tasks.AddTimeLog(adminCtx(), "t1", dto.AddTimeLogDTO{Date: "2026-08-30", Minutes: 90, Comment: "Консультация"})
	require.NoError(t, err)
	task, err := env.tasks.AddTimeLog(adminCtx(), "t1", dto.AddTimeLogDTO{Date: "2026-08-30", Minutes: 45})
	require.NoError(t, err)

	assert.Equal(t, 135, task.TotalMinutes())
	assert.Equal(t, "Administrator", task.TimeLogs[0].UserName, "Запись атрибутируется пользователю из контекста")

	res, err := env.tasks.FindTask(adminCtx(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "2h 15m", res.SpentTime)
	assert.Equal(t, "SUP-1", res.Code)
}

func TestAddCommentWritesHistory(t *testing.T) {
	env := newTestEnv(t)

	comment, err := env.tasks.AddComment(adminCtx(), "t1", dto.AddCommentDTO{Text: "Позвонил клиенту"})
	require.NoError(t, err)
	assert.Equal(t, "Administrator", comment.UserName)

	logs := env.history.GetHistoryByClient(adminCtx(), "cl1")
	require.NotEmpty(t, logs)
	assert.Equal(t, entities.ActionComment, logs[0].Action)
}
