package services

import (
	"context"
	"time"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	"crm-system/internal/repositories"
	"crm-system/pkg/contextkeys"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskServiceInterface interface {
	GetTasks(ctx context.Context, clientID, queueID string) []dto.TaskResponseDTO
	FindTask(ctx context.Context, id string) (*dto.TaskResponseDTO, error)
	CreateTask(ctx context.Context, payload dto.CreateTaskDTO) (*entities.Task, error)
	UpdateTask(ctx context.Context, id string, payload dto.UpdateTaskDTO) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id string, payload dto.ChangeTaskStatusDTO) (*entities.Task, error)
	CompleteTask(ctx context.Context, id string, payload dto.CompleteTaskDTO) (*entities.Task, error)
	ToggleChecklistItem(ctx context.Context, taskID, itemID string) (*entities.Task, error)
	AddChecklistItem(ctx context.Context, taskID, text string) (*entities.Task, error)
	AddTimeLog(ctx context.Context, taskID string, payload dto.AddTimeLogDTO) (*entities.Task, error)
	GetComments(ctx context.Context, taskID string) ([]*entities.TaskComment, error)
	AddComment(ctx context.Context, taskID string, payload dto.AddCommentDTO) (*entities.TaskComment, error)
}

// TaskService — рабочий процесс задач: нумерация, переходы по статусам
// очереди, закрытие с оценками, чек-листы, трудозатраты и комментарии.
type TaskService struct {
	db      *repositories.DB
	history *HistoryService
	logger  *zap.Logger
}

func NewTaskService(db *repositories.DB, history *HistoryService, logger *zap.Logger) *TaskService {
	return &TaskService{db: db, history: history, logger: logger}
}

func (s *TaskService) toResponse(task *entities.Task) dto.TaskResponseDTO {
	res := dto.TaskResponseDTO{
		Task:      task,
		SpentTime: utils.FormatMinutes(task.TotalMinutes()),
	}
	if queue, ok := s.db.Queues.GetByID(task.QueueID); ok {
		res.Code = queue.TaskCode(task.QueueTaskNo)
	}
	return res
}

func (s *TaskService) GetTasks(ctx context.Context, clientID, queueID string) []dto.TaskResponseDTO {
	all := s.db.Tasks.GetAll()
	out := make([]dto.TaskResponseDTO, 0, len(all))
	for _, t := range all {
		if clientID != "" && t.ClientID != clientID {
			continue
		}
		if queueID != "" && t.QueueID != queueID {
			continue
		}
		out = append(out, s.toResponse(t))
	}
	return out
}

func (s *TaskService) FindTask(ctx context.Context, id string) (*dto.TaskResponseDTO, error) {
	task, ok := s.db.Tasks.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	res := s.toResponse(task)
	return &res, nil
}

// CreateTask назначает сквозной и внутриочередной номера. Оба считаются
// из текущего состояния коллекции внутри её блокировки записи, поэтому
// два конкурентных создания не получат одинаковый номер.
func (s *TaskService) CreateTask(ctx context.Context, payload dto.CreateTaskDTO) (*entities.Task, error) {
	queue, ok := s.db.Queues.GetByID(payload.QueueID)
	if !ok {
		return nil, apperrors.NewInvalidInputError("очередь %s не существует", payload.QueueID)
	}
	if _, ok := s.db.Clients.GetByID(payload.ClientID); !ok {
		return nil, apperrors.NewInvalidInputError("клиент %s не существует", payload.ClientID)
	}
	if payload.ContactID != nil {
		if _, ok := s.db.Contacts.GetByID(*payload.ContactID); !ok {
			return nil, apperrors.NewInvalidInputError("контакт %s не существует", *payload.ContactID)
		}
	}
	if payload.DbID != nil {
		if _, ok := s.db.Databases.GetByID(*payload.DbID); !ok {
			return nil, apperrors.NewInvalidInputError("база %s не существует", *payload.DbID)
		}
	}

	authorID, _ := ctx.Value(contextkeys.UserIDKey).(string)

	checklist := make([]entities.ChecklistItem, 0, len(payload.Checklist))
	for _, item := range payload.Checklist {
		checklist = append(checklist, entities.ChecklistItem{
			ID:     uuid.NewString(),
			Text:   item.Text,
			IsDone: item.IsDone,
		})
	}
	attachments := make([]entities.TaskAttachment, 0, len(payload.Attachments))
	for _, a := range payload.Attachments {
		attachments = append(attachments, entities.TaskAttachment{Name: a.Name, URL: a.URL, Type: a.Type})
	}

	created, _, err := logAndExecute(ctx, s.history, entities.EntityTask,
		func(t *entities.Task) string { return t.ClientID },
		entities.ActionCreate, nil,
		func() (*entities.Task, bool, error) {
			task, err := s.db.Tasks.CreateWith(func(existing []*entities.Task) *entities.Task {
				maxNo, maxQueueNo := 0, 0
				for _, t := range existing {
					if t.TaskNo > maxNo {
						maxNo = t.TaskNo
					}
					if t.QueueID == payload.QueueID && t.QueueTaskNo > maxQueueNo {
						maxQueueNo = t.QueueTaskNo
					}
				}
				return &entities.Task{
					QueueID:      payload.QueueID,
					QueueTaskNo:  maxQueueNo + 1,
					TaskNo:       maxNo + 1,
					ClientID:     payload.ClientID,
					ContactID:    payload.ContactID,
					DbID:         payload.DbID,
					Type:         entities.TaskType(payload.Type),
					Priority:     entities.Priority(payload.Priority),
					Status:       queue.FirstStatus(),
					Title:        payload.Title,
					Description:  payload.Description,
					AuthorID:     authorID,
					PerformerIDs: payload.PerformerIDs,
					ObserverIDs:  payload.ObserverIDs,
					Tags:         payload.Tags,
					Deadline:     payload.Deadline,
					CreatedAt:    time.Now(),
					Checklist:    checklist,
					Attachments:  attachments,
					TimeLogs:     []entities.TimeLog{},
				}
			})
			return task, err == nil, err
		})
	if err != nil {
		s.logger.Error("Ошибка при создании задачи", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, payload dto.UpdateTaskDTO) (*entities.Task, error) {
	old, ok := s.db.Tasks.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	updated, ok, err := logAndExecute(ctx, s.history, entities.EntityTask,
		constParent[*entities.Task](old.ClientID),
		entities.ActionUpdate, old,
		func() (*entities.Task, bool, error) {
			return s.db.Tasks.Update(id, func(t *entities.Task) {
				utils.ApplyUpdates(t, &payload)
			})
		})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	old, ok := s.db.Tasks.GetByID(id)
	if !ok {
		return apperrors.ErrNotFound
	}

	_, ok, err := logAndExecute(ctx, s.history, entities.EntityTask,
		constParent[*entities.Task](old.ClientID),
		entities.ActionDelete, old,
		func() (*entities.Task, bool, error) {
			removed, err := s.db.Tasks.Delete(id)
			return old, removed, err
		})
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}

	for _, comment := range s.db.TaskComments.GetAll() {
		if comment.TaskID == id {
			_, _ = s.db.TaskComments.Delete(comment.ID)
		}
	}
	return nil
}

// ChangeStatus переводит задачу в другой статус её очереди. Любой статус
// очереди — допустимая цель, в том числе движение назад. Переход в
// закрывающий статус не применяется без оценок: статус в хранилище не
// меняется, пока не предоставлена оценка клиента (и оценка контакта,
// если контакт у задачи есть); тогда статус и оценки фиксируются одним
// обновлением.
func (s *TaskService) ChangeStatus(ctx context.Context, id string, payload dto.ChangeTaskStatusDTO) (*entities.Task, error) {
	old, ok := s.db.Tasks.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	queue, ok := s.db.Queues.GetByID(old.QueueID)
	if !ok {
		return nil, apperrors.NewInvalidInputError("очередь %s не существует", old.QueueID)
	}
	status, ok := queue.FindStatus(payload.Status)
	if !ok {
		return nil, apperrors.ErrStatusNotInQueue
	}

	if status.IsClosing {
		return s.commitClose(ctx, old, status.Name, payload.CompletionRating, payload.ContactRating)
	}

	if payload.CompletionRating != nil || payload.ContactRating != nil {
		return nil, apperrors.ErrRatingNotAllowed
	}

	updated, ok, err := logAndExecute(ctx, s.history, entities.EntityTask,
		constParent[*entities.Task](old.ClientID),
		entities.ActionUpdate, old,
		func() (*entities.Task, bool, error) {
			return s.db.Tasks.Update(id, func(t *entities.Task) {
				t.Status = status.Name
			})
		})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return updated, nil
}

// CompleteTask закрывает задачу. Целевой статус выбирает очередь: первый
// завершающий, а если такого нет — последний в списке.
func (s *TaskService) CompleteTask(ctx context.Context, id string, payload dto.CompleteTaskDTO) (*entities.Task, error) {
	old, ok := s.db.Tasks.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	queue, ok := s.db.Queues.GetByID(old.QueueID)
	if !ok {
		return nil, apperrors.NewInvalidInputError("очередь %s не существует", old.QueueID)
	}
	closing, ok := queue.ClosingStatus()
	if !ok {
		return nil, apperrors.NewInvalidInputError("в очереди %s нет статусов", queue.Name)
	}

	rating := payload.CompletionRating
	return s.commitClose(ctx, old, closing.Name, &rating, payload.ContactRating)
}

func (s *TaskService) commitClose(ctx context.Context, old *entities.Task, statusName string, completionRating, contactRating *int) (*entities.Task, error) {
	if completionRating == nil {
		return nil, apperrors.ErrRatingRequired
	}
	if old.ContactID != nil && contactRating == nil {
		return nil, apperrors.ErrRatingRequired
	}

	updated, ok, err := logAndExecute(ctx, s.history, entities.EntityTask,
		constParent[*entities.Task](old.ClientID),
		entities.ActionComplete, old,
		func() (*entities.Task, bool, error) {
			return s.db.Tasks.Update(old.ID, func(t *entities.Task) {
				t.Status = statusName
				t.CompletionRating = completionRating
				if t.ContactID != nil {
					t.ContactRating = contactRating
				}
			})
		})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return updated, nil
}

// ToggleChecklistItem переключает один пункт чек-листа. Чек-лист
// сохраняется целиком — отдельного хранения пунктов нет.
func (s *TaskService) ToggleChecklistItem(ctx context.Context, taskID, itemID string) (*entities.Task, error) {
	old, ok := s.db.Tasks.GetByID(taskID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	found := false
	for _, item := range old.Checklist {
		if item.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.ErrNotFound
	}

	updated, ok, err := logAndExecute(ctx, s.history, entities.EntityTask,
		constParent[*entities.Task](old.ClientID),
		entities.ActionUpdate, old,
		func() (*entities.Task, bool, error) {
			return s.db.Tasks.Update(taskID, func(t *entities.Task) {
				for i := range t.Checklist {
					if t.Checklist[i].ID == itemID {
						t.Checklist[i].IsDone = !t.Checklist[i].IsDone
					}
				}
			})
		})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return updated, nil
}

func (s *TaskService) AddChecklistItem(ctx context.Context, taskID, text string) (*entities.Task, error) {
	old, ok := s.db.Tasks.GetByID(taskID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	updated, ok, err := logAndExecute(ctx, s.history, entities.EntityTask,
		constParent[*entities.Task](old.ClientID),
		entities.ActionUpdate, old,
		func() (*entities.Task, bool, error) {
			return s.db.Tasks.Update(taskID, func(t *entities.Task) {
				t.Checklist = append(t.Checklist, entities.ChecklistItem{
					ID:   uuid.NewString(),
					Text: text,
				})
			})
		})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return updated, nil
}

// AddTimeLog добавляет запись трудозатрат. Записи не редактируются и не
// удаляются.
func (s *TaskService) AddTimeLog(ctx context.Context, taskID string, payload dto.AddTimeLogDTO) (*entities.Task, error) {
	old, ok := s.db.Tasks.GetByID(taskID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	userID, _ := ctx.Value(contextkeys.UserIDKey).(string)
	userName := s.history.ActorName(ctx)

	updated, ok, err := logAndExecute(ctx, s.history, entities.EntityTask,
		constParent[*entities.Task](old.ClientID),
		entities.ActionUpdate, old,
		func() (*entities.Task, bool, error) {
			return s.db.Tasks.Update(taskID, func(t *entities.Task) {
				t.TimeLogs = append(t.TimeLogs, entities.TimeLog{
					ID:       uuid.NewString(),
					Date:     payload.Date,
					Minutes:  payload.Minutes,
					Comment:  payload.Comment,
					UserID:   userID,
					UserName: userName,
				})
			})
		})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return updated, nil
}

func (s *TaskService) GetComments(ctx context.Context, taskID string) ([]*entities.TaskComment, error) {
	if _, ok := s.db.Tasks.GetByID(taskID); !ok {
		return nil, apperrors.ErrNotFound
	}
	all := s.db.TaskComments.GetAll()
	out := make([]*entities.TaskComment, 0, len(all))
	for _, c := range all {
		if c.TaskID == taskID {
			out = append(out, c)
		}
	}
	return out, nil
}

// AddComment добавляет комментарий к задаче и отмечает это в журнале
// действием comment.
func (s *TaskService) AddComment(ctx context.Context, taskID string, payload dto.AddCommentDTO) (*entities.TaskComment, error) {
	task, ok := s.db.Tasks.GetByID(taskID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	userID, _ := ctx.Value(contextkeys.UserIDKey).(string)
	comment := &entities.TaskComment{
		TaskID:    taskID,
		UserID:    userID,
		UserName:  s.history.ActorName(ctx),
		Text:      payload.Text,
		Timestamp: time.Now(),
	}

	created, err := s.db.TaskComments.Create(comment)
	if err != nil {
		s.logger.Error("Ошибка при добавлении комментария", zap.Error(err))
		return nil, err
	}

	s.history.Append(ctx, entities.EntityTask, taskID, task.ClientID, entities.ActionComment, "Добавлен комментарий")
	return created, nil
}
