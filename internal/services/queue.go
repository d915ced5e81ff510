package services

import (
	"context"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	"crm-system/internal/repositories"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/utils"

	"go.uber.org/zap"
)

type QueueServiceInterface interface {
	GetQueues(ctx context.Context) []*entities.Queue
	FindQueue(ctx context.Context, id string) (*entities.Queue, error)
	CreateQueue(ctx context.Context, payload dto.CreateQueueDTO) (*entities.Queue, error)
	UpdateQueue(ctx context.Context, id string, payload dto.UpdateQueueDTO) (*entities.Queue, error)
	DeleteQueue(ctx context.Context, id string) error

	GetQueueTemplates(ctx context.Context) []*entities.QueueTemplate
	CreateQueueTemplate(ctx context.Context, payload dto.CreateQueueTemplateDTO) (*entities.QueueTemplate, error)
	UpdateQueueTemplate(ctx context.Context, id string, payload dto.UpdateQueueTemplateDTO) (*entities.QueueTemplate, error)
	DeleteQueueTemplate(ctx context.Context, id string) error
}

type QueueService struct {
	db      *repositories.DB
	history *HistoryService
	logger  *zap.Logger
}

func NewQueueService(db *repositories.DB, history *HistoryService, logger *zap.Logger) *QueueService {
	return &QueueService{db: db, history: history, logger: logger}
}

func (s *QueueService) GetQueues(ctx context.Context) []*entities.Queue {
	return s.db.Queues.GetAll()
}

func (s *QueueService) FindQueue(ctx context.Context, id string) (*entities.Queue, error) {
	queue, ok := s.db.Queues.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return queue, nil
}

// CreateQueue создаёт очередь либо из шаблона, либо из явного списка
// статусов. Статусы, взятые из шаблона, копируются: дальнейшая жизнь
// очереди от шаблона не зависит.
func (s *QueueService) CreateQueue(ctx context.Context, payload dto.CreateQueueDTO) (*entities.Queue, error) {
	queue := &entities.Queue{
		Name:   payload.Name,
		Prefix: payload.Prefix,
	}

	switch {
	case len(payload.Statuses) > 0:
		queue.Statuses = dto.StatusesToEntities(payload.Statuses)
		if payload.TemplateID != nil {
			queue.TemplateID = *payload.TemplateID
		}
	case payload.TemplateID != nil:
		template, ok := s.db.QueueTemplates.GetByID(*payload.TemplateID)
		if !ok {
			return nil, apperrors.NewInvalidInputError("шаблон очереди %s не существует", *payload.TemplateID)
		}
		queue.TemplateID = template.ID
		queue.Statuses = append([]entities.QueueStatus(nil), template.Statuses...)
	default:
		return nil, apperrors.NewInvalidInputError("нужен шаблон или список статусов")
	}

	created, _, err := logAndExecute(ctx, s.history, entities.EntityQueue,
		constParent[*entities.Queue](""),
		entities.ActionCreate, nil,
		func() (*entities.Queue, bool, error) {
			q, err := s.db.Queues.Create(queue)
			return q, err == nil, err
		})
	if err != nil {
		s.logger.Error("Ошибка при создании очереди", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *QueueService) UpdateQueue(ctx context.Context, id string, payload dto.UpdateQueueDTO) (*entities.Queue, error) {
	old, ok := s.db.Queues.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	updated, ok, err := logAndExecute(ctx, s.history, entities.EntityQueue,
		constParent[*entities.Queue](""),
		entities.ActionUpdate, old,
		func() (*entities.Queue, bool, error) {
			return s.db.Queues.Update(id, func(q *entities.Queue) {
				utils.ApplyUpdates(q, &payload)
				if len(payload.Statuses) > 0 {
					q.Statuses = dto.StatusesToEntities(payload.Statuses)
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

func (s *QueueService) DeleteQueue(ctx context.Context, id string) error {
	old, ok := s.db.Queues.GetByID(id)
	if !ok {
		return apperrors.ErrNotFound
	}

	_, ok, err := logAndExecute(ctx, s.history, entities.EntityQueue,
		constParent[*entities.Queue](""),
		entities.ActionDelete, old,
		func() (*entities.Queue, bool, error) {
			removed, err := s.db.Queues.Delete(id)
			return old, removed, err
		})
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *QueueService) GetQueueTemplates(ctx context.Context) []*entities.QueueTemplate {
	return s.db.QueueTemplates.GetAll()
}

func (s *QueueService) CreateQueueTemplate(ctx context.Context, payload dto.CreateQueueTemplateDTO) (*entities.QueueTemplate, error) {
	template := &entities.QueueTemplate{
		Name:     payload.Name,
		Statuses: dto.StatusesToEntities(payload.Statuses),
	}

	created, _, err := logAndExecute(ctx, s.history, entities.EntityQueueTemplate,
		constParent[*entities.QueueTemplate](""),
		entities.ActionCreate, nil,
		func() (*entities.QueueTemplate, bool, error) {
			t, err := s.db.QueueTemplates.Create(template)
			return t, err == nil, err
		})
	if err != nil {
		s.logger.Error("Ошибка при создании шаблона очереди", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *QueueService) UpdateQueueTemplate(ctx context.Context, id string, payload dto.UpdateQueueTemplateDTO) (*entities.QueueTemplate, error) {
	old, ok := s.db.QueueTemplates.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	updated, ok, err := logAndExecute(ctx, s.history, entities.EntityQueueTemplate,
		constParent[*entities.QueueTemplate](""),
		entities.ActionUpdate, old,
		func() (*entities.QueueTemplate, bool, error) {
			return s.db.QueueTemplates.Update(id, func(t *entities.QueueTemplate) {
				utils.ApplyUpdates(t, &payload)
				if len(payload.Statuses) > 0 {
					t.Statuses = dto.StatusesToEntities(payload.Statuses)
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

func (s *QueueService) DeleteQueueTemplate(ctx context.Context, id string) error {
	old, ok := s.db.QueueTemplates.GetByID(id)
	if !ok {
		return apperrors.ErrNotFound
	}

	_, ok, err := logAndExecute(ctx, s.history, entities.EntityQueueTemplate,
		constParent[*entities.QueueTemplate](""),
		entities.ActionDelete, old,
		func() (*entities.QueueTemplate, bool, error) {
			removed, err := s.db.QueueTemplates.Delete(id)
			return old, removed, err
		})
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}
	return nil
}
