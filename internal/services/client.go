package services

import (
	"context"
	"math"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	"crm-system/internal/repositories"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/utils"

	"go.uber.org/zap"
)

type ClientServiceInterface interface {
	GetClients(ctx context.Context) []*entities.Client
	FindClient(ctx context.Context, id string) (*entities.Client, error)
	CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error)
	UpdateClient(ctx context.Context, id string, payload dto.UpdateClientDTO) (*entities.Client, error)
	DeleteClient(ctx context.Context, id string) error
	GetClientStats(ctx context.Context, id string) (*dto.ClientStatsDTO, error)
}

type ClientService struct {
	db      *repositories.DB
	history *HistoryService
	logger  *zap.Logger
}

func NewClientService(db *repositories.DB, history *HistoryService, logger *zap.Logger) *ClientService {
	return &ClientService{db: db, history: history, logger: logger}
}

func (s *ClientService) GetClients(ctx context.Context) []*entities.Client {
	return s.db.Clients.GetAll()
}

func (s *ClientService) FindClient(ctx context.Context, id string) (*entities.Client, error) {
	client, ok := s.db.Clients.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return client, nil
}

func (s *ClientService) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error) {
	client := &entities.Client{
		ShortName:     payload.ShortName,
		FullName:      payload.FullName,
		BIN:           payload.BIN,
		Tags:          payload.Tags,
		IsGov:         payload.IsGov,
		ActivityID:    payload.ActivityID,
		SourceID:      payload.SourceID,
		OwnerID:       payload.OwnerID,
		LegalAddress:  payload.LegalAddress,
		ActualAddress: payload.ActualAddress,
		Email:         payload.Email,
		Phone:         payload.Phone,
	}

	created, _, err := logAndExecute(ctx, s.history, entities.EntityClient,
		func(c *entities.Client) string { return c.ID },
		entities.ActionCreate, nil,
		func() (*entities.Client, bool, error) {
			c, err := s.db.Clients.Create(client)
			return c, err == nil, err
		})
	if err != nil {
		s.logger.Error("Ошибка при создании клиента", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id string, payload dto.UpdateClientDTO) (*entities.Client, error) {
	old, ok := s.db.Clients.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	updated, ok, err := logAndExecute(ctx, s.history, entities.EntityClient,
		constParent[*entities.Client](id),
		entities.ActionUpdate, old,
		func() (*entities.Client, bool, error) {
			return s.db.Clients.Update(id, func(c *entities.Client) {
				utils.ApplyUpdates(c, &payload)
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

// DeleteClient удаляет клиента вместе с его контактами, договорами,
// базами, задачами и комментариями задач. В журнале остаётся одна
// запись — об удалении самого клиента.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	old, ok := s.db.Clients.GetByID(id)
	if !ok {
		return apperrors.ErrNotFound
	}

	_, ok, err := logAndExecute(ctx, s.history, entities.EntityClient,
		constParent[*entities.Client](id),
		entities.ActionDelete, old,
		func() (*entities.Client, bool, error) {
			removed, err := s.db.Clients.Delete(id)
			return old, removed, err
		})
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}

	s.cascadeDelete(id)
	return nil
}

func (s *ClientService) cascadeDelete(clientID string) {
	for _, contact := range s.db.Contacts.GetAll() {
		if contact.ClientID == clientID {
			_, _ = s.db.Contacts.Delete(contact.ID)
		}
	}
	for _, contract := range s.db.Contracts.GetAll() {
		if contract.ClientID == clientID {
			_, _ = s.db.Contracts.Delete(contract.ID)
		}
	}
	for _, database := range s.db.Databases.GetAll() {
		if database.ClientID == clientID {
			_, _ = s.db.Databases.Delete(database.ID)
		}
	}
	for _, task := range s.db.Tasks.GetAll() {
		if task.ClientID != clientID {
			continue
		}
		for _, comment := range s.db.TaskComments.GetAll() {
			if comment.TaskID == task.ID {
				_, _ = s.db.TaskComments.Delete(comment.ID)
			}
		}
		_, _ = s.db.Tasks.Delete(task.ID)
	}
}

// GetClientStats считает средний рейтинг клиента по закрытым задачам с
// выставленной оценкой. Округление до одного знака; без подходящих
// задач — ноль и нулевой счётчик.
func (s *ClientService) GetClientStats(ctx context.Context, id string) (*dto.ClientStatsDTO, error) {
	if _, ok := s.db.Clients.GetByID(id); !ok {
		return nil, apperrors.ErrNotFound
	}

	queues := make(map[string]*entities.Queue)
	for _, q := range s.db.Queues.GetAll() {
		queues[q.ID] = q
	}

	sum, count := 0, 0
	for _, task := range s.db.Tasks.GetAll() {
		if task.ClientID != id || task.CompletionRating == nil {
			continue
		}
		queue, ok := queues[task.QueueID]
		if !ok {
			continue
		}
		status, ok := queue.FindStatus(task.Status)
		if !ok || !status.IsClosing {
			continue
		}
		sum += *task.CompletionRating
		count++
	}

	if count == 0 {
		return &dto.ClientStatsDTO{AvgRating: 0, TaskCount: 0}, nil
	}
	avg := math.Round(float64(sum)/float64(count)*10) / 10
	return &dto.ClientStatsDTO{AvgRating: avg, TaskCount: count}, nil
}
