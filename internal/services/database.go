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

type DatabaseServiceInterface interface {
	GetDatabases(ctx context.Context, clientID string) []*entities.Database1C
	FindDatabase(ctx context.Context, id string) (*entities.Database1C, error)
	CreateDatabase(ctx context.Context, payload dto.CreateDatabaseDTO) (*entities.Database1C, error)
	UpdateDatabase(ctx context.Context, id string, payload dto.UpdateDatabaseDTO) (*entities.Database1C, error)
	DeleteDatabase(ctx context.Context, id string) error
}

type DatabaseService struct {
	db      *repositories.DB
	history *HistoryService
	logger  *zap.Logger
}

func NewDatabaseService(db *repositories.DB, history *HistoryService, logger *zap.Logger) *DatabaseService {
	return &DatabaseService{db: db, history: history, logger: logger}
}

func (s *DatabaseService) GetDatabases(ctx context.Context, clientID string) []*entities.Database1C {
	all := s.db.Databases.GetAll()
	if clientID == "" {
		return all
	}
	out := make([]*entities.Database1C, 0, len(all))
	for _, d := range all {
		if d.ClientID == clientID {
			out = append(out, d)
		}
	}
	return out
}

func (s *DatabaseService) FindDatabase(ctx context.Context, id string) (*entities.Database1C, error) {
	database, ok := s.db.Databases.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return database, nil
}

func (s *DatabaseService) CreateDatabase(ctx context.Context, payload dto.CreateDatabaseDTO) (*entities.Database1C, error) {
	if _, ok := s.db.Clients.GetByID(payload.ClientID); !ok {
		return nil, apperrors.NewInvalidInputError("клиент %s не существует", payload.ClientID)
	}
	if _, ok := s.db.Configs.GetByID(payload.ConfigID); !ok {
		return nil, apperrors.NewInvalidInputError("конфигурация %s не существует", payload.ConfigID)
	}

	database := &entities.Database1C{
		ClientID:     payload.ClientID,
		Name:         payload.Name,
		RegNumber:    payload.RegNumber,
		ConfigID:     payload.ConfigID,
		VersionID:    payload.VersionID,
		DbAdmin:      payload.DbAdmin,
		DbPassword:   payload.DbPassword,
		ItsSupported: payload.ItsSupported,
		WorkMode:     entities.WorkMode(payload.WorkMode),
		State:        entities.DbState(payload.State),
	}

	created, _, err := logAndExecute(ctx, s.history, entities.EntityDatabase,
		constParent[*entities.Database1C](payload.ClientID),
		entities.ActionCreate, nil,
		func() (*entities.Database1C, bool, error) {
			d, err := s.db.Databases.Create(database)
			return d, err == nil, err
		})
	if err != nil {
		s.logger.Error("Ошибка при создании базы 1С", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *DatabaseService) UpdateDatabase(ctx context.Context, id string, payload dto.UpdateDatabaseDTO) (*entities.Database1C, error) {
	old, ok := s.db.Databases.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	updated, ok, err := logAndExecute(ctx, s.history, entities.EntityDatabase,
		constParent[*entities.Database1C](old.ClientID),
		entities.ActionUpdate, old,
		func() (*entities.Database1C, bool, error) {
			return s.db.Databases.Update(id, func(d *entities.Database1C) {
				utils.ApplyUpdates(d, &payload)
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

func (s *DatabaseService) DeleteDatabase(ctx context.Context, id string) error {
	old, ok := s.db.Databases.GetByID(id)
	if !ok {
		return apperrors.ErrNotFound
	}

	_, ok, err := logAndExecute(ctx, s.history, entities.EntityDatabase,
		constParent[*entities.Database1C](old.ClientID),
		entities.ActionDelete, old,
		func() (*entities.Database1C, bool, error) {
			removed, err := s.db.Databases.Delete(id)
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
