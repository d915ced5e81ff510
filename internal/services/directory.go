package services

import (
	"context"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	"crm-system/internal/repositories"
	apperrors "crm-system/pkg/errors"

	"go.uber.org/zap"
)

type DirectoryServiceInterface interface {
	GetAll(ctx context.Context) map[string]any
	AddItem(ctx context.Context, dirType string, payload dto.DirectoryItemDTO) (any, error)
	DeleteItem(ctx context.Context, dirType, id string) error
}

// DirectoryService — общий вход для простых справочников: сферы,
// источники, организации, конфигурации, релизы и шаблоны очередей.
// Справочники не журналируются: они не привязаны к клиенту.
type DirectoryService struct {
	db     *repositories.DB
	logger *zap.Logger
}

func NewDirectoryService(db *repositories.DB, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{db: db, logger: logger}
}

func (s *DirectoryService) GetAll(ctx context.Context) map[string]any {
	return map[string]any{
		dto.DirectorySpheres:        s.db.Spheres.GetAll(),
		dto.DirectorySources:        s.db.Sources.GetAll(),
		dto.DirectoryOrgs:           s.db.Orgs.GetAll(),
		dto.DirectoryConfigs:        s.db.Configs.GetAll(),
		dto.DirectoryVersions:       s.db.Versions.GetAll(),
		dto.DirectoryQueueTemplates: s.db.QueueTemplates.GetAll(),
	}
}

func (s *DirectoryService) AddItem(ctx context.Context, dirType string, payload dto.DirectoryItemDTO) (any, error) {
	switch dirType {
	case dto.DirectorySpheres:
		return s.db.Spheres.Create(&entities.ActivitySphere{Name: payload.Name})
	case dto.DirectorySources:
		return s.db.Sources.Create(&entities.LeadSource{Name: payload.Name})
	case dto.DirectoryOrgs:
		return s.db.Orgs.Create(&entities.Organization{Name: payload.Name})
	case dto.DirectoryConfigs:
		isIndustry := false
		if payload.IsIndustry != nil {
			isIndustry = *payload.IsIndustry
		}
		return s.db.Configs.Create(&entities.Configuration{Name: payload.Name, IsIndustry: isIndustry})
	case dto.DirectoryVersions:
		if payload.ConfigID == nil {
			return nil, apperrors.NewInvalidInputError("для релиза обязателен config_id")
		}
		if _, ok := s.db.Configs.GetByID(*payload.ConfigID); !ok {
			return nil, apperrors.NewInvalidInputError("конфигурация %s не существует", *payload.ConfigID)
		}
		version := &entities.ConfigVersion{ConfigID: *payload.ConfigID, Release: payload.Name}
		if payload.Release != nil {
			version.Release = *payload.Release
		}
		if payload.Date != nil {
			version.Date = *payload.Date
		}
		return s.db.Versions.Create(version)
	case dto.DirectoryQueueTemplates:
		if len(payload.Statuses) == 0 {
			return nil, apperrors.NewInvalidInputError("для шаблона очереди обязателен список статусов")
		}
		return s.db.QueueTemplates.Create(&entities.QueueTemplate{
			Name:     payload.Name,
			Statuses: dto.StatusesToEntities(payload.Statuses),
		})
	default:
		return nil, apperrors.ErrUnknownDirectory
	}
}

func (s *DirectoryService) DeleteItem(ctx context.Context, dirType, id string) error {
	var (
		removed bool
		err     error
	)
	switch dirType {
	case dto.DirectorySpheres:
		removed, err = s.db.Spheres.Delete(id)
	case dto.DirectorySources:
		removed, err = s.db.Sources.Delete(id)
	case dto.DirectoryOrgs:
		removed, err = s.db.Orgs.Delete(id)
	case dto.DirectoryConfigs:
		removed, err = s.db.Configs.Delete(id)
	case dto.DirectoryVersions:
		removed, err = s.db.Versions.Delete(id)
	case dto.DirectoryQueueTemplates:
		removed, err = s.db.QueueTemplates.Delete(id)
	default:
		return apperrors.ErrUnknownDirectory
	}
	if err != nil {
		s.logger.Error("Ошибка при удалении элемента справочника",
			zap.String("type", dirType), zap.Error(err))
		return err
	}
	if !removed {
		return apperrors.ErrNotFound
	}
	return nil
}
