package services

import (
	"context"
	"time"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	"crm-system/internal/repositories"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/utils"

	"go.uber.org/zap"
)

type ContractServiceInterface interface {
	GetContracts(ctx context.Context, clientID string) []dto.ContractResponseDTO
	FindContract(ctx context.Context, id string) (*dto.ContractResponseDTO, error)
	CreateContract(ctx context.Context, payload dto.CreateContractDTO) (*entities.Contract, error)
	UpdateContract(ctx context.Context, id string, payload dto.UpdateContractDTO) (*entities.Contract, error)
	DeleteContract(ctx context.Context, id string) error
}

type ContractService struct {
	db      *repositories.DB
	history *HistoryService
	logger  *zap.Logger
}

func NewContractService(db *repositories.DB, history *HistoryService, logger *zap.Logger) *ContractService {
	return &ContractService{db: db, history: history, logger: logger}
}

func (s *ContractService) toResponse(c *entities.Contract) dto.ContractResponseDTO {
	return dto.ContractResponseDTO{Contract: c, IsActiveNow: c.IsActive(time.Now())}
}

func (s *ContractService) GetContracts(ctx context.Context, clientID string) []dto.ContractResponseDTO {
	all := s.db.Contracts.GetAll()
	out := make([]dto.ContractResponseDTO, 0, len(all))
	for _, c := range all {
		if clientID != "" && c.ClientID != clientID {
			continue
		}
		out = append(out, s.toResponse(c))
	}
	return out
}

func (s *ContractService) FindContract(ctx context.Context, id string) (*dto.ContractResponseDTO, error) {
	contract, ok := s.db.Contracts.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	res := s.toResponse(contract)
	return &res, nil
}

func (s *ContractService) CreateContract(ctx context.Context, payload dto.CreateContractDTO) (*entities.Contract, error) {
	if _, ok := s.db.Clients.GetByID(payload.ClientID); !ok {
		return nil, apperrors.NewInvalidInputError("клиент %s не существует", payload.ClientID)
	}
	if _, ok := s.db.Orgs.GetByID(payload.OrganizationID); !ok {
		return nil, apperrors.NewInvalidInputError("организация %s не существует", payload.OrganizationID)
	}

	contract := &entities.Contract{
		ClientID:          payload.ClientID,
		OrganizationID:    payload.OrganizationID,
		ContractNumber:    payload.ContractNumber,
		Title:             payload.Title,
		StartDate:         payload.StartDate,
		EndDate:           payload.EndDate,
		Comment:           payload.Comment,
		IsSigned:          payload.IsSigned,
		ItsActive:         payload.ItsActive,
		ItsExpirationDate: payload.ItsExpirationDate,
		ItsLogin:          payload.ItsLogin,
		ItsPassword:       payload.ItsPassword,
		MinutesIncluded:   payload.MinutesIncluded,
	}

	created, _, err := logAndExecute(ctx, s.history, entities.EntityContract,
		constParent[*entities.Contract](payload.ClientID),
		entities.ActionCreate, nil,
		func() (*entities.Contract, bool, error) {
			c, err := s.db.Contracts.Create(contract)
			return c, err == nil, err
		})
	if err != nil {
		s.logger.Error("Ошибка при создании договора", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *ContractService) UpdateContract(ctx context.Context, id string, payload dto.UpdateContractDTO) (*entities.Contract, error) {
	old, ok := s.db.Contracts.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	updated, ok, err := logAndExecute(ctx, s.history, entities.EntityContract,
		constParent[*entities.Contract](old.ClientID),
		entities.ActionUpdate, old,
		func() (*entities.Contract, bool, error) {
			return s.db.Contracts.Update(id, func(c *entities.Contract) {
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

func (s *ContractService) DeleteContract(ctx context.Context, id string) error {
	old, ok := s.db.Contracts.GetByID(id)
	if !ok {
		return apperrors.ErrNotFound
	}

	_, ok, err := logAndExecute(ctx, s.history, entities.EntityContract,
		constParent[*entities.Contract](old.ClientID),
		entities.ActionDelete, old,
		func() (*entities.Contract, bool, error) {
			removed, err := s.db.Contracts.Delete(id)
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
