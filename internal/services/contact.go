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

type ContactServiceInterface interface {
	GetContacts(ctx context.Context, clientID string) []*entities.Contact
	FindContact(ctx context.Context, id string) (*entities.Contact, error)
	CreateContact(ctx context.Context, payload dto.CreateContactDTO) (*entities.Contact, error)
	UpdateContact(ctx context.Context, id string, payload dto.UpdateContactDTO) (*entities.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

type ContactService struct {
	db      *repositories.DB
	history *HistoryService
	logger  *zap.Logger
}

func NewContactService(db *repositories.DB, history *HistoryService, logger *zap.Logger) *ContactService {
	return &ContactService{db: db, history: history, logger: logger}
}

// GetContacts возвращает контакты клиента, либо все при пустом clientID.
func (s *ContactService) GetContacts(ctx context.Context, clientID string) []*entities.Contact {
	all := s.db.Contacts.GetAll()
	if clientID == "" {
		return all
	}
	out := make([]*entities.Contact, 0, len(all))
	for _, c := range all {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out
}

func (s *ContactService) FindContact(ctx context.Context, id string) (*entities.Contact, error) {
	contact, ok := s.db.Contacts.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return contact, nil
}

func (s *ContactService) CreateContact(ctx context.Context, payload dto.CreateContactDTO) (*entities.Contact, error) {
	if _, ok := s.db.Clients.GetByID(payload.ClientID); !ok {
		return nil, apperrors.NewInvalidInputError("клиент %s не существует", payload.ClientID)
	}

	contact := &entities.Contact{
		ClientID:         payload.ClientID,
		FirstName:        payload.FirstName,
		LastName:         payload.LastName,
		Position:         payload.Position,
		Phone:            payload.Phone,
		Email:            payload.Email,
		Rating:           payload.Rating,
		TelegramID:       payload.TelegramID,
		RustdeskID:       payload.RustdeskID,
		RustdeskPassword: payload.RustdeskPassword,
		AnydeskID:        payload.AnydeskID,
		AnydeskPassword:  payload.AnydeskPassword,
	}

	created, _, err := logAndExecute(ctx, s.history, entities.EntityContact,
		constParent[*entities.Contact](payload.ClientID),
		entities.ActionCreate, nil,
		func() (*entities.Contact, bool, error) {
			c, err := s.db.Contacts.Create(contact)
			return c, err == nil, err
		})
	if err != nil {
		s.logger.Error("Ошибка при создании контакта", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *ContactService) UpdateContact(ctx context.Context, id string, payload dto.UpdateContactDTO) (*entities.Contact, error) {
	old, ok := s.db.Contacts.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	updated, ok, err := logAndExecute(ctx, s.history, entities.EntityContact,
		constParent[*entities.Contact](old.ClientID),
		entities.ActionUpdate, old,
		func() (*entities.Contact, bool, error) {
			return s.db.Contacts.Update(id, func(c *entities.Contact) {
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

func (s *ContactService) DeleteContact(ctx context.Context, id string) error {
	old, ok := s.db.Contacts.GetByID(id)
	if !ok {
		return apperrors.ErrNotFound
	}

	_, ok, err := logAndExecute(ctx, s.history, entities.EntityContact,
		constParent[*entities.Contact](old.ClientID),
		entities.ActionDelete, old,
		func() (*entities.Contact, bool, error) {
			removed, err := s.db.Contacts.Delete(id)
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
