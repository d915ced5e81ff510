package services

import (
	"context"
	"strings"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	"crm-system/internal/repositories"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/utils"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context) []dto.UserResponseDTO
	FindUser(ctx context.Context, id string) (*dto.UserResponseDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserResponseDTO, error)
	DeleteUser(ctx context.Context, id string) error
}

// UserService — учётные записи сотрудников. Пользователи не попадают в
// журнал изменений клиентов: это служебные данные, а не данные CRM.
type UserService struct {
	db     *repositories.DB
	logger *zap.Logger
}

func NewUserService(db *repositories.DB, logger *zap.Logger) *UserService {
	return &UserService{db: db, logger: logger}
}

func toUserResponse(u *entities.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func (s *UserService) GetUsers(ctx context.Context) []dto.UserResponseDTO {
	all := s.db.Users.GetAll()
	out := make([]dto.UserResponseDTO, 0, len(all))
	for _, u := range all {
		out = append(out, toUserResponse(u))
	}
	return out
}

func (s *UserService) FindUser(ctx context.Context, id string) (*dto.UserResponseDTO, error) {
	user, ok := s.db.Users.GetByID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	res := toUserResponse(user)
	return &res, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserResponseDTO, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	for _, u := range s.db.Users.GetAll() {
		if strings.EqualFold(u.Email, email) {
			return nil, apperrors.NewInvalidInputError("пользователь с email %s уже существует", email)
		}
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		s.logger.Error("Ошибка при хэшировании пароля", zap.Error(err))
		return nil, err
	}

	created, err := s.db.Users.Create(&entities.User{
		Name:         payload.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         entities.Role(payload.Role),
	})
	if err != nil {
		s.logger.Error("Ошибка при создании пользователя", zap.Error(err))
		return nil, err
	}

	res := toUserResponse(created)
	return &res, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	removed, err := s.db.Users.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrNotFound
	}
	return nil
}
