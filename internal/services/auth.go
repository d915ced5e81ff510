package services

import (
	"context"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	"crm-system/internal/repositories"
	"crm-system/pkg/contextkeys"
	apperrors "crm-system/pkg/errors"
	"crm-system/pkg/service"
	"crm-system/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.LoginResponseDTO, error)
	Me(ctx context.Context) (*dto.UserResponseDTO, error)
}

// AuthService — вход по email и паролю, обновление пары токенов и
// сведения о текущем пользователе. Сессия живёт только в токене,
// ничего о ней в хранилище нет.
type AuthService struct {
	db     *repositories.DB
	jwt    service.JWTService
	logger *zap.Logger
}

func NewAuthService(db *repositories.DB, jwt service.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{db: db, jwt: jwt, logger: logger}
}

// findByEmail сравнивает email строго: учётные записи хранятся в
// нижнем регистре, и вход с иным регистром считается неверным.
func (s *AuthService) findByEmail(email string) (*entities.User, bool) {
	for _, u := range s.db.Users.GetAll() {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

// Login возвращает одну и ту же ошибку и для неизвестного email, и для
// неверного пароля: снаружи причина отказа неразличима.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, ok := s.findByEmail(payload.Email)
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	if utils.ComparePasswords(user.PasswordHash, payload.Password) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.issueTokens(user)
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.LoginResponseDTO, error) {
	claims, err := s.jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}
	user, ok := s.db.Users.GetByID(claims.UserID)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}
	return s.issueTokens(user)
}

func (s *AuthService) Me(ctx context.Context) (*dto.UserResponseDTO, error) {
	userID, _ := ctx.Value(contextkeys.UserIDKey).(string)
	user, ok := s.db.Users.GetByID(userID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	res := toUserResponse(user)
	return &res, nil
}

func (s *AuthService) issueTokens(user *entities.User) (*dto.LoginResponseDTO, error) {
	accessToken, refreshToken, err := s.jwt.GenerateTokens(user.ID)
	if err != nil {
		s.logger.Error("Ошибка при генерации токенов", zap.Error(err))
		return nil, err
	}
	return &dto.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserResponse(user),
	}, nil
}
