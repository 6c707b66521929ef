package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/automeet-app/automeet/errors"
	"github.com/automeet-app/automeet/internal/domain/entities"
	domainrepo "github.com/automeet-app/automeet/internal/domain/repositories"
	"github.com/automeet-app/automeet/pkg/jwt"
)

// AuthResult bundles the issued token with the account it belongs to
type AuthResult struct {
	Token string
	User  *entities.User
}

// Service defines authentication operations
type Service interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entities.User, error)
}

type authService struct {
	userRepo   domainrepo.UserRepository
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// NewAuthService constructs a new auth service
func NewAuthService(userRepo domainrepo.UserRepository, jwtManager *jwt.Manager, logger *zap.Logger) Service {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Register creates a new account and issues a token for it
func (s *authService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	user := entities.NewUser(name, email, string(hash))
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, entities.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUserAlreadyExists(email)
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	if s.logger != nil {
		s.logger.Info("user registered",
			zap.String("user_id", user.ID.String()),
			zap.String("email", user.Email),
		)
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Login verifies the credentials and issues a token
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials()
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials()
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	if s.logger != nil {
		s.logger.Info("user logged in",
			zap.String("user_id", user.ID.String()),
		)
	}

	return &AuthResult{Token: token, User: user}, nil
}

// GetUser loads the account for an authenticated user id
func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound("User")
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return user, nil
}
