package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "freelanceai/database/repository/user"
	"freelanceai/models"
	"freelanceai/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid email or password")

// Service handles account registration and session tokens. The current
// token's hash lives on the user record; the auth cache in redis is a
// read-through copy the middleware consults first.
type Service interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	Revoke(ctx context.Context, userID string) error
}

type DefaultService struct {
	Repo      userRepo.Repository
	AuthCache *redis.Client
	Logger    *zap.Logger
}

func NewService(repo userRepo.Repository, authCache *redis.Client, logger *zap.Logger) *DefaultService {
	return &DefaultService{Repo: repo, AuthCache: authCache, Logger: logger}
}

func (s *DefaultService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
	}
	if err := s.Repo.Create(ctx, &user); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, err
		}
		s.Logger.Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, &user)
}

func (s *DefaultService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		s.Logger.Error("failed to fetch user for login", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(ctx, user)
}

func (s *DefaultService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.Repo.GetByID(ctx, userID)
}

// Revoke invalidates the current session token.
func (s *DefaultService) Revoke(ctx context.Context, userID string) error {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.TokenHash = ""
	if err := s.Repo.Update(ctx, user); err != nil {
		s.Logger.Error("failed to revoke token", zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("failed to logout, please try again")
	}

	s.clearAuthCache(ctx, userID)
	return nil
}

// issueToken signs a fresh JWT, stores its hash on the record and drops the
// stale cache entry.
func (s *DefaultService) issueToken(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, tokenDuration)
	if err != nil {
		s.Logger.Error("failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	user.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(ctx, user); err != nil {
		s.Logger.Error("failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	s.clearAuthCache(ctx, user.ID)

	return &models.AuthResponse{User: *user, Token: token}, nil
}

func (s *DefaultService) clearAuthCache(ctx context.Context, userID string) {
	if s.AuthCache == nil {
		return
	}
	if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		s.Logger.Warn("failed to clear auth cache", zap.String("userId", userID), zap.Error(err))
	}
}
