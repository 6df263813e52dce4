package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"scopeworks/internal/model"
	"scopeworks/internal/repository"
	"scopeworks/internal/util"
	"scopeworks/pkg/rbac"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
}

func NewAuthService(userRepo *repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Register creates a new user with the default role.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         rbac.RoleUser,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Login checks credentials and returns a JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !util.CheckPassword(password, u.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(u.ID, u.Role, s.jwtSecret)
	if err != nil {
		return "", err
	}

	return token, nil
}
