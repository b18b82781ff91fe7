package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sikarir/sikarir-backend/internal/models"
	pgrepo "github.com/sikarir/sikarir-backend/internal/repositories/postgres"
	"github.com/sikarir/sikarir-backend/internal/utils"
)

type RegisterInput struct {
	Username string
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	IsTakenQuiz bool   `json:"isTakenQuiz"`
	Token       string `json:"token"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type authService struct {
	users    pgrepo.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users pgrepo.UserRepository, secret string, tokenTTL time.Duration) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &authService{users: users, secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	const op = "AuthService.Register"

	if in.Username == "" || in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "username, name, email, and password are required", nil)
	}
	if len(in.Password) < 8 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "password must be at least 8 characters", nil)
	}

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing users", err)
	}
	if taken {
		return nil, utils.E(utils.CodeConflict, op, "username or email already exists", nil)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	const op = "AuthService.Login"

	if username == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "username and password are required", nil)
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			// same message as a bad password; don't leak which one failed
			return nil, utils.E(utils.CodeUnauthorized, op, "invalid username or password", nil)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	if err := utils.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid username or password", nil)
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}

	return &LoginResult{
		UserID:      u.ID,
		Name:        u.Name,
		IsTakenQuiz: u.IsTakenQuiz,
		Token:       token,
	}, nil
}

func (s *authService) issueToken(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
