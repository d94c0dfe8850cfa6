package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

// UserStore is the credential store the auth service reads and writes
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService registers users and exchanges credentials for tokens
type AuthService struct {
	users      UserStore
	tokens     *TokenService
	bcryptCost int
}

// NewAuthService creates a new AuthService. A cost of zero selects
// bcrypt.DefaultCost.
func NewAuthService(users UserStore, tokens *TokenService, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register stores a new user with a bcrypt hash of password
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperr.Validation("Password must be at most 72 bytes")
		}
		return nil, apperr.Internal(err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks the credentials and issues a bearer token
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*types.TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if apperr.Is(err, apperr.CodeNotFound) {
			return nil, apperr.Unauthorized("Incorrect username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized("Incorrect username or password")
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}
	return &types.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// CurrentUser loads the user a verified token was issued to
func (s *AuthService) CurrentUser(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetByUsername(ctx, username)
}
