package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/DevBytes-J/todo-app/internal/models"
)

// MinPasswordLen mirrors the sign-up form's minimum.
const MinPasswordLen = 6

const sessionTTL = 72 * time.Hour

// UserStore is the persistence surface AuthService needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

type AuthService struct {
	users  UserStore
	secret []byte
}

func NewAuthService(users UserStore, jwtSecret string) *AuthService {
	return &AuthService{users: users, secret: []byte(jwtSecret)}
}

// Register creates an account. Validation failures are caught before any
// storage call is issued.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, validationError("a valid email is required")
	}
	if len(password) < MinPasswordLen {
		return nil, validationError(fmt.Sprintf("password must be at least %d characters", MinPasswordLen))
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, validationError("email is already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, remoteError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, remoteError(err)
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, remoteError(err)
	}
	return user, nil
}

// Authenticate checks the credentials and returns a signed session token.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", remoteError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", remoteError(err)
	}
	return signed, nil
}

// CurrentUser resolves a session token to its account. Every todo operation
// is gated on this; an unusable token means not authenticated.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*models.User, error) {
	if tokenString == "" {
		return nil, ErrNotAuthenticated
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, ErrNotAuthenticated
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrNotAuthenticated
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotAuthenticated
		}
		return nil, remoteError(err)
	}
	return user, nil
}
