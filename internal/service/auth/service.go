package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/salonops/backoffice/internal/config"
	"github.com/salonops/backoffice/internal/repository/mongodb"
)

// Permission names gating the back-office operations.
const (
	PermissionStaffIncentivesManage = "staff:incentives:manage"
	PermissionStaffIncentivesView   = "staff:incentives:view"
	PermissionStaffView             = "staff:view"
	PermissionStaffManage           = "staff:manage"
)

// ErrUnauthenticated indicates an operation was attempted without a session.
var ErrUnauthenticated = errors.New("authentication required")

// ErrForbidden indicates the caller's role lacks the required permission.
var ErrForbidden = errors.New("permission denied")

// ErrInvalidCredentials is returned when the email/password pair does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned when a bearer token cannot be verified.
var ErrInvalidToken = errors.New("invalid token")

// Actor is the authenticated caller of an operation, carrying the permission
// strings resolved from its role. A zero Actor is unauthenticated.
type Actor struct {
	UserID        string
	Authenticated bool
	Permissions   []string
}

// HasPermission reports whether the actor's role grants the named permission.
func (a Actor) HasPermission(name string) bool {
	for _, p := range a.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

type sessionClaims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// Service issues and verifies back-office session tokens.
type Service struct {
	users  mongodb.UserRepository
	cfg    config.AuthConfig
	logger *zap.Logger
}

// NewService wires a new auth service instance.
func NewService(users mongodb.UserRepository, cfg config.AuthConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, cfg: cfg, logger: logger}
}

// Login verifies the credentials and returns a signed session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		UserID: user.ID.Hex(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(s.cfg.TokenTTLHours) * time.Hour).Unix(),
		},
	})

	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.Hex()))
	return signed, nil
}

// VerifyToken validates a bearer token and returns the user ID it was issued for.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	claims := new(sessionClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
