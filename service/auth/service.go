package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"notes-api/models"
	"notes-api/repository/users"
)

type Claims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

type DefaultService struct {
	repo      users.Repository
	jwtSecret []byte
	tokenTTL  time.Duration
	revoked   *RevocationList
	logger    zerolog.Logger
}

func NewDefaultService(repo users.Repository, jwtSecret []byte, tokenTTL time.Duration, logger zerolog.Logger) *DefaultService {
	return &DefaultService{
		repo:      repo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		revoked:   NewRevocationList(),
		logger:    logger,
	}
}

func (s *DefaultService) Register(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Msg("user registered")
	return user, nil
}

func (s *DefaultService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", models.ErrUnauthorized
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", models.ErrUnauthorized
	}

	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken resolves a bearer token to the acting user id.
func (s *DefaultService) VerifyToken(tokenStr string) (int, error) {
	claims, err := s.parseClaims(tokenStr)
	if err != nil {
		return 0, err
	}

	if s.revoked.IsRevoked(claims.ID) {
		return 0, models.ErrUnauthorized
	}

	return claims.UserID, nil
}

// Logout revokes the token's id so it stops resolving before its
// natural expiry.
func (s *DefaultService) Logout(tokenStr string) error {
	claims, err := s.parseClaims(tokenStr)
	if err != nil {
		return err
	}

	s.revoked.Add(claims.ID, claims.ExpiresAt.Time)
	s.logger.Info().Int("user_id", claims.UserID).Msg("user logged out")
	return nil
}

func (s *DefaultService) parseClaims(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, models.ErrUnauthorized
	}

	if claims.UserID <= 0 || claims.ExpiresAt == nil {
		return nil, models.ErrUnauthorized
	}

	return claims, nil
}
