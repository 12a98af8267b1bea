package auth

import (
	"context"

	"notes-api/models"
)

type (
	Service interface {
		Register(ctx context.Context, email, password string) (*models.User, error)
		Login(ctx context.Context, email, password string) (string, error)
		VerifyToken(token string) (int, error)
		Logout(token string) error
	}
)
