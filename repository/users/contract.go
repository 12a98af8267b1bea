package users

import (
	"context"

	"notes-api/models"
)

type (
	Repository interface {
		Create(ctx context.Context, email, passwordHash string) (*models.User, error)
		GetByEmail(ctx context.Context, email string) (*models.User, error)
	}
)
