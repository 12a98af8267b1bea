package notes

import (
	"context"

	"notes-api/models"
)

type (
	Service interface {
		List(ctx context.Context, userID int) ([]models.Note, error)
		Get(ctx context.Context, noteID, userID int) (*models.Note, error)
		Create(ctx context.Context, userID int, title, content string) (*models.Note, error)
		Update(ctx context.Context, noteID, userID int, title, content *string) (*models.Note, error)
		Delete(ctx context.Context, noteID, userID int) error
	}
)
