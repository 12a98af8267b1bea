package notes

import (
	"context"

	"notes-api/models"
)

type (
	// Repository persists notes. Every operation is scoped to the
	// owning user: a note id belonging to someone else behaves
	// exactly like a missing row.
	Repository interface {
		ListByUser(ctx context.Context, userID int) ([]models.Note, error)
		GetByIDAndUser(ctx context.Context, noteID, userID int) (*models.Note, error)
		Create(ctx context.Context, userID int, title, content string) (*models.Note, error)
		Update(ctx context.Context, noteID, userID int, title, content *string) (*models.Note, error)
		Delete(ctx context.Context, noteID, userID int) error
	}
)
