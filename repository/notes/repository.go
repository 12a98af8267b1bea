package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"notes-api/models"
)

const noteColumns = "id, user_id, title, content, created_at, updated_at"

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(db *sql.DB) *DefaultRepository {
	return &DefaultRepository{db}
}

func (d *DefaultRepository) ListByUser(ctx context.Context, userID int) ([]models.Note, error) {
	query, args, err := squirrel.
		Select("id",
			"user_id",
			"title",
			"content",
			"created_at",
			"updated_at").
		From("notes").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var note models.Note
		if err = rows.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

func (d *DefaultRepository) GetByIDAndUser(ctx context.Context, noteID, userID int) (*models.Note, error) {
	note := &models.Note{}
	query := fmt.Sprintf("SELECT %s FROM notes WHERE id = ? AND user_id = ?", noteColumns)
	err := d.db.QueryRowContext(ctx, query, noteID, userID).
		Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get note '%d' for user '%d': %w", noteID, userID, err)
	}
	return note, nil
}

func (d *DefaultRepository) Create(ctx context.Context, userID int, title, content string) (*models.Note, error) {
	query, args, err := squirrel.
		Insert("notes").
		Columns("user_id", "title", "content").
		Values(userID, title, content).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted note id: %w", err)
	}

	// Re-read so the caller gets the server-assigned timestamps.
	return d.GetByIDAndUser(ctx, int(id), userID)
}

func (d *DefaultRepository) Update(ctx context.Context, noteID, userID int, title, content *string) (*models.Note, error) {
	// Existence check doubles as the ownership check; a note owned
	// by another user is reported as missing.
	if _, err := d.GetByIDAndUser(ctx, noteID, userID); err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Update("notes").
		Where(squirrel.Eq{"id": noteID, "user_id": userID})

	if title != nil {
		queryBuilder = queryBuilder.Set("title", *title)
	}
	if content != nil {
		queryBuilder = queryBuilder.Set("content", *content)
	}

	if title != nil || content != nil {
		query, args, err := queryBuilder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build query: %w", err)
		}
		if _, err := d.db.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("failed to update note '%d' for user '%d': %w", noteID, userID, err)
		}
	}

	return d.GetByIDAndUser(ctx, noteID, userID)
}

func (d *DefaultRepository) Delete(ctx context.Context, noteID, userID int) error {
	query, args, err := squirrel.
		Delete("notes").
		Where(squirrel.Eq{"id": noteID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	// Deleting a missing id is not an error.
	if _, err := d.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete note '%d' for user '%d': %w", noteID, userID, err)
	}
	return nil
}
