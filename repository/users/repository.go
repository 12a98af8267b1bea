package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"

	"notes-api/models"
)

// MySQL error number for a duplicate key.
const errDuplicateEntry = 1062

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(db *sql.DB) *DefaultRepository {
	return &DefaultRepository{db}
}

func (d *DefaultRepository) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	query, args, err := squirrel.
		Insert("users").
		Columns("email", "password_hash").
		Values(email, passwordHash).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
			return nil, models.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted user id: %w", err)
	}

	return d.getByID(ctx, int(id))
}

func (d *DefaultRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email = ?`
	err := d.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (d *DefaultRepository) getByID(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password_hash, created_at FROM users WHERE id = ?`
	err := d.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get user '%d': %w", id, err)
	}
	return user, nil
}
