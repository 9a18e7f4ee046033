package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AnnaSam6/Telegram-boot/internal/models"
)

type UsersR struct {
	db QueryI
}

func NewUsersRepository(db QueryI) *UsersR {
	return &UsersR{db: db}
}

// Upsert registers a user on first contact. Existing rows are left as is.
func (r *UsersR) Upsert(ctx context.Context, user models.User) error {
	query := r.db.Rebind(`
		INSERT INTO users (id, username, first_name, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`)

	if _, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.FirstName, user.CreatedAt); err != nil {
		return fmt.Errorf("failed to upsert user %d: %w", user.ID, err)
	}

	return nil
}

func (r *UsersR) Get(ctx context.Context, userID int64) (models.User, error) {
	query := r.db.Rebind(`SELECT id, username, first_name, created_at FROM users WHERE id = ?`)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	return user, nil
}
