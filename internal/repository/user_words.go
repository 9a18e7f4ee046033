package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/AnnaSam6/Telegram-boot/internal/models"
)

type UserWordsR struct {
	db QueryI
}

func NewUserWordsRepository(db QueryI) *UserWordsR {
	return &UserWordsR{db: db}
}

// normalizeKey produces the storage key for a personal word. Duplicate
// detection is case-insensitive, so "Dog" and "dog" are the same entry.
func normalizeKey(wordText string) string {
	return strings.ToLower(strings.TrimSpace(wordText))
}

// Add inserts a personal word and returns the updated count. The word_text
// key is normalized before storage. Duplicates return ErrAlreadyExists,
// a full dictionary returns ErrQuotaExceeded.
func (r *UserWordsR) Add(ctx context.Context, word models.UserWord, quota int) (int, error) {
	key := normalizeKey(word.WordText)

	var exists int
	existsQuery := r.db.Rebind(`SELECT COUNT(*) FROM user_words WHERE user_id = ? AND word_text = ?`)
	if err := r.db.GetContext(ctx, &exists, existsQuery, word.UserID, key); err != nil {
		return 0, fmt.Errorf("failed to check word existence: %w", err)
	}
	if exists > 0 {
		return 0, models.ErrAlreadyExists
	}

	count, err := r.Count(ctx, word.UserID)
	if err != nil {
		return 0, err
	}
	if count >= quota {
		return 0, models.ErrQuotaExceeded
	}

	// The unique index backs up the existence check against a concurrent
	// insert of the same key.
	insertQuery := r.db.Rebind(`
		INSERT INTO user_words (user_id, word_text, translation, topic, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, word_text) DO NOTHING
	`)
	res, err := r.db.ExecContext(ctx, insertQuery, word.UserID, key, word.Translation, word.Topic, word.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to add word: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return 0, models.ErrAlreadyExists
	}

	return r.Count(ctx, word.UserID)
}

// Delete removes a personal word by its normalized word_text and returns
// the remaining count.
func (r *UserWordsR) Delete(ctx context.Context, userID int64, wordText string) (int, error) {
	query := r.db.Rebind(`DELETE FROM user_words WHERE user_id = ? AND word_text = ?`)
	res, err := r.db.ExecContext(ctx, query, userID, normalizeKey(wordText))
	if err != nil {
		return 0, fmt.Errorf("failed to delete word: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return 0, models.ErrNotFound
	}

	return r.Count(ctx, userID)
}

// Words returns the user's words, newest first.
func (r *UserWordsR) Words(ctx context.Context, userID int64, limit, offset int) ([]models.UserWord, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, word_text, translation, topic, created_at
		FROM user_words
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`)

	words := make([]models.UserWord, 0, limit)
	if err := r.db.SelectContext(ctx, &words, query, userID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list user words: %w", err)
	}

	return words, nil
}

func (r *UserWordsR) Count(ctx context.Context, userID int64) (int, error) {
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM user_words WHERE user_id = ?`)
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count user words: %w", err)
	}

	return count, nil
}
