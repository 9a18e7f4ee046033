package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AnnaSam6/Telegram-boot/internal/models"
)

type SharedR struct {
	db QueryI
}

func NewSharedRepository(db QueryI) *SharedR {
	return &SharedR{db: db}
}

// RandomWord returns a uniformly random shared word.
func (r *SharedR) RandomWord(ctx context.Context) (models.Word, error) {
	query := r.db.Rebind(`
		SELECT id, word_text, translation, topic, difficulty
		FROM shared_words
		ORDER BY RANDOM()
		LIMIT 1
	`)

	var word models.Word
	if err := r.db.GetContext(ctx, &word, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Word{}, models.ErrEmptyStore
		}
		return models.Word{}, fmt.Errorf("failed to pick random word: %w", err)
	}

	return word, nil
}

// Distractors returns up to count random shared words whose word_text
// differs from exclude. The caller checks the length: fewer rows than
// requested means the pool is too small for a quiz.
func (r *SharedR) Distractors(ctx context.Context, exclude string, count int) ([]models.Word, error) {
	query := r.db.Rebind(`
		SELECT id, word_text, translation, topic, difficulty
		FROM shared_words
		WHERE word_text != ?
		ORDER BY RANDOM()
		LIMIT ?
	`)

	words := make([]models.Word, 0, count)
	if err := r.db.SelectContext(ctx, &words, query, exclude, count); err != nil {
		return nil, fmt.Errorf("failed to sample distractors: %w", err)
	}

	return words, nil
}

func (r *SharedR) SharedCount(ctx context.Context) (int, error) {
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM shared_words`)
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count shared words: %w", err)
	}

	return count, nil
}
