package service

import (
	"context"
	"strings"
	"time"

	"github.com/AnnaSam6/Telegram-boot/internal/config"
	"github.com/AnnaSam6/Telegram-boot/internal/models"
	"go.uber.org/zap"
)

type UserWordsRI interface {
	Add(ctx context.Context, word models.UserWord, quota int) (int, error)
	Delete(ctx context.Context, userID int64, wordText string) (int, error)
	Words(ctx context.Context, userID int64, limit, offset int) ([]models.UserWord, error)
	Count(ctx context.Context, userID int64) (int, error)
}

type UsersRI interface {
	Upsert(ctx context.Context, user models.User) error
}

type WordS struct {
	repo  UserWordsRI
	users UsersRI
	cfg   config.WordsConfig
	log   *zap.Logger
}

func NewWordService(repo UserWordsRI, users UsersRI, cfg config.WordsConfig, log *zap.Logger) *WordS {
	return &WordS{
		repo:  repo,
		users: users,
		cfg:   cfg,
		log:   log,
	}
}

// EnsureUser registers the user on first contact. Repeated calls are no-ops.
func (w *WordS) EnsureUser(ctx context.Context, user models.User) error {
	user.CreatedAt = time.Now().UTC()
	if err := w.users.Upsert(ctx, user); err != nil {
		w.log.Warn("failed to upsert user", zap.Int64("user_id", user.ID), zap.Error(err))
		return err
	}

	return nil
}

// AddWord adds a word to the user's personal dictionary and returns the
// updated count.
func (w *WordS) AddWord(ctx context.Context, userID int64, wordText, translation, topic string) (int, error) {
	wordText = strings.TrimSpace(wordText)
	translation = strings.TrimSpace(translation)
	if wordText == "" || translation == "" {
		return 0, models.ErrInvalidInput
	}

	count, err := w.repo.Add(ctx, models.UserWord{
		UserID:      userID,
		WordText:    wordText,
		Translation: translation,
		Topic:       strings.TrimSpace(topic),
		CreatedAt:   time.Now().UTC(),
	}, w.cfg.MaxPerUser)
	if err != nil {
		return 0, err
	}

	w.log.Info("added user word", zap.Int64("user_id", userID), zap.Int("count", count))

	return count, nil
}

// DeleteWord removes a word from the user's dictionary and returns the
// remaining count.
func (w *WordS) DeleteWord(ctx context.Context, userID int64, wordText string) (int, error) {
	wordText = strings.TrimSpace(wordText)
	if wordText == "" {
		return 0, models.ErrInvalidInput
	}

	return w.repo.Delete(ctx, userID, wordText)
}

// Words returns one page of the user's dictionary, newest first, along
// with the total count.
func (w *WordS) Words(ctx context.Context, userID int64, page int) ([]models.UserWord, int, error) {
	if page < 0 {
		page = 0
	}

	total, err := w.repo.Count(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []models.UserWord{}, 0, nil
	}

	words, err := w.repo.Words(ctx, userID, w.cfg.PageSize, page*w.cfg.PageSize)
	if err != nil {
		return nil, 0, err
	}

	return words, total, nil
}

func (w *WordS) Count(ctx context.Context, userID int64) (int, error) {
	return w.repo.Count(ctx, userID)
}

// Quota is the configured personal word limit, exposed for messages.
func (w *WordS) Quota() int {
	return w.cfg.MaxPerUser
}
