package service

import (
	"context"
	"strings"
	"time"

	"github.com/AnnaSam6/Telegram-boot/internal/config"
	"github.com/AnnaSam6/Telegram-boot/internal/models"
	"github.com/AnnaSam6/Telegram-boot/internal/storage/cache"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type SharedRI interface {
	RandomWord(ctx context.Context) (models.Word, error)
	Distractors(ctx context.Context, exclude string, count int) ([]models.Word, error)
}

type StatsRI interface {
	RecordAttempt(ctx context.Context, userID, wordID int64, wordKind string, correct bool, now time.Time) error
	Summary(ctx context.Context, userID int64, day string) (models.Summary, error)
}

type QuizS struct {
	shared   SharedRI
	stats    StatsRI
	sessions *cache.Sessions
	cfg      config.QuizConfig
	log      *zap.Logger
}

func NewQuizService(shared SharedRI, stats StatsRI, sessions *cache.Sessions, cfg config.QuizConfig, log *zap.Logger) *QuizS {
	return &QuizS{
		shared:   shared,
		stats:    stats,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
}

// NewQuestion picks a random shared word, builds the shuffled option set
// and opens a question for the user. Any question already open is
// discarded without touching the statistics, which makes this double as
// the "next word" action.
func (q *QuizS) NewQuestion(ctx context.Context, userID int64) (models.QuizQuestion, error) {
	word, err := q.shared.RandomWord(ctx)
	if err != nil {
		return models.QuizQuestion{}, err
	}

	need := q.cfg.OptionsCount - 1
	distractors, err := q.shared.Distractors(ctx, word.WordText, need)
	if err != nil {
		return models.QuizQuestion{}, err
	}
	if len(distractors) < need {
		q.log.Warn("not enough distractors for quiz",
			zap.Int("got", len(distractors)),
			zap.Int("required", need))
		return models.QuizQuestion{}, models.ErrInsufficientPool
	}

	options := lo.Map(distractors, func(w models.Word, _ int) string {
		return w.WordText
	})
	options = append(options, word.WordText)
	options = lo.Shuffle(options)

	question := models.QuizQuestion{
		UserID:      userID,
		WordID:      word.ID,
		WordKind:    models.WordKindShared,
		Prompt:      word.Translation,
		Options:     options,
		CorrectText: word.WordText,
	}

	q.sessions.Set(userID, question)

	return question, nil
}

// Answer checks chosen against the open question and records the attempt.
// Without an open question it returns ErrNoActiveQuestion and records
// nothing, so a stale button press can never double-count.
func (q *QuizS) Answer(ctx context.Context, userID int64, chosen string) (models.AnswerResult, error) {
	question, exists := q.sessions.Get(userID)
	if !exists {
		return models.AnswerResult{}, models.ErrNoActiveQuestion
	}
	q.sessions.Delete(userID)

	correct := chosen == question.CorrectText
	if q.cfg.CaseInsensitive {
		correct = strings.EqualFold(chosen, question.CorrectText)
	}

	err := q.stats.RecordAttempt(ctx, userID, question.WordID, question.WordKind, correct, time.Now().UTC())
	if err != nil {
		q.log.Warn("failed to record attempt",
			zap.Int64("user_id", userID),
			zap.Int64("word_id", question.WordID),
			zap.Error(err))
	}

	return models.AnswerResult{
		IsCorrect:   correct,
		CorrectText: question.CorrectText,
	}, nil
}

// Skip throws away the open question, if any, and opens a new one.
func (q *QuizS) Skip(ctx context.Context, userID int64) (models.QuizQuestion, error) {
	q.sessions.Delete(userID)
	return q.NewQuestion(ctx, userID)
}

func (q *QuizS) Stats(ctx context.Context, userID int64) (models.Summary, error) {
	summary, err := q.stats.Summary(ctx, userID, time.Now().UTC().Format(time.DateOnly))
	if err != nil {
		q.log.Warn("failed to get stats summary", zap.Int64("user_id", userID), zap.Error(err))
		return models.Summary{}, err
	}

	return summary, nil
}
