package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/AnnaSam6/Telegram-boot/internal/models"
)

type StatsR struct {
	db QueryI
}

type dailyTotals struct {
	TodayQuestions int `db:"today_questions"`
	TodayCorrect   int `db:"today_correct"`
}

func NewStatsRepository(db QueryI) *StatsR {
	return &StatsR{db: db}
}

// RecordAttempt upserts the per-word counters and the daily aggregate for
// the day of now. Both writes are single atomic upserts, there is no
// read-modify-write window. now must be UTC: the daily row is keyed on
// its calendar date.
func (s *StatsR) RecordAttempt(ctx context.Context, userID, wordID int64, wordKind string, correct bool, now time.Time) error {
	inc := 0
	if correct {
		inc = 1
	}

	wordQuery := s.db.Rebind(`
		INSERT INTO learning_stats (user_id, word_id, word_kind, correct_attempts, total_attempts, last_practiced)
		VALUES (?, ?, ?, ?, 1, ?)
		ON CONFLICT (user_id, word_id, word_kind) DO UPDATE SET
			correct_attempts = learning_stats.correct_attempts + excluded.correct_attempts,
			total_attempts = learning_stats.total_attempts + 1,
			last_practiced = excluded.last_practiced
	`)
	if _, err := s.db.ExecContext(ctx, wordQuery, userID, wordID, wordKind, inc, now); err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	dayQuery := s.db.Rebind(`
		INSERT INTO daily_stats (user_id, day, questions, correct)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (user_id, day) DO UPDATE SET
			questions = daily_stats.questions + 1,
			correct = daily_stats.correct + excluded.correct
	`)
	if _, err := s.db.ExecContext(ctx, dayQuery, userID, now.Format(time.DateOnly), inc); err != nil {
		return fmt.Errorf("failed to record daily attempt: %w", err)
	}

	return nil
}

// Summary aggregates a user's learning statistics. day selects the daily
// counters, formatted as YYYY-MM-DD.
func (s *StatsR) Summary(ctx context.Context, userID int64, day string) (models.Summary, error) {
	var summary models.Summary

	totalsQuery := s.db.Rebind(`
		SELECT
			COUNT(CASE WHEN correct_attempts > 0 THEN 1 END) AS words_learned,
			COALESCE(SUM(correct_attempts), 0) AS total_correct,
			COALESCE(SUM(total_attempts), 0) AS total_attempts
		FROM learning_stats
		WHERE user_id = ?
	`)
	if err := s.db.GetContext(ctx, &summary, totalsQuery, userID); err != nil {
		return models.Summary{}, fmt.Errorf("failed to get stat totals for user %d: %w", userID, err)
	}

	wordsQuery := s.db.Rebind(`SELECT COUNT(*) FROM user_words WHERE user_id = ?`)
	if err := s.db.GetContext(ctx, &summary.UserWordsCount, wordsQuery, userID); err != nil {
		return models.Summary{}, fmt.Errorf("failed to count user words for user %d: %w", userID, err)
	}

	todayQuery := s.db.Rebind(`
		SELECT
			COALESCE(SUM(questions), 0) AS today_questions,
			COALESCE(SUM(correct), 0) AS today_correct
		FROM daily_stats
		WHERE user_id = ? AND day = ?
	`)
	var today dailyTotals
	if err := s.db.GetContext(ctx, &today, todayQuery, userID, day); err != nil {
		return models.Summary{}, fmt.Errorf("failed to get daily stats for user %d: %w", userID, err)
	}
	summary.TodayQuestions = today.TodayQuestions
	summary.TodayCorrect = today.TodayCorrect

	if summary.TotalAttempts > 0 {
		summary.SuccessRate = math.Round(float64(summary.TotalCorrect)/float64(summary.TotalAttempts)*1000) / 10
	}

	return summary, nil
}
