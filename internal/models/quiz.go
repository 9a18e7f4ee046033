package models

// QuizQuestion is the open question held for a user between asking
// and answering. It is never persisted.
type QuizQuestion struct {
	UserID      int64
	WordID      int64
	WordKind    string
	Prompt      string
	Options     []string
	CorrectText string
}

type AnswerResult struct {
	IsCorrect   bool
	CorrectText string
}

// Summary is the aggregated learning statistics shown to a user.
type Summary struct {
	WordsLearned   int `db:"words_learned"`
	UserWordsCount int `db:"user_words_count"`
	TotalCorrect   int `db:"total_correct"`
	TotalAttempts  int `db:"total_attempts"`
	SuccessRate    float64
	TodayQuestions int `db:"today_questions"`
	TodayCorrect   int `db:"today_correct"`
}
