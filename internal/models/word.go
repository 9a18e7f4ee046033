package models

import (
	"time"
)

// Word kinds stored in learning_stats.word_kind.
const (
	WordKindShared = "shared"
	WordKindUser   = "user"
)

// Word is an entry of the shared dictionary every user is quizzed on.
type Word struct {
	ID          int64  `db:"id"`
	WordText    string `db:"word_text"`
	Translation string `db:"translation"`
	Topic       string `db:"topic"`
	Difficulty  int    `db:"difficulty"`
}

// UserWord is a personal dictionary entry owned by a single user.
// WordText is stored lower-cased: it is the uniqueness key within
// the user's dictionary.
type UserWord struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	WordText    string    `db:"word_text"`
	Translation string    `db:"translation"`
	Topic       string    `db:"topic"`
	CreatedAt   time.Time `db:"created_at"`
}

type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	CreatedAt time.Time `db:"created_at"`
}
