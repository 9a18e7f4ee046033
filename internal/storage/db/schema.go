package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate creates the tables on first start. next_review is reserved for
// spaced repetition and is not read anywhere yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	serial := "BIGSERIAL"
	if db.DriverName() == "sqlite3" {
		serial = "INTEGER"
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT PRIMARY KEY,
			username TEXT,
			first_name TEXT,
			created_at TIMESTAMP NOT NULL
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS shared_words (
			id %s PRIMARY KEY,
			word_text TEXT NOT NULL,
			translation TEXT NOT NULL,
			topic TEXT NOT NULL DEFAULT '',
			difficulty INT NOT NULL DEFAULT 1,
			UNIQUE (word_text, translation)
		)`, serial),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS user_words (
			id %s PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			word_text TEXT NOT NULL,
			translation TEXT NOT NULL,
			topic TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			UNIQUE (user_id, word_text)
		)`, serial),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS learning_stats (
			id %s PRIMARY KEY,
			user_id BIGINT NOT NULL,
			word_id BIGINT NOT NULL,
			word_kind TEXT NOT NULL CHECK (word_kind IN ('shared', 'user')),
			correct_attempts INT NOT NULL DEFAULT 0,
			total_attempts INT NOT NULL DEFAULT 0,
			last_practiced TIMESTAMP,
			next_review TIMESTAMP,
			UNIQUE (user_id, word_id, word_kind)
		)`, serial),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS daily_stats (
			id %s PRIMARY KEY,
			user_id BIGINT NOT NULL,
			day TEXT NOT NULL,
			questions INT NOT NULL DEFAULT 0,
			correct INT NOT NULL DEFAULT 0,
			UNIQUE (user_id, day)
		)`, serial),
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

type seedWord struct {
	wordText    string
	translation string
	topic       string
	difficulty  int
}

var seedWords = []seedWord{
	{"red", "красный", "colors", 1},
	{"blue", "синий", "colors", 1},
	{"green", "зеленый", "colors", 1},
	{"yellow", "желтый", "colors", 1},
	{"black", "черный", "colors", 1},

	{"I", "я", "pronouns", 1},
	{"you", "ты/вы", "pronouns", 1},
	{"he", "он", "pronouns", 1},
	{"she", "она", "pronouns", 1},
	{"it", "оно", "pronouns", 1},

	{"cat", "кот", "animals", 2},
	{"dog", "собака", "animals", 2},
	{"bird", "птица", "animals", 2},
	{"fish", "рыба", "animals", 2},

	{"apple", "яблоко", "food", 2},
	{"bread", "хлеб", "food", 2},
	{"water", "вода", "food", 2},
	{"milk", "молоко", "food", 2},

	{"mother", "мать", "family", 3},
	{"father", "отец", "family", 3},
	{"brother", "брат", "family", 3},
	{"sister", "сестра", "family", 3},
}

// Seed fills the shared dictionary with the starter word list. It runs
// only when the table is empty, so a running installation is never touched.
func Seed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM shared_words`); err != nil {
		return fmt.Errorf("failed to count shared words: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := db.Rebind(`INSERT INTO shared_words (word_text, translation, topic, difficulty) VALUES (?, ?, ?, ?)`)
	for _, w := range seedWords {
		if _, err := db.ExecContext(ctx, query, w.wordText, w.translation, w.topic, w.difficulty); err != nil {
			return fmt.Errorf("failed to seed word %q: %w", w.wordText, err)
		}
	}

	return nil
}
