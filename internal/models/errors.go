package models

import "errors"

var (
	// ErrEmptyStore is returned when the shared dictionary has no words.
	ErrEmptyStore = errors.New("no shared words available")

	// ErrInsufficientPool is returned when there are not enough distinct
	// words to build a full option set.
	ErrInsufficientPool = errors.New("not enough words to build a quiz")

	// ErrAlreadyExists is returned on adding a word the user already has.
	ErrAlreadyExists = errors.New("word already exists")

	// ErrQuotaExceeded is returned when a user's dictionary is full.
	ErrQuotaExceeded = errors.New("personal word limit reached")

	ErrNotFound = errors.New("word not found")

	// ErrNoActiveQuestion is returned on answering without an open question.
	ErrNoActiveQuestion = errors.New("no active question")

	ErrInvalidInput = errors.New("word and translation must not be empty")
)
