package cache

import (
	"sync"

	"github.com/AnnaSam6/Telegram-boot/internal/models"
)

// Sessions holds the open quiz question per user. A user has at most
// one open question; setting a new one replaces the old without a trace.
type Sessions struct {
	mu        sync.Mutex
	questions map[int64]models.QuizQuestion
}

func NewSessions() *Sessions {
	return &Sessions{
		questions: make(map[int64]models.QuizQuestion),
	}
}

func (s *Sessions) Set(userID int64, question models.QuizQuestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions[userID] = question
}

func (s *Sessions) Get(userID int64) (models.QuizQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	question, exists := s.questions[userID]
	return question, exists
}

func (s *Sessions) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.questions, userID)
}

// Dialog stages for the multi-step add/delete word conversations.
const (
	StageWord        = "word"
	StageTranslation = "translation"
	StageDelete      = "delete"
)

type Dialog struct {
	Stage    string
	WordText string
}

// Dialogs tracks what free-text input the bot expects from a user next.
type Dialogs struct {
	mu      sync.Mutex
	dialogs map[int64]Dialog
}

func NewDialogs() *Dialogs {
	return &Dialogs{
		dialogs: make(map[int64]Dialog),
	}
}

func (d *Dialogs) Set(userID int64, dialog Dialog) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dialogs[userID] = dialog
}

func (d *Dialogs) Get(userID int64) (Dialog, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	dialog, exists := d.dialogs[userID]
	return dialog, exists
}

func (d *Dialogs) Delete(userID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.dialogs, userID)
}
