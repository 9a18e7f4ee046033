package service

import (
	"github.com/AnnaSam6/Telegram-boot/internal/config"
	"github.com/AnnaSam6/Telegram-boot/internal/storage/cache"
	"go.uber.org/zap"
)

type RepositoryI interface {
	SharedRI
	UserWordsRI
	UsersRI
	StatsRI
}

type Service struct {
	*WordS
	*QuizS
}

func InitServices(repo RepositoryI, sessions *cache.Sessions, cfg *config.Config, log *zap.Logger) *Service {
	return &Service{
		WordS: NewWordService(repo, repo, cfg.Words, log),
		QuizS: NewQuizService(repo, repo, sessions, cfg.Quiz, log),
	}
}
