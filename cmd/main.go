package main

import (
	"context"
	"log"

	"github.com/AnnaSam6/Telegram-boot/internal/bot"
	"github.com/AnnaSam6/Telegram-boot/internal/config"
	"github.com/AnnaSam6/Telegram-boot/internal/repository"
	"github.com/AnnaSam6/Telegram-boot/internal/service"
	"github.com/AnnaSam6/Telegram-boot/internal/storage/cache"
	"github.com/AnnaSam6/Telegram-boot/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	ctx := context.Background()
	if err := db.Migrate(ctx, database); err != nil {
		logger.Fatal("failed migrate db", zap.Error(err))
	}
	if err := db.Seed(ctx, database); err != nil {
		logger.Fatal("failed seed shared words", zap.Error(err))
	}

	repos := repository.NewRepository(database)

	sessions := cache.NewSessions()
	dialogs := cache.NewDialogs()

	services := service.InitServices(repos, sessions, cfg, logger)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, dialogs)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
