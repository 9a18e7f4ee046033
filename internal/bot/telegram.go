package bot

import (
	"context"
	"log"

	"github.com/AnnaSam6/Telegram-boot/internal/models"
	"github.com/AnnaSam6/Telegram-boot/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type QuizSI interface {
	NewQuestion(ctx context.Context, userID int64) (models.QuizQuestion, error)
	Answer(ctx context.Context, userID int64, chosen string) (models.AnswerResult, error)
	Skip(ctx context.Context, userID int64) (models.QuizQuestion, error)
	Stats(ctx context.Context, userID int64) (models.Summary, error)
}

type WordSI interface {
	EnsureUser(ctx context.Context, user models.User) error
	AddWord(ctx context.Context, userID int64, wordText, translation, topic string) (int, error)
	DeleteWord(ctx context.Context, userID int64, wordText string) (int, error)
	Words(ctx context.Context, userID int64, page int) ([]models.UserWord, int, error)
	Quota() int
}

type ServiceI interface {
	QuizSI
	WordSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot     *tgbotapi.BotAPI
	word    *WordT
	quiz    *QuizT
	service WordSI
}

func NewTelegramAPI(botToken, env string, service ServiceI, dialogs *cache.Dialogs) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	return &TelegramAPI{
		bot:     bot,
		word:    NewWordTAPI(bot, dialogs, service),
		quiz:    NewQuizTAPI(bot, service),
		service: service,
	}, nil
}

func (t *TelegramAPI) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			if update.Message.IsCommand() {
				t.handleCommand(update.Message)
			} else {
				t.handleMessage(update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
	} else {
		log.Printf("Sent message to %d", sentMsg.Chat.ID)
	}
}
