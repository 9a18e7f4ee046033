package bot

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/AnnaSam6/Telegram-boot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "learn":
		t.quiz.sendNewQuestion(message.Chat.ID, userIDOf(message))
	case "addword":
		t.word.startAddWord(message)
	case "deleteword":
		t.word.startDeleteWord(message)
	case "mywords":
		t.word.showMyWords(message)
	case "stats":
		t.quiz.sendStats(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Неизвестная команда. Используй /help")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := t.service.EnsureUser(ctx, models.User{
		ID:        message.From.ID,
		Username:  message.From.UserName,
		FirstName: message.From.FirstName,
	})
	if err != nil {
		log.Printf("failed to register user %d: %v", message.From.ID, err)
	}

	welcomeText := "👋 Привет, " + message.From.FirstName + "!\n\n" +
		"Я бот для изучения английских слов.\n\n" +
		"📚 Доступные команды:\n" +
		"/learn — начать викторину\n" +
		"/addword — добавить своё слово\n" +
		"/mywords — показать мои слова\n" +
		"/deleteword — удалить слово\n" +
		"/stats — статистика обучения\n" +
		"/help — помощь\n\n" +
		"Напиши /learn чтобы начать! 🎯"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📖 Помощь по командам:

/learn — викторина с 4 вариантами ответа
/addword — добавить слово в свой словарь
/mywords — показать ваши слова
/deleteword — удалить слово из словаря
/stats — статистика обучения

💡 Как работает викторина:
вам показывается русское слово и варианты на английском,
выберите правильный перевод — за ответами следит статистика.
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	if t.word.handleDialog(message) {
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "🤔 Я не понимаю эту команду.\n\nИспользуй /help чтобы увидеть список команд.")
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, "quiz_"):
		t.quiz.processAnswer(query)
	case data == "next_word":
		t.quiz.nextQuestion(query)
	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}

func userIDOf(message *tgbotapi.Message) int64 {
	if message.From == nil {
		return 0
	}
	return message.From.ID
}
