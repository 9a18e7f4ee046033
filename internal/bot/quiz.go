package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/AnnaSam6/Telegram-boot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type QuizT struct {
	bot     BotSender
	service QuizSI
}

func NewQuizTAPI(bot BotSender, service QuizSI) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
	}
}

func (t *QuizT) sendNewQuestion(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	question, err := t.service.NewQuestion(ctx, userID)
	if err != nil {
		log.Printf("failed to get new question for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(chatID, questionErrorText(err))
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, questionText(question))
	msg.ParseMode = "markdown"
	keyboard := optionsKeyboard(question.Options)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) processAnswer(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	userID := query.From.ID
	chosen := strings.TrimPrefix(query.Data, "quiz_")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := t.service.Answer(ctx, userID, chosen)
	if err != nil {
		if errors.Is(err, models.ErrNoActiveQuestion) {
			editMsg := tgbotapi.NewEditMessageText(
				query.Message.Chat.ID,
				query.Message.MessageID,
				"❌ Сессия викторины завершена. Используй /learn чтобы начать заново.",
			)
			sendMessage(t.bot, editMsg)
			return
		}
		log.Printf("failed to check answer for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Произошла ошибка. Попробуй ещё раз.")
		sendMessage(t.bot, msg)
		return
	}

	statusText := "✅ *Правильно!* 🎉"
	if !result.IsCorrect {
		statusText = fmt.Sprintf("❌ *Неправильно!*\n\nПравильный ответ: *%s*", result.CorrectText)
	}

	fullText := fmt.Sprintf("%s\n\n%s", query.Message.Text, statusText)
	editMsg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID,
		query.Message.MessageID,
		fullText,
	)
	editMsg.ParseMode = "markdown"

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("➡️ Следующее слово", "next_word"),
		},
	)
	editMsg.ReplyMarkup = &keyboard

	sendMessage(t.bot, editMsg)
}

func (t *QuizT) nextQuestion(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	question, err := t.service.Skip(ctx, query.From.ID)
	if err != nil {
		log.Printf("failed to get next question for user %d: %v", query.From.ID, err)
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, questionErrorText(err))
		sendMessage(t.bot, msg)
		return
	}

	editMsg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID,
		query.Message.MessageID,
		questionText(question),
	)
	editMsg.ParseMode = "markdown"
	keyboard := optionsKeyboard(question.Options)
	editMsg.ReplyMarkup = &keyboard

	sendMessage(t.bot, editMsg)
}

func (t *QuizT) sendStats(message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := t.service.Stats(ctx, userID)
	if err != nil {
		log.Printf("failed to get stats for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Ошибка получения статистики")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, statsText(stats))
	msg.ParseMode = "markdown"

	sendMessage(t.bot, msg)
}

func questionText(question models.QuizQuestion) string {
	return fmt.Sprintf("📚 Переведите слово:\n\n🔹 *%s*", question.Prompt)
}

func questionErrorText(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyStore):
		return "❌ В базе данных нет слов для изучения."
	case errors.Is(err, models.ErrInsufficientPool):
		return "❌ Недостаточно слов для создания викторины."
	default:
		return "❌ Ошибка при получении викторины. Попробуй позже."
	}
}

func optionsKeyboard(options []string) tgbotapi.InlineKeyboardMarkup {
	buttons := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for _, option := range options {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(option, "quiz_"+option),
		})
	}

	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func statsText(stats models.Summary) string {
	var sb strings.Builder

	sb.WriteString("📊 *Статистика обучения*\n\n")
	sb.WriteString("🎯 *Общая статистика:*\n")
	sb.WriteString(fmt.Sprintf("• Изучено слов: %d\n", stats.WordsLearned))
	sb.WriteString(fmt.Sprintf("• Ваших слов: %d\n", stats.UserWordsCount))
	sb.WriteString(fmt.Sprintf("• Правильных ответов: %d/%d\n", stats.TotalCorrect, stats.TotalAttempts))
	sb.WriteString(fmt.Sprintf("• Успешность: %.1f%%\n\n", stats.SuccessRate))
	sb.WriteString("📈 *Сегодня:*\n")
	sb.WriteString(fmt.Sprintf("• Вопросов: %d\n", stats.TodayQuestions))
	sb.WriteString(fmt.Sprintf("• Правильных: %d\n", stats.TodayCorrect))
	sb.WriteString("\n💪 Продолжайте в том же духе!")

	return sb.String()
}
