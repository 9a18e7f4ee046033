package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/AnnaSam6/Telegram-boot/internal/models"
	"github.com/AnnaSam6/Telegram-boot/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type WordT struct {
	bot     BotSender
	dialogs *cache.Dialogs
	service WordSI
}

func NewWordTAPI(bot BotSender, dialogs *cache.Dialogs, service WordSI) *WordT {
	return &WordT{
		bot:     bot,
		dialogs: dialogs,
		service: service,
	}
}

func (t *WordT) startAddWord(message *tgbotapi.Message) {
	t.dialogs.Set(message.From.ID, cache.Dialog{Stage: cache.StageWord})

	msg := tgbotapi.NewMessage(message.Chat.ID, "✏️ *Добавление нового слова*\n\nВведите английское слово:")
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *WordT) startDeleteWord(message *tgbotapi.Message) {
	userID := message.From.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	words, total, err := t.service.Words(ctx, userID, 0)
	if err != nil {
		log.Printf("failed to list words for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Ошибка получения слов. Попробуй позже.")
		sendMessage(t.bot, msg)
		return
	}
	if total == 0 {
		msg := tgbotapi.NewMessage(message.Chat.ID, "📭 У вас пока нет своих слов для удаления.")
		sendMessage(t.bot, msg)
		return
	}

	t.dialogs.Set(userID, cache.Dialog{Stage: cache.StageDelete})

	shown := words
	if len(shown) > 10 {
		shown = shown[:10]
	}

	var sb strings.Builder
	sb.WriteString("🗑️ *Удаление слова*\n\nВаши слова:\n")
	for _, word := range shown {
		sb.WriteString(fmt.Sprintf("• %s - %s\n", word.WordText, word.Translation))
	}
	sb.WriteString("\nВведите английское слово для удаления:")

	msg := tgbotapi.NewMessage(message.Chat.ID, sb.String())
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *WordT) showMyWords(message *tgbotapi.Message) {
	userID := message.From.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	words, total, err := t.service.Words(ctx, userID, 0)
	if err != nil {
		log.Printf("failed to list words for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Ошибка получения слов. Попробуй позже.")
		sendMessage(t.bot, msg)
		return
	}
	if total == 0 {
		msg := tgbotapi.NewMessage(message.Chat.ID, "📭 У вас пока нет своих слов. Используйте /addword чтобы добавить.")
		sendMessage(t.bot, msg)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📚 *Ваши слова* (%d слов):\n\n", total))
	for i, word := range words {
		sb.WriteString(fmt.Sprintf("%d. *%s* - %s", i+1, word.WordText, word.Translation))
		if word.Topic != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", word.Topic))
		}
		sb.WriteString(fmt.Sprintf(" - добавлено %s\n", word.CreatedAt.Format("02.01.2006")))
	}
	if total > len(words) {
		sb.WriteString(fmt.Sprintf("\n... и еще %d слов", total-len(words)))
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, sb.String())
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

// handleDialog routes free-text input into an open add/delete conversation.
// It reports whether the message was consumed.
func (t *WordT) handleDialog(message *tgbotapi.Message) bool {
	userID := message.From.ID
	text := strings.TrimSpace(message.Text)

	dialog, exists := t.dialogs.Get(userID)
	if !exists {
		return false
	}

	switch dialog.Stage {
	case cache.StageWord:
		if text == "" || len(strings.Fields(text)) > 3 {
			msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Слишком длинный текст. Введите одно английское слово:")
			sendMessage(t.bot, msg)
			return true
		}

		t.dialogs.Set(userID, cache.Dialog{Stage: cache.StageTranslation, WordText: text})

		msg := tgbotapi.NewMessage(message.Chat.ID,
			fmt.Sprintf("Английское слово: *%s*\n\nТеперь введите перевод на русский:", text))
		msg.ParseMode = "markdown"
		sendMessage(t.bot, msg)

	case cache.StageTranslation:
		t.dialogs.Delete(userID)
		t.finishAddWord(message, dialog.WordText, text)

	case cache.StageDelete:
		t.dialogs.Delete(userID)
		t.finishDeleteWord(message, text)

	default:
		t.dialogs.Delete(userID)
		return false
	}

	return true
}

func (t *WordT) finishAddWord(message *tgbotapi.Message, wordText, translation string) {
	userID := message.From.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := t.service.AddWord(ctx, userID, wordText, translation, "")

	var reply string
	switch {
	case err == nil:
		reply = fmt.Sprintf("Слово добавлено! Всего слов: %d", count)
	case errors.Is(err, models.ErrAlreadyExists):
		reply = "Это слово уже есть в вашем словаре"
	case errors.Is(err, models.ErrQuotaExceeded):
		reply = fmt.Sprintf("Достигнут лимит слов (%d)", t.service.Quota())
	case errors.Is(err, models.ErrInvalidInput):
		reply = "❌ Слово и перевод не должны быть пустыми. Начните заново с /addword"
	default:
		log.Printf("failed to add word for user %d: %v", userID, err)
		reply = "❌ Ошибка при добавлении слова. Попробуй позже."
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, reply))
}

func (t *WordT) finishDeleteWord(message *tgbotapi.Message, wordText string) {
	userID := message.From.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	remaining, err := t.service.DeleteWord(ctx, userID, wordText)

	var reply string
	switch {
	case err == nil:
		reply = fmt.Sprintf("Слово удалено! Осталось слов: %d", remaining)
	case errors.Is(err, models.ErrNotFound):
		reply = "Слово не найдено в вашем словаре"
	case errors.Is(err, models.ErrInvalidInput):
		reply = "❌ Введите слово для удаления."
	default:
		log.Printf("failed to delete word for user %d: %v", userID, err)
		reply = "❌ Ошибка при удалении слова. Попробуй позже."
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, reply))
}
