package bot

import (
	"testing"

	mock_bot "github.com/AnnaSam6/Telegram-boot/internal/bot/mock"
	"github.com/AnnaSam6/Telegram-boot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) *QuizT {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewQuizTAPI(mockBot, mockService)
}

func sampleQuestion() models.QuizQuestion {
	return models.QuizQuestion{
		UserID:      456,
		WordID:      1,
		WordKind:    models.WordKindShared,
		Prompt:      "красный",
		Options:     []string{"red", "blue", "green", "cat"},
		CorrectText: "red",
	}
}

func TestQuizT_sendNewQuestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "success: sends question with option buttons",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().NewQuestion(gomock.Any(), int64(456)).Return(sampleQuestion(), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, "📚 Переведите слово:\n\n🔹 *красный*", msg.Text)
				assert.Equal(t, "markdown", msg.ParseMode)
				keyboard, ok := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
				require.True(t, ok)
				require.Equal(t, 4, len(keyboard.InlineKeyboard))
				assert.Equal(t, "red", keyboard.InlineKeyboard[0][0].Text)
				assert.Equal(t, "quiz_red", *keyboard.InlineKeyboard[0][0].CallbackData)
			},
		},
		{
			name: "error: empty store",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().NewQuestion(gomock.Any(), int64(456)).
					Return(models.QuizQuestion{}, models.ErrEmptyStore)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ В базе данных нет слов для изучения.", msg.Text)
			},
		},
		{
			name: "error: insufficient pool",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().NewQuestion(gomock.Any(), int64(456)).
					Return(models.QuizQuestion{}, models.ErrInsufficientPool)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Недостаточно слов для создания викторины.", msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.sendNewQuestion(123, 456)

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestQuizT_processAnswer(t *testing.T) {
	t.Parallel()

	query := func(data string) *tgbotapi.CallbackQuery {
		return &tgbotapi.CallbackQuery{
			From: &tgbotapi.User{ID: 456},
			Message: &tgbotapi.Message{
				Chat:      &tgbotapi.Chat{ID: 123},
				MessageID: 100,
				Text:      "📚 Переведите слово:\n\n🔹 *красный*",
			},
			Data: data,
		}
	}

	tests := []struct {
		name       string
		query      *tgbotapi.CallbackQuery
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:  "correct answer",
			query: query("quiz_red"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Answer(gomock.Any(), int64(456), "red").
					Return(models.AnswerResult{IsCorrect: true, CorrectText: "red"}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				editMsg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				require.True(t, ok)
				assert.Contains(t, editMsg.Text, "✅ *Правильно!*")
				require.NotNil(t, editMsg.ReplyMarkup)
				assert.Equal(t, "➡️ Следующее слово", editMsg.ReplyMarkup.InlineKeyboard[0][0].Text)
				assert.Equal(t, "next_word", *editMsg.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
			},
		},
		{
			name:  "wrong answer shows correct text",
			query: query("quiz_blue"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Answer(gomock.Any(), int64(456), "blue").
					Return(models.AnswerResult{IsCorrect: false, CorrectText: "red"}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				editMsg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, editMsg.Text, "❌ *Неправильно!*")
				assert.Contains(t, editMsg.Text, "Правильный ответ: *red*")
			},
		},
		{
			name:  "stale button press after session ended",
			query: query("quiz_red"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Answer(gomock.Any(), int64(456), "red").
					Return(models.AnswerResult{}, models.ErrNoActiveQuestion)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				editMsg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Equal(t, "❌ Сессия викторины завершена. Используй /learn чтобы начать заново.", editMsg.Text)
			},
		},
		{
			name:  "service error",
			query: query("quiz_red"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Answer(gomock.Any(), int64(456), "red").
					Return(models.AnswerResult{}, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Произошла ошибка. Попробуй ещё раз.", msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.processAnswer(tt.query)

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestQuizT_nextQuestion(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().Skip(gomock.Any(), int64(456)).Return(sampleQuestion(), nil)
	})
	mb, _ := quizT.bot.(*mock_bot.MockBot)

	mock_bot.ClearSentMessages(mb)
	quizT.nextQuestion(&tgbotapi.CallbackQuery{
		From: &tgbotapi.User{ID: 456},
		Message: &tgbotapi.Message{
			Chat:      &tgbotapi.Chat{ID: 123},
			MessageID: 100,
		},
		Data: "next_word",
	})

	require.Equal(t, 1, len(mb.SentMessages))
	editMsg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Contains(t, editMsg.Text, "красный")
	require.NotNil(t, editMsg.ReplyMarkup)
	assert.Equal(t, 4, len(editMsg.ReplyMarkup.InlineKeyboard))
}

func TestQuizT_sendStats(t *testing.T) {
	t.Parallel()

	message := &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: 456},
	}

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "success: sends stats",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Stats(gomock.Any(), int64(456)).Return(models.Summary{
					WordsLearned:   5,
					UserWordsCount: 7,
					TotalCorrect:   8,
					TotalAttempts:  10,
					SuccessRate:    80.0,
					TodayQuestions: 3,
					TodayCorrect:   2,
				}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "• Изучено слов: 5")
				assert.Contains(t, msg.Text, "• Ваших слов: 7")
				assert.Contains(t, msg.Text, "• Правильных ответов: 8/10")
				assert.Contains(t, msg.Text, "• Успешность: 80.0%")
				assert.Contains(t, msg.Text, "• Вопросов: 3")
				assert.Equal(t, "markdown", msg.ParseMode)
			},
		},
		{
			name: "error: failed to get stats",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Stats(gomock.Any(), int64(456)).Return(models.Summary{}, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Ошибка получения статистики", msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.sendStats(message)

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}
