package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AnnaSam6/Telegram-boot/internal/models"
	mock_repository "github.com/AnnaSam6/Telegram-boot/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *StatsR {
	db := mock_repository.NewMockQueryI(ctrl)
	db.EXPECT().Rebind(gomock.Any()).DoAndReturn(func(q string) string { return q }).AnyTimes()
	if setupMock != nil {
		setupMock(db)
	}

	return &StatsR{db: db}
}

func TestStatsR_RecordAttempt(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	tests := []struct {
		name    string
		correct bool
		f       func(*testing.T, *mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name:    "correct answer increments both counters",
			correct: true,
			f: func(t *testing.T, mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(1), int64(5), models.WordKindShared, 1, now).
					Return(execResult(1), nil)
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(1), "2025-03-14", 1).
					Return(execResult(1), nil)
			},
		},
		{
			name:    "wrong answer increments total only",
			correct: false,
			f: func(t *testing.T, mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(1), int64(5), models.WordKindShared, 0, now).
					Return(execResult(1), nil)
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(1), "2025-03-14", 0).
					Return(execResult(1), nil)
			},
		},
		{
			name:    "db error",
			correct: true,
			f: func(t *testing.T, mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			statsR := newStatsMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
				tt.f(t, mqi)
			})

			err := statsR.RecordAttempt(context.Background(), 1, 5, models.WordKindShared, tt.correct, now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestStatsR_Summary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    func(*mock_repository.MockQueryI)
		want models.Summary
	}{
		{
			name: "success rate rounded to one decimal",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&models.Summary{}), gomock.Any(), int64(1)).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						s := dest.(*models.Summary)
						s.WordsLearned = 5
						s.TotalCorrect = 1
						s.TotalAttempts = 3
						return nil
					})
				var count int
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&count), gomock.Any(), int64(1)).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*int) = 7
						return nil
					})
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&dailyTotals{}), gomock.Any(), int64(1), "2025-03-14").
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						d := dest.(*dailyTotals)
						d.TodayQuestions = 2
						d.TodayCorrect = 1
						return nil
					})
			},
			want: models.Summary{
				WordsLearned:   5,
				UserWordsCount: 7,
				TotalCorrect:   1,
				TotalAttempts:  3,
				SuccessRate:    33.3,
				TodayQuestions: 2,
				TodayCorrect:   1,
			},
		},
		{
			name: "no attempts yields zero rate",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&models.Summary{}), gomock.Any(), int64(1)).
					Return(nil)
				var count int
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&count), gomock.Any(), int64(1)).
					Return(nil)
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&dailyTotals{}), gomock.Any(), int64(1), "2025-03-14").
					Return(nil)
			},
			want: models.Summary{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			statsR := newStatsMock(t, ctrl, tt.f)

			got, err := statsR.Summary(context.Background(), 1, "2025-03-14")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
