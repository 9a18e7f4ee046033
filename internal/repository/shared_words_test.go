package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/AnnaSam6/Telegram-boot/internal/models"
	mock_repository "github.com/AnnaSam6/Telegram-boot/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSharedMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *SharedR {
	db := mock_repository.NewMockQueryI(ctrl)
	db.EXPECT().Rebind(gomock.Any()).DoAndReturn(func(q string) string { return q }).AnyTimes()
	if setupMock != nil {
		setupMock(db)
	}

	return &SharedR{db: db}
}

func TestSharedR_RandomWord(t *testing.T) {
	t.Parallel()

	randomWord := models.Word{
		ID:          1,
		WordText:    "cat",
		Translation: "кот",
		Topic:       "animals",
		Difficulty:  2,
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.Word
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&randomWord), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.Word) = randomWord
						return nil
					})
			},
			want: randomWord,
		},
		{
			name: "empty store",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			wantErr: models.ErrEmptyStore,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newSharedMock(t, ctrl, tt.f)

			got, err := repo.RandomWord(context.Background())
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, models.ErrEmptyStore) {
					assert.ErrorIs(t, err, models.ErrEmptyStore)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSharedR_Distractors(t *testing.T) {
	t.Parallel()

	expectedWords := []models.Word{
		{ID: 2, WordText: "dog", Translation: "собака"},
		{ID: 3, WordText: "bird", Translation: "птица"},
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    []models.Word
		wantErr bool
	}{
		{
			name: "success, fewer than requested",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&expectedWords), gomock.Any(), "cat", 3).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						slice := dest.(*[]models.Word)
						*slice = append(*slice, expectedWords...)
						return nil
					})
			},
			want: expectedWords,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
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

			repo := newSharedMock(t, ctrl, tt.f)

			got, err := repo.Distractors(context.Background(), "cat", 3)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
