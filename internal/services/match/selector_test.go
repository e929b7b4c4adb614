package match

import (
	"context"
	"testing"

	"dogmatch/internal/domain/models"
	"dogmatch/internal/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSelector_Generate(t *testing.T) {
	log := zerolog.Nop()

	tests := []struct {
		name        string
		previous    string
		favorites   []string
		mockSetup   func(m *mocks.MockMatcher)
		want        string
		wantCurrent string
		expectedErr error
	}{
		{
			name:      "Успешный подбор",
			favorites: []string{"A", "B"},
			mockSetup: func(m *mocks.MockMatcher) {
				m.EXPECT().Match(gomock.Any(), []string{"A", "B"}).Return("A", nil)
			},
			want:        "A",
			wantCurrent: "A",
		},
		{
			name:      "Новый матч заменяет предыдущий",
			previous:  "OLD",
			favorites: []string{"C"},
			mockSetup: func(m *mocks.MockMatcher) {
				m.EXPECT().Match(gomock.Any(), []string{"C"}).Return("C", nil)
			},
			want:        "C",
			wantCurrent: "C",
		},
		{
			name:        "Пустое избранное",
			previous:    "A",
			favorites:   nil,
			mockSetup:   func(m *mocks.MockMatcher) {},
			wantCurrent: "A",
			expectedErr: models.ErrPrecondition,
		},
		{
			name:      "Ошибка сервиса сохраняет предыдущий матч",
			previous:  "A",
			favorites: []string{"B"},
			mockSetup: func(m *mocks.MockMatcher) {
				m.EXPECT().Match(gomock.Any(), []string{"B"}).Return("", models.ErrNetwork)
			},
			wantCurrent: "A",
			expectedErr: models.ErrNetwork,
		},
		{
			name:      "Пустой ответ считается ошибкой",
			favorites: []string{"B"},
			mockSetup: func(m *mocks.MockMatcher) {
				m.EXPECT().Match(gomock.Any(), []string{"B"}).Return("", nil)
			},
			wantCurrent: "",
			expectedErr: models.ErrNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			matcher := mocks.NewMockMatcher(ctrl)
			s := NewSelector(matcher, &log)
			s.current = tt.previous

			tt.mockSetup(matcher)

			got, err := s.Generate(context.Background(), tt.favorites)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantCurrent, s.Current())
		})
	}
}

func TestSelector_MatchThenEmptyFavorites(t *testing.T) {
	log := zerolog.Nop()
	ctrl := gomock.NewController(t)
	matcher := mocks.NewMockMatcher(ctrl)
	matcher.EXPECT().Match(gomock.Any(), []string{"A", "B"}).Return("A", nil)

	s := NewSelector(matcher, &log)

	got, err := s.Generate(context.Background(), []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	_, err = s.Generate(context.Background(), []string{})
	require.ErrorIs(t, err, models.ErrPrecondition)
	assert.Equal(t, "A", s.Current())
}
