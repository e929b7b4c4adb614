package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"dogmatch/internal/domain/models"
	"dogmatch/internal/mocks"
	"dogmatch/internal/services/session"
	"dogmatch/internal/storage/inmemory"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testKey = base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))

func newTestAuth(t *testing.T, catalog *mocks.MockRemoteCatalog) (*Authentication, *inmemory.InMemory) {
	t.Helper()
	store := inmemory.NewInMemory()
	t.Cleanup(store.CloseAll)

	log := zerolog.Nop()
	factory := func() (RemoteCatalog, error) { return catalog, nil }

	a, err := NewAuthentication(store, factory, testKey, time.Hour, session.Options{RequestTimeout: time.Second}, &log)
	require.NoError(t, err)
	return a, store
}

func newCatalogMock(t *testing.T) *mocks.MockRemoteCatalog {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockRemoteCatalog(ctrl)
	catalog.EXPECT().Search(gomock.Any(), gomock.Any()).Return(models.SearchResult{}, nil).AnyTimes()
	return catalog
}

func TestNewAuthentication(t *testing.T) {
	log := zerolog.Nop()
	factory := func() (RemoteCatalog, error) { return nil, errors.New("unused") }

	tests := []struct {
		name    string
		key     string
		exp     time.Duration
		wantErr bool
	}{
		{name: "валидный ключ", key: testKey, exp: time.Hour},
		{name: "не base64", key: "%%%", exp: time.Hour, wantErr: true},
		{name: "короткий ключ", key: base64.StdEncoding.EncodeToString([]byte("short")), exp: time.Hour, wantErr: true},
		{name: "нулевой срок", key: testKey, exp: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAuthentication(inmemory.NewInMemory(), factory, tt.key, tt.exp, session.Options{}, &log)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthentication_LoginAndValidate(t *testing.T) {
	catalog := newCatalogMock(t)
	catalog.EXPECT().Login(gomock.Any(), "Ann", "ann@example.com").Return(nil)

	a, store := newTestAuth(t, catalog)
	ctx := context.Background()

	sess, token, expiresAt, err := a.Login(ctx, " Ann ", "ann@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Ann", sess.UserName)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
	assert.Equal(t, 1, store.Len())

	got, err := a.ValidateAndGetSession(ctx, token)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestAuthentication_LoginErrors(t *testing.T) {
	t.Run("пустые поля", func(t *testing.T) {
		a, _ := newTestAuth(t, newCatalogMock(t))
		_, _, _, err := a.Login(context.Background(), "", "ann@example.com")
		assert.ErrorIs(t, err, models.ErrInvalidData)
	})

	t.Run("каталог отклонил", func(t *testing.T) {
		catalog := newCatalogMock(t)
		catalog.EXPECT().Login(gomock.Any(), "Ann", "ann@example.com").Return(models.ErrAuthentication)

		a, store := newTestAuth(t, catalog)
		_, _, _, err := a.Login(context.Background(), "Ann", "ann@example.com")
		assert.ErrorIs(t, err, models.ErrAuthentication)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("ошибка фабрики", func(t *testing.T) {
		store := inmemory.NewInMemory()
		log := zerolog.Nop()
		a, err := NewAuthentication(store, func() (RemoteCatalog, error) {
			return nil, errors.New("boom")
		}, testKey, time.Hour, session.Options{}, &log)
		require.NoError(t, err)

		_, _, _, err = a.Login(context.Background(), "Ann", "ann@example.com")
		assert.Error(t, err)
	})
}

func TestAuthentication_ValidateRejects(t *testing.T) {
	catalog := newCatalogMock(t)
	catalog.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	a, store := newTestAuth(t, catalog)
	ctx := context.Background()

	t.Run("мусорный токен", func(t *testing.T) {
		_, err := a.ValidateAndGetSession(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("чужой ключ", func(t *testing.T) {
		other, _ := newTestAuth(t, catalog)
		other.secretKey = []byte("ffffffffffffffffffffffffffffffff")
		_, token, _, err := other.Login(ctx, "Bob", "bob@example.com")
		require.NoError(t, err)

		_, err = a.ValidateAndGetSession(ctx, token)
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("истекший токен", func(t *testing.T) {
		_, token, _, err := a.Login(ctx, "Ann", "ann@example.com")
		require.NoError(t, err)

		a.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { a.now = time.Now }()

		_, err = a.ValidateAndGetSession(ctx, token)
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("сессия удалена", func(t *testing.T) {
		sess, token, _, err := a.Login(ctx, "Ann", "ann@example.com")
		require.NoError(t, err)
		require.NoError(t, store.SessionDelete(ctx, sess.ID))
		sess.Close()

		_, err = a.ValidateAndGetSession(ctx, token)
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})
}

func TestAuthentication_Logout(t *testing.T) {
	catalog := newCatalogMock(t)
	catalog.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	gomock.InOrder(
		catalog.EXPECT().Logout(gomock.Any()).Return(models.ErrNetwork),
		catalog.EXPECT().Logout(gomock.Any()).Return(nil),
	)

	a, store := newTestAuth(t, catalog)
	ctx := context.Background()

	sess, token, _, err := a.Login(ctx, "Ann", "ann@example.com")
	require.NoError(t, err)

	err = a.Logout(ctx, sess)
	require.ErrorIs(t, err, models.ErrNetwork)
	_, err = a.ValidateAndGetSession(ctx, token)
	require.NoError(t, err, "failed logout keeps the session")

	require.NoError(t, a.Logout(ctx, sess))
	assert.Equal(t, 0, store.Len())
	_, err = a.ValidateAndGetSession(ctx, token)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}
