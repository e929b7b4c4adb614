package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"dogmatch/internal/domain/models"
	"dogmatch/internal/services/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=../../mocks/mock_remote_catalog.go -package=mocks dogmatch/internal/services/auth RemoteCatalog
type SessionStorage interface {
	SessionCreate(ctx context.Context, sess *session.Session) error
	SessionGet(ctx context.Context, id uuid.UUID) (*session.Session, error)
	SessionDelete(ctx context.Context, id uuid.UUID) error
}

// RemoteCatalog - клиент каталога одного пользователя, умеющий логиниться
type RemoteCatalog interface {
	session.Catalog
	Login(ctx context.Context, name, email string) error
}

// CatalogFactory создает отдельный клиент (и cookie jar) на каждую сессию
type CatalogFactory func() (RemoteCatalog, error)

type Authentication struct {
	storage    SessionStorage
	newCatalog CatalogFactory
	secretKey  []byte
	accessExp  time.Duration
	opts       session.Options
	log        *zerolog.Logger
	now        func() time.Time
}

func NewAuthentication(storage SessionStorage, newCatalog CatalogFactory, secretKey string, accessExp time.Duration, opts session.Options, log *zerolog.Logger) (*Authentication, error) {
	key, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil || len(key) < 32 {
		return nil, fmt.Errorf("invalid JWT secret key: must be at least 32 bytes when decoded")
	}
	if accessExp <= 0 {
		return nil, fmt.Errorf("session expiration must be positive, got %s", accessExp)
	}

	return &Authentication{
		storage:    storage,
		newCatalog: newCatalog,
		secretKey:  key,
		accessExp:  accessExp,
		opts:       opts,
		log:        log,
		now:        time.Now,
	}, nil
}

// Login authenticates against the catalog and opens a new session.
// Returns the session, its signed token and the token expiry.
func (a *Authentication) Login(ctx context.Context, name, email string) (*session.Session, string, time.Time, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, "", time.Time{}, fmt.Errorf("%w: name and email are required", models.ErrInvalidData)
	}

	catalog, err := a.newCatalog()
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to create catalog client: %w", err)
	}

	if err := catalog.Login(ctx, name, email); err != nil {
		return nil, "", time.Time{}, err
	}

	id := uuid.New()
	expiresAt := a.now().Add(a.accessExp).UTC()

	token, err := a.jwtGenerate(id, expiresAt)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	sess := session.New(id, name, expiresAt, catalog, a.log, a.opts)
	if err := a.storage.SessionCreate(ctx, sess); err != nil {
		sess.Close()
		return nil, "", time.Time{}, fmt.Errorf("failed to store session: %w", err)
	}

	a.log.Info().Str("session_id", id.String()).Str("name", name).Msg("session opened")
	return sess, token, expiresAt, nil
}

func (a *Authentication) ValidateAndGetSession(ctx context.Context, token string) (*session.Session, error) {
	id, err := a.getSessionID(token)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to validate token: %w", models.ErrUnauthorized, err)
	}

	sess, err := a.storage.SessionGet(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get session: %w", models.ErrUnauthorized, err)
	}
	return sess, nil
}

// Logout invalidates the remote credential first. If that fails the session stays.
func (a *Authentication) Logout(ctx context.Context, sess *session.Session) error {
	if err := sess.Logout(ctx); err != nil {
		return err
	}

	if err := a.storage.SessionDelete(ctx, sess.ID); err != nil && !errors.Is(err, models.ErrUnfound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	sess.Close()

	a.log.Info().Str("session_id", sess.ID.String()).Msg("session closed")
	return nil
}

func (a *Authentication) jwtGenerate(id uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   id.String(),
		IssuedAt:  jwt.NewNumericDate(a.now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secretKey)
}

func (a *Authentication) getSessionID(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return a.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, errors.New("token is not valid")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid session id in token: %w", err)
	}
	return id, nil
}
