package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dogmatch/internal/domain/models"
	"dogmatch/internal/services/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

/*
Хранилище сессий только в памяти процесса: фильтры и избранное
живут до выхода пользователя или истечения токена.
*/
type InMemory struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session.Session
	now      func() time.Time
}

func NewInMemory() *InMemory {
	return &InMemory{
		sessions: make(map[uuid.UUID]*session.Session),
		now:      time.Now,
	}
}

func (i *InMemory) SessionCreate(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.ID == uuid.Nil {
		return models.ErrInvalidData
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if _, exists := i.sessions[sess.ID]; exists {
		return fmt.Errorf("%w: session %s already exists", models.ErrInvalidData, sess.ID)
	}
	i.sessions[sess.ID] = sess
	return nil
}

// SessionGet returns a live session. An expired one is evicted and closed.
func (i *InMemory) SessionGet(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	i.mu.RLock()
	sess, ok := i.sessions[id]
	i.mu.RUnlock()

	if !ok {
		return nil, models.ErrUnfound
	}

	if sess.Expired(i.now()) {
		i.evict(id, sess)
		return nil, fmt.Errorf("%w: session expired", models.ErrUnfound)
	}
	return sess, nil
}

func (i *InMemory) SessionDelete(ctx context.Context, id uuid.UUID) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.sessions[id]; !ok {
		return models.ErrUnfound
	}
	delete(i.sessions, id)
	return nil
}

// DeleteExpired убирает все истекшие сессии и возвращает их количество
func (i *InMemory) DeleteExpired(ctx context.Context) int {
	now := i.now()

	i.mu.RLock()
	var expired []*session.Session
	for _, sess := range i.sessions {
		if sess.Expired(now) {
			expired = append(expired, sess)
		}
	}
	i.mu.RUnlock()

	for _, sess := range expired {
		i.evict(sess.ID, sess)
	}
	return len(expired)
}

func (i *InMemory) evict(id uuid.UUID, sess *session.Session) {
	i.mu.Lock()
	current, ok := i.sessions[id]
	if ok && current == sess {
		delete(i.sessions, id)
	}
	i.mu.Unlock()

	// Close ждет горутины поиска, поэтому вне блокировки
	if ok && current == sess {
		sess.Close()
	}
}

func (i *InMemory) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.sessions)
}

// RunSweeper periodically evicts expired sessions until ctx is done.
func (i *InMemory) RunSweeper(ctx context.Context, interval time.Duration, log *zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := i.DeleteExpired(ctx); n > 0 {
				log.Info().Int("evicted", n).Msg("expired sessions removed")
			}
		case <-ctx.Done():
			return
		}
	}
}

// CloseAll закрывает все сессии при остановке сервера
func (i *InMemory) CloseAll() {
	i.mu.Lock()
	sessions := i.sessions
	i.sessions = make(map[uuid.UUID]*session.Session)
	i.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
}
