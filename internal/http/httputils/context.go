package httputils

import "context"

type ctxKey int

const sessionKey ctxKey = iota

// WithSession кладет сессию пользователя в контекст запроса
func WithSession(ctx context.Context, sess any) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionAs достает сессию из контекста, приводя ее к нужному хендлеру интерфейсу
func SessionAs[T any](ctx context.Context) (T, bool) {
	sess, ok := ctx.Value(sessionKey).(T)
	return sess, ok
}
