package models

import "context"

// contextKey - приватный тип для ключей контекста, чтобы избежать коллизий.
type contextKey string

const (
	// IdentityContextKey хранит AuthIdentity в контексте запроса.
	IdentityContextKey contextKey = "authIdentity"
)

// WithIdentity returns a copy of ctx carrying the caller identity.
func WithIdentity(ctx context.Context, identity AuthIdentity) context.Context {
	return context.WithValue(ctx, IdentityContextKey, identity)
}

// IdentityFromContext извлекает AuthIdentity из контекста.
// Возвращает false, если ключ не найден или значение другого типа.
func IdentityFromContext(ctx context.Context) (AuthIdentity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(AuthIdentity)
	return identity, ok
}
