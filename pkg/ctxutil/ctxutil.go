package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
	clientIPKey  ctxKey = "client_ip"
)

// WithActor stores the authenticated actor in the context.
func WithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// ActorFromCtx extracts the actor from the context.
// Returns false if the value is missing, has a nil ID, or is of the wrong type.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok || a.ID == uuid.Nil {
		return domain.Actor{}, false
	}
	return a, true
}

// UserIDFromCtx returns the ID of the actor in the context.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	a, ok := ActorFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return a.ID, true
}

// IsAdminCtx reports whether the actor in the context is an administrator.
func IsAdminCtx(ctx context.Context) bool {
	a, ok := ActorFromCtx(ctx)
	return ok && a.IsAdmin()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientIP stores the caller's address in the context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromCtx extracts the caller's address from the context.
func ClientIPFromCtx(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}
