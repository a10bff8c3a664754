package session

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
)

const systemActor = "system"

func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
}

func FromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session, ok && session != nil
}

// ActorFromContext returns the id of the staff member behind the request,
// or "system" for scheduled jobs.
func ActorFromContext(ctx context.Context) string {
	if session, ok := FromContext(ctx); ok {
		return session.UserID
	}
	return systemActor
}
