package middlewares

import (
	"context"
	"dental-clinic-service/internal/app/services/shared/session"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const sessionLookupTimeout = 5 * time.Second

// Authenticate resolves the bearer token into the redis session and stores it in the context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix)
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), sessionLookupTimeout)
		defer cancel()

		currentSession, err := m.SessionService.GetSession(ctx, sessionID)
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), currentSession)))
	})
}

// Authorize checks the session role against the casbin policy. Policies are
// written without the endpoint prefix.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		currentSession, ok := session.FromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
			return
		}

		path := m.policyPath(r.URL.Path)
		allowed, err := m.Authorization.Enforce(currentSession.Role, path, r.Method)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !allowed {
			m.Log.Warn("Middlewares.Authorize permission denied",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingUserIDKey, currentSession.UserID),
				zap.String(constvars.LoggingRoleKey, currentSession.Role),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(nil, currentSession.Role, r.Method, path))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) policyPath(path string) string {
	prefix := "/" + strings.Trim(m.InternalConfig.App.EndpointPrefix, "/")
	if prefix != "/" {
		path = strings.TrimPrefix(path, prefix)
	}
	path = strings.TrimRight(path, "/")
	if path == "" {
		return "/"
	}
	return path
}
