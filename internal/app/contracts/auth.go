package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	Me(ctx context.Context, session *models.Session) (*responses.User, error)
}

type AuthorizationService interface {
	Enforce(role, path, method string) (bool, error)
}

// AttemptLimiter counts failed attempts per resource inside a fixed window.
type AttemptLimiter interface {
	Blocked(ctx context.Context, resource string) (bool, error)
	RecordFailure(ctx context.Context, resource string) (int64, error)
	Reset(ctx context.Context, resource string) error
}
