package contracts

import (
	"context"
	"time"
)

// LockerService guards cron jobs so only one replica runs a job at a time.
// A lock belongs to the token returned by TryLock.
type LockerService interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (acquired bool, token string, err error)
	Unlock(ctx context.Context, key, token string) error
	// Refresh extends the lock while a long job is still running.
	Refresh(ctx context.Context, key, token string, ttl time.Duration) error
}
