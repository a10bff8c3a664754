package ratelimiter

import (
	"context"
	"dental-clinic-service/internal/app/contracts/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLimiter(redisRepo *mocks.RedisRepository) *AttemptLimiter {
	return NewAttemptLimiter(redisRepo, zap.NewNop(), "login:failed", 3, 15*time.Minute).(*AttemptLimiter)
}

func TestBlocked(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		blocked bool
	}{
		{name: "No failures", stored: "", blocked: false},
		{name: "Below limit", stored: "2", blocked: false},
		{name: "At limit", stored: "3", blocked: true},
		{name: "Above limit", stored: "7", blocked: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			redisRepo := new(mocks.RedisRepository)
			redisRepo.On("Get", mock.Anything, "login:failed:front@clinic.test").Return(tc.stored, nil)

			blocked, err := newTestLimiter(redisRepo).Blocked(context.Background(), " Front@Clinic.test ")
			require.NoError(t, err)
			assert.Equal(t, tc.blocked, blocked)
		})
	}
}

func TestRecordFailure(t *testing.T) {
	t.Run("First failure opens the window", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("Increment", mock.Anything, "login:failed:a@b.test").Return(int64(1), nil)
		redisRepo.On("Expire", mock.Anything, "login:failed:a@b.test", 15*time.Minute).Return(nil)

		count, err := newTestLimiter(redisRepo).RecordFailure(context.Background(), "a@b.test")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Later failures keep the window", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("Increment", mock.Anything, "login:failed:a@b.test").Return(int64(3), nil)

		count, err := newTestLimiter(redisRepo).RecordFailure(context.Background(), "a@b.test")
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		redisRepo.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReset(t *testing.T) {
	redisRepo := new(mocks.RedisRepository)
	redisRepo.On("Delete", mock.Anything, []string{"login:failed:a@b.test"}).Return(nil)

	require.NoError(t, newTestLimiter(redisRepo).Reset(context.Background(), "a@b.test"))
	redisRepo.AssertExpectations(t)
}
