package scheduler

import (
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts/mocks"
	"dental-clinic-service/internal/pkg/constvars"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testLockKey = "worker:test:leader"

func testConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.Worker.LockTTLInSeconds = 60
	cfg.Notification.ReminderCronSpec = "@every 15m"
	cfg.Inventory.LowStockCronSpec = "@daily"
	cfg.Inventory.ExpiryCronSpec = "@weekly"
	return cfg
}

func TestRunOnce(t *testing.T) {
	t.Run("Leader runs the job and releases the lock", func(t *testing.T) {
		locker := new(mocks.LockerService)
		locker.On("TryLock", mock.Anything, testLockKey, time.Minute).Return(true, "token-1", nil)
		locker.On("Unlock", mock.Anything, testLockKey, "token-1").Return(nil)
		locker.On("Refresh", mock.Anything, testLockKey, "token-1", time.Minute).Return(nil).Maybe()

		calls := 0
		job := Job{Name: "test", LockKey: testLockKey, Run: func(ctx context.Context) (int, error) {
			calls++
			return 3, nil
		}}

		ran := NewScheduler(zap.NewNop(), testConfig(), locker).runOnce(context.Background(), job)
		assert.True(t, ran)
		assert.Equal(t, 1, calls)
		locker.AssertCalled(t, "Unlock", mock.Anything, testLockKey, "token-1")
	})

	t.Run("Follower skips the job", func(t *testing.T) {
		locker := new(mocks.LockerService)
		locker.On("TryLock", mock.Anything, testLockKey, time.Minute).Return(false, "", nil)

		calls := 0
		job := Job{Name: "test", LockKey: testLockKey, Run: func(ctx context.Context) (int, error) {
			calls++
			return 0, nil
		}}

		ran := NewScheduler(zap.NewNop(), testConfig(), locker).runOnce(context.Background(), job)
		assert.False(t, ran)
		assert.Zero(t, calls)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lock error skips the job", func(t *testing.T) {
		locker := new(mocks.LockerService)
		locker.On("TryLock", mock.Anything, testLockKey, time.Minute).Return(false, "", errors.New("redis down"))

		job := Job{Name: "test", LockKey: testLockKey, Run: func(ctx context.Context) (int, error) {
			t.Fatal("job must not run")
			return 0, nil
		}}

		assert.False(t, NewScheduler(zap.NewNop(), testConfig(), locker).runOnce(context.Background(), job))
	})

	t.Run("Failing job still releases the lock", func(t *testing.T) {
		locker := new(mocks.LockerService)
		locker.On("TryLock", mock.Anything, testLockKey, time.Minute).Return(true, "token-2", nil)
		locker.On("Unlock", mock.Anything, testLockKey, "token-2").Return(nil)
		locker.On("Refresh", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

		job := Job{Name: "test", LockKey: testLockKey, Run: func(ctx context.Context) (int, error) {
			return 0, errors.New("boom")
		}}

		assert.True(t, NewScheduler(zap.NewNop(), testConfig(), locker).runOnce(context.Background(), job))
		locker.AssertExpectations(t)
	})
}

func TestNewSchedulerLockTTL(t *testing.T) {
	assert.Equal(t, time.Minute, NewScheduler(zap.NewNop(), testConfig(), nil).lockTTL)
	assert.Equal(t, defaultLockTTL, NewScheduler(zap.NewNop(), &config.InternalConfig{}, nil).lockTTL)
}

func TestStartAndStop(t *testing.T) {
	s := NewScheduler(zap.NewNop(), testConfig(), new(mocks.LockerService))
	s.Register(
		Job{Name: "valid", Spec: "@daily", LockKey: testLockKey, Run: func(ctx context.Context) (int, error) { return 0, nil }},
		Job{Name: "invalid", Spec: "not a spec", LockKey: testLockKey, Run: func(ctx context.Context) (int, error) { return 0, nil }},
	)

	s.Start(context.Background())
	require.NotNil(t, s.cron)
	assert.Len(t, s.cron.Entries(), 2)

	s.Stop()
	assert.Nil(t, s.cron)
	assert.Error(t, s.runCtx.Err())
}

func TestClinicJobs(t *testing.T) {
	appointments := new(mocks.AppointmentUsecase)
	appointments.On("SendReminders", mock.Anything).Return(2, nil)
	inventory := new(mocks.InventoryUsecase)
	inventory.On("ScanLowStock", mock.Anything).Return(1, nil)
	inventory.On("ScanExpiringBatches", mock.Anything).Return(4, nil)

	jobs := ClinicJobs(testConfig(), appointments, inventory)
	require.Len(t, jobs, 3)

	assert.Equal(t, constvars.RedisKeyReminderWorker, jobs[0].LockKey)
	assert.Equal(t, "@every 15m", jobs[0].Spec)
	assert.Equal(t, constvars.RedisKeyStockAlertWorker, jobs[1].LockKey)
	assert.Equal(t, constvars.RedisKeyExpiryAlertWorker, jobs[2].LockKey)

	counts := make([]int, 0, len(jobs))
	for _, job := range jobs {
		n, err := job.Run(context.Background())
		require.NoError(t, err)
		counts = append(counts, n)
	}
	assert.Equal(t, []int{2, 1, 4}, counts)
}
