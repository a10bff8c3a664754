package scheduler

import (
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	fallbackCronSpec = "@hourly"
	defaultLockTTL   = 5 * time.Minute
)

// Job is a periodic task that must run on a single instance at a time.
type Job struct {
	Name    string
	Spec    string
	LockKey string
	Run     func(ctx context.Context) (int, error)
}

// Scheduler runs registered jobs on their cron specs behind a redis leader lock.
type Scheduler struct {
	log     *zap.Logger
	locker  contracts.LockerService
	lockTTL time.Duration

	mu     sync.Mutex
	jobs   []Job
	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

func NewScheduler(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService) *Scheduler {
	ttl := defaultLockTTL
	if cfg != nil && cfg.Worker.LockTTLInSeconds > 0 {
		ttl = time.Duration(cfg.Worker.LockTTLInSeconds) * time.Second
	}
	return &Scheduler{log: log, locker: lockerSvc, lockTTL: ttl}
}

func (s *Scheduler) Register(jobs ...Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, jobs...)
}

// Start schedules every registered job. A job with an invalid spec falls back to hourly.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runCtx, s.cancel = context.WithCancel(ctx)
	c := cron.New()
	for _, job := range s.jobs {
		job := job
		_, err := c.AddFunc(job.Spec, func() { s.runOnce(s.runCtx, job) })
		if err != nil {
			s.log.Warn("scheduler: invalid cron spec, falling back to @hourly",
				zap.String(constvars.LoggingJobKey, job.Name),
				zap.String(constvars.LoggingCronSpecKey, job.Spec),
				zap.Error(err),
			)
			_, _ = c.AddFunc(fallbackCronSpec, func() { s.runOnce(s.runCtx, job) })
		}
	}
	c.Start()
	s.cron = c
	s.log.Info("scheduler started", zap.Int(constvars.LoggingCountKey, len(s.jobs)))
}

// Stop cancels in-flight runs and waits for running jobs to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
		s.cron = nil
	}
}

// runOnce reports whether this instance held the lock and ran the job.
func (s *Scheduler) runOnce(ctx context.Context, job Job) bool {
	acquired, token, err := s.locker.TryLock(ctx, job.LockKey, s.lockTTL)
	if err != nil {
		s.log.Warn("scheduler: leader lock attempt failed",
			zap.String(constvars.LoggingJobKey, job.Name),
			zap.Error(err),
		)
		return false
	}
	if !acquired {
		s.log.Info("scheduler: leader lock held by another instance",
			zap.String(constvars.LoggingJobKey, job.Name),
		)
		return false
	}
	defer func() {
		if err := s.locker.Unlock(context.WithoutCancel(ctx), job.LockKey, token); err != nil {
			s.log.Warn("scheduler: failed to release leader lock",
				zap.String(constvars.LoggingJobKey, job.Name),
				zap.Error(err),
			)
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go s.refresh(refreshCtx, job, token)

	count, err := job.Run(ctx)
	if err != nil {
		s.log.Error("scheduler: job failed",
			zap.String(constvars.LoggingJobKey, job.Name),
			zap.Error(err),
		)
		return true
	}

	s.log.Info("scheduler: job finished",
		zap.String(constvars.LoggingJobKey, job.Name),
		zap.Int(constvars.LoggingCountKey, count),
	)
	return true
}

func (s *Scheduler) refresh(ctx context.Context, job Job, token string) {
	tick := time.NewTicker(s.lockTTL / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := s.locker.Refresh(ctx, job.LockKey, token, s.lockTTL); err != nil {
				s.log.Warn("scheduler: failed to refresh leader lock",
					zap.String(constvars.LoggingJobKey, job.Name),
					zap.Error(err),
				)
			}
		}
	}
}
