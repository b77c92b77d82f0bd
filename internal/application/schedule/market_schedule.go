package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"ecoscope/internal/domain/usecase/market"
	"ecoscope/pkg/log"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/redis"
)

const marketSyncTask = "market-sync"

// MarketSchedulerConfig holds configuration for the market sync scheduler
type MarketSchedulerConfig struct {
	CronExpression string
	LockTTL        time.Duration
	RunOnStart     bool
}

// MarketScheduler pulls the Disdagkopukm feeds into market_prices on a cron.
// When a redis client is present only one instance syncs at a time.
type MarketScheduler struct {
	cron        *cron.Cron
	useCase     market.UseCase
	redisClient *redis.Client
	config      MarketSchedulerConfig
}

// NewMarketScheduler creates the scheduler; redisClient may be nil.
func NewMarketScheduler(useCase market.UseCase, redisClient *redis.Client, config MarketSchedulerConfig) *MarketScheduler {
	return &MarketScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// InitMarketScheduleTasks registers the sync job and starts the cron
func (s *MarketScheduler) InitMarketScheduleTasks(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.config.CronExpression, func() {
		_ = s.ExecuteScheduledTask(ctx)
	})
	if err != nil {
		return err
	}

	if s.config.RunOnStart {
		go func() { _ = s.ExecuteScheduledTask(ctx) }()
	}

	s.cron.Start()
	log.Infof("Market sync scheduler started with cron expression: %s", s.config.CronExpression)
	return nil
}

// ExecuteScheduledTask runs one sync. A lock held by another instance is
// not an error.
func (s *MarketScheduler) ExecuteScheduledTask(ctx context.Context) error {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("schedule.start", marketSyncTask), zap.String("request_id", requestID))

	run := func() error {
		result, err := s.useCase.Sync(ctx)
		if err != nil {
			return err
		}
		log.Info(msg.GetMessage("market.sync-done", result.TotalFetched, result.TotalSaved), zap.String("request_id", requestID))
		return nil
	}

	var err error
	if s.redisClient == nil {
		err = run()
	} else {
		err = redis.LockWithFunc(ctx, s.redisClient, "sync", s.lockOptions(), run)
	}

	switch {
	case errors.Is(err, redis.ErrLockNotAcquired):
		log.Info(msg.GetMessage("market.sync-locked"), zap.String("request_id", requestID))
		return nil
	case err != nil:
		log.Error(msg.GetMessage("market.sync-failed"), zap.String("request_id", requestID), zap.Error(err))
		return err
	}

	log.Info(msg.GetMessage("schedule.end", marketSyncTask), zap.String("request_id", requestID))
	return nil
}

// Stop waits for a running job and stops the cron
func (s *MarketScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *MarketScheduler) lockOptions() *redis.LockOptions {
	ttl := s.config.LockTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return redis.NewLockOptions().WithTTL(ttl).WithLockNamespace("market")
}
