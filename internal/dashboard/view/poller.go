package view

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Poller repeats a task at a fixed interval between Start and Stop. Runs
// never overlap; a tick that finds the previous run busy is skipped.
type Poller struct {
	mu        sync.Mutex
	interval  time.Duration
	task      func(ctx context.Context)
	scheduler gocron.Scheduler
}

func NewPoller(interval time.Duration, task func(ctx context.Context)) *Poller {
	return &Poller{interval: interval, task: task}
}

func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.scheduler != nil {
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(p.interval),
		gocron.NewTask(func() { p.task(ctx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	scheduler.Start()
	p.scheduler = scheduler
	return nil
}

// Stop waits for a running task to finish. Calling it twice is fine.
func (p *Poller) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.scheduler == nil {
		return nil
	}
	err := p.scheduler.Shutdown()
	p.scheduler = nil
	return err
}

func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scheduler != nil
}
