package job

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Func is a unit of background work
type Func func(ctx context.Context) error

// Scheduler runs named jobs on cron specs
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger

	mu   sync.Mutex
	jobs map[string]Func

	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a scheduler. Overlapping runs of the same job are skipped
// and panics inside a job are logged.
func NewScheduler(logger *zap.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	cl := cronLogger{logger.Sugar()}

	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			// Recover must wrap the job inside SkipIfStillRunning
			cron.WithChain(cron.SkipIfStillRunning(cl), cron.Recover(cl)),
		),
		logger: logger,
		jobs:   make(map[string]Func),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Add registers fn under name on spec. An empty spec registers the job for Run
// only, so it never fires on its own.
func (s *Scheduler) Add(name, spec string, fn Func) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[name]; ok {
		return fmt.Errorf("job %q already registered", name)
	}

	if spec != "" {
		if _, err := s.cron.AddFunc(spec, func() { s.execute(s.ctx, name, fn) }); err != nil {
			return fmt.Errorf("job %q: invalid spec %q: %w", name, spec, err)
		}
	}

	s.jobs[name] = fn
	s.logger.Info("Job registered", zap.String("job", name), zap.String("spec", spec))
	return nil
}

// Run executes a registered job immediately on the calling goroutine
func (s *Scheduler) Run(ctx context.Context, name string) error {
	s.mu.Lock()
	fn, ok := s.jobs[name]
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("job %q not registered", name)
	}
	return s.execute(ctx, name, fn)
}

// Start begins firing jobs on their schedules
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) execute(ctx context.Context, name string, fn Func) error {
	start := time.Now()
	err := fn(ctx)
	if err != nil {
		s.logger.Error("Job failed",
			zap.String("job", name),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return err
	}
	s.logger.Debug("Job finished",
		zap.String("job", name),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
