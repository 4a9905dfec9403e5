// Package lifecycle runs the foreground game loop with signal handling and
// ordered teardown of the resources it holds.
package lifecycle

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Task is the foreground work. It must return promptly once ctx is done.
type Task func(ctx context.Context) error

// Lifecycle runs one Task and releases registered resources afterwards.
// Resources are released in reverse registration order.
type Lifecycle struct {
	logger   *zap.Logger
	signals  []os.Signal
	grace    time.Duration
	mu       sync.Mutex
	cleanups []namedCleanup
}

type namedCleanup struct {
	name string
	fn   func()
}

// Option configures a Lifecycle.
type Option func(*Lifecycle)

// WithSignals replaces the signals that cancel the task. The default is
// SIGINT and SIGTERM.
func WithSignals(sigs ...os.Signal) Option {
	return func(l *Lifecycle) { l.signals = sigs }
}

// WithGrace sets how long Run waits for the task to return after
// cancellation. The default is two seconds.
func WithGrace(d time.Duration) Option {
	return func(l *Lifecycle) { l.grace = d }
}

// New creates a Lifecycle.
//
// Precondition: logger must be non-nil.
func New(logger *zap.Logger, opts ...Option) *Lifecycle {
	l := &Lifecycle{
		logger:  logger,
		signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		grace:   2 * time.Second,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// OnShutdown registers fn to run when Run returns.
//
// Precondition: name must be non-empty; fn must be non-nil.
func (l *Lifecycle) OnShutdown(name string, fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cleanups = append(l.cleanups, namedCleanup{name: name, fn: fn})
}

// Run executes task with a context that is cancelled on a termination signal
// or when ctx is done, then runs every shutdown hook. A task still blocked
// (for example on terminal input) when the grace period after cancellation
// expires is abandoned and ctx.Err() is returned.
//
// Postcondition: every registered hook has run when Run returns; the task's
// error is returned wrapped with name.
func (l *Lifecycle) Run(ctx context.Context, name string, task Task) error {
	start := time.Now()
	ctx, stop := signal.NotifyContext(ctx, l.signals...)
	defer stop()
	defer l.shutdown()

	l.logger.Info("starting", zap.String("task", name))
	done := make(chan error, 1)
	go func() { done <- task(ctx) }()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		grace := time.NewTimer(l.grace)
		select {
		case err = <-done:
		case <-grace.C:
			l.logger.Warn("task did not stop within grace period", zap.String("task", name))
			err = ctx.Err()
		}
		grace.Stop()
	}
	switch {
	case err != nil && ctx.Err() != nil:
		l.logger.Info("interrupted, shutting down",
			zap.String("task", name),
			zap.Duration("uptime", time.Since(start)),
		)
	case err != nil:
		l.logger.Error("task failed",
			zap.String("task", name),
			zap.Error(err),
			zap.Duration("uptime", time.Since(start)),
		)
	default:
		l.logger.Info("task finished",
			zap.String("task", name),
			zap.Duration("uptime", time.Since(start)),
		)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (l *Lifecycle) shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	shutdownStart := time.Now()
	for i := len(l.cleanups) - 1; i >= 0; i-- {
		c := l.cleanups[i]
		c.fn()
		l.logger.Debug("released", zap.String("resource", c.name))
	}
	l.logger.Info("shutdown complete",
		zap.Duration("shutdown_elapsed", time.Since(shutdownStart)),
	)
}
