// Package scheduler drives the dispatcher and the reconciler on fixed
// intervals.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"pagecast/internal/config/configs"
	"pagecast/internal/core/domain"
	"pagecast/internal/core/port"
)

// Scheduler owns a cron instance with two entries: the dispatch tick and the
// stale-run reconciler. Overlapping runs of the same entry are skipped, so a
// slow broadcast delays the next tick instead of racing it.
type Scheduler struct {
	mu  sync.Mutex
	c   *cron.Cron
	log *slog.Logger

	dispatch  port.DispatchUseCase
	reconcile port.ReconcileUseCase

	ctx    context.Context
	cancel context.CancelFunc
}

func New(cfg configs.Dispatch, dispatch port.DispatchUseCase, reconcile port.ReconcileUseCase, log *slog.Logger) *Scheduler {
	cl := cronLogger{log: log}
	s := &Scheduler{
		c: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		log:       log,
		dispatch:  dispatch,
		reconcile: reconcile,
	}
	s.c.Schedule(cron.Every(cfg.TickInterval), cron.FuncJob(s.Tick))
	if reconcile != nil && cfg.ReconcileInterval > 0 {
		s.c.Schedule(cron.Every(cfg.ReconcileInterval), cron.FuncJob(s.Reconcile))
	}
	return s
}

// Start runs the entries until Stop. Jobs receive a context derived from
// ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.c.Start()
	s.log.Info("scheduler started", slog.Int("entries", len(s.c.Entries())))
}

// Stop prevents new runs and waits for running jobs. Jobs still running
// after grace have their context cancelled.
func (s *Scheduler) Stop(grace time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return
	}
	done := s.c.Stop().Done()
	select {
	case <-done:
	case <-time.After(grace):
		s.log.Warn("scheduler stop timed out, cancelling running jobs")
		s.cancel()
		<-done
	}
	s.cancel()
	s.cancel = nil
	s.log.Info("scheduler stopped")
}

// jobContext is read without the lock; ctx is set before the cron goroutine
// starts and Stop may hold the lock while waiting for jobs.
func (s *Scheduler) jobContext() context.Context {
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

// Tick runs one dispatch invocation.
func (s *Scheduler) Tick() {
	res, err := s.dispatch.Tick(s.jobContext())
	if err != nil {
		s.log.Error("dispatch tick failed", slog.Any("error", err), slog.String("campaign_id", res.CampaignID.String()))
		return
	}
	if res.Outcome == domain.TickIdle {
		return
	}
	s.log.Info("dispatch tick",
		slog.String("outcome", string(res.Outcome)),
		slog.String("campaign_id", res.CampaignID.String()),
		slog.Int("sent", res.Sent),
		slog.Int("failed", res.Failed),
		slog.Duration("elapsed", res.Elapsed),
	)
}

// Reconcile runs one stale-run sweep.
func (s *Scheduler) Reconcile() {
	n, err := s.reconcile.Run(s.jobContext())
	if err != nil {
		s.log.Error("reconcile failed", slog.Any("error", err))
		return
	}
	if n > 0 {
		s.log.Warn("stalled campaigns failed", slog.Int("count", n))
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error("cron: "+msg, append([]interface{}{slog.Any("error", err)}, keysAndValues...)...)
}
