// Package jobs runs periodic maintenance inside the API process.
package jobs

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var recountRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "nailnav_recount_runs_total",
	Help: "City salon_count recount runs by result.",
}, []string{"result"})

// Recounter recomputes cities.salon_count.
type Recounter interface {
	RecountCities(ctx context.Context) error
}

type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

// NewScheduler registers the recount job on spec (standard cron syntax or
// descriptors such as "@every 1h").
func NewScheduler(spec string, r Recounter, log *zap.Logger) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	if _, err := c.AddFunc(spec, func() { RunRecount(r, log) }); err != nil {
		return nil, err
	}
	return &Scheduler{cron: c, log: log}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// RunRecount is the scheduled entry point; failures are logged and the next
// tick tries again.
func RunRecount(r Recounter, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := Recount(ctx, r, log); err != nil {
		log.Warn("city recount failed", zap.Error(err))
	}
}

// Recount runs one recount and records its outcome.
func Recount(ctx context.Context, r Recounter, log *zap.Logger) error {
	start := time.Now()
	if err := r.RecountCities(ctx); err != nil {
		recountRuns.WithLabelValues("error").Inc()
		return err
	}
	recountRuns.WithLabelValues("ok").Inc()
	log.Info("city recount done", zap.Duration("took", time.Since(start)))
	return nil
}
