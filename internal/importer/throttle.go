package importer

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle is consulted after every processed row.
type Throttle interface {
	Wait(ctx context.Context, processed int) error
}

// Sleeper pauses for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

func SleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

const (
	DefaultBatchSize  = 50
	DefaultBatchPause = time.Second
)

// BatchThrottle pauses for Pause after every Every rows.
type BatchThrottle struct {
	Every int
	Pause time.Duration
	Sleep Sleeper
}

func NewBatchThrottle(every int, pause time.Duration) *BatchThrottle {
	return &BatchThrottle{Every: every, Pause: pause, Sleep: SleepContext}
}

func (t *BatchThrottle) Wait(ctx context.Context, processed int) error {
	if t.Every <= 0 || processed == 0 || processed%t.Every != 0 {
		return nil
	}
	sleep := t.Sleep
	if sleep == nil {
		sleep = SleepContext
	}
	return sleep(ctx, t.Pause)
}

// RateThrottle spaces rows with a token bucket.
type RateThrottle struct {
	limiter *rate.Limiter
}

func NewRateThrottle(rps float64, burst int) *RateThrottle {
	if burst < 1 {
		burst = 1
	}
	return &RateThrottle{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (t *RateThrottle) Wait(ctx context.Context, _ int) error {
	return t.limiter.Wait(ctx)
}

type noThrottle struct{}

func (noThrottle) Wait(context.Context, int) error { return nil }

// NoThrottle never pauses.
var NoThrottle Throttle = noThrottle{}
