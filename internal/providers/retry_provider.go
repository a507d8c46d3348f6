package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/triple-crown/internal/domain/seasons"
	"github.com/preston-bernstein/triple-crown/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 5 * time.Second
)

// retryingProvider wraps a SeasonProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       SeasonProvider
	logger      *slog.Logger
	name        string
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
// Permanent failures (missing files, bad JSON, 4xx) are returned without retrying.
func NewRetryingProvider(inner SeasonProvider, logger *slog.Logger, name string, maxAttempts int, initial time.Duration) SeasonProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		name:        name,
		maxAttempts: maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) Name() string { return r.name }

func (r *retryingProvider) Location(name string) string { return r.inner.Location(name) }

func (r *retryingProvider) FetchManifest(ctx context.Context) (seasons.Manifest, error) {
	return retry(ctx, r, seasons.ManifestFile, func() (seasons.Manifest, error) {
		return r.inner.FetchManifest(ctx)
	})
}

func (r *retryingProvider) FetchSeason(ctx context.Context, name string) (seasons.Record, error) {
	return retry(ctx, r, name, func() (seasons.Record, error) {
		return r.inner.FetchSeason(ctx, name)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, target string, fetch func() (T, error)) (T, error) {
	attempt := 0
	op := func() (T, error) {
		attempt++
		v, err := fetch()
		if err != nil && IsPermanent(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}
	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
			logging.FieldPath, target,
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)), ctx)
	v, err := backoff.RetryNotifyWithData(op, policy, notify)
	if err != nil && attempt >= r.maxAttempts && !IsPermanent(err) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
			logging.FieldPath, target, "attempts", attempt, "error", err)
	}
	return v, err
}
