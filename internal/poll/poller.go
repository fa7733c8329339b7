// Package poll approximates server push by periodically re-reading the
// backend's status, events feed and file-refresh progress. Each poll is an
// independent idempotent read; loops stop with the context they were
// started with.
package poll

import (
	"context"
	"time"

	homearc "github.com/homearc/homearc"
	"github.com/homearc/homearc/internal/api"
	"github.com/homearc/homearc/internal/notify"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Backend is the slice of the api client the poller reads from.
type Backend interface {
	GetStatus(ctx context.Context) (api.StatusReport, error)
	GetEvents(ctx context.Context, after time.Time) (api.EventsFeed, error)
	GetRefreshProgress(ctx context.Context) (api.RefreshProgress, error)
}

var _ Backend = (*api.Client)(nil)

// Poller runs the poll loops and publishes results into its Store. Backend
// events with warn/error severity are forwarded to the notifier so they
// surface as toasts.
type Poller struct {
	backend  Backend
	store    *Store
	notifier notify.Notifier
	logger   *zerolog.Logger

	// limiter caps the aggregate poll frequency across all loops so that
	// misconfigured intervals cannot hammer the backend.
	limiter *rate.Limiter

	statusInterval   time.Duration
	eventInterval    time.Duration
	progressInterval time.Duration

	// watermark is the server clock from the last events poll; only events
	// after it are requested next time. Owned by the events loop.
	watermark time.Time
}

func New(backend Backend, store *Store, notifier notify.Notifier, logger *zerolog.Logger) *Poller {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Poller{
		backend:          backend,
		store:            store,
		notifier:         notifier,
		logger:           logger,
		limiter:          rate.NewLimiter(rate.Limit(5), 5),
		statusInterval:   homearc.StatusPollInterval,
		eventInterval:    homearc.EventPollInterval,
		progressInterval: homearc.ProgressPollInterval,
	}
}

// Start launches the poll loops and returns immediately. The loops stop when
// ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	go p.loop(ctx, p.statusInterval, p.pollStatus)
	go p.loop(ctx, p.eventInterval, p.pollEvents)
	go p.loop(ctx, p.progressInterval, p.pollProgress)
}

func (p *Poller) loop(ctx context.Context, interval time.Duration, poll func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := p.limiter.Wait(ctx); err != nil {
			return
		}
		poll(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *Poller) pollStatus(ctx context.Context) {
	status, err := p.backend.GetStatus(ctx)
	if err != nil {
		p.store.setError(err)
		p.logger.Warn().Err(err).Msg("status poll failed")
		return
	}
	p.store.setStatus(status)
}

func (p *Poller) pollEvents(ctx context.Context) {
	feed, err := p.backend.GetEvents(ctx, p.watermark)
	if err != nil {
		p.store.setError(err)
		p.logger.Warn().Err(err).Msg("events poll failed")
		return
	}
	if !feed.Now.IsZero() {
		p.watermark = feed.Now
	}

	p.store.appendEvents(feed.Events)
	for _, event := range feed.Events {
		if !homearc.ValidEventLevels[event.Level] {
			p.logger.Warn().Str("level", event.Level).Str("event", event.Event).
				Msg("event with unknown severity level")
			continue
		}
		switch event.Level {
		case "warn":
			p.notifier.Notify(notify.New(notify.LevelWarning, event.Subject, event.Message))
		case "error":
			p.notifier.Notify(notify.New(notify.LevelError, event.Subject, event.Message))
		}
	}
}

func (p *Poller) pollProgress(ctx context.Context) {
	progress, err := p.backend.GetRefreshProgress(ctx)
	if err != nil {
		p.store.setError(err)
		p.logger.Warn().Err(err).Msg("refresh progress poll failed")
		return
	}
	p.store.setProgress(progress)
}
