package notify

import (
	"context"
	"sync"
	"time"

	"github.com/sabhahq/sabha/internal/api"
	"github.com/sabhahq/sabha/internal/errors"
	"github.com/sabhahq/sabha/internal/log"
)

// Feed is the backend surface the poller consumes. Satisfied by
// *api.Client.
type Feed interface {
	Notifications(ctx context.Context) ([]api.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// Poller keeps a local cache of the notification feed, refreshed on a
// fixed interval. Each refresh replaces the cached list wholesale; the
// feed is small enough that incremental merging buys nothing.
type Poller struct {
	feed     Feed
	logger   *log.Logger
	interval time.Duration

	mu    sync.Mutex
	items []api.Notification

	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller creates a poller; an interval of zero or less falls back to
// 30 seconds.
func NewPoller(feed Feed, interval time.Duration, logger *log.Logger) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{
		feed:     feed,
		logger:   logger,
		interval: interval,
	}
}

// Start fetches immediately, then refreshes on the fixed interval until
// Stop is called or the context is cancelled. Calling Start on a
// running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	go func() {
		defer close(done)

		p.RefreshNow(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Debug("notification poller stopped")
				return
			case <-ticker.C:
				p.RefreshNow(ctx)
			}
		}
	}()
}

// Stop cancels the periodic refresh and waits for the loop to exit.
// Must be called on teardown; safe to call repeatedly.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// RefreshNow fetches the feed once and replaces the cache. A failed
// fetch is logged and skipped; the cache keeps its previous contents
// until the next tick succeeds.
func (p *Poller) RefreshNow(ctx context.Context) {
	items, err := p.feed.Notifications(ctx)
	if err != nil {
		p.logger.WithError(err).Debug("notification refresh skipped")
		return
	}

	p.mu.Lock()
	p.items = items
	p.mu.Unlock()
}

// MarkRead marks a notification read on the server, then flips only the
// matching cached entry. Optimistic and localized; no full refetch.
func (p *Poller) MarkRead(ctx context.Context, id string) error {
	if err := p.feed.MarkNotificationRead(ctx, id); err != nil {
		return errors.Wrap(errors.ErrCodeNotifyMarkRead, "failed to mark notification read", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.items {
		if p.items[i].ID == id {
			p.items[i].IsRead = true
			break
		}
	}
	return nil
}

// Snapshot returns a copy of the cached feed
func (p *Poller) Snapshot() []api.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	items := make([]api.Notification, len(p.items))
	copy(items, p.items)
	return items
}

// Unread returns the number of unread notifications in the cache
func (p *Poller) Unread() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	for _, n := range p.items {
		if !n.IsRead {
			count++
		}
	}
	return count
}
