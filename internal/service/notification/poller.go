package notification

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"walk4you-storefront/internal/domain"
)

type notificationAPI interface {
	Notifications(ctx context.Context) ([]domain.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// Poller keeps an unread-notification count fresh with a fixed-interval
// background fetch. It polls only while started and only when a credential
// is present; there is no backoff, a failed poll just waits for the next
// tick. The owning screen starts it on mount and stops it on unmount.
type Poller struct {
	api      notificationAPI
	logger   *log.Logger
	interval time.Duration

	mu     sync.Mutex
	count  int
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller builds a stopped Poller. interval is typically 30 seconds.
func NewPoller(api notificationAPI, interval time.Duration, logger *log.Logger) *Poller {
	return &Poller{api: api, logger: logger, interval: interval}
}

// Start begins polling: one immediate fetch, then one per interval, until
// Stop is called or ctx is canceled. Starting a running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	done := make(chan struct{})
	p.done = done
	p.mu.Unlock()

	go func() {
		defer close(done)
		p.fetch(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.fetch(ctx)
			}
		}
	}()
}

// Stop halts polling and waits for the in-flight fetch, if any, to finish.
// Stopping a stopped poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Unread returns the last fetched unread count.
func (p *Poller) Unread() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

func (p *Poller) fetch(ctx context.Context) {
	count, err := p.api.UnreadCount(ctx)
	if err != nil {
		// Logged out: nothing to count, nothing to report.
		if errors.Is(err, domain.ErrNoCredential) || errors.Is(err, domain.ErrUnauthorized) {
			return
		}
		p.logger.Printf("fetch unread count: %v", err)
		return
	}
	p.mu.Lock()
	p.count = count
	p.mu.Unlock()
}

// List fetches the full notification feed.
func (p *Poller) List(ctx context.Context) ([]domain.Notification, error) {
	return p.api.Notifications(ctx)
}

// MarkRead flags one notification as read and decrements the local count,
// flooring at zero, so the bell updates without waiting for the next poll.
func (p *Poller) MarkRead(ctx context.Context, id string) error {
	if err := p.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	p.mu.Lock()
	if p.count > 0 {
		p.count--
	}
	p.mu.Unlock()
	return nil
}
