package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/domain"
	"github.com/natsoman/youtube-live-notifier/pkg/embed"
)

const _deliverLockKey = "notifier:announcements:deliver"

type Locker interface {
	// Lock acquires a lock for the given key. The lock will automatically expire after the context's deadline
	// if one is set, or it will not expire if no deadline is provided.
	Lock(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type PendingAnnouncementRepository interface {
	// Pending returns at most limit undelivered announcements, oldest first.
	Pending(ctx context.Context, limit int) ([]domain.Announcement, error)
	MarkAsDelivered(ctx context.Context, a *domain.Announcement) error
}

type WebhookClient interface {
	// Post sends a single chat message carrying the given embeds.
	Post(ctx context.Context, embeds []embed.Embed) error
}

type Deliverer struct {
	log       *slog.Logger
	clock     Clock
	locker    Locker
	repo      PendingAnnouncementRepository
	webhook   WebhookClient
	batchSize int
	lockTTL   time.Duration
}

func NewDeliverer(
	clock Clock,
	locker Locker,
	repo PendingAnnouncementRepository,
	webhook WebhookClient,
	opts ...Option,
) (*Deliverer, error) {
	if clock == nil {
		return nil, errors.New("clock is nil")
	}

	if locker == nil {
		return nil, errors.New("locker is nil")
	}

	if repo == nil {
		return nil, errors.New("announcement repository is nil")
	}

	if webhook == nil {
		return nil, errors.New("webhook client is nil")
	}

	d := &Deliverer{
		log:       slog.Default().With("cmp", "deliverer"),
		clock:     clock,
		locker:    locker,
		repo:      repo,
		webhook:   webhook,
		batchSize: 10,
		lockTTL:   time.Minute,
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// DeliverPending posts pending announcements in creation order and returns how many were delivered.
// Delivery stops at the first failure so the remaining announcements are retried by the next run.
// Nothing is delivered when another run holds the lock.
func (d *Deliverer) DeliverPending(ctx context.Context) (int, error) {
	lockCtx, cancel := context.WithTimeout(ctx, d.lockTTL)
	defer cancel()

	locked, err := d.locker.Lock(lockCtx, _deliverLockKey)
	if err != nil {
		return 0, fmt.Errorf("lock: %v", err)
	}

	if !locked {
		d.log.InfoContext(ctx, "Delivery is already in progress")
		return 0, nil
	}

	defer func() {
		releaseCtx, releaseCancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer releaseCancel()

		if err := d.locker.Release(releaseCtx, _deliverLockKey); err != nil {
			d.log.ErrorContext(ctx, "Failed to release lock", "err", err)
		}
	}()

	pending, err := d.repo.Pending(lockCtx, d.batchSize)
	if err != nil {
		return 0, fmt.Errorf("pending announcements: %v", err)
	}

	delivered := 0

	for i := range pending {
		a := &pending[i]

		if err = d.webhook.Post(lockCtx, []embed.Embed{a.Embed()}); err != nil {
			return delivered, fmt.Errorf("post announcement %s: %v", a.ID(), err)
		}

		a.MarkDelivered(d.clock.Now())

		if err = d.repo.MarkAsDelivered(lockCtx, a); err != nil {
			return delivered, fmt.Errorf("mark announcement %s as delivered: %v", a.ID(), err)
		}

		delivered++
	}

	if delivered > 0 {
		d.log.InfoContext(ctx, "Announcements delivered", "count", delivered)
	}

	return delivered, nil
}
