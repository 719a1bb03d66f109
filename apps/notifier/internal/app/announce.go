package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type ChannelClient interface {
	// GetChannel returns the channel with the given id.
	// domain.ErrChannelNotFound is returned if the channel does not exist.
	GetChannel(ctx context.Context, channelID string) (*domain.Channel, error)
}

type AnnouncementRepository interface {
	// Insert adds the provided announcement to the repository, ignoring duplicates.
	Insert(ctx context.Context, a *domain.Announcement) error
}

type Announcer struct {
	log           *slog.Logger
	clock         Clock
	channelClient ChannelClient
	repo          AnnouncementRepository
}

func NewAnnouncer(clock Clock, channelClient ChannelClient, repo AnnouncementRepository) (*Announcer, error) {
	if clock == nil {
		return nil, errors.New("clock is nil")
	}

	if channelClient == nil {
		return nil, errors.New("channel client is nil")
	}

	if repo == nil {
		return nil, errors.New("announcement repository is nil")
	}

	return &Announcer{
		log:           slog.Default().With("cmp", "announcer"),
		clock:         clock,
		channelClient: channelClient,
		repo:          repo,
	}, nil
}

// Announce prepares the announcement of the given live stream for delivery.
// A missing channel or an embed that cannot be sent are returned as
// domain.ErrChannelNotFound and domain.ErrInvalidAnnouncement respectively.
func (a *Announcer) Announce(ctx context.Context, ls *domain.LiveStream) error {
	ch, err := a.channelClient.GetChannel(ctx, ls.ChannelID())
	if err != nil {
		return fmt.Errorf("get channel: %w", err)
	}

	announcement, err := domain.NewAnnouncement(ls, ch, a.clock.Now())
	if err != nil {
		return fmt.Errorf("new announcement: %w", err)
	}

	if err = a.repo.Insert(ctx, announcement); err != nil {
		return fmt.Errorf("insert announcement: %v", err)
	}

	a.log.DebugContext(ctx, "Live stream announced", "videoId", ls.ID(), "channelId", ch.ID())

	return nil
}
