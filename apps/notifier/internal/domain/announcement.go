package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/natsoman/youtube-live-notifier/pkg/embed"
)

const (
	_announcementColor  = 0xFF0000
	_announcementFooter = "YouTube"
)

// Announcement is the chat embed announcing an upcoming live stream.
// There is at most one announcement per live stream.
type Announcement struct {
	id          string
	embed       embed.Embed
	createdAt   time.Time
	deliveredAt *time.Time
}

// NewAnnouncement builds the embed of the given live stream, authored by its channel.
// Any embed violation is reported as ErrInvalidAnnouncement.
func NewAnnouncement(ls *LiveStream, ch *Channel, createdAt time.Time) (*Announcement, error) {
	if ls == nil {
		return nil, errors.New("live stream is nil")
	}

	if ch == nil {
		return nil, errors.New("channel is nil")
	}

	if createdAt.IsZero() {
		return nil, errors.New("created at is zero")
	}

	author := embed.NewAuthorBuilder().
		Name(ch.Title()).
		URL(ch.URL())

	if ch.AvatarURL() != "" {
		avatar, err := embed.ImageSourceURL(ch.AvatarURL())
		if err != nil {
			return nil, fmt.Errorf("%w: channel avatar: %w", ErrInvalidAnnouncement, err)
		}

		author.IconURL(avatar)
	}

	thumbnail, err := embed.ImageSourceURL(ls.ThumbnailURL())
	if err != nil {
		return nil, fmt.Errorf("%w: thumbnail: %w", ErrInvalidAnnouncement, err)
	}

	scheduledStart := embed.NewFieldBuilder(
		"Scheduled start",
		fmt.Sprintf("<t:%d:F>", ls.ScheduledStart().Unix()),
	).Inline().Build()

	e, err := embed.NewBuilder().
		Author(author.Build()).
		Color(_announcementColor).
		Title(ls.Title()).
		URL(ls.URL()).
		Image(thumbnail).
		Field(scheduledStart).
		Footer(embed.NewFooterBuilder(_announcementFooter).Build()).
		Timestamp(createdAt).
		Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAnnouncement, err)
	}

	return &Announcement{
		id:        ls.ID(),
		embed:     e,
		createdAt: createdAt.UTC(),
	}, nil
}

// RestoreAnnouncement recreates a persisted Announcement without rebuilding its embed.
func RestoreAnnouncement(id string, e embed.Embed, createdAt time.Time, deliveredAt *time.Time) (*Announcement, error) {
	if id == "" {
		return nil, errors.New("id is empty")
	}

	if createdAt.IsZero() {
		return nil, errors.New("created at is zero")
	}

	return &Announcement{
		id:          id,
		embed:       e,
		createdAt:   createdAt,
		deliveredAt: deliveredAt,
	}, nil
}

// ID is the id of the announced live stream.
func (a Announcement) ID() string {
	return a.id
}

func (a Announcement) Embed() embed.Embed {
	return a.embed
}

func (a Announcement) CreatedAt() time.Time {
	return a.createdAt
}

func (a Announcement) DeliveredAt() *time.Time {
	return a.deliveredAt
}

func (a Announcement) Delivered() bool {
	return a.deliveredAt != nil
}

func (a *Announcement) MarkDelivered(at time.Time) {
	at = at.UTC()
	a.deliveredAt = &at
}
