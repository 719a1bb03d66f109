package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/domain"
	"github.com/natsoman/youtube-live-notifier/pkg/kafka"
)

type Announcer interface {
	Announce(ctx context.Context, ls *domain.LiveStream) error
}

type liveStreamFoundEventPayload struct {
	VideoID        string    `json:"videoId"`
	ChannelID      string    `json:"channelId"`
	ChatID         string    `json:"chatId"`
	Title          string    `json:"title"`
	ThumbnailURL   string    `json:"thumbnailUrl"`
	PublishedAt    time.Time `json:"publishedAt"`
	ScheduledStart time.Time `json:"scheduledStart"`
}

func (p liveStreamFoundEventPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.VideoID, validation.Required),
		validation.Field(&p.ChannelID, validation.Required),
		validation.Field(&p.Title, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&p.ThumbnailURL, validation.Required, is.URL),
		validation.Field(&p.ScheduledStart, validation.Required),
	)
}

type LiveStreamFoundEventHandler struct {
	announcer Announcer
}

func NewLiveStreamFoundEventHandler(announcer Announcer) (*LiveStreamFoundEventHandler, error) {
	if announcer == nil {
		return nil, errors.New("announcer is nil")
	}

	return &LiveStreamFoundEventHandler{announcer: announcer}, nil
}

// Handle announces the live stream carried by the event. Events that can never be
// announced are reported as permanent failures so they are skipped.
func (h *LiveStreamFoundEventHandler) Handle(ctx context.Context, m *sarama.ConsumerMessage) error {
	timeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p liveStreamFoundEventPayload
	if err := json.Unmarshal(m.Value, &p); err != nil {
		return kafka.Permanent(fmt.Errorf("unmarshal event payload: %v", err))
	}

	if err := p.Validate(); err != nil {
		return kafka.Permanent(fmt.Errorf("validate event payload: %v", err))
	}

	ls, err := domain.NewLiveStream(p.VideoID, p.ChannelID, p.Title, p.ThumbnailURL, p.ScheduledStart)
	if err != nil {
		return kafka.Permanent(fmt.Errorf("new live stream: %v", err))
	}

	if err = h.announcer.Announce(timeCtx, ls); err != nil {
		if errors.Is(err, domain.ErrChannelNotFound) || errors.Is(err, domain.ErrInvalidAnnouncement) {
			return kafka.Permanent(fmt.Errorf("announce live stream: %w", err))
		}

		return fmt.Errorf("announce live stream: %v", err)
	}

	return nil
}
