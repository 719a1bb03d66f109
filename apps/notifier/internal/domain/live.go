package domain

import (
	"errors"
	"time"
)

const _watchURL = "https://www.youtube.com/watch?v="

// LiveStream represents an upcoming YouTube live broadcast
type LiveStream struct {
	id             string
	channelID      string
	title          string
	thumbnailURL   string
	scheduledStart time.Time
}

func NewLiveStream(id, channelID, title, thumbnailURL string, scheduledStart time.Time) (*LiveStream, error) {
	if id == "" {
		return nil, errors.New("id is empty")
	}

	if channelID == "" {
		return nil, errors.New("channel id is empty")
	}

	if title == "" {
		return nil, errors.New("title is empty")
	}

	if thumbnailURL == "" {
		return nil, errors.New("thumbnail URL is empty")
	}

	if scheduledStart.IsZero() {
		return nil, errors.New("scheduled start is zero")
	}

	return &LiveStream{
		id:             id,
		channelID:      channelID,
		title:          title,
		thumbnailURL:   thumbnailURL,
		scheduledStart: scheduledStart.UTC(),
	}, nil
}

func (l LiveStream) ID() string {
	return l.id
}

func (l LiveStream) ChannelID() string {
	return l.channelID
}

func (l LiveStream) Title() string {
	return l.title
}

func (l LiveStream) ThumbnailURL() string {
	return l.thumbnailURL
}

func (l LiveStream) ScheduledStart() time.Time {
	return l.scheduledStart
}

// URL returns the watch page of the live stream.
func (l LiveStream) URL() string {
	return _watchURL + l.id
}
