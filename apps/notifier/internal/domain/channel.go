package domain

import (
	"errors"
	"strings"
)

const _channelBaseURL = "https://www.youtube.com/"

// Channel is the YouTube channel hosting a live stream.
type Channel struct {
	id        string
	title     string
	handle    string
	avatarURL string
}

// NewChannel creates a Channel. The handle and the avatar URL are optional.
func NewChannel(id, title, handle, avatarURL string) (*Channel, error) {
	if id == "" {
		return nil, errors.New("id is empty")
	}

	if title == "" {
		return nil, errors.New("title is empty")
	}

	return &Channel{
		id:        id,
		title:     title,
		handle:    handle,
		avatarURL: avatarURL,
	}, nil
}

func (c Channel) ID() string {
	return c.id
}

func (c Channel) Title() string {
	return c.title
}

func (c Channel) Handle() string {
	return c.handle
}

func (c Channel) AvatarURL() string {
	return c.avatarURL
}

// URL prefers the @handle page and falls back to the channel id page.
func (c Channel) URL() string {
	if strings.HasPrefix(c.handle, "@") {
		return _channelBaseURL + c.handle
	}

	return _channelBaseURL + "channel/" + c.id
}
