package domain

import "errors"

var (
	ErrChannelNotFound     = errors.New("channel not found")
	ErrInvalidAnnouncement = errors.New("invalid announcement")
)
