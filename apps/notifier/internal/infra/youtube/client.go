package youtube

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/youtube/v3"

	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/domain"
)

type Client struct {
	channelSvc *youtube.ChannelsService
}

func NewClient(channelSvc *youtube.ChannelsService) (*Client, error) {
	if channelSvc == nil {
		return nil, errors.New("channel service is nil")
	}

	return &Client{channelSvc: channelSvc}, nil
}

func (c *Client) GetChannel(ctx context.Context, channelID string) (*domain.Channel, error) {
	resp, err := c.channelSvc.List([]string{"snippet"}).
		Context(ctx).
		Id(channelID).
		MaxResults(1).
		Do()
	if err != nil {
		return nil, fmt.Errorf("call: %v", err)
	}

	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return nil, domain.ErrChannelNotFound
	}

	item := resp.Items[0]

	var avatarURL string
	if thumbnails := item.Snippet.Thumbnails; thumbnails != nil && thumbnails.Default != nil {
		avatarURL = thumbnails.Default.Url
	}

	ch, err := domain.NewChannel(item.Id, item.Snippet.Title, item.Snippet.CustomUrl, avatarURL)
	if err != nil {
		return nil, fmt.Errorf("new channel: %v", err)
	}

	return ch, nil
}
