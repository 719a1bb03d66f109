package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/natsoman/youtube-live-notifier/pkg/embed"
)

// maxEmbeds is the number of embeds a single chat message can carry.
const maxEmbeds = 10

type payload struct {
	Embeds []embed.Embed `json:"embeds"`
}

// Client executes a chat webhook.
type Client struct {
	httpClient *http.Client
	url        string
	limiter    *rate.Limiter
}

func NewClient(httpClient *http.Client, url string, limiter *rate.Limiter) (*Client, error) {
	if httpClient == nil {
		return nil, errors.New("http client is nil")
	}

	if url == "" {
		return nil, errors.New("url is empty")
	}

	if limiter == nil {
		return nil, errors.New("limiter is nil")
	}

	return &Client{
		httpClient: httpClient,
		url:        url,
		limiter:    limiter,
	}, nil
}

// Post sends one message carrying the given embeds. Any non-2xx response is an error.
func (c *Client) Post(ctx context.Context, embeds []embed.Embed) error {
	if len(embeds) == 0 || len(embeds) > maxEmbeds {
		return fmt.Errorf("embeds must be between 1 and %d, got %d", maxEmbeds, len(embeds))
	}

	body, err := json.Marshal(payload{Embeds: embeds})
	if err != nil {
		return fmt.Errorf("marshal: %v", err)
	}

	if err = c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
