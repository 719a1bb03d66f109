package otel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/domain"
)

type Client interface {
	GetChannel(ctx context.Context, channelID string) (*domain.Channel, error)
}

type InstrumentedClient struct {
	client Client
	tracer trace.Tracer
}

func NewInstrumentedClient(c Client) (*InstrumentedClient, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}

	return &InstrumentedClient{
		client: c,
		tracer: otel.Tracer("github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/youtube/otel"),
	}, nil
}

func (ic *InstrumentedClient) GetChannel(ctx context.Context, channelID string) (*domain.Channel, error) {
	spanCtx, span := ic.tracer.Start(ctx, "youtubeClient.getChannel")
	defer span.End()

	span.SetAttributes(attribute.String("channelId", channelID))

	ch, err := ic.client.GetChannel(spanCtx, channelID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetStatus(codes.Ok, "")

	return ch, nil
}
