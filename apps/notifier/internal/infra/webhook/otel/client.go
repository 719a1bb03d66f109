package otel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/natsoman/youtube-live-notifier/pkg/embed"
)

type Client interface {
	Post(ctx context.Context, embeds []embed.Embed) error
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
		tracer: otel.Tracer("github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/webhook/otel"),
	}, nil
}

func (ic *InstrumentedClient) Post(ctx context.Context, embeds []embed.Embed) error {
	spanCtx, span := ic.tracer.Start(ctx, "webhookClient.post")
	defer span.End()

	span.SetAttributes(attribute.Int("embeds", len(embeds)))

	if err := ic.client.Post(spanCtx, embeds); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	span.SetStatus(codes.Ok, "")

	return nil
}
