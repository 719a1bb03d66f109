package otel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/domain"
)

const pkgName = "github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/otel"

type Announcer interface {
	Announce(ctx context.Context, ls *domain.LiveStream) error
}

type InstrumentedAnnouncer struct {
	announcer Announcer
	tracer    oteltrace.Tracer
}

func NewInstrumentedAnnouncer(announcer Announcer) (*InstrumentedAnnouncer, error) {
	if announcer == nil {
		return nil, errors.New("announcer is nil")
	}

	return &InstrumentedAnnouncer{
		announcer: announcer,
		tracer:    otel.Tracer(pkgName),
	}, nil
}

func (a *InstrumentedAnnouncer) Announce(ctx context.Context, ls *domain.LiveStream) error {
	spanCtx, span := a.tracer.Start(ctx, "announcer.announce")
	defer span.End()

	span.SetAttributes(
		attribute.String("videoId", ls.ID()),
		attribute.String("channelId", ls.ChannelID()),
	)

	if err := a.announcer.Announce(spanCtx, ls); err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		return err
	}

	span.SetStatus(codes.Ok, "")

	return nil
}
