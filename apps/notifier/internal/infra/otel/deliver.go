package otel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

type Deliverer interface {
	DeliverPending(ctx context.Context) (int, error)
}

type InstrumentedDeliverer struct {
	deliverer Deliverer
	tracer    oteltrace.Tracer
}

func NewInstrumentedDeliverer(deliverer Deliverer) (*InstrumentedDeliverer, error) {
	if deliverer == nil {
		return nil, errors.New("deliverer is nil")
	}

	return &InstrumentedDeliverer{
		deliverer: deliverer,
		tracer:    otel.Tracer(pkgName),
	}, nil
}

func (d *InstrumentedDeliverer) DeliverPending(ctx context.Context) (int, error) {
	spanCtx, span := d.tracer.Start(ctx, "deliverer.deliverPending")
	defer span.End()

	delivered, err := d.deliverer.DeliverPending(spanCtx)

	span.SetAttributes(attribute.Int("delivered", delivered))

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		return delivered, err
	}

	span.SetStatus(codes.Ok, "")

	return delivered, nil
}
