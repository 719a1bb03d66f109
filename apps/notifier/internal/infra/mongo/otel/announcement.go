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

const pkgName = "github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/mongo/otel"

type AnnouncementRepository interface {
	Insert(ctx context.Context, a *domain.Announcement) error
	Pending(ctx context.Context, limit int) ([]domain.Announcement, error)
	MarkAsDelivered(ctx context.Context, a *domain.Announcement) error
}

type InstrumentedAnnouncementRepository struct {
	repo   AnnouncementRepository
	tracer oteltrace.Tracer
}

func NewInstrumentedAnnouncementRepository(repo AnnouncementRepository) (*InstrumentedAnnouncementRepository, error) {
	if repo == nil {
		return nil, errors.New("announcement repository is nil")
	}

	return &InstrumentedAnnouncementRepository{
		repo:   repo,
		tracer: otel.Tracer(pkgName),
	}, nil
}

func (r *InstrumentedAnnouncementRepository) Insert(ctx context.Context, a *domain.Announcement) error {
	spanCtx, span := r.tracer.Start(ctx, "announcementRepository.insert")
	defer span.End()

	span.SetAttributes(attribute.String("videoId", a.ID()))

	if err := r.repo.Insert(spanCtx, a); err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		return err
	}

	span.SetStatus(codes.Ok, "")

	return nil
}

func (r *InstrumentedAnnouncementRepository) Pending(ctx context.Context, limit int) ([]domain.Announcement, error) {
	spanCtx, span := r.tracer.Start(ctx, "announcementRepository.pending")
	defer span.End()

	span.SetAttributes(attribute.Int("limit", limit))

	aa, err := r.repo.Pending(spanCtx, limit)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(aa)))
	span.SetStatus(codes.Ok, "")

	return aa, nil
}

func (r *InstrumentedAnnouncementRepository) MarkAsDelivered(ctx context.Context, a *domain.Announcement) error {
	spanCtx, span := r.tracer.Start(ctx, "announcementRepository.markAsDelivered")
	defer span.End()

	span.SetAttributes(attribute.String("videoId", a.ID()))

	if err := r.repo.MarkAsDelivered(spanCtx, a); err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)

		return err
	}

	span.SetStatus(codes.Ok, "")

	return nil
}
