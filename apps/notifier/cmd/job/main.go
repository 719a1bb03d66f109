package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/app"
	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra"
	inframongo "github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/mongo"
	mongootel "github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/mongo/otel"
	infraotel "github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/otel"
	infraredis "github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/redis"
	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/webhook"
	webhookotel "github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/webhook/otel"
	"github.com/natsoman/youtube-live-notifier/pkg/otel"
)

const _serviceName = "notifier-job"

var _version string

func main() {
	exitCode := 1

	defer func() { os.Exit(exitCode) }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cnf, err := infra.NewJobConf()
	if err != nil {
		fmt.Printf("Failed to create configuration: %v", err)
		return
	}

	telemetry, err := otel.Configure(
		ctx,
		_serviceName,
		cnf.OTEL.CollectorGRPCAddr,
		otel.WithLogLevel(cnf.LogLevel),
		otel.WithLogFormat(cnf.LogFormat),
		otel.WithSampleRate(cnf.OTEL.SampleRate),
		otel.WithServiceVersion(_version),
	)
	if err != nil {
		fmt.Printf("Failed to configure OTEL: %v", err)
		return
	}

	defer telemetry.Shutdown()

	log := slog.Default()

	log.Info("Starting...")
	defer log.Info("Stopped")

	mongoClientOpts := options.Client().
		SetMonitor(otelmongo.NewMonitor()).
		ApplyURI(cnf.MongoDB.URI).
		SetAppName(_serviceName)

	mongoClient, err := mongo.Connect(ctx, mongoClientOpts)
	if err != nil {
		log.Error("Failed to connect to Mongo", "err", err)
		return
	}

	defer func() {
		timeCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err = mongoClient.Disconnect(timeCtx); err != nil {
			log.Error("Failed to disconnect from Mongo", "err", err)
			return
		}

		log.Debug("Disconnected from Mongo")
	}()

	announcementRepo, err := inframongo.NewAnnouncementRepository(mongoClient.Database(cnf.MongoDB.Database))
	if err != nil {
		log.Error("Failed to create announcement repository", "err", err)
		return
	}

	instAnnouncementRepo, err := mongootel.NewInstrumentedAnnouncementRepository(announcementRepo)
	if err != nil {
		log.Error("Failed to create instrumented announcement repository", "err", err)
		return
	}

	redisClient := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: cnf.Redis.Addr})

	defer func() {
		if err = redisClient.Close(); err != nil {
			log.Error("Failed to close Redis client", "err", err)
		}
	}()

	locker, err := infraredis.NewLocker(redisClient)
	if err != nil {
		log.Error("Failed to create Redis locker", "err", err)
		return
	}

	webhookClient, err := webhook.NewClient(
		&http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cnf.Webhook.Timeout,
		},
		cnf.Webhook.URL,
		rate.NewLimiter(rate.Every(cnf.Webhook.Interval), 1),
	)
	if err != nil {
		log.Error("Failed to create webhook client", "err", err)
		return
	}

	instWebhookClient, err := webhookotel.NewInstrumentedClient(webhookClient)
	if err != nil {
		log.Error("Failed to create instrumented webhook client", "err", err)
		return
	}

	deliverer, err := app.NewDeliverer(
		infra.Clock{},
		locker,
		instAnnouncementRepo,
		instWebhookClient,
		app.WithBatchSize(cnf.BatchSize),
		app.WithLockTTL(cnf.LockTTL),
	)
	if err != nil {
		log.Error("Failed to create deliverer", "err", err)
		return
	}

	instDeliverer, err := infraotel.NewInstrumentedDeliverer(deliverer)
	if err != nil {
		log.Error("Failed to create instrumented deliverer", "err", err)
		return
	}

	if _, err = instDeliverer.DeliverPending(ctx); err != nil {
		log.Error("Failed to deliver pending announcements", "err", err)
		return
	}

	exitCode = 0
}
