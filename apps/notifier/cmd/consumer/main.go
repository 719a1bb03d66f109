package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/dnwe/otelsarama"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"google.golang.org/api/option"
	apiyoutube "google.golang.org/api/youtube/v3"

	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/app"
	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra"
	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/kafka"
	inframongo "github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/mongo"
	mongootel "github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/mongo/otel"
	infraotel "github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/otel"
	"github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/youtube"
	youtubeotel "github.com/natsoman/youtube-live-notifier/apps/notifier/internal/infra/youtube/otel"
	pkgkafka "github.com/natsoman/youtube-live-notifier/pkg/kafka"
	"github.com/natsoman/youtube-live-notifier/pkg/otel"
)

const _serviceName = "notifier-consumer"

var _version string

func main() {
	exitCode := 1

	defer func() { os.Exit(exitCode) }()

	cnf, err := infra.NewConsumerConf()
	if err != nil {
		fmt.Printf("Failed to create configuration: %v", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	youtubeSvc, err := apiyoutube.NewService(ctx, option.WithAPIKey(cnf.YouTube.APIKey))
	if err != nil {
		log.Error("Failed to create YouTube service", "err", err)
		return
	}

	youtubeClient, err := youtube.NewClient(youtubeSvc.Channels)
	if err != nil {
		log.Error("Failed to create YouTube client", "err", err)
		return
	}

	instYoutubeClient, err := youtubeotel.NewInstrumentedClient(youtubeClient)
	if err != nil {
		log.Error("Failed to create instrumented YouTube client", "err", err)
		return
	}

	announcer, err := app.NewAnnouncer(infra.Clock{}, instYoutubeClient, instAnnouncementRepo)
	if err != nil {
		log.Error("Failed to create announcer", "err", err)
		return
	}

	instAnnouncer, err := infraotel.NewInstrumentedAnnouncer(announcer)
	if err != nil {
		log.Error("Failed to create instrumented announcer", "err", err)
		return
	}

	liveMessageHandler, err := kafka.NewLiveStreamFoundEventHandler(instAnnouncer)
	if err != nil {
		log.Error("Failed to construct live message handler", "err", err)
		return
	}

	consumerGroupHandler, err := pkgkafka.NewConsumerGroupHandler(
		log,
		map[string]pkgkafka.MessageHandler{
			cnf.Kafka.Topics.LiveStreamFoundV1: liveMessageHandler.Handle,
		},
		time.Second*5,
	)
	if err != nil {
		log.Error("Failed to construct consumer group handler", "err", err)
		return
	}

	saramaConf := sarama.NewConfig()
	saramaConf.Version = sarama.V4_0_0_0
	saramaConf.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRange()}
	saramaConf.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cnf.Kafka.Brokers, _serviceName, saramaConf)
	if err != nil {
		log.Error("Failed to construct consumer group", "err", err)
		return
	}

	defer func() {
		if err = consumerGroup.Close(); err != nil {
			log.Error("Failed to close consumer group", "err", err)
		}
	}()

	for {
		if err = consumerGroup.Consume(
			ctx,
			consumerGroupHandler.Topics(),
			otelsarama.WrapConsumerGroupHandler(consumerGroupHandler),
		); err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, sarama.ErrClosedConsumerGroup) {
				log.Error("Failed to consume", "err", err)
				return
			}

			exitCode = 0

			return
		}

		if ctx.Err() != nil {
			exitCode = 0
			return
		}
	}
}
