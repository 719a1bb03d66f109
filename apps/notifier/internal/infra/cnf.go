package infra

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type ConsumerConf struct {
	LogLevel  string `default:"debug" split_words:"true"`
	LogFormat string `default:"text" split_words:"true"`
	OTEL      OTEL
	MongoDB   MongoDB
	Kafka     Kafka
	YouTube   YouTube
}

type JobConf struct {
	LogLevel  string `default:"debug" split_words:"true"`
	LogFormat string `default:"text" split_words:"true"`
	OTEL      OTEL
	MongoDB   MongoDB
	Redis     Redis
	Webhook   Webhook

	BatchSize int           `default:"10" split_words:"true"`
	LockTTL   time.Duration `default:"1m" split_words:"true"`
}

type MongoDB struct {
	// nolint:lll
	URI      string `default:"mongodb://mongodb-0.replica-set.mongo.svc.cluster.local:27017,mongodb-1.replica-set.mongo.svc.cluster.local:27017,mongodb-2.replica-set.mongo.svc.cluster.local:27017/admin?replicaSet=rs0"`
	Database string `default:"youtube-live-notifier"`
}

type Kafka struct {
	// nolint:lll
	Brokers []string `default:"youtube-live-notifier-dual-role-0.youtube-live-notifier-kafka-brokers.kafka.svc.cluster.local:9092,youtube-live-notifier-dual-role-1.youtube-live-notifier-kafka-brokers.kafka.svc.cluster.local:9092,youtube-live-notifier-dual-role-2.youtube-live-notifier-kafka-brokers.kafka.svc.cluster.local:9092"`
	Topics  struct {
		LiveStreamFoundV1 string `default:"live_stream.found.v1" split_words:"true"`
	}
}

type Redis struct {
	// nolint:lll
	Addr []string `default:"redis-cluster-0.redis-cluster-headless.redis.svc.cluster.local:6379,redis-cluster-1.redis-cluster-headless.redis.svc.cluster.local:6379,redis-cluster-2.redis-cluster-headless.redis.svc.cluster.local:6379"`
}

type OTEL struct {
	// nolint:lll
	CollectorGRPCAddr string  `default:"otel-collector-opentelemetry-collector.observability.svc.cluster.local:4317" split_words:"true"`
	SampleRate        float64 `default:"1.0" split_words:"true"`
}

type YouTube struct {
	APIKey string `required:"true" split_words:"true"`
}

type Webhook struct {
	URL     string        `required:"true"`
	Timeout time.Duration `default:"5s"`
	// Interval is the minimum time between two posts.
	Interval time.Duration `default:"1s"`
}

// NewConsumerConf reads the consumer configuration from the environment.
// Variables found in an optional .env file are loaded first without overriding existing ones.
func NewConsumerConf() (*ConsumerConf, error) {
	_ = godotenv.Load()

	cnf := &ConsumerConf{}
	if err := envconfig.Process("", cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

// NewJobConf reads the job configuration the same way as NewConsumerConf.
func NewJobConf() (*JobConf, error) {
	_ = godotenv.Load()

	cnf := &JobConf{}
	if err := envconfig.Process("", cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}
