package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
)

var _ sarama.ConsumerGroupHandler = (*ConsumerGroupHandler)(nil)

type MessageHandler func(ctx context.Context, m *sarama.ConsumerMessage) error

// permanentError marks a failure that will not go away on redelivery.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}

// Permanent wraps err so that the ConsumerGroupHandler logs the message and marks it
// as consumed instead of stopping the claim. A nil err stays nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return &permanentError{err: err}
}

// IsPermanent reports whether err, or any error it wraps, was created by Permanent.
func IsPermanent(err error) bool {
	var pErr *permanentError

	return errors.As(err, &pErr)
}

type ConsumerGroupHandler struct {
	log         *slog.Logger
	msgHandlers map[string]MessageHandler
	// timeout of message processing. Must be less than Config.Consumer.Group.Session.Timeout
	timeout time.Duration
}

func NewConsumerGroupHandler(l *slog.Logger, msgHandlers map[string]MessageHandler, timeout time.Duration) (
	*ConsumerGroupHandler, error) {
	if l == nil {
		return nil, errors.New("logger is nil")
	}

	if len(msgHandlers) == 0 {
		return nil, errors.New("message handlers are empty")
	}

	const defaultTimeout = 10 * time.Second
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &ConsumerGroupHandler{
		log:         l,
		msgHandlers: msgHandlers,
		timeout:     timeout,
	}, nil
}

// Topics returns the topics that have a registered handler.
func (cgh *ConsumerGroupHandler) Topics() []string {
	topics := make([]string, 0, len(cgh.msgHandlers))
	for topic := range cgh.msgHandlers {
		topics = append(topics, topic)
	}

	return topics
}

func (cgh *ConsumerGroupHandler) ConsumeClaim(cgs sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for cm := range claim.Messages() {
		if err := cgh.process(cgs, cm); err != nil {
			return err
		}
	}

	return nil
}

func (cgh *ConsumerGroupHandler) Cleanup(s sarama.ConsumerGroupSession) error {
	return nil
}

func (cgh *ConsumerGroupHandler) Setup(s sarama.ConsumerGroupSession) error {
	return nil
}

func (cgh *ConsumerGroupHandler) process(cgs sarama.ConsumerGroupSession, cm *sarama.ConsumerMessage) error {
	timeCtx, cancel := context.WithTimeout(cgs.Context(), cgh.timeout)
	defer cancel()

	log := cgh.log.With(
		"topic", cm.Topic,
		"key", string(cm.Key),
		"partition", cm.Partition,
		"offset", cm.Offset,
	)

	handler, exists := cgh.msgHandlers[cm.Topic]
	if !exists {
		log.WarnContext(cgs.Context(), "No registered handler")
		cgs.MarkMessage(cm, "")

		return nil
	}

	if err := handler(timeCtx, cm); err != nil {
		if IsPermanent(err) {
			log.WarnContext(timeCtx, "Skipping message", "val", string(cm.Value), "err", err)
			cgs.MarkMessage(cm, "")

			return nil
		}

		log.ErrorContext(timeCtx, "Failed to handle message", "err", err)

		return fmt.Errorf("handle message: %v", err)
	}

	cgs.MarkMessage(cm, "")
	log.DebugContext(timeCtx, "Message handled")

	return nil
}
