package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./feed.go -destination=./mocks/feed_mock.go -package=mocks

import (
	"context"
	"time"

	"dinedesk/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// ChangeEvent announces that a resource of a restaurant changed, so every gateway
// replica holding a workspace for that restaurant refreshes the matching store.
type ChangeEvent struct {
	RestaurantID string    `json:"restaurant_id"`
	Resource     string    `json:"resource"`
	Action       string    `json:"action"`
	Origin       string    `json:"origin"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type Feed interface {
	Publish(ctx context.Context, event ChangeEvent)
	Subscribe(ctx context.Context, handler func(event ChangeEvent))
}

type feedImpl struct {
	client Client
	topic  string
	group  string
}

type noopFeed struct{}

// NewFeed returns a no-op feed when kafka is disabled.
func NewFeed(cfg *config.Config) Feed {
	if !cfg.Kafka.Enable || len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Topic == "" {
		log.Info().Msg("Kafka change feed disabled")

		return noopFeed{}
	}

	return &feedImpl{
		client: New(cfg),
		topic:  cfg.Kafka.Topic,
		group:  cfg.Kafka.ConsumerGroup,
	}
}

func NewFeedWithClient(client Client, topic, group string) Feed {
	return &feedImpl{client: client, topic: topic, group: group}
}

// Publish never fails the caller; the event only speeds up other replicas.
func (f *feedImpl) Publish(ctx context.Context, event ChangeEvent) {
	err := f.client.SendMessages(context.WithoutCancel(ctx), f.topic, Message{
		Key:   event.RestaurantID,
		Value: event,
	})
	if err != nil {
		log.Warn().Err(err).Str("resource", event.Resource).Msg("failed to publish change event")
	}
}

func (f *feedImpl) Subscribe(ctx context.Context, handler func(event ChangeEvent)) {
	f.client.Consume(ctx, f.group, f.topic, func(message kafkaGo.Message) {
		event, err := DecodeKafkaMessage[ChangeEvent](message)
		if err != nil {
			return
		}

		handler(event)
	})
}

func (noopFeed) Publish(context.Context, ChangeEvent) {}

func (noopFeed) Subscribe(ctx context.Context, _ func(event ChangeEvent)) {
	<-ctx.Done()
}
