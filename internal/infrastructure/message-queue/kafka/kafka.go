package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alimikegami/seller-dashboard/config"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const maxPublishAttempts = 3

// partition pins every message to the configured partition.
type partition int

func (p partition) Balance(_ kafka.Message, partitions ...int) int {
	for _, candidate := range partitions {
		if candidate == int(p) {
			return candidate
		}
	}
	return partitions[0]
}

// CreateKafkaProducer returns a writer that dials lazily and reconnects
// after broker restarts. Retries are left to the Publisher.
func CreateKafkaProducer(conf config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(conf.BrokerAddress),
		Topic:        conf.BrokerTopic,
		Balancer:     partition(conf.BrokerPartition),
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  1,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 2 * time.Second,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher writes domain events as JSON messages keyed by aggregate id.
type Publisher struct {
	writer  messageWriter
	backoff time.Duration
}

func CreatePublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer, backoff: 200 * time.Millisecond}
}

type Message struct {
	EventType  string      `json:"event_type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

func (p *Publisher) Publish(ctx context.Context, key string, eventType string, data interface{}) error {
	jsonMsg, err := json.Marshal(Message{
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	for i := 0; i < maxPublishAttempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.backoff * time.Duration(i)):
			}
		}

		err = p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(key),
			Value: jsonMsg,
		})
		if err == nil {
			return nil
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Str("event_type", eventType).
			Int("attempt", i+1).Msg("")
	}

	return fmt.Errorf("failed to write Kafka message after %d attempts: %w", maxPublishAttempts, err)
}
