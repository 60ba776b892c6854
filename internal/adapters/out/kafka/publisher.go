// Package kafka publishes drained outbox messages to a Kafka cluster.
package kafka

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ErrPublisherDisabled is returned when publishing without configured brokers.
var ErrPublisherDisabled = errors.New("kafka publisher is disabled: no brokers configured")

// Publisher implements ports.MessagePublisher on top of a shared kafka-go
// writer. Messages carry their topic individually, so one writer serves every
// outbox topic. Keys hash to partitions, which keeps all events of one order
// in publish order.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher from a comma-separated broker list.
// An empty list yields a disabled publisher whose Publish always fails,
// letting local setups run without a cluster.
func NewPublisher(brokersCSV string) *Publisher {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return &Publisher{}
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Enabled reports whether brokers are configured.
func (p *Publisher) Enabled() bool {
	return p.writer != nil
}

// Publish delivers one message to the given topic.
func (p *Publisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	if p.writer == nil {
		return ErrPublisherDisabled
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now().UTC(),
	})
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
