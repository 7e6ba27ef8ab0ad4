package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"retrack/internal/domain/billing"
	"retrack/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

// Publisher writes billing notifications keyed by subscription so one subscription's events stay ordered.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(cfg config.KafkaConfig) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.BillingTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, n billing.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := n.SubscriptionID
	if key == "" {
		key = n.EventID
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: body,
		Time:  n.OccurredAt,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(n.Kind)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
