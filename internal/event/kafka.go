package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"plotdesk/internal/platform/config"
)

// KafkaStore appends events to a Kafka topic, keyed by event type so
// consumers see per-type ordering.
type KafkaStore struct {
	client *kgo.Client
	topic  string
}

// NewKafkaStore connects to the configured brokers. Returns nil if no
// brokers are configured.
func NewKafkaStore(cfg config.KafkaConfig) (*KafkaStore, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
	)
	if err != nil {
		return nil, fmt.Errorf("connect kafka: %w", err)
	}
	return &KafkaStore{client: client, topic: cfg.Topic}, nil
}

func (s *KafkaStore) Append(ctx context.Context, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(e.Type),
		Value: value,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce event: %w", err)
	}
	return nil
}

// Close flushes and releases the client.
func (s *KafkaStore) Close() {
	s.client.Close()
}
