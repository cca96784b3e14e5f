package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"delivery-dispatch/internal/domain"
)

var newSyncProducer = sarama.NewSyncProducer

// StoreNotifier publishes delivery events to the store notification topic, keyed by store id.
type StoreNotifier struct {
	producer sarama.SyncProducer
	topic    string
}

// NewStoreNotifier dials the brokers. It returns nil, nil when Kafka is not configured.
func NewStoreNotifier(brokers []string, topic string) (*StoreNotifier, error) {
	if len(brokers) == 0 || topic == "" {
		return nil, nil
	}
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Retry.Max = 3

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return NewStoreNotifierWithProducer(p, topic), nil
}

// NewStoreNotifierWithProducer wraps an existing producer.
func NewStoreNotifierWithProducer(p sarama.SyncProducer, topic string) *StoreNotifier {
	return &StoreNotifier{producer: p, topic: topic}
}

// NotifyStore sends e. The producer call does not observe ctx; the caller bounds it with a timeout.
func (n *StoreNotifier) NotifyStore(ctx context.Context, e domain.DeliveryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(e.StoreID.String()),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event"), Value: []byte(e.Name)},
		},
	}
	if _, _, err := n.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send %s: %w", e.Name, err)
	}
	return nil
}

// Close flushes and closes the producer
func (n *StoreNotifier) Close() error {
	if n == nil {
		return nil
	}
	return n.producer.Close()
}
