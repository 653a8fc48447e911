package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"service-checkout-delivery/internal/domain"
	"service-checkout-delivery/internal/logx"
)

const typeCheckoutUpdated = "checkout_updated"

var newSyncProducer = sarama.NewSyncProducer

// Publisher sends checkout_updated events
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
	now      func() time.Time
	newID    func() string
}

// NewPublisher creates a Publisher. Without brokers or topic events are only logged.
func NewPublisher(logger logx.Logger, brokers []string, topic string) (*Publisher, error) {
	p := &Publisher{
		topic:  strings.TrimSpace(topic),
		logger: logger.With(logx.Component("kafka_publisher")),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.NewString() },
	}
	if len(brokers) == 0 || p.topic == "" {
		return p, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	producer, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	p.producer = producer
	return p, nil
}

// EmitCheckoutUpdated publishes the checkout's new delivery state keyed by checkout id.
func (p *Publisher) EmitCheckoutUpdated(_ context.Context, c domain.Checkout, _ []domain.CheckoutLine) error {
	dto := CheckoutUpdatedDTO{
		EventID:            p.newID(),
		Type:               typeCheckoutUpdated,
		CheckoutID:         c.ID,
		DeliveryState:      string(c.State()),
		AssignedDeliveryID: c.AssignedDeliveryID,
		CollectionPointID:  c.CollectionPointID,
		OccurredAt:         p.now(),
	}
	if p.producer == nil {
		p.logger.Debug("checkout updated", logx.String("checkout_id", c.ID), logx.String("event_id", dto.EventID))
		return nil
	}

	b, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(c.ID),
		Value: sarama.ByteEncoder(b),
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", typeCheckoutUpdated, err)
	}
	p.logger.Debug("checkout updated published",
		logx.String("checkout_id", c.ID),
		logx.String("event_id", dto.EventID),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close closes the producer
func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
