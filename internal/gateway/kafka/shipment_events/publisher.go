package shipment_events

import (
	"context"
	"encoding/json"
	"fmt"

	"envios/internal/entities"
	"github.com/IBM/sarama"
)

const eventType = "shipment.status.changed"

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishStatusChange keys the message by shipment so every change of one
// shipment lands on the same partition in order.
func (p *Publisher) PublishStatusChange(ctx context.Context, change entities.StatusChange) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(statusChangedEvent{
		EventID:    change.EventID.String(),
		ShipmentID: change.ShipmentID,
		From:       change.From.String(),
		To:         change.To.String(),
		ChangedBy:  change.ChangedBy,
		OccurredAt: change.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("marshal status change: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(change.ShipmentID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
			{Key: []byte("event_id"), Value: []byte(change.EventID.String())},
		},
		Timestamp: change.OccurredAt,
	}

	_, _, err = p.producer.SendMessage(msg)
	if err != nil {
		PublishedTotal.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("gateway kafka, publish status change %s: %w", change.EventID, err)
	}

	PublishedTotal.WithLabelValues(p.topic, "ok").Inc()
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
