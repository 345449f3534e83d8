package kafka

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
)

// Event is one domain event bound for a topic.
type Event struct {
	Topic         string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type writerPublisher struct {
	writer *kafkago.Writer
}

// NewPublisher builds a Publisher on a shared kafka writer. Topic is set
// per message so one writer serves every aggregate.
func NewPublisher(brokers []string) Publisher {
	return &writerPublisher{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(brokers...),
			Balancer: &kafkago.LeastBytes{},
		},
	}
}

func (p *writerPublisher) Publish(ctx context.Context, event Event) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *writerPublisher) Close() error {
	return p.writer.Close()
}
