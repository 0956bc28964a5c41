package kafka

import (
	"context"
	"fmt"
	"log"
	"time"

	segmentio "github.com/segmentio/kafka-go"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// WriterProducer sends through a shared kafka writer; the topic is set per
// message so one writer serves every outbox topic.
type WriterProducer struct {
	writer *segmentio.Writer
}

func NewWriterProducer(brokers []string) *WriterProducer {
	return &WriterProducer{
		writer: &segmentio.Writer{
			Addr:         segmentio.TCP(brokers...),
			Balancer:     &segmentio.LeastBytes{},
			RequiredAcks: segmentio.RequireOne,
			BatchTimeout: 100 * time.Millisecond,
		},
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	return p.writer.WriteMessages(ctx, segmentio.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
}

func (p *WriterProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer is the dev fallback when no broker is configured.
type ConsoleProducer struct{}

func NewConsoleProducer() Producer {
	log.Println("Initialized console producer (no kafka brokers configured)")
	return &ConsoleProducer{}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	select {
	case <-time.After(50 * time.Millisecond):
		fmt.Printf("\n--- NOTICE (CONSOLE) ---\nTopic: %s\nKey: %s\nValue: %s\n--- END NOTICE ---\n", topic, string(key), string(value))
		return nil
	case <-ctx.Done():
		log.Printf("NOTICE (CANCELLED): Topic=[%s], Key=[%s]", topic, string(key))
		return ctx.Err()
	}
}

func (p *ConsoleProducer) Close() error {
	return nil
}
