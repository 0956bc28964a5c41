package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	segmentio "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/lendery/lendery/internal/logger"
	"github.com/lendery/lendery/internal/notify"
)

const groupID = "handoff-notice-consumer-group"

// The consumer is the delivery side of the notice pipeline. It renders each
// notice to stdout; a real deployment would hand it to an email provider.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() {
		_ = log.Sync()
	}()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}

	reader := segmentio.NewReader(segmentio.ReaderConfig{
		Brokers:        strings.Split(brokers, ","),
		GroupID:        groupID,
		Topic:          notify.TopicHandoffNotices,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error("Error closing kafka reader", zap.Error(err))
		}
	}()

	log.Info("Notice consumer connected",
		zap.String("topic", notify.TopicHandoffNotices), zap.String("brokers", brokers))

	for {
		select {
		case <-ctx.Done():
			log.Info("Shutdown signal received, stopping consumer")
			return
		default:
			m, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Error("Error reading message", zap.Error(err))
				time.Sleep(5 * time.Second)
				continue
			}

			deliver(log, m.Value)
		}
	}
}

func deliver(log *zap.Logger, raw []byte) {
	var notice struct {
		Kind           string `json:"kind"`
		ItemTitle      string `json:"item_title"`
		SenderName     string `json:"sender_name"`
		RecipientEmail string `json:"recipient_email"`
		AcceptLink     string `json:"accept_link"`
		SkipLink       string `json:"skip_link"`
		ItemLink       string `json:"item_link"`
		TTLHours       int    `json:"ttl_hours"`
	}
	if err := json.Unmarshal(raw, &notice); err != nil {
		log.Error("Skipping malformed notice", zap.Error(err))
		return
	}

	fmt.Printf("\n--- NOTICE ---\n")
	fmt.Printf("To:      %s\n", notice.RecipientEmail)
	fmt.Printf("Kind:    %s\n", notice.Kind)
	fmt.Printf("Item:    %s\n", notice.ItemTitle)
	if notice.SenderName != "" {
		fmt.Printf("From:    %s\n", notice.SenderName)
	}
	if notice.AcceptLink != "" {
		fmt.Printf("Accept:  %s (valid %dh)\n", notice.AcceptLink, notice.TTLHours)
	}
	if notice.SkipLink != "" {
		fmt.Printf("Skip:    %s\n", notice.SkipLink)
	}
	if notice.ItemLink != "" {
		fmt.Printf("Item:    %s\n", notice.ItemLink)
	}
	fmt.Println("--- END NOTICE ---")
}
