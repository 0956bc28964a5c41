package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lendery/lendery/internal/db"
	"github.com/lendery/lendery/internal/engine"
	"github.com/lendery/lendery/internal/kafka"
	"github.com/lendery/lendery/internal/logger"
	"github.com/lendery/lendery/internal/notify"
	"github.com/lendery/lendery/internal/repository/postgresql"
	"github.com/lendery/lendery/internal/server"
	"github.com/lendery/lendery/internal/token"
	"github.com/lendery/lendery/internal/waitlist"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() {
		_ = log.Sync()
	}()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("Database init error", zap.Error(err))
	}
	defer database.GetPool().Close()

	itemRepo := postgresql.NewItemRepo(database)
	transferRepo := postgresql.NewTransferRepo(database)
	tokenRepo := postgresql.NewTokenRepo(database)
	waitlistRepo := postgresql.NewWaitlistRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	tagSecret := os.Getenv("TAG_TOKEN_SECRET")
	if tagSecret == "" {
		log.Fatal("TAG_TOKEN_SECRET is not set")
	}
	tags := token.NewService([]byte(tagSecret))

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:9000"
	}
	notifier := notify.NewOutboxNotifier(database, outboxRepo, baseURL)

	eng := engine.New(database, itemRepo, transferRepo, tokenRepo, waitlistRepo, userRepo, tags, notifier, log)
	wl := waitlist.NewManager(waitlistRepo, itemRepo, userRepo)
	srv := server.New(eng, wl, itemRepo, transferRepo, userRepo, log)

	var producer kafka.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = kafka.NewWriterProducer(strings.Split(brokers, ","))
	} else {
		producer = kafka.NewConsoleProducer()
	}
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	}, log)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "9000"
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return srv.Run(groupCtx, port)
	})

	group.Go(func() error {
		publisher.Run(groupCtx)
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		publisher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal("Service stopped with error", zap.Error(err))
	}
	log.Info("Service gracefully stopped")
}
