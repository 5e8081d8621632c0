package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	domainapp "library-service/internal/domain/app"
	"library-service/internal/infrastructure/config"
	log "library-service/internal/infrastructure/logger"
	"library-service/internal/outbox/publisher"
	"library-service/internal/reaper"
	reservationservice "library-service/internal/reservations/service"
	natsjs "library-service/pkg/broker/nats/jetstream"
)

// Worker hosts the background processes that sit outside the HTTP request
// path: the transactional outbox publisher and the reservation expiry reaper.
type Worker struct {
	logger    *zap.Logger
	config    *config.Config
	publisher *publisher.Publisher
	reaper    *reaper.Reaper
}

func main() {
	logger := log.New()
	defer logger.Sync()

	logger.Info("starting worker service")

	cfg := config.MustLoad("")

	repos, err := domainapp.NewRepositories(domainapp.WithMemoryStore())
	if err != nil {
		logger.Fatal("failed to initialize repositories", zap.Error(err))
	}
	logger.Info("repositories initialized")

	// The outbox publisher needs a bus to drain onto; a NATS connection
	// failure is treated as non-fatal -- logged and skipped rather than
	// fatal, so the reaper still runs in an environment without NATS
	// available.
	var bus publisher.Bus
	js, err := natsjs.New(natsjs.Config{
		URL:           cfg.NATS.URL,
		StreamName:    cfg.NATS.Stream,
		Subjects:      []string{"events.reservation.>"},
		MaxAge:        7 * 24 * time.Hour,
		MaxBytes:      -1,
		Replicas:      1,
		StorageType:   jetstream.FileStorage,
		RetentionType: jetstream.LimitsPolicy,
	})
	if err != nil {
		logger.Warn("failed to connect to NATS JetStream, outbox publisher disabled", zap.Error(err))
	} else {
		bus = js
		defer js.Close()
	}

	var outboxPublisher *publisher.Publisher
	if bus != nil {
		outboxPublisher = publisher.New(repos.Outbox, bus, logger, publisher.Config{
			BatchSize:   cfg.Outbox.PublishBatchSize,
			BackoffBase: cfg.Outbox.BackoffBase(),
			BackoffCap:  cfg.Outbox.BackoffCap(),
		})
	}

	reservationReaper := reaper.New(
		repos.TxManager,
		reservationservice.ExpireDeps{
			StockRepo:       repos.Stock,
			ReservationRepo: repos.Reservation,
			OutboxRepo:      repos.Outbox,
		},
		logger,
		reaper.Config{
			BatchSize:        cfg.Reservation.ReapBatchSize,
			ReminderEnabled:  cfg.Reservation.ReminderEnabled,
			ReminderFraction: cfg.Reservation.ReminderFraction,
		},
	)

	worker := &Worker{
		logger:    logger,
		config:    cfg,
		publisher: outboxPublisher,
		reaper:    reservationReaper,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	if worker.publisher != nil {
		go worker.publisher.Run(ctx, cfg.Outbox.DrainInterval())
	}
	go worker.reaper.Run(ctx, cfg.Reservation.ReapInterval())

	logger.Info("worker service started")

	sig := <-quit
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	cancel()
	time.Sleep(5 * time.Second)

	logger.Info("worker service stopped")
}
