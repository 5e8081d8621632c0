// Package publisher drains the transactional outbox onto the configured
// message bus, preserving per-aggregate-key delivery order.
package publisher

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"library-service/internal/domain/outbox"
	"library-service/internal/infrastructure/metrics"
)

// Bus is the subset of the NATS JetStream client the publisher needs.
// Matches pkg/broker/nats/jetstream.JetStream.Publish.
type Bus interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// Publisher periodically claims a batch of unpublished outbox entries and
// publishes each to Bus, retrying transient failures with a capped
// exponential backoff before giving up on that row for the current sweep.
// A row left unpublished is retried on the next sweep; IncrementAttempts
// records how many sweeps have tried it, for alerting on rows stuck behind
// a persistently failing publish.
type Publisher struct {
	repo      outbox.Repository
	bus       Bus
	logger    *zap.Logger
	batchSize int
	backoffBase time.Duration
	backoffCap  time.Duration
}

// Config carries the publisher's tunables, sourced from OutboxConfig.
type Config struct {
	BatchSize   int
	BackoffBase time.Duration
	BackoffCap  time.Duration
}

// New creates a new Publisher.
func New(repo outbox.Repository, bus Bus, logger *zap.Logger, cfg Config) *Publisher {
	return &Publisher{
		repo:        repo,
		bus:         bus,
		logger:      logger,
		batchSize:   cfg.BatchSize,
		backoffBase: cfg.BackoffBase,
		backoffCap:  cfg.BackoffCap,
	}
}

// DrainOnce claims one batch of unpublished entries, in aggregate-key then
// created-at order, and attempts to publish each in that order. Publishing
// stops advancing for a given aggregate key as soon as one of its entries
// fails, so a later event for that key never overtakes an earlier one on
// the bus; other keys in the batch continue independently.
func (p *Publisher) DrainOnce(ctx context.Context) (claimed, published, failed int) {
	entries, err := p.repo.ClaimBatch(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("outbox: claim batch failed", zap.Error(err))
		return 0, 0, 0
	}
	claimed = len(entries)
	metrics.Outbox.RowsClaimed.Add(float64(claimed))

	skipKey := make(map[string]bool, 8)
	for _, entry := range entries {
		if skipKey[entry.AggregateKey] {
			continue
		}

		if err := p.publishWithRetry(ctx, entry); err != nil {
			p.logger.Warn("outbox: publish failed, will retry next sweep",
				zap.String("id", entry.ID),
				zap.String("topic", entry.Topic),
				zap.Error(err))
			if incErr := p.repo.IncrementAttempts(ctx, entry.ID); incErr != nil {
				p.logger.Error("outbox: increment attempts failed", zap.String("id", entry.ID), zap.Error(incErr))
			}
			skipKey[entry.AggregateKey] = true
			failed++
			metrics.Outbox.RowsFailed.Inc()
			continue
		}

		if err := p.repo.MarkPublished(ctx, entry.ID, time.Now()); err != nil {
			p.logger.Error("outbox: mark published failed", zap.String("id", entry.ID), zap.Error(err))
			failed++
			metrics.Outbox.RowsFailed.Inc()
			continue
		}
		published++
		metrics.Outbox.RowsPublished.Inc()
	}

	return claimed, published, failed
}

func (p *Publisher) publishWithRetry(ctx context.Context, entry outbox.Entry) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = p.backoffBase
	policy.MaxInterval = p.backoffCap
	policy.MaxElapsedTime = p.backoffCap * 3

	return backoff.Retry(func() error {
		return p.bus.Publish(ctx, entry.Topic, entry.Payload)
	}, backoff.WithContext(policy, ctx))
}

// Run starts the drain loop, sweeping every interval until ctx is
// cancelled.
func (p *Publisher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.logger.Info("outbox publisher started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("outbox publisher stopping")
			return
		case <-ticker.C:
			claimed, published, failed := p.DrainOnce(ctx)
			if claimed > 0 {
				p.logger.Info("outbox sweep completed",
					zap.Int("rows_claimed", claimed),
					zap.Int("rows_published", published),
					zap.Int("rows_failed", failed))
			}
		}
	}
}
