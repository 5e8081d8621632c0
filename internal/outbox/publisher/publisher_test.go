package publisher

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"library-service/internal/domain/outbox"
	outboxmemory "library-service/internal/outbox/repository/memory"
)

// fakeBus fails every publish whose payload contains one of failMarkers,
// matched by substring so it can discriminate by aggregate even when two
// entries share a topic.
type fakeBus struct {
	failMarkers []string
	published   []string
}

func (b *fakeBus) Publish(ctx context.Context, subject string, data []byte) error {
	for _, marker := range b.failMarkers {
		if bytes.Contains(data, []byte(marker)) {
			return errors.New("bus unavailable")
		}
	}
	b.published = append(b.published, subject)
	return nil
}

func testConfig() Config {
	return Config{
		BatchSize:   10,
		BackoffBase: time.Millisecond,
		BackoffCap:  5 * time.Millisecond,
	}
}

func TestPublisher_DrainOnce_PublishesInClaimedOrder(t *testing.T) {
	repo := outboxmemory.NewOutboxRepository()
	now := time.Now()
	require.NoError(t, repo.Insert(context.Background(), outbox.Entry{
		ID: "e1", AggregateKey: "res-1", Topic: "events.reservation.created",
		EventType: outbox.EventReservationCreated, Payload: []byte(`{}`), CreatedAt: now,
	}))
	require.NoError(t, repo.Insert(context.Background(), outbox.Entry{
		ID: "e2", AggregateKey: "res-1", Topic: "events.reservation.confirmed",
		EventType: outbox.EventReservationConfirmed, Payload: []byte(`{}`), CreatedAt: now.Add(time.Second),
	}))

	bus := &fakeBus{}
	p := New(repo, bus, zap.NewNop(), testConfig())

	claimed, published, failed := p.DrainOnce(context.Background())

	assert.Equal(t, 2, claimed)
	assert.Equal(t, 2, published)
	assert.Equal(t, 0, failed)
	assert.Equal(t, []string{"events.reservation.created", "events.reservation.confirmed"}, bus.published)
}

func TestPublisher_DrainOnce_SkipsLaterEventsForAFailedAggregateKey(t *testing.T) {
	repo := outboxmemory.NewOutboxRepository()
	now := time.Now()
	require.NoError(t, repo.Insert(context.Background(), outbox.Entry{
		ID: "e1", AggregateKey: "res-1", Topic: "events.reservation.created",
		EventType: outbox.EventReservationCreated, Payload: []byte(`{"reservation_id":"res-1"}`), CreatedAt: now,
	}))
	require.NoError(t, repo.Insert(context.Background(), outbox.Entry{
		ID: "e2", AggregateKey: "res-1", Topic: "events.reservation.confirmed",
		EventType: outbox.EventReservationConfirmed, Payload: []byte(`{"reservation_id":"res-1"}`), CreatedAt: now.Add(time.Second),
	}))
	require.NoError(t, repo.Insert(context.Background(), outbox.Entry{
		ID: "e3", AggregateKey: "res-2", Topic: "events.reservation.created",
		EventType: outbox.EventReservationCreated, Payload: []byte(`{"reservation_id":"res-2"}`), CreatedAt: now,
	}))

	// res-1's events always fail; res-2's, despite sharing a topic, is
	// unaffected and should still publish.
	bus := &fakeBus{failMarkers: []string{"res-1"}}
	p := New(repo, bus, zap.NewNop(), Config{BatchSize: 10, BackoffBase: time.Millisecond, BackoffCap: time.Millisecond})

	claimed, published, failed := p.DrainOnce(context.Background())

	assert.Equal(t, 3, claimed)
	assert.Equal(t, 1, published) // only res-2's created event
	assert.Equal(t, 1, failed)    // res-1's created event, after exhausting retry budget
	assert.Contains(t, bus.published, "events.reservation.created") // res-2's, since res-1's failed every attempt

	// res-1's confirmed event was never attempted: it was skipped after the
	// created event failed, so its attempts counter stays at zero.
	remaining, err := repo.ClaimBatch(context.Background(), 10)
	require.NoError(t, err)
	var res1Confirmed *outbox.Entry
	for i := range remaining {
		if remaining[i].ID == "e2" {
			res1Confirmed = &remaining[i]
		}
	}
	require.NotNil(t, res1Confirmed)
	assert.Equal(t, 0, res1Confirmed.Attempts)
}

func TestPublisher_DrainOnce_NoEntriesToClaim(t *testing.T) {
	repo := outboxmemory.NewOutboxRepository()
	bus := &fakeBus{}
	p := New(repo, bus, zap.NewNop(), testConfig())

	claimed, published, failed := p.DrainOnce(context.Background())

	assert.Equal(t, 0, claimed)
	assert.Equal(t, 0, published)
	assert.Equal(t, 0, failed)
}
