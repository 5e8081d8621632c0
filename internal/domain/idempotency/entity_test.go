package idempotency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	now := time.Now()
	ttl := 10 * time.Minute

	record := NewRecord("key-1", "fingerprint-1", "res-1", now, ttl)

	assert.Equal(t, "key-1", record.Key)
	assert.Equal(t, "fingerprint-1", record.Fingerprint)
	assert.Equal(t, "res-1", record.ReservationID)
	assert.Equal(t, now, record.CreatedAt)
	assert.Equal(t, now.Add(ttl), record.ExpiresAt)
}

func TestRecord_Expired(t *testing.T) {
	now := time.Now()
	record := NewRecord("key-1", "fp", "res-1", now, 10*time.Minute)

	assert.False(t, record.Expired(now.Add(5*time.Minute)))
	assert.True(t, record.Expired(now.Add(11*time.Minute)))
}
