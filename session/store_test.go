package session

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzaria-storefront/models"
	"pizzaria-storefront/pricing"
)

type nopChannel struct{}

func (nopChannel) Send(ctx context.Context, encodedMessage string) (string, error) {
	return "https://wa.me/55?text=" + encodedMessage, nil
}

func newTestStore(t *testing.T, ttl time.Duration) *Store {
	t.Helper()
	engine, err := pricing.NewEngine("")
	require.NoError(t, err)
	return NewStore(Dependencies{Pricer: engine, Channel: nopChannel{}, StoreName: "Teste"}, ttl)
}

func TestGetOrCreate(t *testing.T) {
	store := newTestStore(t, time.Hour)

	first, created := store.GetOrCreate("")
	require.True(t, created)
	require.NotEmpty(t, first.ID)

	again, created := store.GetOrCreate(first.ID)
	assert.False(t, created)
	assert.Same(t, first, again)

	other, created := store.GetOrCreate("unknown")
	assert.True(t, created)
	assert.NotEqual(t, "unknown", other.ID)
	assert.Equal(t, 2, store.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	store := newTestStore(t, time.Hour)
	a, _ := store.GetOrCreate("")
	b, _ := store.GetOrCreate("")

	price := decimal.NewFromInt(10)
	a.Cart.Add(models.CartCandidate{Product: models.Product{ID: "p", Name: "P", Price: &price}}, nil)

	assert.False(t, a.Cart.IsEmpty())
	assert.True(t, b.Cart.IsEmpty())
	assert.Len(t, a.Notifications.Drain(), 1)
	assert.Empty(t, a.Notifications.Drain())
	assert.Empty(t, b.Notifications.Drain())
}

func TestExpire(t *testing.T) {
	store := newTestStore(t, time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	old, _ := store.GetOrCreate("")
	now = now.Add(30 * time.Second)
	fresh, _ := store.GetOrCreate("")

	now = now.Add(45 * time.Second)
	assert.Equal(t, 1, store.Expire())

	_, ok := store.Get(old.ID)
	assert.False(t, ok)
	_, ok = store.Get(fresh.ID)
	assert.True(t, ok)
}

func TestNotificationQueueIsBounded(t *testing.T) {
	q := &NotificationQueue{}
	for i := 0; i < maxQueued+5; i++ {
		q.Notify(models.SeverityInfo, "msg")
	}
	assert.Len(t, q.Drain(), maxQueued)
}
