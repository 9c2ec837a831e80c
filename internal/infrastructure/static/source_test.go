package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/catalog"
)

func TestSource_LoadEmbeddedCatalog(t *testing.T) {
	c, err := catalog.Load(context.Background(), NewSource())
	require.NoError(t, err)

	assert.Equal(t, 14, c.Len())
	assert.Equal(t, catalog.Stats{
		TotalEvents:        14,
		TotalCountries:     9,
		TotalRegistrations: 70862,
	}, c.Stats())
	assert.Equal(t,
		[]string{"USA", "UK", "Japan", "Germany", "Denmark", "France", "Singapore", "Australia", "India"},
		c.Countries(),
	)

	startup, err := c.Get("3")
	require.NoError(t, err)
	assert.Equal(t, "Startup Pitch Competition", startup.Title)
	assert.Equal(t, 177, startup.AvailableSpots())
	assert.False(t, startup.IsNearlyFull())
	assert.True(t, startup.IsFree())

	run, err := c.Get("12")
	require.NoError(t, err)
	assert.Equal(t, 100, run.AvailableSpots())
	assert.True(t, run.IsNearlyFull())
}

func TestSource_LoadFromBytes(t *testing.T) {
	data := []byte(`
events:
  - id: "x"
    title: テストイベント
    description: 説明
    date: "2025-01-02"
    time: "18:30"
    location: {city: Osaka, country: Japan, venue: Hall, address: 1-1}
    category: Music
    price: {amount: 1000, currency: JPY}
    organizer: {name: 主催者, email: a@example.com, phone: "000"}
    capacity: 10
    registered_count: 3
    tags: [a, b]
`)

	events, err := NewSourceFromBytes(data).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "x", e.ID)
	assert.Equal(t, "2025-01-02", e.Date.String())
	assert.Equal(t, "Japan", e.Location.Country)
	assert.Equal(t, 7, e.AvailableSpots())
	assert.Equal(t, []string{"a", "b"}, e.Tags)
}

func TestSource_LoadErrors(t *testing.T) {
	t.Run("未知のキー", func(t *testing.T) {
		_, err := NewSourceFromBytes([]byte("events:\n  - id: \"x\"\n    unknown: 1\n")).Load(context.Background())
		require.Error(t, err)
	})

	t.Run("日付の形式が不正", func(t *testing.T) {
		_, err := NewSourceFromBytes([]byte("events:\n  - id: \"x\"\n    date: 12/01/2024\n")).Load(context.Background())
		require.Error(t, err)
	})

	t.Run("キャンセル済みコンテキスト", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewSource().Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRecord_FromEntityKeepsFields(t *testing.T) {
	events, err := NewSource().Load(context.Background())
	require.NoError(t, err)

	records := FromEntities(events)
	back, err := ToEntities(records)
	require.NoError(t, err)

	assert.Equal(t, events, back)
}
