package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anshayy/eventmanagementandrsvp/internal/domain/catalog"
	"github.com/anshayy/eventmanagementandrsvp/internal/domain/event"
	"github.com/anshayy/eventmanagementandrsvp/internal/infrastructure/static"
)

// MockEventCatalog はEventCatalogのモック
type MockEventCatalog struct {
	mock.Mock
}

func (m *MockEventCatalog) Events() []*event.Event {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*event.Event)
}

func (m *MockEventCatalog) Get(id string) (*event.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventCatalog) Countries() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockEventCatalog) Stats() catalog.Stats {
	args := m.Called()
	return args.Get(0).(catalog.Stats)
}

// loadCatalog は組み込みカタログを読み込む
func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load(context.Background(), static.NewSource())
	require.NoError(t, err)
	return c
}

func eventIDs(events []*event.Event) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}
