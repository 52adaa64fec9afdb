package ddd_test

import (
	"testing"
	"time"

	"dispatch/internal/pkg/ddd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEvent struct {
	name string
	at   time.Time
}

func (e stubEvent) EventName() string     { return e.name }
func (e stubEvent) OccurredAt() time.Time { return e.at }

func TestBaseAggregate(t *testing.T) {
	t.Run("raising events bumps the version", func(t *testing.T) {
		var agg ddd.BaseAggregate

		assert.Equal(t, 0, agg.Version())
		assert.Empty(t, agg.DomainEvents())

		agg.RaiseDomainEvent(stubEvent{name: "first", at: time.Now()})
		agg.RaiseDomainEvent(stubEvent{name: "second", at: time.Now()})

		assert.Equal(t, 2, agg.Version())
		events := agg.DomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, "first", events[0].EventName())
		assert.Equal(t, "second", events[1].EventName())
	})

	t.Run("clear drops events but keeps version", func(t *testing.T) {
		var agg ddd.BaseAggregate
		agg.RaiseDomainEvent(stubEvent{name: "first", at: time.Now()})

		agg.ClearDomainEvents()

		assert.Empty(t, agg.DomainEvents())
		assert.Equal(t, 1, agg.Version())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		var agg ddd.BaseAggregate
		agg.RaiseDomainEvent(stubEvent{name: "first", at: time.Now()})

		snapshot := agg.DomainEvents()
		snapshot[0] = stubEvent{name: "mutated", at: time.Now()}

		assert.Equal(t, "first", agg.DomainEvents()[0].EventName())
	})

	t.Run("restore version for rehydration", func(t *testing.T) {
		var agg ddd.BaseAggregate
		agg.RestoreVersion(7)

		assert.Equal(t, 7, agg.Version())
		assert.Empty(t, agg.DomainEvents())
	})
}
