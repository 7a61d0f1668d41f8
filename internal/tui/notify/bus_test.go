package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/waypoint/internal/core/notify"
)

func TestBus_Publish_dispatches_to_subscribers(t *testing.T) {
	bus := NewBus()

	var received []notify.Notification
	bus.Subscribe(func(n notify.Notification) {
		received = append(received, n)
	})

	bus.Errorf("delete point %q: %s", "p1", "not found")
	bus.Infof("trip reloaded")
	bus.Warnf("watch failed")

	require.Len(t, received, 3)
	assert.Equal(t, notify.LevelError, received[0].Level)
	assert.Equal(t, `delete point "p1": not found`, received[0].Message)
	assert.Equal(t, notify.LevelInfo, received[1].Level)
	assert.Equal(t, notify.LevelWarning, received[2].Level)
}

func TestBus_Publish_sets_timestamp(t *testing.T) {
	bus := NewBus()

	var got notify.Notification
	bus.Subscribe(func(n notify.Notification) { got = n })

	bus.Infof("hello")
	assert.False(t, got.CreatedAt.IsZero())

	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bus.Publish(notify.Notification{Level: notify.LevelInfo, Message: "fixed", CreatedAt: fixed})
	assert.Equal(t, fixed, got.CreatedAt)
}

func TestBus_Publish_without_subscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() { bus.Errorf("nobody listens") })
}
