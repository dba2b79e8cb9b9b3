package eventbus_test

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouthful-foods/vendor-mailer/internal/eventbus"
)

var discard = slog.New(slog.NewJSONHandler(io.Discard, nil))

func TestPublishAndReceive(t *testing.T) {
	bus := eventbus.New(2, discard)
	defer bus.Close()

	var received []eventbus.Event
	var mu sync.Mutex

	bus.Subscribe(func(e eventbus.Event) {
		mu.Lock()
		received = append(received, e)
		mu.Unlock()
	})

	bus.Publish(eventbus.EventEmailSent, map[string]string{"kind": "approval", "to": "ana@x.com"})

	// Give workers time to process
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, eventbus.EventEmailSent, received[0].Type)
	assert.Equal(t, "approval", received[0].Payload["kind"])
	assert.False(t, received[0].Timestamp.IsZero())
}

func TestMultipleListeners(t *testing.T) {
	bus := eventbus.New(2, discard)
	defer bus.Close()

	var count int32

	for range 3 {
		bus.Subscribe(func(_ eventbus.Event) {
			atomic.AddInt32(&count, 1)
		})
	}

	bus.Publish(eventbus.EventAuthDeleted, nil)
	time.Sleep(50 * time.Millisecond)

	assert.EqualValues(t, 3, atomic.LoadInt32(&count))
}

func TestListenerPanicDoesNotCrash(t *testing.T) {
	bus := eventbus.New(1, discard)
	defer bus.Close()

	var delivered int32

	bus.Subscribe(func(_ eventbus.Event) {
		panic("bad listener")
	})
	bus.Subscribe(func(_ eventbus.Event) {
		atomic.AddInt32(&delivered, 1)
	})

	bus.Publish(eventbus.EventEmailFailed, map[string]string{"error": "boom"})
	time.Sleep(50 * time.Millisecond)

	assert.EqualValues(t, 1, atomic.LoadInt32(&delivered))
}

func TestCloseDrainsPendingEvents(t *testing.T) {
	bus := eventbus.New(1, discard)

	var count int32
	bus.Subscribe(func(_ eventbus.Event) {
		atomic.AddInt32(&count, 1)
	})

	for range 10 {
		bus.Publish(eventbus.EventEmailSent, nil)
	}
	bus.Close()

	assert.EqualValues(t, 10, atomic.LoadInt32(&count))
}
