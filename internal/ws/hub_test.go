package ws

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return ctx
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func startHub(t *testing.T) *Hub {
	t.Helper()

	h := NewHub(testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("hub Run did not exit")
		}
	})

	return h
}

func waitForCount(t *testing.T, h *Hub, want int) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for h.ClientCount() != want {
		select {
		case <-deadline:
			t.Fatalf("client count = %d, want %d", h.ClientCount(), want)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

// recv reads one queued message for the client or fails the test.
func recv(t *testing.T, c *Client) []byte {
	t.Helper()

	select {
	case msg, ok := <-c.send:
		if !ok {
			t.Fatal("send channel closed before a message arrived")
		}

		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message delivered")

		return nil
	}
}

func TestHub_BroadcastReachesRegisteredClients(t *testing.T) {
	t.Parallel()

	h := startHub(t)

	a := NewClient(h, nil)
	b := NewClient(h, nil)
	h.Register(a)
	h.Register(b)
	waitForCount(t, h, 2)

	h.BroadcastEvent(EventStatusUpdate, map[string]any{"pending_approvals": 2})

	for _, c := range []*Client{a, b} {
		var evt Event
		if err := json.Unmarshal(recv(t, c), &evt); err != nil {
			t.Fatalf("invalid event JSON: %v", err)
		}
		if evt.Type != EventStatusUpdate {
			t.Errorf("event type = %q", evt.Type)
		}
		if evt.Time.IsZero() {
			t.Error("event time not set")
		}
	}
}

func TestHub_FullSendBufferDropsClient(t *testing.T) {
	t.Parallel()

	h := startHub(t)

	slow := NewClient(h, nil)
	healthy := NewClient(h, nil)
	h.Register(slow)
	h.Register(healthy)
	waitForCount(t, h, 2)

	// A viewer that never reads fills its buffer and must not block
	// delivery to the others.
	for i := 0; i < clientSendBuffer; i++ {
		slow.send <- []byte("backlog")
	}

	h.Broadcast([]byte(`{"type":"status_update"}`))
	waitForCount(t, h, 1)

	if got := recv(t, healthy); string(got) != `{"type":"status_update"}` {
		t.Errorf("healthy client received %q", got)
	}

	// The dropped client's channel is closed behind its backlog.
	for i := 0; i < clientSendBuffer; i++ {
		<-slow.send
	}
	if _, ok := <-slow.send; ok {
		t.Error("slow client's send channel not closed")
	}
}

func TestHub_UnregisterRemovesClient(t *testing.T) {
	t.Parallel()

	h := startHub(t)

	c := NewClient(h, nil)
	h.Register(c)
	waitForCount(t, h, 1)

	h.Unregister(c)
	waitForCount(t, h, 0)

	h.Broadcast([]byte("after"))

	select {
	case msg, ok := <-c.send:
		if ok {
			t.Errorf("unregistered client received %q", msg)
		}
	case <-time.After(200 * time.Millisecond):
		t.Error("send channel left open after unregister")
	}
}

func TestHub_ShutdownDrainsAndCloses(t *testing.T) {
	t.Parallel()

	h := NewHub(testLogger())
	go h.Run(testContext(t))

	c := NewClient(h, nil)
	h.Register(c)
	waitForCount(t, h, 1)

	done := make(chan struct{})
	go func() {
		h.Shutdown()
		close(done)
	}()

	// The drain parks a shutdown frame on the client before closing.
	if string(recv(t, c)) == "" {
		t.Error("no shutdown frame delivered")
	}

	select {
	case <-done:
	case <-time.After(drainTimeout + time.Second):
		t.Fatal("Shutdown did not return")
	}
	if h.ClientCount() != 0 {
		t.Errorf("client count after shutdown = %d", h.ClientCount())
	}
}
