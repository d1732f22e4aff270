package worker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiya/event-intake/internal/domain"
)

func testOrder() *domain.Order {
	return &domain.Order{
		ID:          42,
		FirstName:   "A",
		LastName:    "B",
		Email:       "a@x.com",
		Phone:       "0812345678",
		Amount:      29900,
		PackageType: domain.PackageSingle,
		Status:      domain.OrderPaid,
		CreatedAt:   time.Now(),
	}
}

func TestOrderSyncDelivers(t *testing.T) {
	received := make(chan syncEvent, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ev syncEvent
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ev))
		received <- ev
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sync := NewOrderSync(srv.URL, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sync.Start(ctx)

	sync.Dispatch(testOrder())

	select {
	case ev := <-received:
		assert.Equal(t, int64(42), ev.OrderID)
		assert.Equal(t, "SINGLE", ev.PackageType)
		assert.Equal(t, "paid", ev.Status)
		assert.Equal(t, float64(29900), ev.Amount)
		assert.NotEmpty(t, ev.DispatchID)
	case <-time.After(2 * time.Second):
		t.Fatal("sync event never arrived")
	}
}

func TestOrderSyncEndpointFailureIsSwallowed(t *testing.T) {
	hit := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit <- struct{}{}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sync := NewOrderSync(srv.URL, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sync.Start(ctx)

	// A failing endpoint must not panic or block the dispatcher.
	sync.Dispatch(testOrder())

	select {
	case <-hit:
	case <-time.After(2 * time.Second):
		t.Fatal("sync endpoint never hit")
	}
}

func TestOrderSyncDispatchNeverBlocks(t *testing.T) {
	// No consumer running and a tiny queue: extra dispatches are dropped.
	sync := NewOrderSync("http://127.0.0.1:0", 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			sync.Dispatch(testOrder())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked")
	}
}

func TestOrderSyncDrainsOnShutdown(t *testing.T) {
	received := make(chan struct{}, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- struct{}{}
	}))
	defer srv.Close()

	sync := NewOrderSync(srv.URL, 4)
	sync.Dispatch(testOrder())
	sync.Dispatch(testOrder())

	// Cancel before the consumer ever ran: Start must still flush the queue.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	go sync.Start(ctx)

	// Done must not close until the drain has delivered both events, so a
	// caller waiting on it can exit safely.
	select {
	case <-sync.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Done never closed after cancel")
	}
	assert.Len(t, received, 2)
}

func TestOrderSyncDoneNotClosedWhileRunning(t *testing.T) {
	sync := NewOrderSync("http://127.0.0.1:0", 1)
	ctx, cancel := context.WithCancel(context.Background())
	go sync.Start(ctx)

	select {
	case <-sync.Done():
		t.Fatal("Done closed before cancel")
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	select {
	case <-sync.Done():
	case <-time.After(time.Second):
		t.Fatal("Done never closed after cancel")
	}
}
