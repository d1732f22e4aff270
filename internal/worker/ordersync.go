// Package worker runs the background side of intake: the fire-and-forget
// order-sync dispatcher.
package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aiya/event-intake/internal/domain"
	"github.com/aiya/event-intake/internal/pkg/logger"
)

// httpDoer is the interface for executing HTTP requests. Both *http.Client
// and test doubles satisfy it.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// OrderSync forwards created orders to an external sync endpoint. Dispatch
// hands the order to a buffered queue and returns immediately; a single
// consumer goroutine performs the POST. Delivery is not guaranteed: there
// are no retries, and when the queue is full the event is dropped with a
// warning. The durable order row is the source of truth either way.
type OrderSync struct {
	url    string
	client httpDoer
	queue  chan *domain.Order
	done   chan struct{}
}

// syncEvent is the wire payload for one dispatched order.
type syncEvent struct {
	DispatchID   string  `json:"dispatchId"`
	DispatchedAt string  `json:"dispatchedAt"`
	OrderID      int64   `json:"orderId"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Amount       float64 `json:"amount"`
	PackageType  string  `json:"packageType"`
	ReferralCode string  `json:"referralCode,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
}

// NewOrderSync creates a dispatcher posting to url. queueSize bounds how
// many undelivered events may be pending; <=0 uses 64.
func NewOrderSync(url string, queueSize int) *OrderSync {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &OrderSync{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
		queue:  make(chan *domain.Order, queueSize),
		done:   make(chan struct{}),
	}
}

// Done is closed once Start has finished its shutdown drain. Callers that
// cancel the worker context must wait on it before exiting, or queued
// events die with the process.
func (s *OrderSync) Done() <-chan struct{} { return s.done }

// SetHTTPClient sets a custom HTTP client (useful for testing).
func (s *OrderSync) SetHTTPClient(client httpDoer) { s.client = client }

// Dispatch enqueues an order for sync without blocking. Full queue drops
// the event; the caller never waits on the sync endpoint.
func (s *OrderSync) Dispatch(o *domain.Order) {
	select {
	case s.queue <- o:
	default:
		logger.Warn("order sync queue full, dropping event", "order_id", o.ID)
	}
}

// Start runs the consumer loop. It blocks until ctx is cancelled, then
// drains whatever is already queued before returning.
func (s *OrderSync) Start(ctx context.Context) {
	defer close(s.done)
	logger.Info("order sync worker started", "endpoint", s.url)
	for {
		select {
		case <-ctx.Done():
			s.drain()
			logger.Info("order sync worker stopped")
			return
		case o := <-s.queue:
			s.send(o)
		}
	}
}

func (s *OrderSync) drain() {
	for {
		select {
		case o := <-s.queue:
			s.send(o)
		default:
			return
		}
	}
}

// send posts one order to the sync endpoint. Failures are logged and
// forgotten; there is deliberately no retry. Each send carries its own
// timeout context so queued events still go out during shutdown drain.
func (s *OrderSync) send(o *domain.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	event := syncEvent{
		DispatchID:   uuid.New().String(),
		DispatchedAt: time.Now().UTC().Format(time.RFC3339),
		OrderID:      o.ID,
		FirstName:    o.FirstName,
		LastName:     o.LastName,
		Email:        o.Email,
		Phone:        o.Phone,
		Amount:       o.Amount,
		PackageType:  string(o.PackageType),
		ReferralCode: o.ReferralCode,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("order sync marshal failed", "order_id", o.ID, "error", err.Error())
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		logger.Error("order sync request build failed", "order_id", o.ID, "error", err.Error())
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Warn("order sync post failed", "order_id", o.ID,
			"dispatch_id", event.DispatchID, "error", err.Error())
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("order sync rejected", "order_id", o.ID,
			"dispatch_id", event.DispatchID, "status", resp.StatusCode)
		return
	}

	logger.Info("order synced", "order_id", o.ID, "dispatch_id", event.DispatchID)
}
