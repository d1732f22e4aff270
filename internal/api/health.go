package api

import (
	"context"
	"net/http"
	"time"

	"github.com/aiya/event-intake/internal/pkg/httputil"
)

// Pinger is the database liveness probe used by the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports process and database health. It always answers 200;
// the database field in the body conveys connectivity.
type HealthChecker struct {
	db        Pinger
	startTime time.Time
}

// NewHealthChecker creates a HealthChecker probing db.
func NewHealthChecker(db Pinger) *HealthChecker {
	return &HealthChecker{db: db, startTime: time.Now()}
}

// HandleHealth returns service status and database connectivity.
//
//	GET /health
func (hc *HealthChecker) HandleHealth(w http.ResponseWriter, r *http.Request) {
	database := "connected"

	pingCtx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	if err := hc.db.Ping(pingCtx); err != nil {
		database = "disconnected"
	}

	httputil.OK(w, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
		"uptime":    time.Since(hc.startTime).Round(time.Second).String(),
	})
}
