// Command server runs the event intake API: registration and ticket-order
// submission backed by PostgreSQL, with SES confirmation email and
// fire-and-forget order sync.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/aiya/event-intake/internal/api"
	"github.com/aiya/event-intake/internal/config"
	"github.com/aiya/event-intake/internal/intake"
	"github.com/aiya/event-intake/internal/mailer"
	"github.com/aiya/event-intake/internal/repository/postgres"
	"github.com/aiya/event-intake/internal/worker"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v", port, addr, err)
	}
	ln.Close()
	return nil
}

func extractHost(dsn string) string {
	at := strings.Index(dsn, "@")
	if at < 0 {
		return "(unknown)"
	}
	rest := dsn[at+1:]
	slash := strings.Index(rest, "/")
	if slash >= 0 {
		rest = rest[:slash]
	}
	return rest
}

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}

	// Database pool: constructed once here and injected downward, never
	// reached as a global.
	log.Printf("Connecting to database: ...@%s/...", extractHost(cfg.Database.URL))
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime())
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime())

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		pingCancel()
		log.Fatalf("Database ping failed: %v", err)
	}
	pingCancel()
	log.Println("Database connected")

	repo := postgres.NewRepo(db)

	// SES confirmation mailer
	sesClient, err := mailer.NewClient(context.Background(), cfg.SES)
	if err != nil {
		log.Fatalf("Failed to initialize SES client: %v", err)
	}
	log.Printf("SES mailer ready (region %s, sender %s)", cfg.SES.Region, cfg.SES.Sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Order sync worker — optional, runs only when an endpoint is configured
	var dispatcher intake.OrderDispatcher
	var orderSync *worker.OrderSync
	if cfg.OrderSync.URL != "" {
		orderSync = worker.NewOrderSync(cfg.OrderSync.URL, cfg.OrderSync.QueueSize)
		go orderSync.Start(ctx)
		dispatcher = orderSync
	} else {
		log.Println("Order sync disabled (ORDER_SYNC_URL not set)")
	}

	svc := intake.NewService(repo, sesClient, dispatcher)
	server := api.NewServer(cfg.Server, svc, repo, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", host, port)
	go func() {
		log.Printf("Event intake API listening on %s", addr)
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then cancel the worker
	// context so the sync queue drains.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	// Stop the worker and wait for its queue to drain before exiting, or
	// events accepted during the final request window are lost.
	cancel()
	if orderSync != nil {
		select {
		case <-orderSync.Done():
		case <-time.After(30 * time.Second):
			log.Println("Order sync drain timed out")
		}
	}
	log.Println("Bye")
}
