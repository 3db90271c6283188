package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"campcare/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize Database
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := services.InitDB(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	gateway := services.NewRazorpayService()
	reconciler := services.NewReconcileService(db, gateway)

	interval := 10 * time.Minute
	if v := os.Getenv("RECONCILE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			interval = d
		} else {
			log.Printf("Invalid RECONCILE_INTERVAL %q, using default %s", v, interval)
		}
	}

	log.Printf("Reconciliation worker started, interval %s", interval)

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down worker...")
		cancel()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run once immediately, then on every tick
	runReconcile(reconciler)

	for {
		select {
		case <-ticker.C:
			runReconcile(reconciler)
		case <-ctx.Done():
			return
		}
	}
}

func runReconcile(reconciler *services.ReconcileService) {
	log.Println("Checking for stale payment sessions...")

	changed, err := reconciler.Run()
	if err != nil {
		log.Printf("Reconciliation pass failed: %v", err)
		return
	}

	if changed == 0 {
		log.Println("No sessions needed reconciliation.")
		return
	}
	log.Printf("Reconciled %d payment sessions.", changed)
}
