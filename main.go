package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Math-Ferraz/blog-parques/config"
	"github.com/Math-Ferraz/blog-parques/database"
	"github.com/Math-Ferraz/blog-parques/mailer"
	"github.com/Math-Ferraz/blog-parques/site"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	migrate := flag.Bool("migrate", false, "run database migrations and exit")
	testEmail := flag.Bool("test-email", false, "send a probe email through the configured relay and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *testEmail {
		if err := mailer.New(cfg).SendProbe(); err != nil {
			return fmt.Errorf("probe email failed: %w", err)
		}
		log.Println("Probe email sent")
		return nil
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close(db)

	if *migrate {
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Println("Migration complete")
		return nil
	}

	s := site.New(
		database.NewStore(db),
		site.NewSessionManager(cfg.SessionSecret),
		mailer.New(cfg),
		cfg,
	)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	addr := fmt.Sprintf(":%d", cfg.Port)
	go func() {
		log.Printf("Running on http://localhost%s", addr)
		if err := http.ListenAndServe(addr, s.Routes()); err != nil {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()

	// Block until a signal is received
	<-signals
	log.Println("Shutting down gracefully...")
	return nil
}
