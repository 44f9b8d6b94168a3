package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"pizzaria-storefront/app"
	"pizzaria-storefront/config"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	config.LoadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize application
	application, err := app.Initialize(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	go application.Sessions.RunJanitor(janitorCtx, time.Minute)

	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker/Render)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           application.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	server.RegisterOnShutdown(application.CloseStreams)

	go func() {
		log.Printf("Server starting on %s", cfg.Addr())
		log.Printf("Menu endpoint: GET http://localhost:%s/menu", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return server.Shutdown(ctx)
			},
			"session-janitor": func(ctx context.Context) error {
				stopJanitor()
				return nil
			},
		},
	)

	exitCode := <-wait
	// Storage is closed after the server has drained in-flight requests
	if err := application.Close(); err != nil {
		log.Printf("❌ Error releasing resources: %v", err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}
