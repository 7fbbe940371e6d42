package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/maxenceleguery/portfolio/app/api"
	"github.com/maxenceleguery/portfolio/app/cfg"
	"github.com/maxenceleguery/portfolio/app/feed"
	"github.com/maxenceleguery/portfolio/app/site"
	"github.com/maxenceleguery/portfolio/app/tasks"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load configuration from environment variables and command-line flags
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	log.Printf("Starting Portfolio server (version %s)...", appCfg.Version)

	// Load portfolio content
	log.Printf("Loading portfolio content from %s...", appCfg.ContentFile)
	contentCache := site.NewContentCache(appCfg.ContentFile)
	if err := contentCache.Run(); err != nil {
		log.Fatal("Failed to load portfolio content:", err)
	}

	watchCtx, stopWatching := context.WithCancel(context.Background())
	defer stopWatching()
	if appCfg.WatchContent {
		contentWatcher, err := site.NewContentWatcher(contentCache, site.DefaultDebounceDelay)
		if err != nil {
			log.Fatal("Failed to create content watcher:", err)
		}
		defer contentWatcher.Stop()
		if err := contentWatcher.Start(watchCtx); err != nil {
			log.Fatal("Failed to watch portfolio content:", err)
		}
	}

	// Initialize core components
	httpClient := &http.Client{}
	source := feed.NewSource(appCfg.ArxivURL, httpClient, feed.NewParser(), appCfg.UserAgent, appCfg.MaxResults)
	matcher := feed.NewAuthorMatcher(appCfg.AuthorNames...)
	normalizer := feed.NewNormalizer(appCfg.Location)
	client := feed.NewClient(source.FetchEntries, matcher, normalizer)

	if requestURL, err := source.RequestURL(appCfg.AuthorQuery); err == nil {
		log.Printf("Papers feed: %s (authors: %s)", requestURL, strings.Join(appCfg.AuthorNames, ", "))
	}

	// Initialize and start scheduler
	log.Printf("Starting task scheduler with %d workers...", appCfg.WorkerCount)
	scheduler := tasks.NewScheduler(appCfg.WorkerCount)
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize HTTP server
	log.Println("Initializing HTTP server...")
	apiHandler := api.NewHandler(contentCache, client, scheduler, appCfg.AuthorQuery,
		appCfg.BaseUrl, appCfg.Version, appCfg.Location)
	server := api.NewServer(apiHandler)

	// Create HTTP server with timeouts
	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on port %s", appCfg.Port)
		log.Printf("Endpoints available:")
		log.Printf("  Portfolio:     http://localhost:%s/", appCfg.Port)
		log.Printf("  Papers:        http://localhost:%s/papers", appCfg.Port)
		log.Printf("  Papers JSON:   http://localhost:%s/api/papers", appCfg.Port)
		log.Printf("  Papers RSS:    http://localhost:%s/papers.rss", appCfg.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("Portfolio server started successfully!")
	log.Println("Press Ctrl+C to shutdown gracefully...")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	// Graceful shutdown
	log.Println("Shutting down server gracefully...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}

	// Scheduler is stopped via defer
	log.Println("Portfolio server shutdown complete")
}
