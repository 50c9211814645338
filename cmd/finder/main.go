package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"vacancy-finder-go/internal/cli"
	"vacancy-finder-go/internal/config"
	"vacancy-finder-go/internal/finder"
	"vacancy-finder-go/internal/source"
	"vacancy-finder-go/internal/storage"
	"vacancy-finder-go/pkg/httpclient"
	"vacancy-finder-go/pkg/logging"
)

func main() {
	configFile := flag.String("config", "config.json", "Configuration file path")
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	logger := logging.New(cfg.Logging.Level)
	defer logger.Sync()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	httpClient := httpclient.NewHttpClient(cfg.Source.RequestTimeout)
	headhunter := source.NewHeadHunter(httpClient, cfg.Source.BaseURL)

	aggregator := finder.NewAggregator(headhunter, store, logger)
	searcher := finder.NewSearcher(store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(aggregator, searcher)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("finder: %v", err)
	}
}

func openStore(cfg *config.Config) (storage.Connector, func(), error) {
	noop := func() {}
	switch cfg.Storage.Backend {
	case config.BackendJSONFile:
		s, err := storage.NewJSONFileStore(cfg.Storage.FilePath)
		return s, noop, err
	case config.BackendSQLite:
		s, err := storage.NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	case config.BackendSupabase:
		s, err := storage.NewSupabaseStore(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey)
		return s, noop, err
	case config.BackendMemory:
		return storage.NewMemoryStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
