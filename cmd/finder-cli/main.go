package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

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
	var (
		configFile  = flag.String("config", "config.json", "Configuration file path")
		command     = flag.String("cmd", "search", "Command to run: fetch, search, delete, config")
		query       = flag.String("query", "", "Search query sent to the vacancy source (fetch)")
		keywords    = flag.String("keywords", "", "Space-separated description keywords (search)")
		salaryRange = flag.String("range", "", "Inclusive salary range, e.g. 100000-150000 (search)")
		top         = flag.Int("top", 10, "Number of vacancies to show (search)")
		id          = flag.String("id", "", "Vacancy id to delete (delete)")
		output      = flag.String("output", "console", "Output format: console, json")
		help        = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

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

	switch *command {
	case "fetch":
		runFetchCommand(cfg, *query)
	case "search":
		runSearchCommand(cfg, *keywords, *salaryRange, *top, *output)
	case "delete":
		runDeleteCommand(cfg, *id)
	case "config":
		runConfigCommand(cfg)
	default:
		fmt.Printf("Unknown command: %s\n", *command)
		printUsage()
		os.Exit(1)
	}
}

func runFetchCommand(cfg *config.Config, query string) {
	if query == "" {
		log.Fatal("fetch requires -query")
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

	saved, err := aggregator.Aggregate(context.Background(), query)
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}
	fmt.Printf("Saved %d vacancies\n", saved)
}

func runSearchCommand(cfg *config.Config, keywords, salaryRange string, top int, output string) {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	searcher := finder.NewSearcher(store)
	results, err := searcher.Search(finder.Query{
		Keywords:    strings.Fields(keywords),
		SalaryRange: salaryRange,
		TopN:        top,
	})
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	if output == "json" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode results: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	if len(results) == 0 {
		fmt.Println("No vacancies matched the given criteria.")
		return
	}
	cli.PrintVacancies(os.Stdout, results)
}

func runDeleteCommand(cfg *config.Config, id string) {
	if id == "" {
		log.Fatal("delete requires -id")
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	if err := store.Delete(id); err != nil {
		log.Fatalf("Delete failed: %v", err)
	}
	fmt.Printf("Deleted vacancies with id %s\n", id)
}

func runConfigCommand(cfg *config.Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode config: %v", err)
	}
	fmt.Println(string(data))
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

func printUsage() {
	fmt.Println("Vacancy Finder CLI")
	fmt.Println()
	fmt.Println("Usage: finder-cli [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  -cmd fetch   -query <text>            Fetch vacancies and persist them")
	fmt.Println("  -cmd search  [-keywords ...] [-range min-max] [-top N] [-output console|json]")
	fmt.Println("  -cmd delete  -id <id>                 Delete stored vacancies by id")
	fmt.Println("  -cmd config                           Print the effective configuration")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}
