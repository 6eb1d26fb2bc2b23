// Package main is the partsearch CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/steelworks/partsearch/internal/analytics"
	"github.com/steelworks/partsearch/internal/catalog"
	"github.com/steelworks/partsearch/internal/cli"
	"github.com/steelworks/partsearch/internal/config"
	"github.com/steelworks/partsearch/internal/models"
	"github.com/steelworks/partsearch/internal/search"
	"github.com/steelworks/partsearch/internal/server"
	"github.com/steelworks/partsearch/pkg/utils"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "reload":
		runReload()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("partsearch version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// components holds the directly-initialized engine stack (no server).
type components struct {
	Provider *catalog.Provider
	Engine   *search.Engine
	Tracker  *analytics.Tracker
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*components, error) {
	source, err := catalog.NewSource(&cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog source: %w", err)
	}
	provider := catalog.NewProvider(source, time.Duration(cfg.Catalog.RefreshTTLSeconds)*time.Second, logger)

	engine := search.NewEngine(provider, &cfg.Search, &cfg.Scoring, logger)
	var tracker *analytics.Tracker
	if cfg.Search.AnalyticsEnabled() {
		tracker = analytics.NewTracker()
		engine.WithTracker(tracker)
	}
	return &components{Provider: provider, Engine: engine, Tracker: tracker}, nil
}

func loadConfigAndLogger(path string, debugFlag bool) (*config.Config, *zap.Logger) {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug || debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path (empty = env/defaults)")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, logger := loadConfigAndLogger(*configPath, *debug)
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}

	// Warm the catalog before accepting traffic; a failed first load is not
	// fatal, the provider retries on demand.
	if err := components.Provider.Reload(context.Background()); err != nil {
		logger.Warn("initial catalog load failed", zap.Error(err))
	}

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Catalog.WatchFile && cfg.Catalog.Path != "" {
		go func() {
			if err := components.Provider.Watch(watchCtx, cfg.Catalog.Path); err != nil && watchCtx.Err() == nil {
				logger.Warn("catalog watch stopped", zap.Error(err))
			}
		}()
	}

	srv := server.NewServer(components.Engine, components.Provider, components.Tracker, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// buildQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting.
func buildQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path (for direct mode)")
	serverURL := fs.String("server", "http://localhost:8080", `server URL (use --server "" for direct catalog access)`)
	page := fs.Int("page", 1, "result page")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: partsearch search [flags] <query>")
		os.Exit(1)
	}
	query := buildQuery(fs.Args())
	if query == "" {
		fmt.Println("Usage: partsearch search [flags] <query>")
		os.Exit(1)
	}

	format := cli.OutputText
	switch *outputFormat {
	case "text":
		format = cli.OutputText
	case "json":
		format = cli.OutputJSON
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	var response *models.SearchResponse
	var err error
	if *serverURL != "" {
		response, err = searchViaHTTP(*serverURL, query, *page)
	} else {
		response, err = searchDirect(*configPath, query, *page)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSearchResults(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func searchDirect(configPath, query string, page int) (*models.SearchResponse, error) {
	cfg, logger := loadConfigAndLogger(configPath, false)
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		return nil, err
	}
	return components.Engine.Search(query, page)
}

func searchViaHTTP(serverURL, query string, page int) (*models.SearchResponse, error) {
	u := serverURL + "/api/v1/search?q=" + url.QueryEscape(query) + "&page=" + strconv.Itoa(page)
	resp, err := http.Get(u)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var response models.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

func runReload() {
	fs := flag.NewFlagSet("reload", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	_ = fs.Parse(os.Args[2:])

	resp, err := http.Post(*serverURL+"/api/v1/reload", "application/json", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "Reload failed (%d): %s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}
	fmt.Println(strings.TrimSpace(string(b)))
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	_ = fs.Parse(os.Args[2:])

	resp, err := http.Get(*serverURL + "/api/v1/status")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Status failed (%d): %s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}
	var status map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		fmt.Fprintf(os.Stderr, "Parse failed: %v\n", err)
		os.Exit(1)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(status)
}

func printUsage() {
	fmt.Println(`partsearch - Ranked part catalog search

Usage:
  partsearch server [flags]           Start the HTTP server
  partsearch search [flags] <query>   Search the catalog
  partsearch reload [flags]           Force a catalog reload on the server
  partsearch status [flags]           Show catalog and analytics status
  partsearch version                  Show version
  partsearch help                     Show this help

Server Flags:
  --config string    Config file path (default: env vars and built-in defaults)
  --debug            Enable debug logging

Search Flags:
  --config string    Config file path (direct mode only)
  --server string    Server URL (default: http://localhost:8080). Use --server "" to search the catalog directly.
  --page int         Result page (default: 1; out-of-range pages are clamped)
  --output string    Output format: text or json (default: text)

Examples:
  partsearch server
  partsearch search valve assembly
  partsearch search --page 2 "pump seal"
  partsearch search --server "" --config config.yaml M1433
  partsearch reload
  partsearch status`)
}
