package main

import (
	"fmt"
	"os"
	"time"

	"github.com/tomestack/tome/internal/adapters/driven/config/file"
	"github.com/tomestack/tome/internal/adapters/driven/fetch"
	"github.com/tomestack/tome/internal/adapters/driven/metadata"
	"github.com/tomestack/tome/internal/adapters/driven/storage/memory"
	"github.com/tomestack/tome/internal/adapters/driving/cli"
	"github.com/tomestack/tome/internal/core/services"
	"github.com/tomestack/tome/internal/transcribers"
	pdftranscriber "github.com/tomestack/tome/internal/transcribers/pdf"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// Configuration (~/.tome/config.toml). A missing file is fine; a
	// corrupt one is not.
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Content fetcher with config overrides.
	fetchCfg := fetch.DefaultConfig()
	if seconds := configStore.GetInt("fetch.timeout_seconds"); seconds > 0 {
		fetchCfg.Timeout = time.Duration(seconds) * time.Second
	}
	if agent := configStore.GetString("fetch.user_agent"); agent != "" {
		fetchCfg.UserAgent = agent
	}
	if rps := configStore.GetFloat("fetch.requests_per_second"); rps > 0 {
		fetchCfg.RequestsPerSecond = rps
	}
	if burst := configStore.GetInt("fetch.burst"); burst > 0 {
		fetchCfg.Burst = burst
	}
	fetcher := fetch.New(fetchCfg)

	// Transcriber registry: text and stub by default, PDF extraction
	// on top.
	registry := transcribers.DefaultRegistry()
	registry.Register(pdftranscriber.New())

	// Best-effort YouTube title lookup.
	resolver := metadata.NewOEmbedResolver(fetchCfg.Timeout)

	// Notebooks live in memory for the lifetime of the process.
	notebookStore := memory.NewNotebookStore()

	ingestionService := services.NewIngestionService(fetcher, registry, resolver)
	notebookService := services.NewNotebookService(notebookStore, ingestionService)

	cli.SetNotebookService(notebookService)
	cli.SetDefaultMCPPort(configStore.GetInt("mcp.port"))
	cli.SetVersion(version)
	cli.Execute()
}
