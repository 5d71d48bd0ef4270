package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/EdgeCaseLabs/ynab-mcp/internal/config"
	"github.com/EdgeCaseLabs/ynab-mcp/internal/observability"
	"github.com/EdgeCaseLabs/ynab-mcp/internal/tools"
	"github.com/EdgeCaseLabs/ynab-mcp/pkg/ynab"
)

const version = "1.0.0"

func main() {
	logging := flag.Bool("logging", false, "log every tool call to stderr")
	flag.Parse()

	cfg, err := config.LoadOrEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := observability.NewLogger(cfg.Logging.Level)

	if cfg.YNAB.APIKey == "" {
		log.Fatal().Msg("YNAB_API_KEY environment variable is required")
	}

	client, err := ynab.NewClient(&ynab.ClientOptions{
		AccessToken: cfg.YNAB.APIKey,
		Logger:      observability.NewAdapter(log),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize YNAB client")
	}
	defer client.Close()

	s := server.NewMCPServer(
		cfg.Server.Name,
		version,
		server.WithToolCapabilities(false),
	)

	toolset := tools.New(client, tools.Options{
		DefaultBudgetID: cfg.YNAB.DefaultBudgetID,
		LogCalls:        *logging,
		Logger:          log,
	})
	toolset.RegisterAll(s)

	log.Info().Str("server", cfg.Server.Name).Bool("call_logging", *logging).Msg("starting MCP server on stdio")

	if err := server.ServeStdio(s); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
