package main

import (
	"fmt"
	"os"

	"github.com/ludo-technologies/datestamp/internal/config"
	"github.com/ludo-technologies/datestamp/internal/logging"
	"github.com/ludo-technologies/datestamp/internal/version"
	"github.com/ludo-technologies/datestamp/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const serverName = "datestamp"

func main() {
	// MCP uses stdout for JSON-RPC, so logs go to stderr
	logger := logging.New(os.Getenv(config.EnvVerbose) != "", os.Stderr)
	defer func() { _ = logger.Sync() }()

	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("ignoring .env", zap.Error(err))
	}
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	server := mcpserver.NewMCPServer(
		serverName,
		version.Short(),
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	mcp.RegisterTools(server, mcp.NewHandlerSet(mcp.NewDependencies(cfg, nil)))

	logger.Debug("starting MCP server",
		zap.String("name", serverName),
		zap.String("version", version.Short()),
		zap.String("config", cfg.Source),
		zap.Strings("tools", []string{"stamp_name", "extract_stamp", "split_filename"}))

	// Blocks until stdin is closed
	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
