package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/fleetdash/internal/cli/config"
	"github.com/leapstack-labs/fleetdash/internal/cli/output"
	"github.com/leapstack-labs/fleetdash/internal/client"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's
// environment: loaded config, context logger, and a mode-aware renderer.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// NewClient builds the acquisition client from the loaded config.
func (c *CommandContext) NewClient() *client.Client {
	return client.New(c.Cfg.BaseURL,
		client.WithTimeout(c.Cfg.Timeout()),
		client.WithLogger(c.Logger),
	)
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	baseURL := getEnvOrDefault("FLEETDASH_BASE_URL", config.DefaultBaseURL)
	verbose := os.Getenv("FLEETDASH_VERBOSE") == "true"
	outputFormat := os.Getenv("FLEETDASH_OUTPUT")

	return &config.Config{
		BaseURL:        baseURL,
		TimeoutSeconds: config.DefaultTimeout,
		OutputFormat:   outputFormat,
		Verbose:        verbose,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
