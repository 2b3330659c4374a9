// Package commands implements the OSLens subcommands.
package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/buildsim-labs/oslens/internal/cli/config"
	"github.com/buildsim-labs/oslens/internal/loader"
	"github.com/buildsim-labs/oslens/internal/ui"
	"github.com/buildsim-labs/oslens/internal/workspace"
)

// UIOptions holds options for the ui command.
type UIOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
	Model     string
}

// NewUICommand creates the ui command.
func NewUICommand() *cobra.Command {
	opts := &UIOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the OSLens explorer UI",
		Long: `Start a local web server providing the interactive model explorer.

The UI provides:
- Model upload with optional version translation
- Object type catalog with callable methods
- Method filtering by type and keyword
- Example object viewer with IDF text`,
		Example: `  # Start UI on default port
  oslens ui

  # Start with a model preloaded and watched for changes
  oslens ui --model building.osm

  # Start on custom port without auto-opening browser
  oslens ui --port 3000 --no-browser`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Watch the model file for changes")
	cmd.Flags().StringVar(&opts.Model, "model", "", "Model file (.osm) to preload")

	return cmd
}

func runUI(cmd *cobra.Command, opts *UIOptions) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())

	// Get UI config with defaults
	uiCfg := cfg.GetUIConfig()

	// CLI flags override config file
	port := uiCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := uiCfg.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	watch := uiCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	if opts.Model != "" {
		if _, err := os.Stat(opts.Model); os.IsNotExist(err) {
			return fmt.Errorf("model file does not exist: %s", opts.Model)
		}
	}

	serverCfg := ui.Config{
		Workspace:     workspace.New(),
		Loader:        loader.New(logger),
		Port:          port,
		Watch:         watch,
		ModelPath:     opts.Model,
		Translate:     cfg.Translate,
		SessionSecret: sessionSecret(),
		Logger:        logger,
	}

	server := ui.NewServer(serverCfg)

	// Open browser if configured
	if autoOpen {
		url := fmt.Sprintf("http://localhost:%d", port)
		go openBrowser(url)
	}

	fmt.Printf("Starting UI server on http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}

// sessionSecret returns the cookie signing secret.
// In production, this should be loaded from config or environment.
func sessionSecret() string {
	secret := os.Getenv("OSLENS_SESSION_SECRET")
	if secret == "" {
		// Default secret for development (nolint:gosec)
		secret = "oslens-dev-secret-change-in-production" //nolint:gosec
	}
	return secret
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
