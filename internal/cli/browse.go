package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yildizm/heroboard/internal/config"
	"github.com/yildizm/heroboard/internal/gateway"
	"github.com/yildizm/heroboard/internal/heroapi"
	"github.com/yildizm/heroboard/internal/logger"
	"github.com/yildizm/heroboard/internal/runtime"
	"github.com/yildizm/heroboard/internal/ui"
	"github.com/yildizm/heroboard/internal/view"
)

var browseWatchConfig bool

func newBrowseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [hero-id]",
		Short: "Open the interactive hero page",
		Long: `Open the hero list in the terminal. With a hero id, the page opens on
that hero's profile.

Ability points can be moved between abilities with the arrow keys. Edits
stay local to this session.

Examples:
  heroboard browse
  heroboard browse 3
  heroboard browse --watch-config --config ./heroboard.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBrowse,
	}

	cmd.Flags().BoolVar(&browseWatchConfig, "watch-config", false, "reload theme and banner delay when the config file changes")

	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	// the page owns the terminal, so logs only go to logging.file
	log, closeLog, err := newLogger("browse", nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
		_ = closeLog()
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := cfg.UI.RoutePrefix
	if len(args) == 1 {
		path = view.RouteFor(cfg.UI.RoutePrefix, args[0])
	}

	opts := ui.Options{
		Runtime: newRuntimeOptions(cfg, log),
		Path:    path,
		Theme:   cfg.UI.Theme,
	}
	if browseWatchConfig {
		opts.WatchConfig = watchedConfigPath()
		if opts.WatchConfig == "" {
			log.Warn("--watch-config given but no config file is in use")
		}
	}

	log.Info("opening %s", path)
	return ui.Run(ctx, opts)
}

// watchedConfigPath returns the config file the command loaded, if any
func watchedConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if path, found := config.FindConfigFile(); found {
		return path
	}
	return ""
}

// newRuntimeOptions wires the HTTP gateway and endpoints from cfg
func newRuntimeOptions(cfg *config.Config, log *logger.Logger) runtime.Options {
	gw := gateway.New(gateway.Config{
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	}, log)

	return runtime.Options{
		Gateway:      gw,
		Endpoints:    heroapi.Endpoints{BaseURL: cfg.API.BaseURL},
		RoutePrefix:  cfg.UI.RoutePrefix,
		DismissDelay: cfg.UI.ErrorDismissDelay,
		Logger:       log,
	}
}
