package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yildizm/heroboard/internal/config"
	"github.com/yildizm/heroboard/internal/emoji"
	"github.com/yildizm/heroboard/internal/logger"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string
	baseURL   string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "heroboard",
		Short: "Browse heroes and their ability profiles",
		Long: `heroboard is a terminal client for the hero API. It lists heroes,
shows a hero's ability profile, and lets you redistribute ability points
within the hero's budget.

Run without a subcommand-specific route to open the hero list, or pass a
hero id to open that hero's profile directly.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			return loadGlobalConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format (text, json, markdown, csv)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "hero API base URL")

	rootCmd.AddCommand(newBrowseCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newProfileCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// loadGlobalConfig loads the config and lets explicit flags win over it
func loadGlobalConfig(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Output.Verbose = verbose
	}
	if cmd.Flags().Changed("no-emoji") || noEmoji {
		cfg.UI.NoEmoji = noEmoji
	}
	if outputFmt != "" {
		cfg.Output.DefaultFormat = outputFmt
	}
	if noColor {
		cfg.Output.ColorMode = "never"
	}
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	emoji.SetEmojiDisabled(cfg.UI.NoEmoji)
	globalConfig = cfg
	return nil
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		// version works even with a broken config file
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "heroboard %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// GetGlobalConfig returns the config loaded for the running command
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

func isVerbose() bool {
	return GetGlobalConfig().Output.Verbose
}

func getOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

// useColor resolves output.color_mode for w
func useColor(w io.Writer) bool {
	switch GetGlobalConfig().Output.ColorMode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// newLogger builds the command logger. Logs go to logging.file when set,
// otherwise to fallback. The returned close func releases the file.
func newLogger(component string, fallback io.Writer) (*logger.Logger, func() error, error) {
	cfg := GetGlobalConfig()
	format := logger.Format(cfg.Logging.Format)
	closeFn := func() error { return nil }

	w := fallback
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		return logger.NewNop(), closeFn, nil
	}

	return logger.NewWithWriter(component, logger.VerboseFunc(isVerbose), w, format), closeFn, nil
}
