package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yildizm/heroboard/internal/config"
	"github.com/yildizm/heroboard/internal/emoji"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage heroboard configuration",
		Long: `Manage heroboard configuration files and settings.

The config command provides subcommands for initializing, viewing,
validating, and locating configuration files.`,
		// config subcommands inspect broken files too, so loading is left to each of them
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			emoji.SetEmojiDisabled(noEmoji)
		},
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

// newConfigInitCommand creates the config init subcommand
func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		Long: `Initialize a new heroboard configuration file with default values.

By default, creates a full configuration file with every option commented.
Use --minimal for a compact configuration with only essential settings.`,
		Example: `  # Create full config in current directory
  heroboard config init

  # Create minimal config
  heroboard config init --minimal

  # Create config at specific path
  heroboard config init --output ~/.config/heroboard/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = ".heroboard.yaml"
			}

			if !force && fileExists(outputPath) {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", outputPath)
			}

			dir := filepath.Dir(outputPath)
			if dir != "." && dir != "/" {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			content := config.SampleConfig()
			if minimal {
				content = config.MinimalSampleConfig()
			}

			if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Configuration file created at: %s\n", emoji.GetEmoji("success"), outputPath)
			if minimal {
				fmt.Fprintln(out, "Created minimal configuration with essential settings")
			} else {
				fmt.Fprintln(out, "Created full configuration with all options and documentation")
			}
			return nil
		},
	}

	initCmd.Flags().StringVar(&outputPath, "path", "", "output path for config file (default: .heroboard.yaml)")
	initCmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "create minimal configuration")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing config file")

	return initCmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long: `Display the effective configuration after loading from all sources:
defaults, config files, and HEROBOARD_* environment variable overrides.`,
		Example: `  # Show config in YAML format
  heroboard config show

  # Show config in JSON format
  heroboard config show --format json

  # Show config from specific file
  heroboard config show --config /path/to/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			var data []byte
			switch format {
			case "json":
				data, err = json.MarshalIndent(cfg, "", "  ")
				if err == nil {
					data = append(data, '\n')
				}
			case "yaml":
				data, err = yaml.Marshal(cfg)
			default:
				return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to marshal config to %s: %w", format, err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")

	return showCmd
}

// newConfigValidateCommand creates the config validate subcommand
func newConfigValidateCommand() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validate heroboard configuration for syntax and semantic errors.

Checks for valid YAML syntax, known enum values (theme, output format,
color mode, logging format), an http(s) API URL and positive durations.`,
		Example: `  # Validate current config
  heroboard config validate

  # Validate specific config file
  heroboard config validate --config /path/to/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				fmt.Fprintf(out, "%s Configuration validation failed:\n", emoji.GetEmoji("error"))
				fmt.Fprintf(out, "   %v\n", err)
				return err
			}

			fmt.Fprintf(out, "%s Configuration is valid\n", emoji.GetEmoji("success"))
			fmt.Fprintln(out, "Configuration summary:")
			fmt.Fprintf(out, "   Version: %s\n", cfg.Version)
			fmt.Fprintf(out, "   API: %s (timeout %s)\n", cfg.API.BaseURL, cfg.API.Timeout)
			fmt.Fprintf(out, "   Route prefix: %s\n", cfg.UI.RoutePrefix)
			fmt.Fprintf(out, "   Theme: %s\n", cfg.UI.Theme)
			fmt.Fprintf(out, "   Output Format: %s\n", cfg.Output.DefaultFormat)
			return nil
		},
	}

	return validateCmd
}

// newConfigPathCommand creates the config path subcommand
func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file search paths",
		Long: `Display the paths heroboard searches for configuration files,
in priority order, and whether each exists.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration file search paths (in priority order):")
			fmt.Fprintln(out)

			priority := []string{"Highest", "Medium", "Lowest"}
			for i, path := range config.GetConfigPaths() {
				exists := " (not found)"
				if fileExists(path) {
					exists = " " + emoji.GetEmoji("success") + " (exists)"
				}

				fmt.Fprintf(out, "  %d. %s%s\n", i+1, path, exists)
				if i < len(priority) {
					fmt.Fprintf(out, "     Priority: %s\n", priority[i])
				}
			}
			fmt.Fprintln(out)

			if currentConfig, found := config.FindConfigFile(); found {
				fmt.Fprintf(out, "Current config file: %s\n", currentConfig)
			} else {
				fmt.Fprintln(out, "No config file found, using defaults")
			}

			fmt.Fprintln(out, "Environment variables with HEROBOARD_ prefix override file settings")
		},
	}
}

// fileExists checks if a regular file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}
