package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/everettbu/chatsafe/internal/config"
)

var (
	configSetModel   string
	configSetVerbose string
	configSetCopy    string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update chatsafe settings",
	Long: `Show the current configuration, or update individual settings.

Examples:
  chatsafe config                       Show current settings
  chatsafe config --default-model fast  Set the default model
  chatsafe config --verbose true        Enable verbose output
  chatsafe config --copy false          Disable clipboard copy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig()
	},
}

func init() {
	configCmd.Flags().StringVar(&configSetModel, "default-model", "", "Set the default model id (\"-\" to clear)")
	configCmd.Flags().StringVar(&configSetVerbose, "verbose", "", "Enable or disable verbose output (true/false)")
	configCmd.Flags().StringVar(&configSetCopy, "copy", "", "Enable or disable clipboard copy (true/false)")
}

func runConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	changed := false

	if configSetModel != "" {
		if configSetModel == "-" {
			cfg.DefaultModel = ""
		} else {
			cfg.DefaultModel = configSetModel
		}
		changed = true
	}

	if configSetVerbose != "" {
		v, err := parseBoolFlag(configSetVerbose)
		if err != nil {
			return fmt.Errorf("invalid --verbose value: %w", err)
		}
		cfg.Verbose = v
		changed = true
	}

	if configSetCopy != "" {
		v, err := parseBoolFlag(configSetCopy)
		if err != nil {
			return fmt.Errorf("invalid --copy value: %w", err)
		}
		cfg.CopyToClipboard = v
		changed = true
	}

	if changed {
		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(colorTextDim)
	valueStyle := lipgloss.NewStyle().Foreground(colorText)

	model := cfg.DefaultModel
	if model == "" {
		model = "(server default)"
	}

	fmt.Printf("%s %s\n", labelStyle.Render("Default model:"), valueStyle.Render(model))
	fmt.Printf("%s %s\n", labelStyle.Render("Verbose:"), valueStyle.Render(fmt.Sprintf("%t", cfg.Verbose)))
	fmt.Printf("%s %s\n", labelStyle.Render("Copy to clipboard:"), valueStyle.Render(fmt.Sprintf("%t", cfg.CopyToClipboard)))
	fmt.Printf("%s %s\n", labelStyle.Render("Markdown style:"), valueStyle.Render(cfg.Markdown.Style))

	if dir, err := config.GetConfigDir(); err == nil {
		fmt.Printf("%s %s\n", labelStyle.Render("Config dir:"), valueStyle.Render(dir))
	}

	return nil
}

// parseBoolFlag accepts true/false style values for config setters
func parseBoolFlag(value string) (bool, error) {
	switch value {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("expected true or false, got %q", value)
}
