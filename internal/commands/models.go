package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/everettbu/chatsafe/internal/api"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models registered on the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModels()
	},
}

func runModels() error {
	client := api.NewClient()

	spin := newSpinner("Fetching models")
	spin.start()

	modelList, err := client.ListModels()
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Failed to list models"))
		return fmt.Errorf("failed to list models: %w", err)
	}
	spin.stopWithSuccess(fmt.Sprintf("%d models", len(modelList)))

	idStyle := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(colorText)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)
	defaultStyle := lipgloss.NewStyle().Foreground(colorSuccess)

	for _, m := range modelList {
		line := idStyle.Render(m.ID)
		if m.Name != "" && m.Name != m.ID {
			line += " " + nameStyle.Render(m.Name)
		}
		if m.ContextWindow > 0 {
			line += " " + dimStyle.Render(fmt.Sprintf("(ctx %d)", m.ContextWindow))
		}
		if m.Default {
			line += " " + defaultStyle.Render("[default]")
		}
		fmt.Println(line)
	}

	return nil
}
