package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/everettbu/chatsafe/internal/api"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Show ChatSafe server health",
	Long:  `Query the local ChatSafe server's health endpoint and report its status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHealth()
	},
}

func runHealth() error {
	client := api.NewClient()

	spin := newSpinner("Checking server")
	spin.start()

	health, err := client.Health()
	if err != nil {
		spin.stopWithError()
		fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Health check failed"))
		return fmt.Errorf("health check failed: %w", err)
	}
	spin.stopWithSuccess("Server reachable")

	labelStyle := lipgloss.NewStyle().Foreground(colorTextDim)
	valueStyle := lipgloss.NewStyle().Foreground(colorText)

	statusStyle := lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	if health.Status != "healthy" {
		statusStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	}

	fmt.Printf("%s %s\n", labelStyle.Render("Status:"), statusStyle.Render(health.Status))
	fmt.Printf("%s %s\n", labelStyle.Render("Model loaded:"), valueStyle.Render(fmt.Sprintf("%t", health.ModelLoaded)))
	fmt.Printf("%s %s\n", labelStyle.Render("Version:"), valueStyle.Render(health.Version))
	fmt.Printf("%s %s\n", labelStyle.Render("Uptime:"),
		valueStyle.Render((time.Duration(health.UptimeSeconds) * time.Second).String()))

	return nil
}
