package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/everettbu/chatsafe/internal/api"
	"github.com/everettbu/chatsafe/internal/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the local ChatSafe server.

Every message stands alone; no conversation context is carried between
turns. Paste multi-line input and press Enter twice to send. Type
'exit' on an empty turn to quit, 'clear' to clear the screen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	client := api.NewClient(api.WithModel(getModel()))

	// An interrupt mid-read aborts the turn with the farewell. The
	// blocking stdin read cannot be cancelled, so termination happens
	// here rather than in the session loop.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println()
		fmt.Println(chat.Farewell)
		os.Exit(0)
	}()
	defer signal.Stop(sigCh)

	session := chat.NewSession(os.Stdin, os.Stdout, client)
	return session.Run()
}
