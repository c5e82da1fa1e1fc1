package chat

import (
	"bufio"
	"fmt"
	"io"
)

// Terminal strings for the interactive loop
const (
	// Banner is printed at startup and after a clear command.
	Banner = "ChatSafe - Local AI Assistant (Llama-3.2-3B)\n" +
		"Type 'exit' to quit, 'clear' to clear screen\n" +
		"Paste multi-line input and press Enter twice to send\n" +
		"----------------------------------------"

	// Farewell is printed on exit, interrupt, and end of input.
	Farewell = "Goodbye!"

	promptTurn         = "You: "
	promptContinuation = "> "
	replyPrefix        = "AI: "
	clearScreen        = "\033[2J\033[H"
)

// Transport sends one finalized message and returns a displayable reply.
// Failures are mapped to display strings inside the transport; the
// session prints whatever comes back and moves to the next turn.
type Transport interface {
	SendMessage(text string) string
}

// Session runs the interactive chat loop over a line-based terminal.
// Strictly synchronous: one blocking read or one blocking send at a time.
type Session struct {
	scanner   *bufio.Scanner
	out       io.Writer
	transport Transport
}

// NewSession creates a session reading lines from r and writing to w.
func NewSession(r io.Reader, w io.Writer, t Transport) *Session {
	return &Session{
		scanner:   bufio.NewScanner(r),
		out:       w,
		transport: t,
	}
}

// Run executes turns until the exit command or end of input. Both end
// the loop with the farewell; the error is always nil today but kept in
// the signature for future readers of the terminal.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, Banner)

	for {
		collector := NewCollector()
		fmt.Fprint(s.out, promptTurn)

		for !collector.Done() {
			if !s.scanner.Scan() {
				// Interrupt or end of stream aborts the current turn.
				fmt.Fprintln(s.out)
				fmt.Fprintln(s.out, Farewell)
				return nil
			}

			if collector.Feed(s.scanner.Text()) == StateAccumulating {
				fmt.Fprint(s.out, promptContinuation)
			}
		}

		switch collector.State() {
		case StateCommandExit:
			fmt.Fprintln(s.out, Farewell)
			return nil
		case StateCommandClear:
			fmt.Fprintln(s.out, clearScreen)
			fmt.Fprintln(s.out, Banner)
		case StateFinalized:
			fmt.Fprint(s.out, replyPrefix)
			fmt.Fprintln(s.out, s.transport.SendMessage(collector.Message()))
			fmt.Fprintln(s.out)
		case StateDiscarded:
			// Blank first line: nothing to send, start a fresh turn.
		}
	}
}
