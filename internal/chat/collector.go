// Package chat implements the interactive chat loop: a per-turn input
// collector state machine plus the session that wires it to a transport.
package chat

import "strings"

// State is the position of a Collector within one input turn.
type State int

const (
	// StateAwaitingFirstLine means no content has been read this turn.
	StateAwaitingFirstLine State = iota
	// StateAccumulating means at least one content line has been read.
	StateAccumulating
	// StateFinalized means a blank line closed a non-empty message.
	StateFinalized
	// StateDiscarded means a blank first line ended the turn with no message.
	StateDiscarded
	// StateCommandExit means the first line was the exit command.
	StateCommandExit
	// StateCommandClear means the first line was the clear command.
	StateCommandClear
)

// Literal first-line commands. They are only recognized before any
// content has been accumulated; afterwards they are ordinary message text.
const (
	commandExit  = "exit"
	commandClear = "clear"
)

// Collector accumulates lines for a single turn. Create one per turn;
// once it reaches a terminal state further lines are ignored.
type Collector struct {
	state State
	lines []string
}

// NewCollector returns a Collector awaiting the first line of a turn.
func NewCollector() *Collector {
	return &Collector{state: StateAwaitingFirstLine}
}

// State returns the current state.
func (c *Collector) State() State {
	return c.state
}

// Done reports whether the turn has reached a terminal state.
func (c *Collector) Done() bool {
	switch c.state {
	case StateFinalized, StateDiscarded, StateCommandExit, StateCommandClear:
		return true
	}
	return false
}

// Feed advances the state machine with one line read from the terminal
// and returns the resulting state.
func (c *Collector) Feed(line string) State {
	switch c.state {
	case StateAwaitingFirstLine:
		switch {
		case line == commandExit:
			c.state = StateCommandExit
		case line == commandClear:
			c.state = StateCommandClear
		case line == "":
			c.state = StateDiscarded
		default:
			c.lines = append(c.lines, line)
			c.state = StateAccumulating
		}
	case StateAccumulating:
		if line == "" {
			// Non-empty by construction: Accumulating is only entered
			// after a content line.
			c.state = StateFinalized
		} else {
			c.lines = append(c.lines, line)
		}
	}
	return c.state
}

// Message joins the accumulated lines into the text handed to the
// transport. Only meaningful in StateFinalized.
func (c *Collector) Message() string {
	return strings.Join(c.lines, "\n")
}
