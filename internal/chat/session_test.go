package chat

import (
	"strings"
	"testing"
)

// fakeTransport records sent messages and returns a canned reply
type fakeTransport struct {
	calls []string
	reply string
}

func (f *fakeTransport) SendMessage(text string) string {
	f.calls = append(f.calls, text)
	return f.reply
}

func runSession(t *testing.T, input string, reply string) (*fakeTransport, string) {
	t.Helper()

	transport := &fakeTransport{reply: reply}
	var out strings.Builder

	session := NewSession(strings.NewReader(input), &out, transport)
	if err := session.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	return transport, out.String()
}

func TestSessionSendsJoinedMessage(t *testing.T) {
	transport, out := runSession(t, "hello\nworld\n\nexit\n", "hi there")

	if len(transport.calls) != 1 {
		t.Fatalf("transport calls = %d, want 1", len(transport.calls))
	}
	if got, want := transport.calls[0], "hello\nworld"; got != want {
		t.Errorf("sent message = %q, want %q", got, want)
	}

	if !strings.Contains(out, "AI: hi there\n") {
		t.Errorf("output missing reply, got:\n%s", out)
	}
	if !strings.Contains(out, "You: ") {
		t.Errorf("output missing turn prompt, got:\n%s", out)
	}
	if !strings.Contains(out, "> ") {
		t.Errorf("output missing continuation prompt, got:\n%s", out)
	}
	if !strings.HasSuffix(out, Farewell+"\n") {
		t.Errorf("output does not end with farewell, got:\n%s", out)
	}
}

func TestSessionEmptyFirstLineSendsNothing(t *testing.T) {
	transport, _ := runSession(t, "\n\nexit\n", "unused")

	if len(transport.calls) != 0 {
		t.Errorf("transport calls = %d, want 0", len(transport.calls))
	}
}

func TestSessionExitWithoutTransportCall(t *testing.T) {
	transport, out := runSession(t, "exit\nthis is never read\n", "unused")

	if len(transport.calls) != 0 {
		t.Errorf("transport calls = %d, want 0", len(transport.calls))
	}
	if !strings.Contains(out, Farewell) {
		t.Errorf("output missing farewell, got:\n%s", out)
	}
}

func TestSessionClearReprintsBanner(t *testing.T) {
	transport, out := runSession(t, "clear\nexit\n", "unused")

	if len(transport.calls) != 0 {
		t.Errorf("transport calls = %d, want 0", len(transport.calls))
	}
	if got := strings.Count(out, Banner); got != 2 {
		t.Errorf("banner printed %d times, want 2", got)
	}
	if !strings.Contains(out, "\033[2J\033[H") {
		t.Error("output missing clear-screen sequence")
	}
}

func TestSessionEOFAbortsTurn(t *testing.T) {
	// Input ends mid-accumulation: no message may be sent.
	transport, out := runSession(t, "partial message\n", "unused")

	if len(transport.calls) != 0 {
		t.Errorf("transport calls = %d, want 0", len(transport.calls))
	}
	if !strings.Contains(out, Farewell) {
		t.Errorf("output missing farewell, got:\n%s", out)
	}
}

func TestSessionIndependentTurns(t *testing.T) {
	transport, _ := runSession(t, "one\n\ntwo\n\nexit\n", "ok")

	if len(transport.calls) != 2 {
		t.Fatalf("transport calls = %d, want 2", len(transport.calls))
	}
	if transport.calls[0] != "one" || transport.calls[1] != "two" {
		t.Errorf("calls = %v, want [one two]", transport.calls)
	}
}

func TestSessionExitAsContentIsSent(t *testing.T) {
	transport, _ := runSession(t, "keep this\nexit\n\nexit\n", "ok")

	if len(transport.calls) != 1 {
		t.Fatalf("transport calls = %d, want 1", len(transport.calls))
	}
	if got, want := transport.calls[0], "keep this\nexit"; got != want {
		t.Errorf("sent message = %q, want %q", got, want)
	}
}
