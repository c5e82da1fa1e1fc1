package commands

import (
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	spin := newSpinner("testing")
	spin.start()

	time.Sleep(100 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		spin.stopWithSuccess("done")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("spinner did not stop")
	}
}

func TestSpinnerStopTwiceIsSafe(t *testing.T) {
	spin := newSpinner("testing")
	spin.start()

	spin.stopWithError()
	// A second stop must not panic on a closed channel.
	spin.stopWithError()
}

func TestSpinnerStopWithErrorBeforeTick(t *testing.T) {
	spin := newSpinner("testing")
	spin.start()
	spin.stopWithError()
}
