package notify

import (
	"os"
	"runtime"
	"testing"
)

func TestNew(t *testing.T) {
	if New() == nil {
		t.Fatal("New() returned nil")
	}
}

func TestIsSupported(t *testing.T) {
	n := New()
	switch runtime.GOOS {
	case "darwin", "linux":
		t.Logf("%s notification support: %v", runtime.GOOS, n.IsSupported())
	default:
		if n.IsSupported() {
			t.Errorf("IsSupported() should be false on %s", runtime.GOOS)
		}
	}
}

// TestSend actually shows a notification, so it only runs when explicitly
// requested.
func TestSend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping notification test in short mode")
	}
	if os.Getenv("RUN_NOTIFY_TESTS") != "1" {
		t.Skip("set RUN_NOTIFY_TESTS=1 to enable")
	}

	n := New()
	if !n.IsSupported() {
		t.Skip("notifications not supported on this platform")
	}
	if err := n.Send("daybook test", "This is a test notification"); err != nil {
		t.Errorf("Send() error: %v", err)
	}
}
