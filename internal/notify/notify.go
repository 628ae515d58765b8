// Package notify delivers desktop notifications through the native mechanism
// of each platform: notify-send on Linux, osascript on macOS, a no-op
// elsewhere. Delivery is fire-and-forget; callers never retry.
package notify

// Notifier sends desktop notifications.
type Notifier interface {
	// Send shows a notification with the given title and body.
	Send(title, body string) error

	// SendWithSound shows a notification and plays the platform alert sound
	// where the platform supports it.
	SendWithSound(title, body string) error

	// IsSupported reports whether this platform can deliver notifications.
	IsSupported() bool
}

type noopNotifier struct{}

func (noopNotifier) Send(title, body string) error          { return nil }
func (noopNotifier) SendWithSound(title, body string) error { return nil }
func (noopNotifier) IsSupported() bool                      { return false }

// New returns the platform notifier, or a no-op implementation when the
// platform tooling is unavailable.
func New() Notifier {
	n := newPlatformNotifier()
	if n == nil || !n.IsSupported() {
		return noopNotifier{}
	}
	return n
}
