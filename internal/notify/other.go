//go:build !darwin && !linux

package notify

// stubNotifier covers platforms without a supported notification mechanism.
type stubNotifier struct{}

func newPlatformNotifier() Notifier {
	return &stubNotifier{}
}

func (*stubNotifier) Send(title, body string) error          { return nil }
func (*stubNotifier) SendWithSound(title, body string) error { return nil }
func (*stubNotifier) IsSupported() bool                      { return false }
