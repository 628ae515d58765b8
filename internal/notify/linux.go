//go:build linux

package notify

import (
	"fmt"
	"os/exec"
)

// linuxNotifier shells out to notify-send.
type linuxNotifier struct{}

func newPlatformNotifier() Notifier {
	return &linuxNotifier{}
}

func (n *linuxNotifier) Send(title, body string) error {
	return n.send(title, body, false)
}

// SendWithSound raises the urgency hint; whether that produces audio depends
// on the notification daemon.
func (n *linuxNotifier) SendWithSound(title, body string) error {
	return n.send(title, body, true)
}

func (n *linuxNotifier) IsSupported() bool {
	_, err := exec.LookPath("notify-send")
	return err == nil
}

func (n *linuxNotifier) send(title, body string, sound bool) error {
	args := []string{"--app-name=daybook"}
	if sound {
		args = append(args, "--urgency=normal")
	}
	args = append(args, title, body)

	if err := exec.Command("notify-send", args...).Run(); err != nil {
		return fmt.Errorf("notify-send failed: %w", err)
	}
	return nil
}
