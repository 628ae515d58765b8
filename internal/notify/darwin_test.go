//go:build darwin

package notify

import "testing"

func TestEscapeAppleScript(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello", "Hello"},
		{`Say "hi"`, `Say \"hi\"`},
		{`a\b`, `a\\b`},
	}
	for _, tc := range tests {
		if got := escapeAppleScript(tc.input); got != tc.want {
			t.Errorf("escapeAppleScript(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
