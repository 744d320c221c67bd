package cli

import (
	"bytes"
	"testing"
)

func TestStatusGlyphs(t *testing.T) {
	buf := &bytes.Buffer{}
	status := NewStatus(buf)

	status.Okf("configuration written to %s", "server.json")
	status.Failf("Error: %s", "name too long")
	status.Warnf("Warning: %s", "admin password empty")
	status.Printf("Summary:")
	status.Blank()

	expected := "✓ configuration written to server.json\n" +
		"✗ Error: name too long\n" +
		"⚠  Warning: admin password empty\n" +
		"Summary:\n" +
		"\n"
	if buf.String() != expected {
		t.Errorf("output = %q, want %q", buf.String(), expected)
	}
}

func TestNewStatusDefaultsToStdout(t *testing.T) {
	status := NewStatus(nil)
	if status.w == nil {
		t.Fatal("expected a writer")
	}
}
