package status

import (
	"bytes"
	"strings"
	"testing"
)

func TestLineMarkers(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Start, "🎨 Generating\n"},
		{Success, "✅ Generating\n"},
		{Failure, "❌ Generating\n"},
		{Note, "📝 Generating\n"},
		{Warning, "⚠️  Generating\n"},
		{Location, "📁 Generating\n"},
		{Guide, "📋 Generating\n"},
		{Plain, "Generating\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		New(&buf).Line(tt.kind, "Generating")
		if buf.String() != tt.want {
			t.Errorf("kind %d: got %q, want %q", tt.kind, buf.String(), tt.want)
		}
	}
}

func TestNoColorForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	p.Line(Success, "Generated %s (%dx%d)", "a.png", 16, 16)
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("unexpected ANSI escape in %q", buf.String())
	}
	if buf.String() != "✅ Generated a.png (16x16)\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestColorWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{w: &buf, color: true}
	p.Line(Failure, "nope")
	if !strings.HasPrefix(buf.String(), "\033[31m") || !strings.HasSuffix(buf.String(), "\033[0m\n") {
		t.Errorf("got %q", buf.String())
	}
}

func TestBlank(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Blank()
	if buf.String() != "\n" {
		t.Errorf("got %q", buf.String())
	}
}
