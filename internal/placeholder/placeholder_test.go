package placeholder

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestPNGHeader(t *testing.T) {
	if len(PNG) != 68 {
		t.Fatalf("len = %d, want 68", len(PNG))
	}
	if !bytes.HasPrefix(PNG, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("missing PNG signature")
	}
	if string(PNG[12:16]) != "IHDR" {
		t.Fatalf("first chunk = %q, want IHDR", PNG[12:16])
	}
	w := binary.BigEndian.Uint32(PNG[16:20])
	h := binary.BigEndian.Uint32(PNG[20:24])
	if w != 1 || h != 1 {
		t.Errorf("IHDR size = %dx%d, want 1x1", w, h)
	}
	if PNG[24] != 8 || PNG[25] != 6 {
		t.Errorf("bit depth/colour type = %d/%d, want 8/6 (RGBA)", PNG[24], PNG[25])
	}
	if !bytes.HasSuffix(PNG, []byte("IEND\xaeB`\x82")) {
		t.Error("missing IEND trailer")
	}
}

func TestWriteMissing(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "b.png")
	if err := os.WriteFile(existing, []byte("real render"), 0644); err != nil {
		t.Fatal(err)
	}

	created, err := WriteMissing(dir, []string{"a.png", "b.png", "c.png"})
	if err != nil {
		t.Fatalf("WriteMissing: %v", err)
	}
	if len(created) != 2 || created[0] != "a.png" || created[1] != "c.png" {
		t.Errorf("created = %v, want [a.png c.png]", created)
	}
	for _, n := range []string{"a.png", "c.png"} {
		data, _ := os.ReadFile(filepath.Join(dir, n))
		if !bytes.Equal(data, PNG) {
			t.Errorf("%s is not the placeholder", n)
		}
	}
	if data, _ := os.ReadFile(existing); string(data) != "real render" {
		t.Errorf("existing file clobbered: %q", data)
	}
}

func TestWriteMissingIdempotent(t *testing.T) {
	dir := t.TempDir()
	names := []string{"x.png", "y.png"}
	if _, err := WriteMissing(dir, names); err != nil {
		t.Fatal(err)
	}
	created, err := WriteMissing(dir, names)
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 0 {
		t.Errorf("second pass created %v, want none", created)
	}
}

func TestWriteMissingBadDir(t *testing.T) {
	_, err := WriteMissing(filepath.Join(t.TempDir(), "missing"), []string{"a.png"})
	if err == nil {
		t.Fatal("expected error writing into missing directory")
	}
}
