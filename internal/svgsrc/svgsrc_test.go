package svgsrc

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mavwarf/favicons/internal/paths"
)

func TestFaviconIsWellFormedXML(t *testing.T) {
	var doc struct {
		XMLName xml.Name
		ViewBox string `xml:"viewBox,attr"`
	}
	if err := xml.Unmarshal([]byte(strings.TrimSpace(Favicon)), &doc); err != nil {
		t.Fatalf("xml: %v", err)
	}
	if doc.XMLName.Local != "svg" || doc.ViewBox != "0 0 32 32" {
		t.Errorf("root = %s viewBox=%q", doc.XMLName.Local, doc.ViewBox)
	}
	if !strings.Contains(Favicon, ">AI</text>") {
		t.Error("label missing")
	}
}

func TestAcquireRelease(t *testing.T) {
	dir := t.TempDir()
	tmp, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if tmp.Path != filepath.Join(dir, paths.TempSVGFileName) {
		t.Errorf("Path = %q", tmp.Path)
	}
	data, err := os.ReadFile(tmp.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != Favicon {
		t.Error("file content differs from Favicon")
	}

	if err := tmp.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if paths.Exists(tmp.Path) {
		t.Error("temp file still present after Release")
	}
	if err := tmp.Release(); err != nil {
		t.Errorf("second Release: %v", err)
	}
}

func TestAcquireOverwrites(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, paths.TempSVGFileName)
	os.WriteFile(p, []byte("stale"), 0644)

	tmp, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer tmp.Release()
	data, _ := os.ReadFile(p)
	if string(data) != Favicon {
		t.Error("stale file not overwritten")
	}
}

func TestAcquireMissingDir(t *testing.T) {
	if _, err := Acquire(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestReleaseNil(t *testing.T) {
	var tmp *Temp
	if err := tmp.Release(); err != nil {
		t.Errorf("nil Release: %v", err)
	}
}
