package paths

import (
	"os"
	"path/filepath"
)

const (
	AssetDir        = "frontend/src"
	IconFileName    = "favicon.ico"
	TempSVGFileName = "temp_favicon.svg"
	DirPerm         = 0755
	FilePerm        = 0644
)

// IconPath returns the location of the hand-assembled favicon.ico inside dir.
// An empty dir means AssetDir.
func IconPath(dir string) string {
	return filepath.Join(OrDefault(dir), IconFileName)
}

// OrDefault returns dir, or AssetDir when dir is empty.
func OrDefault(dir string) string {
	if dir == "" {
		return AssetDir
	}
	return dir
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Abs returns the absolute form of path, or path unchanged if it cannot
// be resolved.
func Abs(path string) string {
	if a, err := filepath.Abs(path); err == nil {
		return a
	}
	return path
}
