// Package placeholder writes a fixed 1×1 transparent PNG in place of real
// renders when no converter is installed.
package placeholder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mavwarf/favicons/internal/paths"
)

// PNG is written verbatim for every missing output, whatever size was
// requested. It is never re-encoded.
var PNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, // signature
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52, // IHDR
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x44, 0x41, // IDAT
	0x54, 0x78, 0x9c, 0x63, 0xf8, 0x0f, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x18, 0xdd, 0x8d, 0xb4,
	0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, // IEND
	0xae, 0x42, 0x60, 0x82,
}

// WriteMissing writes PNG to dir/name for each name that does not exist
// yet and returns the names it created. Existing files are left alone.
func WriteMissing(dir string, names []string) ([]string, error) {
	var created []string
	for _, name := range names {
		p := filepath.Join(dir, name)
		if paths.Exists(p) {
			continue
		}
		if err := os.WriteFile(p, PNG, paths.FilePerm); err != nil {
			return created, fmt.Errorf("placeholder: %w", err)
		}
		created = append(created, name)
	}
	return created, nil
}
