package skill

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveBody writes a fetched skill document body to path, creating
// parent directories as needed and overwriting any existing file.
//
// Parameters:
//   - path: The destination file path
//   - body: The document body to write
//
// Returns:
//   - error: If the directory or file cannot be written
func SaveBody(path, body string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
