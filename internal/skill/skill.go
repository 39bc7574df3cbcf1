// Package skill implements skill lookup and reconciliation between the
// remote record store and the local skills directory.
//
// A skill lives in two places: as a record in the remote store (fetched
// through internal/api) and as a local document at
// <skills-root>/<name>/SKILL.md. This package locates a skill in both,
// resolves its best-known version, and produces a preview of the remote
// document body.
package skill

import (
	"bufio"
	"path/filepath"
	"strings"
)

const (
	// FileName is the canonical file name of a local skill document.
	FileName = "SKILL.md"

	// DefaultVersion is assumed for a remote record with no version set.
	DefaultVersion = "1.0.0"

	// previewLen is the number of characters kept in a body preview.
	previewLen = 200
)

// LocalPath returns the conventional path of a skill's local document.
//
// Parameters:
//   - root: The skills root directory
//   - name: The skill name
//
// Returns:
//   - string: <root>/<name>/SKILL.md
func LocalPath(root, name string) string {
	return filepath.Join(root, name, FileName)
}

// Preview returns the first 200 characters of body followed by an
// ellipsis marker. A body of 200 characters or fewer is returned
// unchanged with no marker.
func Preview(body string) string {
	runes := []rune(body)
	if len(runes) <= previewLen {
		return body
	}
	return string(runes[:previewLen]) + "..."
}

// FrontMatterVersion extracts the version from a skill document's front
// matter: the first line whose whitespace-trimmed form starts with
// "version:". The value is everything after the first colon, trimmed.
//
// Parameters:
//   - content: The full document text
//
// Returns:
//   - string: The version value, or "" if no version line exists
//   - bool: True if a version line was found
func FrontMatterVersion(content string) (string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "version:") {
			continue
		}
		_, value, _ := strings.Cut(line, ":")
		return strings.TrimSpace(value), true
	}
	return "", false
}
