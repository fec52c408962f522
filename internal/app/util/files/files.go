// Package files holds filename helpers shared by the upload path.
package files

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename strips any path components and replaces characters
// that are unsafe in a filename. The result is never empty.
func SanitizeFilename(name string) string {
	// Drop directories from both unix and windows style paths.
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.TrimSpace(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "upload"
	}
	return name
}

// Extension returns the lowercased extension without the leading dot.
func Extension(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// AllowedExtension reports whether the filename carries an extension
// from the allow-list.
func AllowedExtension(name string, allowed []string) bool {
	ext := Extension(name)
	if ext == "" {
		return false
	}
	return lo.Contains(allowed, ext)
}
