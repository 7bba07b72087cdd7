package util

import (
	"os"
	"path/filepath"
	"strings"
)

// UploadPath returns the cleaned UPLOAD_PATH environment variable when it is set.
// It accepts both uppercase and lowercase variants for compatibility with existing conventions.
func UploadPath() string {
	for _, key := range []string{"UPLOAD_PATH", "upload_path"} {
		if value, ok := os.LookupEnv(key); ok {
			trimmed := strings.TrimSpace(value)
			if trimmed != "" {
				return filepath.Clean(trimmed)
			}
		}
	}
	return ""
}

// Truncate limits a string to max runes after trimming surrounding
// whitespace. User-submitted fields are truncated rather than rejected.
func Truncate(s string, max int) string {
	trimmed := strings.TrimSpace(s)
	runes := []rune(trimmed)
	if len(runes) <= max {
		return trimmed
	}
	return string(runes[:max])
}
