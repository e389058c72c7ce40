package utils

import (
	"errors"
	"path/filepath"
	"strings"
)

// ResolveDataPath joins filename to dataDir. Absolute filenames are returned unchanged.
func ResolveDataPath(dataDir, filename string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", errors.New("filename must not be empty")
	}
	if filepath.IsAbs(filename) {
		return filepath.Clean(filename), nil
	}
	return filepath.Join(dataDir, filename), nil
}
