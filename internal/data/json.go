package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"solar-optimizer/internal/model"
)

// LoadArchiveJSON reads a saved archive payload, e.g. one written by fetch-weather.
func LoadArchiveJSON(path string) (*model.ArchiveResponse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var resp model.ArchiveResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &resp, nil
}

func SaveArchiveJSON(resp *model.ArchiveResponse, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	raw, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal archive: %w", err)
	}
	return os.WriteFile(path, raw, 0644)
}

// ArchiveFileName is the conventional file name for a saved site archive.
func ArchiveFileName(siteName string) string {
	return siteName + ".json"
}
