package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"solar-optimizer/internal/model"
)

// Site is a named location worth analyzing or comparing.
type Site struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Notes     string  `json:"notes,omitempty"`
}

func (s Site) Location() model.Location {
	return model.Location{Latitude: s.Latitude, Longitude: s.Longitude}
}

type SiteList struct {
	UpdatedAt string `json:"updated_at"` // ISO 8601
	Sites     []Site `json:"sites"`
}

// LoadSites loads and validates a site list.
func LoadSites(filePath string) (*SiteList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sites file: %w", err)
	}
	var list SiteList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse sites file: %w", err)
	}
	for i, s := range list.Sites {
		if s.Name == "" {
			return nil, fmt.Errorf("sites[%d]: name is required", i)
		}
		if err := s.Location().Validate(); err != nil {
			return nil, fmt.Errorf("sites[%d] %s: %w", i, s.Name, err)
		}
	}
	return &list, nil
}

func SaveSites(list *SiteList, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sites: %w", err)
	}
	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write sites file: %w", err)
	}
	return nil
}

// DefaultSitesPath honours SITES_FILE, falling back to data/sites.json.
func DefaultSitesPath() string {
	if path := os.Getenv("SITES_FILE"); path != "" {
		return path
	}
	return "./data/sites.json"
}
