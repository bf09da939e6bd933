package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"solar-optimizer/internal/analysis"
	"solar-optimizer/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk analysis configuration (YAML).
type Config struct {
	// Optional: load the site from a separate YAML (e.g. examples/sites/*.yaml).
	// If both SiteFile and Site are provided, Site fields override SiteFile.
	SiteFile   string           `yaml:"site_file"`
	Site       SiteConfig       `yaml:"site"`
	System     SystemConfig     `yaml:"system"`
	Range      RangeConfig      `yaml:"range"`
	Simulation SimulationConfig `yaml:"simulation"`
}

type SiteConfig struct {
	Name      string   `yaml:"name"`
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
}

type SystemConfig struct {
	SizeKW              float64 `yaml:"size_kw"`
	SystemEfficiencyPct float64 `yaml:"system_efficiency_pct"`
	PanelEfficiencyPct  float64 `yaml:"panel_efficiency_pct"`
	ElectricityRate     float64 `yaml:"electricity_rate"`
	// MonthlyBill and MonthlyKWh derive the rate when electricity_rate is unset.
	MonthlyBill float64 `yaml:"monthly_bill"`
	MonthlyKWh  float64 `yaml:"monthly_kwh"`
}

// RangeConfig is an explicit YYYY-MM-DD window. Empty means the trailing year.
type RangeConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type SimulationConfig struct {
	Workers int `yaml:"workers"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not default or validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.SiteFile != "" {
		sitePath := c.SiteFile
		if !filepath.IsAbs(sitePath) {
			// relative to the config file first, then cwd
			cand := filepath.Join(filepath.Dir(path), sitePath)
			if _, err := os.Stat(cand); err == nil {
				sitePath = cand
			}
		}
		loaded, err := loadSiteFile(sitePath)
		if err != nil {
			return nil, err
		}
		c.Site = MergeSite(loaded, c.Site)
	}
	return &c, nil
}

// ApplyDefaults fills unset system fields. The rate comes from the bill when
// one is given, otherwise from the default rate.
func (c *Config) ApplyDefaults() {
	def := model.DefaultSystem()
	if c.System.SizeKW == 0 {
		c.System.SizeKW = def.SizeKW
	}
	if c.System.SystemEfficiencyPct == 0 {
		c.System.SystemEfficiencyPct = def.SystemEfficiencyPct
	}
	if c.System.PanelEfficiencyPct == 0 {
		c.System.PanelEfficiencyPct = def.PanelEfficiencyPct
	}
	if c.System.ElectricityRate == 0 {
		if rate, ok := analysis.RateFromBill(c.System.MonthlyBill, c.System.MonthlyKWh); ok {
			c.System.ElectricityRate = rate
		} else {
			c.System.ElectricityRate = def.ElectricityRate
		}
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Site.Latitude == nil || c.Site.Longitude == nil {
		return errors.New("site.latitude and site.longitude are required")
	}
	if err := c.Location().Validate(); err != nil {
		return fmt.Errorf("site config invalid: %w", err)
	}
	if err := c.System.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("system config invalid: %w", err)
	}
	if (c.Range.Start == "") != (c.Range.End == "") {
		return errors.New("range.start and range.end must be set together")
	}
	if c.Range.Start != "" {
		if _, err := model.ParseDateRange(c.Range.Start, c.Range.End); err != nil {
			return fmt.Errorf("range config invalid: %w", err)
		}
	}
	if c.Simulation.Workers < 0 {
		return errors.New("simulation.workers must be >= 0")
	}
	return nil
}

func (c *Config) Location() model.Location {
	var loc model.Location
	if c.Site.Latitude != nil {
		loc.Latitude = *c.Site.Latitude
	}
	if c.Site.Longitude != nil {
		loc.Longitude = *c.Site.Longitude
	}
	return loc
}

// DateRange resolves the configured window, defaulting to the trailing year before now.
func (c *Config) DateRange(now time.Time) (model.DateRange, error) {
	if c.Range.Start == "" {
		return model.TrailingYear(now), nil
	}
	return model.ParseDateRange(c.Range.Start, c.Range.End)
}

// Inputs converts the config into validated analysis inputs.
func (c *Config) Inputs(now time.Time) (model.AnalysisInputs, error) {
	r, err := c.DateRange(now)
	if err != nil {
		return model.AnalysisInputs{}, err
	}
	in := model.AnalysisInputs{Location: c.Location(), System: c.System.ToModelParams(), Range: r}
	return in, in.Validate()
}

func (s SystemConfig) ToModelParams() model.SystemParams {
	return model.SystemParams{
		SizeKW:              s.SizeKW,
		SystemEfficiencyPct: s.SystemEfficiencyPct,
		PanelEfficiencyPct:  s.PanelEfficiencyPct,
		ElectricityRate:     s.ElectricityRate,
	}
}

type siteFileWrapper struct {
	Site SiteConfig `yaml:"site"`
}

func loadSiteFile(path string) (SiteConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, err
	}
	var w siteFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return SiteConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Site, nil
}

// MergeSite overlays set fields from override onto base. Coordinates are
// pointers so that an explicit 0 (equator, prime meridian) still overrides.
func MergeSite(base, override SiteConfig) SiteConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Latitude != nil {
		out.Latitude = override.Latitude
	}
	if override.Longitude != nil {
		out.Longitude = override.Longitude
	}
	return out
}
