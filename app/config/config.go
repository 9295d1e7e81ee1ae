package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// SearchCfg tunes the results view: the default radius for the near bucket
// and the two responsive page-size tiers (narrow viewports get the smaller
// one; the tier choice itself is the client's, we only validate it).
type SearchCfg struct {
	DefaultRadiusKm float64 `yaml:"default_radius_km" json:"default_radius_km"`
	PageSizeNarrow  int     `yaml:"page_size_narrow" json:"page_size_narrow"`
	PageSizeWide    int     `yaml:"page_size_wide" json:"page_size_wide"`
}

// DedupCfg tunes partner-application duplicate detection.
type DedupCfg struct {
	Candidates    int     `yaml:"candidates" json:"candidates"`
	JWThreshold   float64 `yaml:"jw_threshold" json:"jw_threshold"`
	MaxPhoneEdits int     `yaml:"max_phone_edits" json:"max_phone_edits"`
}

// MeiliCfg names the search indexes.
type MeiliCfg struct {
	FirmIndex        string `yaml:"firm_index" json:"firm_index"`
	ApplicationIndex string `yaml:"application_index" json:"application_index"`
}

// DirectoryCfg is the domain tuning config loaded from YAML.
type DirectoryCfg struct {
	Search SearchCfg `yaml:"search" json:"search"`
	Dedup  DedupCfg  `yaml:"dedup" json:"dedup"`
	Meili  MeiliCfg  `yaml:"meili" json:"meili"`
}

var C = Defaults()

// Defaults mirrors the shipped config/directory.yaml.
func Defaults() DirectoryCfg {
	return DirectoryCfg{
		Search: SearchCfg{
			DefaultRadiusKm: 25,
			PageSizeNarrow:  4,
			PageSizeWide:    8,
		},
		Dedup: DedupCfg{
			Candidates:    10,
			JWThreshold:   0.92,
			MaxPhoneEdits: 1,
		},
		Meili: MeiliCfg{
			FirmIndex:        "firms",
			ApplicationIndex: "partner_applications",
		},
	}
}

// Load reads the YAML config at path over the defaults.
func Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg := Defaults()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return err
	}
	C = cfg
	return nil
}

// PageSize clamps a client page-size hint to the nearest configured tier.
func (s SearchCfg) PageSize(hint int) int {
	if hint <= 0 {
		return s.PageSizeWide
	}
	if hint <= s.PageSizeNarrow {
		return s.PageSizeNarrow
	}
	return s.PageSizeWide
}
