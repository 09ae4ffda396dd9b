// Package config handles generator configuration loading and management.
package config

import (
	"github.com/archiforge/meshforge/pkg/geometry"
	"github.com/archiforge/meshforge/pkg/spec"
)

// Config holds all generator settings.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Limits    LimitsConfig    `yaml:"limits"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GeneratorConfig holds the structural defaults and heuristics of the
// geometry builder. All lengths are meters.
type GeneratorConfig struct {
	WallThickness       float32  `yaml:"wall_thickness"`
	FloorSlabThickness  float32  `yaml:"floor_slab_thickness"`
	FoundationThickness float32  `yaml:"foundation_thickness"`
	FlatRoofThickness   float32  `yaml:"flat_roof_thickness"`
	WallMargin          float32  `yaml:"wall_margin"`
	SideWallInset       float32  `yaml:"side_wall_inset"`
	PeakHeightRatio     float32  `yaml:"peak_height_ratio"`
	FlatRoofMarkers     []string `yaml:"flat_roof_markers"`
	FlatRoofSubtype     string   `yaml:"flat_roof_subtype"`
	BuildingMarkers     []string `yaml:"building_markers"`
}

// LimitsConfig bounds accepted specifications.
type LimitsConfig struct {
	MaxStories   int     `yaml:"max_stories"`
	MaxDimension float64 `yaml:"max_dimension_m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	params := geometry.DefaultParams()
	limits := spec.DefaultLimits()

	return &Config{
		Generator: GeneratorConfig{
			WallThickness:       params.WallThickness,
			FloorSlabThickness:  params.FloorSlabThickness,
			FoundationThickness: params.FoundationThickness,
			FlatRoofThickness:   params.FlatRoofThickness,
			WallMargin:          params.WallMargin,
			SideWallInset:       params.SideWallInset,
			PeakHeightRatio:     params.PeakHeightRatio,
			FlatRoofMarkers:     params.FlatRoofMarkers,
			FlatRoofSubtype:     params.FlatRoofSubtype,
			BuildingMarkers:     params.BuildingMarkers,
		},
		Limits: LimitsConfig{
			MaxStories:   limits.MaxStories,
			MaxDimension: limits.MaxDimension,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// BuilderParams converts the config into geometry builder parameters.
func (g GeneratorConfig) BuilderParams() geometry.Params {
	return geometry.Params{
		WallThickness:       g.WallThickness,
		FloorSlabThickness:  g.FloorSlabThickness,
		FoundationThickness: g.FoundationThickness,
		FlatRoofThickness:   g.FlatRoofThickness,
		WallMargin:          g.WallMargin,
		SideWallInset:       g.SideWallInset,
		PeakHeightRatio:     g.PeakHeightRatio,
		FlatRoofMarkers:     g.FlatRoofMarkers,
		FlatRoofSubtype:     g.FlatRoofSubtype,
		BuildingMarkers:     g.BuildingMarkers,
	}
}

// SpecLimits converts the config into normalizer limits.
func (l LimitsConfig) SpecLimits() spec.Limits {
	return spec.Limits{
		MaxStories:   l.MaxStories,
		MaxDimension: l.MaxDimension,
	}
}
