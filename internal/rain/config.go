package rain

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"rainfall/internal/scene"
)

// Params holds the tunable physics and lifecycle values of the simulation.
type Params struct {
	// SpawnRate is droplets spawned per tick per 64 screen columns.
	SpawnRate float64 `yaml:"spawn_rate"`
	// VelNear and VelFar bound the initial fall velocity across depth.
	VelNear float64 `yaml:"vel_near"`
	VelFar  float64 `yaml:"vel_far"`

	// DepthMargin is the collision tolerance against the scene depth map.
	DepthMargin int `yaml:"depth_margin"`
	// GroundNear and GroundFar set the fallback ground line as screen
	// fractions for near (z=0) and far (z=1) droplets.
	GroundNear float64 `yaml:"ground_near"`
	GroundFar  float64 `yaml:"ground_far"`

	SurfaceSplashChance float64 `yaml:"surface_splash_chance"`
	GroundSplashChance  float64 `yaml:"ground_splash_chance"`
	SlideChance         float64 `yaml:"slide_chance"`

	SplashFrames int `yaml:"splash_frames"`

	FlowSpeed  float64 `yaml:"flow_speed"`
	StreamLife int     `yaml:"stream_life"`
	// StreamFallSplashLife is the minimum remaining life for a stream
	// that leaves the surface band to still burst into a splash.
	StreamFallSplashLife int `yaml:"stream_fall_splash_life"`

	MaxDroplets int `yaml:"max_droplets"`
	MaxSplashes int `yaml:"max_splashes"`
	MaxStreams  int `yaml:"max_streams"`
}

// Config controls the rain simulation dimensions and physics.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	// ScenePath points at a baked scene file. When empty (and Scene is
	// nil) a procedural scene is generated from the seed.
	ScenePath string       `yaml:"scene"`
	Scene     *scene.Scene `yaml:"-"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  240,
		Height: 135,
		Seed:   1337,
		Params: Params{
			SpawnRate:            1.0,
			VelNear:              1.7,
			VelFar:               0.35,
			DepthMargin:          48,
			GroundNear:           1.0,
			GroundFar:            0.4,
			SurfaceSplashChance:  1.0,
			GroundSplashChance:   0.7,
			SlideChance:          0.6,
			SplashFrames:         24,
			FlowSpeed:            0.4,
			StreamLife:           120,
			StreamFallSplashLife: 60,
			MaxDroplets:          3000,
			MaxSplashes:          200,
			MaxStreams:           500,
		},
	}
}

// LoadFile reads a YAML config file over the defaults.
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("rain: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("rain: parse config %s: %w", path, err)
	}
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		c.ScenePath = v
	}
	if v, ok := cfg["spawn_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SpawnRate = parsed
		}
	}
	if v, ok := cfg["depth_margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Params.DepthMargin = parsed
		}
	}
	if v, ok := cfg["ground_near"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.GroundNear = parsed
		}
	}
	if v, ok := cfg["ground_far"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.GroundFar = parsed
		}
	}
	if v, ok := cfg["slide_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SlideChance = parsed
		}
	}
	if v, ok := cfg["ground_splash_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.GroundSplashChance = parsed
		}
	}
	return c
}

// sanitize clamps degenerate parameter values so a bad config file cannot
// push NaN or nonsense into the hot path.
func (p *Params) sanitize() {
	if !(p.SpawnRate >= 0) || p.SpawnRate > 64 {
		p.SpawnRate = 1.0
	}
	if !(p.VelNear > 0) {
		p.VelNear = 1.7
	}
	if !(p.VelFar > 0) {
		p.VelFar = 0.35
	}
	if p.DepthMargin < 0 || p.DepthMargin > 255 {
		p.DepthMargin = 48
	}
	if !(p.GroundNear > 0) {
		p.GroundNear = 1.0
	}
	if !(p.GroundFar > 0) {
		p.GroundFar = 0.4
	}
	p.SurfaceSplashChance = clamp01(p.SurfaceSplashChance)
	p.GroundSplashChance = clamp01(p.GroundSplashChance)
	p.SlideChance = clamp01(p.SlideChance)
	if p.SplashFrames <= 0 || p.SplashFrames > 255 {
		p.SplashFrames = 24
	}
	if !(p.FlowSpeed > 0) {
		p.FlowSpeed = 0.4
	}
	if p.StreamLife <= 0 || p.StreamLife > 255 {
		p.StreamLife = 120
	}
	if p.StreamFallSplashLife < 0 || p.StreamFallSplashLife > p.StreamLife {
		p.StreamFallSplashLife = p.StreamLife / 2
	}
	if p.MaxDroplets < 0 {
		p.MaxDroplets = 0
	}
	if p.MaxSplashes < 0 {
		p.MaxSplashes = 0
	}
	if p.MaxStreams < 0 {
		p.MaxStreams = 0
	}
}

func clamp01(v float64) float64 {
	if !(v >= 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
