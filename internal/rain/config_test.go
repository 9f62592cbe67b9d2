package rain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                    "100",
		"h":                    "50",
		"seed":                 "99",
		"spawn_rate":           "2.5",
		"depth_margin":         "32",
		"slide_chance":         "0.25",
		"ground_splash_chance": "0",
	})

	require.Equal(t, 100, cfg.Width)
	require.Equal(t, 50, cfg.Height)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, 2.5, cfg.Params.SpawnRate)
	require.Equal(t, 32, cfg.Params.DepthMargin)
	require.Equal(t, 0.25, cfg.Params.SlideChance)
	require.Equal(t, 0.0, cfg.Params.GroundSplashChance)
}

func TestFromMapIgnoresGarbage(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"w":            "banana",
		"h":            "-3",
		"depth_margin": "900",
		"slide_chance": "2.0",
	})

	require.Equal(t, def.Width, cfg.Width)
	require.Equal(t, def.Height, cfg.Height)
	require.Equal(t, def.Params.DepthMargin, cfg.Params.DepthMargin)
	require.Equal(t, def.Params.SlideChance, cfg.Params.SlideChance)

	require.Equal(t, def, FromMap(nil))
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rain.yaml")
	data := []byte(`
width: 120
height: 40
seed: 777
params:
  spawn_rate: 3
  depth_margin: 24
  ground_near: 1.0
  ground_far: 0.5
  stream_life: 90
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	require.Equal(t, 120, cfg.Width)
	require.Equal(t, 40, cfg.Height)
	require.Equal(t, int64(777), cfg.Seed)
	require.Equal(t, 3.0, cfg.Params.SpawnRate)
	require.Equal(t, 24, cfg.Params.DepthMargin)
	require.Equal(t, 0.5, cfg.Params.GroundFar)
	require.Equal(t, 90, cfg.Params.StreamLife)

	// Unset keys keep their defaults.
	require.Equal(t, DefaultConfig().Params.FlowSpeed, cfg.Params.FlowSpeed)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [not a number"), 0o644))
	_, err = LoadFile(path)
	require.Error(t, err)
}

func TestSanitizeClampsDegenerateParams(t *testing.T) {
	p := Params{
		SpawnRate:            -1,
		VelNear:              0,
		VelFar:               -5,
		DepthMargin:          500,
		GroundNear:           0,
		GroundFar:            -1,
		SurfaceSplashChance:  7,
		GroundSplashChance:   -2,
		SlideChance:          1.5,
		SplashFrames:         0,
		FlowSpeed:            0,
		StreamLife:           -10,
		StreamFallSplashLife: 999,
		MaxDroplets:          -1,
		MaxSplashes:          -1,
		MaxStreams:           -1,
	}
	p.sanitize()

	def := DefaultConfig().Params
	require.Equal(t, def.SpawnRate, p.SpawnRate)
	require.Equal(t, def.VelNear, p.VelNear)
	require.Equal(t, def.VelFar, p.VelFar)
	require.Equal(t, def.DepthMargin, p.DepthMargin)
	require.Equal(t, 1.0, p.SurfaceSplashChance)
	require.Equal(t, 0.0, p.GroundSplashChance)
	require.Equal(t, 1.0, p.SlideChance)
	require.LessOrEqual(t, p.StreamFallSplashLife, p.StreamLife)
	require.Zero(t, p.MaxDroplets)
	require.Zero(t, p.MaxSplashes)
	require.Zero(t, p.MaxStreams)
}

func TestParametersSnapshotCoversTunables(t *testing.T) {
	w := New(10, 10)
	snap := w.Parameters()
	require.NotEmpty(t, snap.Groups)

	keys := map[string]bool{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			keys[p.Key] = true
		}
	}
	for _, want := range []string{"spawn_rate", "depth_margin", "ground_near", "ground_far", "max_droplets"} {
		require.Truef(t, keys[want], "snapshot missing %q", want)
	}
}
