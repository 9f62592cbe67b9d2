package scene

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// GenConfig controls the procedural demo scene.
type GenConfig struct {
	W, H int
	Seed int64

	// Horizon is the screen fraction where terrain starts (0 = top).
	Horizon float64
	// Relief scales how strongly noise perturbs the depth ramp.
	Relief float64
}

// DefaultGenConfig returns the standard demo scene parameters.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		W:       320,
		H:       180,
		Seed:    1337,
		Horizon: 0.35,
		Relief:  1.0,
	}
}

// Generate builds a synthetic scene from layered Perlin noise: a sky band
// above a wavy horizon, terrain depth ramping toward the viewer below it,
// normals from the depth gradient and flow pointing down-gradient. It is
// a stand-in for the offline image-analysis pipeline and is fully
// deterministic in the seed.
func Generate(cfg GenConfig) *Scene {
	if cfg.W <= 0 {
		cfg.W = 320
	}
	if cfg.H <= 0 {
		cfg.H = 180
	}
	if cfg.Horizon <= 0 || cfg.Horizon >= 1 {
		cfg.Horizon = 0.35
	}
	if cfg.Relief <= 0 {
		cfg.Relief = 1.0
	}

	w, h := cfg.W, cfg.H
	total := w * h
	depth := make([]uint8, total)
	ground := make([]uint8, total)

	p := perlin.NewPerlin(2, 2, 3, cfg.Seed)
	fw, fh := float64(w), float64(h)

	for x := 0; x < w; x++ {
		wave := p.Noise2D(float64(x)/fw*3+0.5, 0.5)
		horizonY := fh * (cfg.Horizon + 0.06*wave)

		for y := 0; y < h; y++ {
			idx := y*w + x
			fy := float64(y)
			if fy < horizonY {
				// Sky: faint cloud texture, always below the collision threshold.
				n := p.Noise2D(float64(x)/fw*6, fy/fh*6)
				depth[idx] = uint8(clampF((n+1)*8, 0, 20))
				continue
			}

			t := (fy - horizonY) / (fh - horizonY)
			relief := p.Noise2D(float64(x)/fw*5+10, fy/fh*5+10) * 28 * cfg.Relief
			d := 60 + 195*t + relief
			depth[idx] = uint8(clampF(d, 40, 255))
			ground[idx] = 1
		}
	}

	normalX, normalY, flowX, flowY := deriveFields(w, h, depth, ground)
	s, _ := New(w, h, depth, ground, normalX, normalY, flowX, flowY)
	return s
}

// deriveFields computes packed normals and flow from the depth gradient.
// Water flows toward higher depth values (down-slope, toward the viewer),
// with a constant down-screen pull so flat terrain still drains.
func deriveFields(w, h int, depth, ground []uint8) (normalX, normalY, flowX, flowY []int8) {
	total := w * h
	normalX = make([]int8, total)
	normalY = make([]int8, total)
	flowX = make([]int8, total)
	flowY = make([]int8, total)

	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}
		return float64(depth[y*w+x])
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			dzdx := (at(x+1, y) - at(x-1, y)) / 2
			dzdy := (at(x, y+1) - at(x, y-1)) / 2

			normalX[idx] = packSigned(-dzdx / 16)
			normalY[idx] = packSigned(-dzdy / 16)

			if ground[idx] == 0 {
				continue
			}
			fx := dzdx / 12
			fy := dzdy/12 + 0.3
			mag := math.Hypot(fx, fy)
			if mag > 1 {
				fx /= mag
				fy /= mag
			}
			flowX[idx] = packSigned(fx)
			flowY[idx] = packSigned(fy)
		}
	}
	return normalX, normalY, flowX, flowY
}

func packSigned(v float64) int8 {
	return int8(clampF(v*127, -127, 127))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
