// Package rain implements the depth-aware rainfall simulation: droplets
// fall through a scene, collide against its depth map, and burst into
// splash and stream particles. Each tick re-encodes every live entity
// into a one-byte-per-cell frame buffer for an external renderer.
package rain

import (
	"math"

	"rainfall/internal/core"
	"rainfall/internal/scene"
	"rainfall/internal/world"
)

// Fall velocity guard rails applied at spawn so degenerate parameters or
// draws can never push NaN into the encoder.
const (
	minFallVelocity = 0.05
	maxFallVelocity = 8.0
)

// tuning is the float32 mirror of Params used on the hot path.
type tuning struct {
	spawnRate     float32
	velNear       float32
	velFar        float32
	groundNear    float32
	groundFar     float32
	surfaceSplash float32
	groundSplash  float32
	slide         float32
	flowSpeed     float32

	margin         uint8
	splashFrames   uint8
	streamLife     uint8
	fallSplashLife uint8
}

// World owns all entity pools, the frame buffer and the PRNG. It is
// single-threaded by contract: the host calls Tick once per animation
// frame and must finish reading Frame before the next Tick.
type World struct {
	cfg Config
	tun tuning

	w, h    int
	sampler world.Sampler

	drops    *Droplets
	splashes *Splashes
	streams  *Streams

	frame *core.ByteGrid
	rng   *core.RNG
}

// New returns a rain world with default parameters over a procedurally
// generated scene.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds a world from the provided options. Construction
// cannot fail: a baked scene that does not load is replaced by a
// procedural one, as is a nil scene. Callers that want load errors
// surfaced should resolve the scene themselves and set cfg.Scene.
func NewWithConfig(cfg Config) *World {
	cfg.Params.sanitize()
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.Height < 0 {
		cfg.Height = 0
	}
	if cfg.Scene == nil && cfg.ScenePath != "" {
		if sc, err := scene.Load(cfg.ScenePath); err == nil {
			cfg.Scene = sc
		}
	}
	if cfg.Scene == nil {
		gen := scene.DefaultGenConfig()
		gen.Seed = cfg.Seed
		cfg.Scene = scene.Generate(gen)
	}

	w := &World{
		cfg:      cfg,
		tun:      cfg.Params.runtime(),
		w:        cfg.Width,
		h:        cfg.Height,
		sampler:  world.NewSampler(cfg.Scene, cfg.Width, cfg.Height),
		drops:    NewDroplets(cfg.Params.MaxDroplets),
		splashes: NewSplashes(cfg.Params.MaxSplashes),
		streams:  NewStreams(cfg.Params.MaxStreams),
		frame:    core.NewByteGrid(cfg.Width, cfg.Height),
		rng:      core.NewRNG(cfg.Seed),
	}
	return w
}

func (p Params) runtime() tuning {
	return tuning{
		spawnRate:      float32(p.SpawnRate),
		velNear:        float32(p.VelNear),
		velFar:         float32(p.VelFar),
		groundNear:     float32(p.GroundNear),
		groundFar:      float32(p.GroundFar),
		surfaceSplash:  float32(p.SurfaceSplashChance),
		groundSplash:   float32(p.GroundSplashChance),
		slide:          float32(p.SlideChance),
		flowSpeed:      float32(p.FlowSpeed),
		margin:         uint8(p.DepthMargin),
		splashFrames:   uint8(p.SplashFrames),
		streamLife:     uint8(p.StreamLife),
		fallSplashLife: uint8(p.StreamFallSplashLife),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "rain" }

// Size reports the screen dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the encoded frame buffer, valid until the next Step.
func (w *World) Cells() []uint8 { return w.frame.Cells() }

// Frame is the host-facing alias for Cells.
func (w *World) Frame() []uint8 { return w.frame.Cells() }

// Width returns the current screen width.
func (w *World) Width() int { return w.w }

// Height returns the current screen height.
func (w *World) Height() int { return w.h }

// Scene exposes the immutable scene geometry.
func (w *World) Scene() *scene.Scene { return w.cfg.Scene }

// LiveDroplets reports the droplet pool occupancy.
func (w *World) LiveDroplets() int { return w.drops.Len() }

// LiveSplashes reports the splash pool occupancy.
func (w *World) LiveSplashes() int { return w.splashes.Len() }

// LiveStreams reports the stream pool occupancy.
func (w *World) LiveStreams() int { return w.streams.Len() }

// LiveEntities reports the total pool occupancy across all entity types.
func (w *World) LiveEntities() int {
	return w.drops.Len() + w.splashes.Len() + w.streams.Len()
}

// Reset clears all entities and reseeds the PRNG. A zero seed falls back
// to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.drops.Clear()
	w.splashes.Clear()
	w.streams.Clear()
	w.frame.Clear()
}

// Resize changes the screen dimensions. All entities are cleared rather
// than rescaled: a brief visual discontinuity in exchange for never
// holding a stale coordinate.
func (w *World) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	w.w = width
	w.h = height
	w.sampler.SetScreen(width, height)
	w.frame.Resize(width, height)
	w.drops.Clear()
	w.splashes.Clear()
	w.streams.Clear()
}

// Tick advances the simulation by one frame and re-encodes the buffer.
func (w *World) Tick() { w.Step() }

// Step runs one tick: spawn, integrate+collide, expire, encode.
func (w *World) Step() {
	if w.w == 0 || w.h == 0 {
		return
	}

	w.frame.Clear()

	w.spawnDroplets()
	w.updateDroplets()
	w.updateSplashes()
	w.updateStreams()

	w.encodeDroplets()
	w.encodeSplashes()
	w.encodeStreams()
}

func (w *World) spawnDroplets() {
	count := int(float32(w.w)/64*w.tun.spawnRate) + 1
	fw := float32(w.w)
	for k := 0; k < count; k++ {
		z := w.rng.Float32()
		x := w.rng.Float32() * fw
		y := -w.rng.Float32() * 15

		// Near drops fall faster (perspective).
		v := (w.tun.velNear + (w.tun.velFar-w.tun.velNear)*z) * (0.8 + 0.4*w.rng.Float32())
		v = clampVelocity(v)

		if _, ok := w.drops.Spawn(x, y, z, v); !ok {
			return
		}
	}
}

func clampVelocity(v float32) float32 {
	if math.IsNaN(float64(v)) || v < minFallVelocity {
		return minFallVelocity
	}
	if v > maxFallVelocity {
		return maxFallVelocity
	}
	return v
}

func (w *World) updateDroplets() {
	fw := float32(w.w)
	fh := float32(w.h)

	for i := 0; i < w.drops.Len(); {
		x := w.drops.x[i]
		y := w.drops.y[i] + w.drops.vy[i]
		z := w.drops.z[i]

		// Fallback ground line interpolated between the near and far
		// screen fractions.
		groundY := fh * (w.tun.groundNear + (w.tun.groundFar-w.tun.groundNear)*z)

		if y >= 0 && y < fh && x >= 0 && x < fw {
			if w.sampler.HitsSurface(x, y, z, w.tun.margin) {
				w.surfaceImpact(x, y, z)
				w.drops.Remove(i)
				continue
			}
		}

		if y > groundY {
			if w.rng.Float32() < w.tun.groundSplash {
				kind := SplashKind(w.rng.IntN(splashKindCount))
				w.spawnSplash(x, groundY, z, kind)
			}
			w.drops.Remove(i)
			continue
		}

		if y >= fh {
			w.drops.Remove(i)
			continue
		}

		w.drops.y[i] = y
		i++
	}
}

// surfaceImpact handles a droplet hitting scene geometry: slide into a
// stream where the surface carries flow, then burst by the local normal.
func (w *World) surfaceImpact(x, y, z float32) {
	if w.sampler.IsGround(x, y) && w.sampler.HasFlow(x, y) && w.rng.Float32() < w.tun.slide {
		w.streams.Spawn(x, y, z, w.tun.streamLife)
	}
	if w.rng.Float32() < w.tun.surfaceSplash {
		nx, _ := w.sampler.Normal(x, y)
		w.spawnSplashFromNormal(x, y, z, nx)
	}
}

// spawnSplash inserts a splash with jittered position and random drift.
func (w *World) spawnSplash(x, y, z float32, kind SplashKind) {
	jx := x + (w.rng.Float32()-0.5)*4
	drift := int8(w.rng.Float32()*5) - 2
	w.splashes.Spawn(jx, y, z, kind, drift)
}

// spawnSplashFromNormal biases the burst by the surface tilt: the steeper
// the horizontal normal, the likelier a directional burst over a crown,
// and the drift leans the same way.
func (w *World) spawnSplashFromNormal(x, y, z, nx float32) {
	kind := SplashCrown
	r := w.rng.Float32()
	switch {
	case nx <= -0.25 && r < -nx:
		kind = SplashLeft
	case nx >= 0.25 && r < nx:
		kind = SplashRight
	case r > 0.7:
		kind = SplashSpray
	}

	drift := nx*2.5 + (w.rng.Float32()-0.5)*2
	if drift > 2 {
		drift = 2
	}
	if drift < -2 {
		drift = -2
	}

	jx := x + (w.rng.Float32()-0.5)*4
	w.splashes.Spawn(jx, y, z, kind, int8(drift))
}

func (w *World) updateSplashes() {
	for i := 0; i < w.splashes.Len(); {
		frame := w.splashes.frame[i] + 1
		if frame >= w.tun.splashFrames {
			w.splashes.Remove(i)
			continue
		}
		w.splashes.frame[i] = frame
		i++
	}
}

func (w *World) updateStreams() {
	fw := float32(w.w)
	fh := float32(w.h)

	for i := 0; i < w.streams.Len(); {
		life := w.streams.life[i]
		if life == 0 {
			w.streams.Remove(i)
			continue
		}

		x := w.streams.x[i]
		y := w.streams.y[i]
		z := w.streams.z[i]

		fx, fy := w.sampler.Flow(x, y)

		// Far streams slide slower for perspective.
		speed := w.tun.flowSpeed * (1 - z*0.5)
		x += fx * speed
		y += fy * speed

		if x < 0 || x >= fw || y < 0 || y >= fh {
			w.streams.Remove(i)
			continue
		}

		if !w.sampler.HitsSurface(x, y, z, w.tun.margin) {
			// Slid off an edge; young streams still have enough water
			// to burst.
			if life > w.tun.fallSplashLife {
				w.spawnSplash(x, y, z, SplashRight)
			}
			w.streams.Remove(i)
			continue
		}

		if !w.sampler.HasFlow(x, y) {
			// Reached a pool.
			w.spawnSplash(x, y, z, SplashCrown)
			w.streams.Remove(i)
			continue
		}

		w.streams.x[i] = x
		w.streams.y[i] = y
		w.streams.life[i] = life - 1
		i++
	}
}

func init() {
	core.Register("rain", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
