package rain

// SplashKind selects the impact burst shape.
type SplashKind uint8

const (
	// SplashCrown is the symmetric crown burst.
	SplashCrown SplashKind = iota
	// SplashLeft is a burst biased left by the surface tilt.
	SplashLeft
	// SplashRight is a burst biased right by the surface tilt.
	SplashRight
	// SplashSpray is an irregular scattered burst.
	SplashSpray

	splashKindCount = 4
)

// Splashes is a fixed-capacity pool of impact animations. Frames advance
// monotonically; the owner removes a splash once its frame counter hits
// the terminal threshold.
type Splashes struct {
	x []float32
	y []float32
	z []float32

	frame []uint8
	drift []int8
	kind  []SplashKind

	n int
}

// NewSplashes allocates a pool with the given capacity.
func NewSplashes(capacity int) *Splashes {
	if capacity < 0 {
		capacity = 0
	}
	return &Splashes{
		x:     make([]float32, capacity),
		y:     make([]float32, capacity),
		z:     make([]float32, capacity),
		frame: make([]uint8, capacity),
		drift: make([]int8, capacity),
		kind:  make([]SplashKind, capacity),
	}
}

// Len returns the number of live splashes.
func (s *Splashes) Len() int { return s.n }

// Cap returns the fixed pool capacity.
func (s *Splashes) Cap() int { return len(s.x) }

// Spawn inserts a splash at frame zero. A full pool drops the spawn.
func (s *Splashes) Spawn(x, y, z float32, kind SplashKind, drift int8) (int, bool) {
	if s.n >= len(s.x) {
		return 0, false
	}
	i := s.n
	s.x[i] = x
	s.y[i] = y
	s.z[i] = z
	s.frame[i] = 0
	s.drift[i] = drift
	s.kind[i] = kind
	s.n++
	return i, true
}

// Remove swap-removes slot i.
func (s *Splashes) Remove(i int) {
	last := s.n - 1
	s.x[i] = s.x[last]
	s.y[i] = s.y[last]
	s.z[i] = s.z[last]
	s.frame[i] = s.frame[last]
	s.drift[i] = s.drift[last]
	s.kind[i] = s.kind[last]
	s.n = last
}

// Clear drops all live entities.
func (s *Splashes) Clear() { s.n = 0 }

// X returns the x position of slot i.
func (s *Splashes) X(i int) float32 { return s.x[i] }

// Y returns the y position of slot i.
func (s *Splashes) Y(i int) float32 { return s.y[i] }

// Z returns the depth of slot i.
func (s *Splashes) Z(i int) float32 { return s.z[i] }

// Frame returns the animation frame of slot i.
func (s *Splashes) Frame(i int) uint8 { return s.frame[i] }

// Drift returns the horizontal drift of slot i.
func (s *Splashes) Drift(i int) int8 { return s.drift[i] }

// Kind returns the burst shape of slot i.
func (s *Splashes) Kind(i int) SplashKind { return s.kind[i] }
