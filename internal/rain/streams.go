package rain

// Streams is a fixed-capacity pool of water particles sliding along the
// flow field. A stream only exists over ground cells with non-zero flow;
// the owner removes it when its life runs out or it leaves that regime.
type Streams struct {
	x []float32
	y []float32
	z []float32

	life []uint8

	n int
}

// NewStreams allocates a pool with the given capacity.
func NewStreams(capacity int) *Streams {
	if capacity < 0 {
		capacity = 0
	}
	return &Streams{
		x:    make([]float32, capacity),
		y:    make([]float32, capacity),
		z:    make([]float32, capacity),
		life: make([]uint8, capacity),
	}
}

// Len returns the number of live streams.
func (s *Streams) Len() int { return s.n }

// Cap returns the fixed pool capacity.
func (s *Streams) Cap() int { return len(s.x) }

// Spawn inserts a stream with the given remaining life. A full pool
// drops the spawn.
func (s *Streams) Spawn(x, y, z float32, life uint8) (int, bool) {
	if s.n >= len(s.x) {
		return 0, false
	}
	i := s.n
	s.x[i] = x
	s.y[i] = y
	s.z[i] = z
	s.life[i] = life
	s.n++
	return i, true
}

// Remove swap-removes slot i.
func (s *Streams) Remove(i int) {
	last := s.n - 1
	s.x[i] = s.x[last]
	s.y[i] = s.y[last]
	s.z[i] = s.z[last]
	s.life[i] = s.life[last]
	s.n = last
}

// Clear drops all live entities.
func (s *Streams) Clear() { s.n = 0 }

// X returns the x position of slot i.
func (s *Streams) X(i int) float32 { return s.x[i] }

// Y returns the y position of slot i.
func (s *Streams) Y(i int) float32 { return s.y[i] }

// Z returns the depth of slot i.
func (s *Streams) Z(i int) float32 { return s.z[i] }

// Life returns the remaining life of slot i.
func (s *Streams) Life(i int) uint8 { return s.life[i] }
