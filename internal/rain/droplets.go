package rain

// Droplets is a fixed-capacity, column-oriented pool of falling drops.
// Slots [0, Len) are always live; Remove keeps the pool compact by
// swapping the last live slot into the freed one.
type Droplets struct {
	x  []float32
	y  []float32
	z  []float32 // depth: 0 = near, 1 = far
	vy []float32

	n int
}

// NewDroplets allocates a pool with the given capacity.
func NewDroplets(capacity int) *Droplets {
	if capacity < 0 {
		capacity = 0
	}
	return &Droplets{
		x:  make([]float32, capacity),
		y:  make([]float32, capacity),
		z:  make([]float32, capacity),
		vy: make([]float32, capacity),
	}
}

// Len returns the number of live droplets.
func (d *Droplets) Len() int { return d.n }

// Cap returns the fixed pool capacity.
func (d *Droplets) Cap() int { return len(d.x) }

// Spawn inserts a droplet and returns its slot. A full pool drops the
// spawn and reports ok=false; that is backpressure, not an error.
func (d *Droplets) Spawn(x, y, z, vy float32) (int, bool) {
	if d.n >= len(d.x) {
		return 0, false
	}
	i := d.n
	d.x[i] = x
	d.y[i] = y
	d.z[i] = z
	d.vy[i] = vy
	d.n++
	return i, true
}

// Remove swap-removes slot i in O(1), destroying order but never leaving
// a hole below Len.
func (d *Droplets) Remove(i int) {
	last := d.n - 1
	d.x[i] = d.x[last]
	d.y[i] = d.y[last]
	d.z[i] = d.z[last]
	d.vy[i] = d.vy[last]
	d.n = last
}

// Clear drops all live entities.
func (d *Droplets) Clear() { d.n = 0 }

// X returns the x position of slot i.
func (d *Droplets) X(i int) float32 { return d.x[i] }

// Y returns the y position of slot i.
func (d *Droplets) Y(i int) float32 { return d.y[i] }

// Z returns the depth of slot i.
func (d *Droplets) Z(i int) float32 { return d.z[i] }

// VY returns the fall velocity of slot i.
func (d *Droplets) VY(i int) float32 { return d.vy[i] }
