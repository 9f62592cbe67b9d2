package rain

// Frame buffer encoding. One byte per cell:
//
//	0        empty
//	1-32     droplets  (8 depth buckets x 4 trail positions)
//	33-96    splashes  (8 depth buckets x 8 shape chars)
//	97-128   streams   (8 depth buckets x 4 sizes)
//
// Rendering clients depend on this layout bit-exactly; changing any of
// these constants requires a coordinated version bump.
const (
	DepthBuckets = 8
	TrailLengths = 4
	SplashChars  = 8
	StreamSizes  = 4

	DropletBase = 1
	SplashBase  = 33
	StreamBase  = 97

	MaxCode = StreamBase + DepthBuckets*StreamSizes - 1
)

// depthBucket quantizes continuous depth so near entities (low z) land
// in high buckets, used for brighter rendering tiers.
func depthBucket(z float32) uint8 {
	b := int((1 - z) * DepthBuckets)
	if b < 0 {
		b = 0
	}
	if b >= DepthBuckets {
		b = DepthBuckets - 1
	}
	return uint8(b)
}

// put writes a cell if it is on screen, keeping the highest code. The
// three ranges are disjoint and ascending, so keep-max both composites
// streams over splashes over droplets and prefers near entities within
// a type.
func (w *World) put(x, y int, code uint8) {
	if x < 0 || x >= w.w || y < 0 || y >= w.h {
		return
	}
	idx := y*w.w + x
	cells := w.frame.Cells()
	if code > cells[idx] {
		cells[idx] = code
	}
}

func (w *World) encodeDroplets() {
	for i := 0; i < w.drops.Len(); i++ {
		x := int(w.drops.x[i])
		y := int(w.drops.y[i])
		if x < 0 || x >= w.w {
			continue
		}

		z := w.drops.z[i]
		bucket := depthBucket(z)

		// Near drops get longer trails.
		trail := int(5 - z*4)
		if trail < 1 {
			trail = 1
		}

		for dy := 0; dy < trail; dy++ {
			variant := dy
			if variant >= TrailLengths {
				variant = TrailLengths - 1
			}
			w.put(x, y-dy, DropletBase+bucket*TrailLengths+uint8(variant))
		}
	}
}

func (w *World) encodeStreams() {
	for i := 0; i < w.streams.Len(); i++ {
		x := int(w.streams.x[i])
		y := int(w.streams.y[i])
		if x < 0 || x >= w.w || y < 0 || y >= w.h {
			continue
		}

		bucket := depthBucket(w.streams.z[i])
		life := w.streams.life[i]

		var size uint8
		switch {
		case life > 80:
			size = 3
		case life > 40:
			size = 2
		case life > 10:
			size = 1
		}

		w.put(x, y, StreamBase+bucket*StreamSizes+size)
	}
}

func (w *World) encodeSplashes() {
	for i := 0; i < w.splashes.Len(); i++ {
		x := int(w.splashes.x[i])
		y := int(w.splashes.y[i])
		z := w.splashes.z[i]

		bucket := depthBucket(z)
		scale := int((1 - z) * 2.5)
		phase := int(w.splashes.frame[i] / 3)
		if phase > 7 {
			phase = 7
		}
		drift := int(w.splashes.drift[i])

		if scale == 0 {
			// Too far for a shaped burst: a single cell that dims out.
			var ch uint8
			switch {
			case phase < 3:
				ch = splashChCenter
			case phase < 6:
				ch = splashChDroplet
			default:
				ch = splashChFade
			}
			w.putSplash(x, y, bucket, ch)
			continue
		}

		for _, c := range splashShapes[w.splashes.kind[i]][phase] {
			px := x + int(c.xs)*scale + int(c.xd)*drift
			py := y + int(c.ys)*scale
			w.putSplash(px, py, bucket, c.ch)
		}
	}
}

func (w *World) putSplash(x, y int, bucket, ch uint8) {
	w.put(x, y, SplashBase+bucket*SplashChars+ch)
}

// Splash shape chars, indexing the client's glyph set.
const (
	splashChCenter  uint8 = 0 // impact point
	splashChSpike   uint8 = 1 // vertical spike
	splashChDroplet uint8 = 2 // flying droplet
	splashChLeft    uint8 = 4 // left wing
	splashChRight   uint8 = 5 // right wing
	splashChFade    uint8 = 6 // fading remnant
)

// splashCell places one cell of a burst: x offset in scale units (xs)
// plus drift units (xd), y offset in scale units (ys).
type splashCell struct {
	xs, xd, ys int8
	ch         uint8
}

// splashShapes holds the burst animations, one cell list per kind and
// animation phase (frame/3).
var splashShapes = [splashKindCount][8][]splashCell{
	SplashCrown: {
		{{0, 0, 0, splashChCenter}},
		{
			{-1, 1, 0, splashChLeft},
			{0, 0, 0, splashChCenter},
			{1, 1, 0, splashChRight},
		},
		{
			{0, 1, -1, splashChSpike},
			{-1, 1, 0, splashChLeft},
			{1, 1, 0, splashChRight},
		},
		{
			{-2, 1, -1, splashChLeft},
			{0, 1, -1, splashChSpike},
			{2, 1, -1, splashChRight},
			{-1, 0, 0, splashChLeft},
			{1, 0, 0, splashChRight},
		},
		{
			{-2, 2, -2, splashChDroplet},
			{0, 1, -2, splashChDroplet},
			{2, 2, -2, splashChDroplet},
			{-2, 1, -1, splashChLeft},
			{2, 1, -1, splashChRight},
		},
		{
			{-3, 2, -2, splashChDroplet},
			{0, 1, -2, splashChDroplet},
			{3, 2, -2, splashChDroplet},
		},
		{
			{-2, 1, -1, splashChDroplet},
			{2, 1, -1, splashChDroplet},
		},
		{
			{-1, 1, 0, splashChFade},
			{1, 1, 0, splashChFade},
		},
	},
	SplashLeft: {
		{{0, 0, 0, splashChCenter}},
		{
			{-1, 1, 0, splashChLeft},
			{0, 0, 0, splashChCenter},
		},
		{
			{-1, 1, -1, splashChLeft},
			{0, 1, -1, splashChSpike},
			{-2, 1, 0, splashChLeft},
		},
		{
			{-2, 1, -2, splashChDroplet},
			{-1, 1, -1, splashChLeft},
			{0, 1, -1, splashChSpike},
			{-3, 1, 0, splashChLeft},
		},
		{
			{-3, 1, -2, splashChDroplet},
			{-1, 1, -2, splashChDroplet},
			{-2, 1, -1, splashChLeft},
			{0, 1, -1, splashChSpike},
		},
		{
			{-4, 1, -2, splashChDroplet},
			{-2, 1, -2, splashChDroplet},
			{-3, 1, -1, splashChLeft},
		},
		{
			{-3, 1, -1, splashChDroplet},
			{-1, 1, -1, splashChDroplet},
		},
		{
			{-2, 1, 0, splashChFade},
		},
	},
	SplashRight: {
		{{0, 0, 0, splashChCenter}},
		{
			{0, 0, 0, splashChCenter},
			{1, 1, 0, splashChRight},
		},
		{
			{0, 1, -1, splashChSpike},
			{1, 1, -1, splashChRight},
			{2, 1, 0, splashChRight},
		},
		{
			{0, 1, -1, splashChSpike},
			{1, 1, -1, splashChRight},
			{2, 1, -2, splashChDroplet},
			{3, 1, 0, splashChRight},
		},
		{
			{0, 1, -1, splashChSpike},
			{2, 1, -1, splashChRight},
			{1, 1, -2, splashChDroplet},
			{3, 1, -2, splashChDroplet},
		},
		{
			{3, 1, -1, splashChRight},
			{2, 1, -2, splashChDroplet},
			{4, 1, -2, splashChDroplet},
		},
		{
			{1, 1, -1, splashChDroplet},
			{3, 1, -1, splashChDroplet},
		},
		{
			{2, 1, 0, splashChFade},
		},
	},
	SplashSpray: {
		{{0, 0, 0, splashChCenter}},
		{
			{0, 1, 0, splashChCenter},
			{-1, 1, 0, splashChDroplet},
			{1, 1, 0, splashChDroplet},
		},
		{
			{0, 2, -1, splashChDroplet},
			{-1, 1, -1, splashChDroplet},
			{2, 1, 0, splashChDroplet},
		},
		{
			{0, 2, -2, splashChDroplet},
			{-2, 1, -1, splashChDroplet},
			{1, 1, -1, splashChDroplet},
			{3, 1, 0, splashChDroplet},
		},
		{
			{-1, 1, -2, splashChDroplet},
			{2, 1, -2, splashChDroplet},
			{-2, 1, -1, splashChDroplet},
			{3, 1, -1, splashChDroplet},
		},
		{
			{-2, 1, -2, splashChDroplet},
			{1, 1, -2, splashChDroplet},
			{3, 1, -1, splashChDroplet},
		},
		{
			{-1, 1, -1, splashChDroplet},
			{2, 1, -1, splashChDroplet},
		},
		{
			{0, 1, 0, splashChFade},
		},
	},
}
