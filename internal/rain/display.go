package rain

import "image/color"

// CellKind classifies a decoded frame-buffer cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellDroplet
	CellSplash
	CellStream
)

// DecodeCell splits a frame-buffer byte into its entity kind, depth
// bucket and variant (trail position, splash char or stream size).
// Values above the documented range decode as empty.
func DecodeCell(v uint8) (kind CellKind, bucket, variant uint8) {
	switch {
	case v == 0 || v > MaxCode:
		return CellEmpty, 0, 0
	case v < SplashBase:
		d := v - DropletBase
		return CellDroplet, d / TrailLengths, d % TrailLengths
	case v < StreamBase:
		s := v - SplashBase
		return CellSplash, s / SplashChars, s % SplashChars
	default:
		s := v - StreamBase
		return CellStream, s / StreamSizes, s % StreamSizes
	}
}

var rainPalette = buildRainPalette()

// Palette exposes the RGBA color for every frame-buffer value, indexed
// by the raw cell byte.
func (w *World) Palette() []color.RGBA {
	return rainPalette
}

func buildRainPalette() []color.RGBA {
	palette := make([]color.RGBA, MaxCode+1)
	for v := 1; v <= MaxCode; v++ {
		kind, bucket, variant := DecodeCell(uint8(v))
		palette[v] = cellColor(kind, bucket, variant)
	}
	return palette
}

// cellColor picks a blue-family tone: brighter for near buckets, dimmer
// along droplet trails and for dying streams.
func cellColor(kind CellKind, bucket, variant uint8) color.RGBA {
	depth := 0.35 + 0.65*float64(bucket)/(DepthBuckets-1)

	switch kind {
	case CellDroplet:
		fade := 1 - 0.22*float64(variant)
		return scaleColor(110, 150, 255, depth*fade)
	case CellSplash:
		return scaleColor(185, 215, 255, depth)
	case CellStream:
		body := 0.55 + 0.15*float64(variant)
		return scaleColor(120, 190, 230, depth*body)
	default:
		return color.RGBA{}
	}
}

func scaleColor(r, g, b float64, k float64) color.RGBA {
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	return color.RGBA{
		R: uint8(r*k + 0.5),
		G: uint8(g*k + 0.5),
		B: uint8(b*k + 0.5),
		A: 255,
	}
}

var (
	dropletGlyphs = [TrailLengths]rune{'|', '¦', ':', '.'}
	splashGlyphs  = [SplashChars]rune{'o', '|', '°', '*', '\\', '/', '·', '.'}
	streamGlyphs  = [StreamSizes]rune{'.', '·', 'o', 'O'}
)

// Glyph returns the character a terminal client should draw for a
// decoded cell. Empty cells map to a space.
func Glyph(kind CellKind, variant uint8) rune {
	switch kind {
	case CellDroplet:
		return dropletGlyphs[variant%TrailLengths]
	case CellSplash:
		return splashGlyphs[variant%SplashChars]
	case CellStream:
		return streamGlyphs[variant%StreamSizes]
	default:
		return ' '
	}
}
