//go:build ebiten

package ui

import (
	"image/color"

	"rainfall/internal/core"
	"rainfall/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type sceneProvider interface {
	Scene() *scene.Scene
}

// Overlay draws optional scene-map visuals (depth, ground mask, flow
// field) on top of the rain view for debugging baked geometry.
type Overlay struct {
	sim   core.Sim
	scale int

	showDepth  bool
	showGround bool
	showFlow   bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs an overlay for the provided simulation. It stays
// inert when the simulation exposes no scene.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the overlay toggle keys.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showDepth = !o.showDepth
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGround = !o.showGround
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.showFlow = !o.showFlow
	}
}

// Draw composites the enabled scene maps over the target image.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || (!o.showDepth && !o.showGround && !o.showFlow) {
		return
	}
	provider, ok := o.sim.(sceneProvider)
	if !ok {
		return
	}
	sc := provider.Scene()
	if sc == nil {
		return
	}

	if o.img == nil || len(o.buf) != 4*sc.W*sc.H {
		o.img = ebiten.NewImage(sc.W, sc.H)
		o.buf = make([]byte, 4*sc.W*sc.H)
	}

	for i := 0; i < sc.W*sc.H; i++ {
		o.buf[4*i+0] = 0
		o.buf[4*i+1] = 0
		o.buf[4*i+2] = 0
		o.buf[4*i+3] = 0
		if o.showDepth {
			blendInto(o.buf, i, color.RGBA{sc.Depth[i], sc.Depth[i], sc.Depth[i], 110})
		}
		if o.showGround && sc.Ground[i] == 1 {
			blendInto(o.buf, i, color.RGBA{40, 180, 70, 90})
		}
		if o.showFlow {
			fx := int(sc.FlowX[i])
			fy := int(sc.FlowY[i])
			mag := fx*fx + fy*fy
			if mag > 100 {
				v := uint8(min(255, mag/64))
				blendInto(o.buf, i, color.RGBA{0, v, 255, 100})
			}
		}
	}
	o.img.WritePixels(o.buf)

	size := o.sim.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(size.W*o.scale)/float64(sc.W),
		float64(size.H*o.scale)/float64(sc.H),
	)
	screen.DrawImage(o.img, op)
}

func blendInto(buf []byte, i int, c color.RGBA) {
	base := 4 * i
	a := int(c.A)
	buf[base+0] = uint8((int(buf[base+0])*(255-a) + int(c.R)*a) / 255)
	buf[base+1] = uint8((int(buf[base+1])*(255-a) + int(c.G)*a) / 255)
	buf[base+2] = uint8((int(buf[base+2])*(255-a) + int(c.B)*a) / 255)
	if int(buf[base+3])+a > 255 {
		buf[base+3] = 255
	} else {
		buf[base+3] += uint8(a)
	}
}
