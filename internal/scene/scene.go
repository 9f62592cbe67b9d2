// Package scene holds the pre-baked geometry the rain simulation samples:
// a depth map, a ground mask, packed surface normals and a packed flow
// field, all on one fixed background grid. Scenes are immutable once
// constructed; the simulation never writes to them.
package scene

import "fmt"

// Scene is a fixed-resolution set of background-space grids, row-major.
// Depth runs 0 (far/sky) to 255 (near). Normals and flow vectors are
// packed signed bytes scaled by 127.
type Scene struct {
	W, H int

	Depth   []uint8
	Ground  []uint8
	NormalX []int8
	NormalY []int8
	FlowX   []int8
	FlowY   []int8
}

// New validates the grids and assembles a Scene. All grids must cover the
// same w*h cells and the dimensions must be positive. Flow is zeroed over
// non-ground cells so the ground/flow invariant holds regardless of input.
func New(w, h int, depth, ground []uint8, normalX, normalY, flowX, flowY []int8) (*Scene, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("scene: dimensions must be positive, got %dx%d", w, h)
	}
	total := w * h
	if len(depth) != total {
		return nil, fmt.Errorf("scene: depth grid has %d cells, want %d", len(depth), total)
	}
	if len(ground) != total {
		return nil, fmt.Errorf("scene: ground grid has %d cells, want %d", len(ground), total)
	}
	if len(normalX) != total || len(normalY) != total {
		return nil, fmt.Errorf("scene: normal grids have %d/%d cells, want %d", len(normalX), len(normalY), total)
	}
	if len(flowX) != total || len(flowY) != total {
		return nil, fmt.Errorf("scene: flow grids have %d/%d cells, want %d", len(flowX), len(flowY), total)
	}

	s := &Scene{
		W: w, H: h,
		Depth:   depth,
		Ground:  ground,
		NormalX: normalX,
		NormalY: normalY,
		FlowX:   flowX,
		FlowY:   flowY,
	}
	for i := 0; i < total; i++ {
		if s.Ground[i] == 0 {
			s.FlowX[i] = 0
			s.FlowY[i] = 0
		}
	}
	return s, nil
}

// Index returns the linear index for background coordinates (x, y).
func (s *Scene) Index(x, y int) int { return y*s.W + x }
