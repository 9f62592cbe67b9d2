package world

import (
	"math"

	"rainfall/internal/scene"
)

// flowDeadZone is the packed magnitude below which a cell counts as
// still water (pooling) rather than flow.
const flowDeadZone = 10

// FlowAt returns the flow direction at a background cell, each component
// in [-1, 1]. Non-ground and out-of-bounds cells have zero flow.
func FlowAt(s *scene.Scene, x, y int) (float32, float32) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return 0, 0
	}
	idx := y*s.W + x
	return float32(s.FlowX[idx]) / 127, float32(s.FlowY[idx]) / 127
}

// HasFlow reports whether there is significant flow at the cell. Flat
// areas where water would pool report false.
func HasFlow(s *scene.Scene, x, y int) bool {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return false
	}
	idx := y*s.W + x
	fx := s.FlowX[idx]
	if fx < 0 {
		fx = -fx
	}
	fy := s.FlowY[idx]
	if fy < 0 {
		fy = -fy
	}
	return fx > flowDeadZone || fy > flowDeadZone
}

// FlowStrength returns the flow magnitude at the cell in [0, 1].
func FlowStrength(s *scene.Scene, x, y int) float32 {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return 0
	}
	idx := y*s.W + x
	fx := float64(s.FlowX[idx])
	fy := float64(s.FlowY[idx])
	v := math.Hypot(fx, fy) / 127
	if v > 1 {
		v = 1
	}
	return float32(v)
}
