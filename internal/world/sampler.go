package world

import "rainfall/internal/scene"

// Sampler maps screen-space coordinates onto a scene's background grid.
// The scale factors are computed once per resize so per-entity queries
// stay branch-minimal and allocation-free.
type Sampler struct {
	Scene  *scene.Scene
	scaleX float32
	scaleY float32
}

// NewSampler builds a sampler for the given screen dimensions.
func NewSampler(s *scene.Scene, screenW, screenH int) Sampler {
	sm := Sampler{Scene: s}
	sm.SetScreen(screenW, screenH)
	return sm
}

// SetScreen recomputes the screen-to-background scale factors.
func (sm *Sampler) SetScreen(screenW, screenH int) {
	if screenW > 0 {
		sm.scaleX = float32(sm.Scene.W) / float32(screenW)
	} else {
		sm.scaleX = 0
	}
	if screenH > 0 {
		sm.scaleY = float32(sm.Scene.H) / float32(screenH)
	} else {
		sm.scaleY = 0
	}
}

// Cell converts a screen-space position to background cell coordinates.
func (sm *Sampler) Cell(sx, sy float32) (int, int) {
	return int(sx * sm.scaleX), int(sy * sm.scaleY)
}

// RawDepth samples the raw depth under a screen position.
func (sm *Sampler) RawDepth(sx, sy float32) uint8 {
	bx, by := sm.Cell(sx, sy)
	return RawDepthAt(sm.Scene, bx, by)
}

// IsGround samples the ground mask under a screen position.
func (sm *Sampler) IsGround(sx, sy float32) bool {
	bx, by := sm.Cell(sx, sy)
	return IsGround(sm.Scene, bx, by)
}

// Flow samples the flow field under a screen position.
func (sm *Sampler) Flow(sx, sy float32) (float32, float32) {
	bx, by := sm.Cell(sx, sy)
	return FlowAt(sm.Scene, bx, by)
}

// HasFlow reports whether the cell under a screen position carries flow.
func (sm *Sampler) HasFlow(sx, sy float32) bool {
	bx, by := sm.Cell(sx, sy)
	return HasFlow(sm.Scene, bx, by)
}

// Normal samples the surface normal under a screen position.
func (sm *Sampler) Normal(sx, sy float32) (float32, float32) {
	bx, by := sm.Cell(sx, sy)
	return NormalAt(sm.Scene, bx, by)
}

// HitsSurface tests surface collision for a droplet at a screen position.
func (sm *Sampler) HitsSurface(sx, sy, z float32, margin uint8) bool {
	bx, by := sm.Cell(sx, sy)
	return HitsSurface(sm.Scene, bx, by, z, margin)
}
