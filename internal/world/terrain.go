// Package world provides pure, allocation-free queries over a baked
// scene: depth, ground membership, surface normals and the flow field.
// All functions take background-space coordinates; Sampler converts from
// screen space using scale factors precomputed once per resize.
package world

import "rainfall/internal/scene"

// SkyDepth is the depth value at or below which a cell counts as sky and
// can never be hit.
const SkyDepth = 30

// RawDepthAt returns the raw depth value (0-255) at a background cell.
// Out-of-bounds coordinates read as sky.
func RawDepthAt(s *scene.Scene, x, y int) uint8 {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return 0
	}
	return s.Depth[y*s.W+x]
}

// DepthAt returns the depth at a background cell normalized to [0, 1],
// where 0 is far and 1 is near.
func DepthAt(s *scene.Scene, x, y int) float32 {
	return float32(RawDepthAt(s, x, y)) / 255
}

// IsGround reports whether the background cell is part of the ground mask.
func IsGround(s *scene.Scene, x, y int) bool {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return false
	}
	return s.Ground[y*s.W+x] == 1
}

// NormalAt returns the surface normal's x/y components in [-1, 1].
func NormalAt(s *scene.Scene, x, y int) (float32, float32) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return 0, 0
	}
	idx := y*s.W + x
	return float32(s.NormalX[idx]) / 127, float32(s.NormalY[idx]) / 127
}

// HitsSurface reports whether a droplet at depth z (0 = near, 1 = far)
// collides with the scene surface at the given background cell: the
// projected depth must be within margin of the sampled depth and the
// cell must not be sky.
func HitsSurface(s *scene.Scene, x, y int, z float32, margin uint8) bool {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return false
	}
	bg := s.Depth[y*s.W+x]
	if bg <= SkyDepth {
		return false
	}
	drop := int((1 - z) * 255)
	diff := drop - int(bg)
	if diff < 0 {
		diff = -diff
	}
	return diff < int(margin)
}
