package world

import (
	"testing"

	"rainfall/internal/scene"
)

func singleCellScene(t *testing.T, depth uint8, ground uint8, flowX, flowY int8) *scene.Scene {
	t.Helper()
	sc, err := scene.New(1, 1,
		[]uint8{depth}, []uint8{ground},
		[]int8{0}, []int8{0}, []int8{flowX}, []int8{flowY})
	if err != nil {
		t.Fatalf("scene.New: %v", err)
	}
	return sc
}

func TestOutOfBoundsQueriesAreNeutral(t *testing.T) {
	sc := singleCellScene(t, 200, 1, 50, 50)

	coords := [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}, {100, 100}}
	for _, c := range coords {
		if RawDepthAt(sc, c[0], c[1]) != 0 {
			t.Fatalf("depth at %v not neutral", c)
		}
		if IsGround(sc, c[0], c[1]) {
			t.Fatalf("ground at %v not neutral", c)
		}
		if fx, fy := FlowAt(sc, c[0], c[1]); fx != 0 || fy != 0 {
			t.Fatalf("flow at %v not neutral", c)
		}
		if nx, ny := NormalAt(sc, c[0], c[1]); nx != 0 || ny != 0 {
			t.Fatalf("normal at %v not neutral", c)
		}
		if HitsSurface(sc, c[0], c[1], 0.2, 48) {
			t.Fatalf("surface hit at out-of-bounds %v", c)
		}
	}
}

func TestHitsSurfaceBoundary(t *testing.T) {
	sc := singleCellScene(t, 100, 1, 0, 0)

	// Projected depth 147: |147-100| = 47 < 48.
	zInside := float32(1) - 147.5/255.0
	// Projected depth 148: |148-100| = 48, not < 48.
	zOutside := float32(1) - 148.5/255.0

	if !HitsSurface(sc, 0, 0, zInside, 48) {
		t.Fatal("diff 47 must hit with margin 48")
	}
	if HitsSurface(sc, 0, 0, zOutside, 48) {
		t.Fatal("diff 48 must not hit with margin 48")
	}

	// Boundary classification is stable across repeated calls.
	for i := 0; i < 100; i++ {
		if HitsSurface(sc, 0, 0, zInside, 48) != true {
			t.Fatal("boundary classification flapped")
		}
		if HitsSurface(sc, 0, 0, zOutside, 48) != false {
			t.Fatal("boundary classification flapped")
		}
	}
}

func TestHitsSurfaceSkipsSky(t *testing.T) {
	sky := singleCellScene(t, SkyDepth, 0, 0, 0)
	// Perfect depth match, but the cell is sky.
	z := float32(1) - float32(SkyDepth)/255.0
	if HitsSurface(sky, 0, 0, z, 48) {
		t.Fatal("sky cells must never collide")
	}

	barely := singleCellScene(t, SkyDepth+1, 0, 0, 0)
	z = float32(1) - float32(SkyDepth+1)/255.0
	if !HitsSurface(barely, 0, 0, z, 48) {
		t.Fatal("first non-sky depth must be hittable")
	}
}

func TestHasFlowDeadZone(t *testing.T) {
	still := singleCellScene(t, 200, 1, 10, -10)
	if HasFlow(still, 0, 0) {
		t.Fatal("packed magnitude 10 is inside the dead zone")
	}
	moving := singleCellScene(t, 200, 1, 11, 0)
	if !HasFlow(moving, 0, 0) {
		t.Fatal("packed magnitude 11 must count as flow")
	}
	if FlowStrength(moving, 0, 0) <= 0 {
		t.Fatal("flow strength must be positive for a moving cell")
	}
}

func TestSamplerScalesScreenToBackground(t *testing.T) {
	total := 20 * 10
	depth := make([]uint8, total)
	ground := make([]uint8, total)
	// Single marked background cell at (6, 4).
	depth[4*20+6] = 200
	sc, err := scene.New(20, 10, depth, ground,
		make([]int8, total), make([]int8, total), make([]int8, total), make([]int8, total))
	if err != nil {
		t.Fatalf("scene.New: %v", err)
	}

	// Screen 10x5 over background 20x10: scale 2 on both axes.
	sm := NewSampler(sc, 10, 5)
	if bx, by := sm.Cell(3, 2); bx != 6 || by != 4 {
		t.Fatalf("Cell(3,2) = (%d,%d), want (6,4)", bx, by)
	}
	if sm.RawDepth(3, 2) != 200 {
		t.Fatal("sampler missed the marked background cell")
	}
	if sm.RawDepth(0, 0) != 0 {
		t.Fatal("sampler read a wrong background cell")
	}

	// Resize recomputes the scale factors.
	sm.SetScreen(20, 10)
	if bx, by := sm.Cell(6, 4); bx != 6 || by != 4 {
		t.Fatalf("after resize Cell(6,4) = (%d,%d), want (6,4)", bx, by)
	}
}
