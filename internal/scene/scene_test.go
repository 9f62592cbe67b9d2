package scene

import (
	"slices"
	"testing"
)

func TestNewRejectsBadGeometry(t *testing.T) {
	mk8 := func(n int) []uint8 { return make([]uint8, n) }
	mkS := func(n int) []int8 { return make([]int8, n) }

	cases := []struct {
		name string
		w, h int
		d, g int // grid sizes for depth/ground
		n, f int // grid sizes for normals/flow
	}{
		{"zero width", 0, 4, 0, 0, 0, 0},
		{"negative height", 4, -1, 0, 0, 0, 0},
		{"short depth", 4, 4, 15, 16, 16, 16},
		{"short ground", 4, 4, 16, 15, 16, 16},
		{"short normals", 4, 4, 16, 16, 15, 16},
		{"short flow", 4, 4, 16, 16, 16, 15},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.w, c.h, mk8(c.d), mk8(c.g), mkS(c.n), mkS(c.n), mkS(c.f), mkS(c.f))
			if err == nil {
				t.Fatal("expected construction to fail fast")
			}
		})
	}
}

func TestNewZeroesFlowOffGround(t *testing.T) {
	depth := []uint8{100, 100}
	ground := []uint8{1, 0}
	flowX := []int8{50, 50}
	flowY := []int8{-20, -20}

	s, err := New(2, 1, depth, ground, make([]int8, 2), make([]int8, 2), flowX, flowY)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.FlowX[0] != 50 || s.FlowY[0] != -20 {
		t.Fatal("flow over ground must be preserved")
	}
	if s.FlowX[1] != 0 || s.FlowY[1] != 0 {
		t.Fatal("flow off ground must be zeroed")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.W = 64
	cfg.H = 48
	cfg.Seed = 21

	a := Generate(cfg)
	b := Generate(cfg)

	if !slices.Equal(a.Depth, b.Depth) || !slices.Equal(a.Ground, b.Ground) {
		t.Fatal("generation must be deterministic in the seed")
	}
	if !slices.Equal(a.FlowX, b.FlowX) || !slices.Equal(a.NormalY, b.NormalY) {
		t.Fatal("derived fields must be deterministic in the seed")
	}

	cfg.Seed = 22
	c := Generate(cfg)
	if slices.Equal(a.Depth, c.Depth) {
		t.Fatal("different seeds should produce different terrain")
	}
}

func TestGenerateInvariants(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.W = 80
	cfg.H = 60
	s := Generate(cfg)

	if s.W != 80 || s.H != 60 {
		t.Fatalf("generated scene is %dx%d", s.W, s.H)
	}

	// The top row sits above any horizon and must be sky.
	for x := 0; x < s.W; x++ {
		if s.Depth[x] > 30 {
			t.Fatalf("top-row depth %d at column %d is not sky", s.Depth[x], x)
		}
		if s.Ground[x] != 0 {
			t.Fatalf("top-row column %d marked as ground", x)
		}
	}

	// The bottom row is deep terrain.
	bottom := (s.H - 1) * s.W
	for x := 0; x < s.W; x++ {
		if s.Ground[bottom+x] != 1 {
			t.Fatalf("bottom-row column %d is not ground", x)
		}
	}

	// Flow only exists over ground.
	for i := range s.Ground {
		if s.Ground[i] == 0 && (s.FlowX[i] != 0 || s.FlowY[i] != 0) {
			t.Fatalf("cell %d has flow without ground", i)
		}
	}
}

func TestGenerateRecoversFromBadConfig(t *testing.T) {
	s := Generate(GenConfig{W: -5, H: 0, Horizon: 3, Relief: -1})
	if s.W <= 0 || s.H <= 0 {
		t.Fatal("generator must fall back to sane dimensions")
	}
}
