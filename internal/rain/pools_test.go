package rain

import "testing"

func TestDropletsSpawnUpToCapacity(t *testing.T) {
	d := NewDroplets(3)

	for k := 0; k < 3; k++ {
		i, ok := d.Spawn(float32(k), float32(k)*2, 0.5, 1)
		if !ok {
			t.Fatalf("spawn %d rejected below capacity", k)
		}
		if i != k {
			t.Fatalf("spawn %d landed in slot %d", k, i)
		}
	}

	if _, ok := d.Spawn(9, 9, 0.5, 1); ok {
		t.Fatal("spawn on a full pool must be dropped")
	}
	if d.Len() != 3 {
		t.Fatalf("full pool reports %d live, want 3", d.Len())
	}

	// The dropped spawn must not have corrupted existing slots.
	for k := 0; k < 3; k++ {
		if d.X(k) != float32(k) || d.Y(k) != float32(k)*2 {
			t.Fatalf("slot %d corrupted after dropped spawn: (%f, %f)", k, d.X(k), d.Y(k))
		}
	}
}

func TestDropletsSwapRemoveCompacts(t *testing.T) {
	d := NewDroplets(4)
	for k := 0; k < 4; k++ {
		d.Spawn(float32(k), 0, 0, 1)
	}

	d.Remove(1)

	if d.Len() != 3 {
		t.Fatalf("after remove Len = %d, want 3", d.Len())
	}
	// The last slot moved into the hole.
	if d.X(1) != 3 {
		t.Fatalf("slot 1 holds x=%f after swap-remove, want 3", d.X(1))
	}
	// Every index below Len refers to a previously inserted entity.
	seen := map[float32]bool{}
	for i := 0; i < d.Len(); i++ {
		seen[d.X(i)] = true
	}
	for _, want := range []float32{0, 2, 3} {
		if !seen[want] {
			t.Fatalf("entity x=%f lost by swap-remove", want)
		}
	}

	d.Remove(d.Len() - 1)
	d.Remove(0)
	if d.Len() != 1 {
		t.Fatalf("Len = %d after removals, want 1", d.Len())
	}

	d.Clear()
	if d.Len() != 0 {
		t.Fatal("Clear must empty the pool")
	}
}

func TestSplashesPoolLifecycle(t *testing.T) {
	s := NewSplashes(2)

	if _, ok := s.Spawn(1, 2, 0.3, SplashLeft, -2); !ok {
		t.Fatal("spawn rejected below capacity")
	}
	if _, ok := s.Spawn(3, 4, 0.6, SplashSpray, 1); !ok {
		t.Fatal("spawn rejected below capacity")
	}
	if _, ok := s.Spawn(5, 6, 0.9, SplashCrown, 0); ok {
		t.Fatal("spawn on a full pool must be dropped")
	}

	if s.Kind(0) != SplashLeft || s.Drift(0) != -2 || s.Frame(0) != 0 {
		t.Fatalf("slot 0 holds kind=%d drift=%d frame=%d", s.Kind(0), s.Drift(0), s.Frame(0))
	}

	s.Remove(0)
	if s.Len() != 1 || s.Kind(0) != SplashSpray {
		t.Fatalf("swap-remove left kind=%d at slot 0", s.Kind(0))
	}
}

func TestStreamsPoolLifecycle(t *testing.T) {
	s := NewStreams(2)

	s.Spawn(1, 1, 0.2, 120)
	s.Spawn(2, 2, 0.4, 60)
	if _, ok := s.Spawn(3, 3, 0.6, 30); ok {
		t.Fatal("spawn on a full pool must be dropped")
	}

	s.Remove(0)
	if s.Len() != 1 || s.Life(0) != 60 {
		t.Fatalf("swap-remove left life=%d at slot 0", s.Life(0))
	}
}

func TestZeroCapacityPools(t *testing.T) {
	d := NewDroplets(0)
	if _, ok := d.Spawn(0, 0, 0, 1); ok {
		t.Fatal("zero-capacity droplet pool accepted a spawn")
	}
	sp := NewSplashes(-1)
	if _, ok := sp.Spawn(0, 0, 0, SplashCrown, 0); ok {
		t.Fatal("negative-capacity splash pool accepted a spawn")
	}
	st := NewStreams(0)
	if _, ok := st.Spawn(0, 0, 0, 1); ok {
		t.Fatal("zero-capacity stream pool accepted a spawn")
	}
}
