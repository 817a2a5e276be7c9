package dfpn

import "testing"

func TestSatAdd(t *testing.T) {
	tests := []struct {
		a, b, want U
	}{
		{0, 0, 0},
		{1, 1, 2},
		{Inf, 0, Inf},
		{Inf, 5, Inf},
		{Inf - 1, 1, Inf},
		{Inf - 1, 2, Inf},
		{Inf / 2, Inf / 2, Inf - 1},
	}
	for _, tc := range tests {
		if got := satAdd(tc.a, tc.b); got != tc.want {
			t.Errorf("satAdd(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSatAddOne(t *testing.T) {
	if got := satAddOne(Inf); got != Inf {
		t.Errorf("satAddOne(Inf) = %d, want Inf", got)
	}
	if got := satAddOne(Inf - 1); got != Inf {
		t.Errorf("satAddOne(Inf-1) = %d, want Inf", got)
	}
	if got := satAddOne(5); got != 6 {
		t.Errorf("satAddOne(5) = %d, want 6", got)
	}
}

func TestMinU(t *testing.T) {
	if minU(3, 5) != 3 {
		t.Error("minU(3,5) should be 3")
	}
	if minU(5, 3) != 3 {
		t.Error("minU(5,3) should be 3")
	}
	if minU(Inf, Inf-1) != Inf-1 {
		t.Error("minU(Inf, Inf-1) should be Inf-1")
	}
}

// TestUnknownReading checks that a freshly constructed table returns (1,1)
// for any key it has never stored.
func TestUnknownReading(t *testing.T) {
	tables := map[string]Table{
		"HashMapTable": NewHashMapTable(0),
		"VecTable":     NewVecTable(4),
	}
	for name, tbl := range tables {
		t.Run(name, func(t *testing.T) {
			for _, key := range []uint64{0, 1, 0xFFFFFFFFFFFFFFFF, 12345} {
				if got := tbl.LookUpHash(key); got != unknown {
					t.Errorf("LookUpHash(%d) = %+v, want %+v", key, got, unknown)
				}
			}
		})
	}
}
