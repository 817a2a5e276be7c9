package dfpn

import "testing"

func TestHashMapTableStoresAndOverwrites(t *testing.T) {
	tbl := NewHashMapTable(0)
	tbl.PutInHash(42, Pair{P: 3, D: 7})
	if got := tbl.LookUpHash(42); got != (Pair{P: 3, D: 7}) {
		t.Errorf("LookUpHash(42) = %+v, want (3, 7)", got)
	}
	tbl.PutInHash(42, Pair{P: Inf, D: 0})
	if got := tbl.LookUpHash(42); got != (Pair{P: Inf, D: 0}) {
		t.Errorf("LookUpHash(42) after overwrite = %+v, want (Inf, 0)", got)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

// TestVecTableCollisionOverwrites pins down the direct-mapped replacement
// policy: two keys sharing low bits share one slot, the later write wins,
// and the evicted key reads back as the unknown reading rather than the
// other key's entry, so eviction only ever loses information.
func TestVecTableCollisionOverwrites(t *testing.T) {
	tbl := NewVecTable(4) // 16 slots: keys 3 and 19 collide
	tbl.PutInHash(3, Pair{P: 5, D: 6})
	tbl.PutInHash(19, Pair{P: 7, D: 8})

	if got := tbl.LookUpHash(19); got != (Pair{P: 7, D: 8}) {
		t.Errorf("LookUpHash(19) = %+v, want (7, 8)", got)
	}
	if got := tbl.LookUpHash(3); got != unknown {
		t.Errorf("LookUpHash(3) after eviction = %+v, want the unknown reading (1, 1)", got)
	}
}

func TestBadgerTableRoundTrip(t *testing.T) {
	tbl, err := OpenBadgerTable(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadgerTable() = %v", err)
	}
	defer tbl.Close()

	if got := tbl.LookUpHash(99); got != unknown {
		t.Errorf("LookUpHash(99) on a fresh table = %+v, want (1, 1)", got)
	}
	tbl.PutInHash(99, Pair{P: Inf, D: 0})
	if got := tbl.LookUpHash(99); got != (Pair{P: Inf, D: 0}) {
		t.Errorf("LookUpHash(99) = %+v, want (Inf, 0)", got)
	}
}

// TestTableInterchangeability runs the same search against every table
// implementation and checks they agree on the root verdict, the property the
// kernel's genericity over Table rests on.
func TestTableInterchangeability(t *testing.T) {
	graph := map[uint64][]uint64{
		1: {2},
		2: {3, 4},
		3: {5},
		4: {6},
		5: nil,
		6: nil,
	}
	tables := map[string]Table{
		"HashMapTable": NewHashMapTable(0),
		"VecTable":     NewVecTable(DefaultVecTableBits),
	}
	for name, tbl := range tables {
		t.Run(name, func(t *testing.T) {
			g := newToyGame(1, graph)
			Search[testMove](g, tbl)
			if got := tbl.LookUpHash(1); got.P != 0 {
				t.Errorf("root entry = %+v, want proof number 0", got)
			}
			line := ExtractPrincipalVariation[testMove, int, string](g, tbl, nil)
			if len(line) != 3 {
				t.Errorf("len(line) = %d, want 3", len(line))
			}
		})
	}
}
