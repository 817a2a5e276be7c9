package dfpn

// VecTable is a fixed-size, direct-mapped transposition table: 2^bits slots
// indexed by the low bits of the key. Collisions silently overwrite, and
// evicted or never-written slots read back as the unknown (1,1) reading, the
// same power-of-two-mask-with-no-chaining replacement policy a fixed-size
// transposition table uses, generalized to the dfpn.Table contract.
//
// Lossiness here can only cost performance (a forgotten subtree gets
// re-searched), never correctness of the search itself, but it can shorten
// what the solution extractor finds (see DESIGN.md's discussion of this
// open question).
type VecTable struct {
	slots []slot
	mask  uint64
}

type slot struct {
	present bool
	key     uint64
	pd      Pair
}

// DefaultVecTableBits is the reference implementation's default: 2^16
// slots, trading memory for hit rate.
const DefaultVecTableBits = 16

// NewVecTable creates a VecTable with 2^bits slots.
func NewVecTable(bits uint) *VecTable {
	n := uint64(1) << bits
	return &VecTable{
		slots: make([]slot, n),
		mask:  n - 1,
	}
}

func (t *VecTable) LookUpHash(key uint64) Pair {
	s := t.slots[key&t.mask]
	if !s.present || s.key != key {
		return unknown
	}
	return s.pd
}

func (t *VecTable) PutInHash(key uint64, v Pair) {
	t.slots[key&t.mask] = slot{present: true, key: key, pd: v}
}
