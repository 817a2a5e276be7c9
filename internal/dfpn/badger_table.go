package dfpn

import (
	"encoding/binary"
	"log"

	"github.com/dgraph-io/badger/v4"
)

// BadgerTable is a disk-persisted transposition table, backed by an embedded
// Badger key/value store. It exists so that a DFPN search over a genuinely
// hard puzzle can be interrupted and resumed across process restarts without
// losing the proof/disproof numbers already computed.
//
// Table is a pure-cache contract: LookUpHash/PutInHash never return an
// error, so any Badger failure here degrades to the (1,1) unknown reading
// (logged, not propagated) rather than aborting the search.
type BadgerTable struct {
	db *badger.DB
}

// OpenBadgerTable opens (creating if necessary) a Badger database at dir to
// back a transposition table.
func OpenBadgerTable(dir string) (*BadgerTable, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerTable{db: db}, nil
}

// Close releases the underlying Badger database.
func (t *BadgerTable) Close() error {
	return t.db.Close()
}

func encodeKey(key uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], key)
	return b[:]
}

func encodePair(v Pair) []byte {
	var b [8]byte
	binary.BigEndian.PutUint32(b[0:4], v.P)
	binary.BigEndian.PutUint32(b[4:8], v.D)
	return b[:]
}

func decodePair(b []byte) (Pair, bool) {
	if len(b) != 8 {
		return Pair{}, false
	}
	return Pair{
		P: binary.BigEndian.Uint32(b[0:4]),
		D: binary.BigEndian.Uint32(b[4:8]),
	}, true
}

func (t *BadgerTable) LookUpHash(key uint64) Pair {
	var pd Pair
	found := false
	err := t.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(encodeKey(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if decoded, ok := decodePair(val); ok {
				pd = decoded
				found = true
			}
			return nil
		})
	})
	if err != nil {
		log.Printf("dfpn: badger lookup failed, treating %x as unknown: %v", key, err)
		return unknown
	}
	if !found {
		return unknown
	}
	return pd
}

func (t *BadgerTable) PutInHash(key uint64, v Pair) {
	err := t.db.Update(func(txn *badger.Txn) error {
		return txn.Set(encodeKey(key), encodePair(v))
	})
	if err != nil {
		log.Printf("dfpn: badger store failed for %x: %v", key, err)
	}
}
