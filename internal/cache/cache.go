package cache

import (
	"encoding/json"
	"log"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Entry is a previously solved puzzle's result, keyed by its input SFEN.
type Entry struct {
	Moves    []string      `json:"moves"` // USI-formatted mating line
	Solved   bool          `json:"solved"`
	Duration time.Duration `json:"duration"`
}

// Cache wraps a BadgerDB database mapping an input SFEN string to its
// previously computed Entry.
type Cache struct {
	db *badger.DB
}

// Open opens (creating if necessary) the cache database at dir. Pass the
// empty string to use the platform default data directory.
func Open(dir string) (*Cache, error) {
	if dir == "" {
		var err error
		dir, err = GetDatabaseDir()
		if err != nil {
			return nil, err
		}
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the cached entry for sfen, if present.
func (c *Cache) Lookup(sfen string) (Entry, bool) {
	var entry Entry
	found := false
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sfen))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &entry); err != nil {
				return err
			}
			found = true
			return nil
		})
	})
	if err != nil {
		log.Printf("cache: lookup failed for %q: %v", sfen, err)
		return Entry{}, false
	}
	return entry, found
}

// Store records entry under sfen.
func (c *Cache) Store(sfen string, entry Entry) {
	data, err := json.Marshal(entry)
	if err != nil {
		log.Printf("cache: marshal failed for %q: %v", sfen, err)
		return
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(sfen), data)
	})
	if err != nil {
		log.Printf("cache: store failed for %q: %v", sfen, err)
	}
}
