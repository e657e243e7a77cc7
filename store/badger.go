package store

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/gamepanel/glcd/virtual"
)

type badgerDB struct {
	db *badger.DB
}

const badgerSnapshotPrefix = "snapshots/"

// OpenBadger opens a badger DB with the given options as a snapshot store.
func OpenBadger(options badger.Options) (Store, error) {
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("unable to open badger db: %w", err)
	}

	return &badgerDB{db: db}, nil
}

func (b *badgerDB) Close() error {
	return b.db.Close()
}

func (b *badgerDB) Snapshot(name string) (virtual.Snapshot, error) {
	var snap virtual.Snapshot

	err := b.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(badgerSnapshotPrefix + name))
		if err != nil {
			return fmt.Errorf("couldn't get raw snapshot: %w", err)
		}

		err = item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &snap); err != nil {
				return fmt.Errorf("couldn't unmarshal snapshot JSON: %w", err)
			}

			return nil
		})
		if err != nil {
			return fmt.Errorf("couldn't read snapshot value: %w", err)
		}

		return nil
	})
	if err != nil {
		return snap, fmt.Errorf("couldn't get snapshot %q: %w", name, err)
	}

	return snap, nil
}

func (b *badgerDB) ListSnapshots() ([]string, error) {
	names := make([]string, 0)

	err := b.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false

		it := tx.NewIterator(opts)
		defer it.Close()

		prefix := []byte(badgerSnapshotPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			names = append(names, string(key[len(prefix):]))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't list snapshots: %w", err)
	}

	return names, nil
}

func (b *badgerDB) PutSnapshot(name string, snap virtual.Snapshot) error {
	snapshotJSON, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("couldn't marshal snapshot: %w", err)
	}

	err = b.db.Update(func(tx *badger.Txn) error {
		if err := tx.Set([]byte(badgerSnapshotPrefix+name), snapshotJSON); err != nil {
			return fmt.Errorf("couldn't set snapshot value: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("couldn't put snapshot %q: %w", name, err)
	}

	return nil
}
