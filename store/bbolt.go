package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gamepanel/glcd/virtual"
	"go.etcd.io/bbolt"
)

type BBolt struct {
	db *bbolt.DB
}

const (
	bboltGlcdBucket     = "glcd"
	bboltSnapshotBucket = "snapshots" // child of glcd
)

// OpenBBolt opens a BBoltDB database at the given path and creates the needed
// buckets if they don't exist.
func OpenBBolt(path string, mode os.FileMode, options *bbolt.Options) (Store, error) {
	db, err := bbolt.Open(path, mode, options)
	if err != nil {
		return nil, fmt.Errorf("unable to open bbolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		glcdBucket, err := tx.CreateBucketIfNotExists([]byte(bboltGlcdBucket))
		if err != nil {
			return fmt.Errorf("unable to create bucket %q: %w", bboltGlcdBucket, err)
		}

		_, err = glcdBucket.CreateBucketIfNotExists([]byte(bboltSnapshotBucket))
		if err != nil {
			return fmt.Errorf("unable to create bucket %q: %w", bboltSnapshotBucket, err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create bbolt buckets: %w", err)
	}

	return &BBolt{
		db: db,
	}, nil
}

func (b *BBolt) Close() error {
	return b.db.Close()
}

func (b *BBolt) Snapshot(name string) (virtual.Snapshot, error) {
	var snap virtual.Snapshot
	err := b.db.View(func(tx *bbolt.Tx) error {
		glcdBucket := tx.Bucket([]byte(bboltGlcdBucket))
		snapshotBucket := glcdBucket.Bucket([]byte(bboltSnapshotBucket))

		snapshotJSON := snapshotBucket.Get([]byte(name))
		if snapshotJSON == nil {
			return fmt.Errorf("snapshot does not exist")
		}

		if err := json.Unmarshal(snapshotJSON, &snap); err != nil {
			return fmt.Errorf("unable to unmarshal snapshot JSON: %w", err)
		}

		return nil
	})
	if err != nil {
		return snap, fmt.Errorf("unable to get snapshot %q: %w", name, err)
	}

	return snap, nil
}

func (b *BBolt) ListSnapshots() ([]string, error) {
	names := make([]string, 0)

	err := b.db.View(func(tx *bbolt.Tx) error {
		glcdBucket := tx.Bucket([]byte(bboltGlcdBucket))
		snapshotBucket := glcdBucket.Bucket([]byte(bboltSnapshotBucket))

		err := snapshotBucket.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
		if err != nil {
			return fmt.Errorf("unable to iterate over snapshot bucket: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to list snapshots: %w", err)
	}

	return names, nil
}

func (b *BBolt) PutSnapshot(name string, snap virtual.Snapshot) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		snapshotJSON, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("unable to marshal snapshot: %w", err)
		}

		glcdBucket := tx.Bucket([]byte(bboltGlcdBucket))
		snapshotBucket := glcdBucket.Bucket([]byte(bboltSnapshotBucket))
		if err := snapshotBucket.Put([]byte(name), snapshotJSON); err != nil {
			return fmt.Errorf("unable to put snapshot %q: %w", name, err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("unable to update snapshot: %w", err)
	}

	return nil
}
