package lives

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

// BoltRegion is a Region backed by a BoltDB file. Each slot maps to a bucket.
type BoltRegion struct {
	db *bbolt.DB
}

// OpenBoltRegion opens or creates a BoltDB-backed region at path.
func OpenBoltRegion(path string) (*BoltRegion, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("region path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open region db: %w", err)
	}
	return &BoltRegion{db: db}, nil
}

// Get implements Region.
func (r *BoltRegion) Get(slot, key string) ([]byte, bool, error) {
	var out []byte
	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(slot))
		if bucket == nil {
			return nil
		}
		if v := bucket.Get([]byte(key)); v != nil {
			// Values are only valid for the life of the transaction.
			out = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("read %s/%s: %w", slot, key, err)
	}
	return out, out != nil, nil
}

// Put implements Region.
func (r *BoltRegion) Put(slot, key string, value []byte) error {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(slot))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		return bucket.Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("write %s/%s: %w", slot, key, err)
	}
	return nil
}

// Close implements Region.
func (r *BoltRegion) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
