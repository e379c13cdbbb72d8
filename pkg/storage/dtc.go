package storage

import (
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	dtcDBPath = "dtc_seen.db"
	dtcBucket = "seen_dtcs"
)

// DTCDBPath is the default path for the seen-DTC dedup store.
const DTCDBPath = dtcDBPath

// OpenDB opens (or creates) the bbolt database backing the seen-DTC dedup
// store and ensures its bucket exists.
func OpenDB(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(dtcBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// IsNew reports whether dtc has not been seen before, recording it as seen
// if so. Used to avoid republishing an unchanged trouble code on every
// telemetry tick.
func IsNew(db *bolt.DB, dtc string) (bool, error) {
	key := []byte(dtc)
	var isNew bool

	err := db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(dtcBucket))
		if b.Get(key) == nil {
			isNew = true
			return b.Put(key, []byte{1})
		}
		isNew = false
		return nil
	})
	return isNew, err
}

// Remove clears a single DTC's seen marker, e.g. once it no longer appears
// in a GetTroubleCodes read.
func Remove(db *bolt.DB, dtc string) error {
	key := []byte(dtc)
	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(dtcBucket))
		return b.Delete(key)
	})
}

// ClearAll resets the seen-DTC store, e.g. after ClearTroubleCodes succeeds.
func ClearAll(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(dtcBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(dtcBucket))
		return err
	})
}
