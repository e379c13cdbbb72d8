// Package storage persists resolved VIN attributes in a local embedded
// key/value store so repeated decodes of a VIN already seen skip the vPIC
// pattern-matching cascade entirely.
package storage

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	AttributeDBPath = "vin_attributes.db"
	attributeBucket = "vin_attributes"
)

// OpenAttributeDB opens (or creates) the bbolt database backing the VIN
// attribute cache and ensures its bucket exists.
func OpenAttributeDB(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(attributeBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func attributeKey(vinKey string, elementID int64) []byte {
	return []byte(fmt.Sprintf("%s:%d", vinKey, elementID))
}

// Get returns a cached attribute value for (vinKey, elementID) and whether
// it was present.
func Get(db *bolt.DB, vinKey string, elementID int64) (string, bool, error) {
	var value string
	var found bool

	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(attributeBucket))
		if v := b.Get(attributeKey(vinKey, elementID)); v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	return value, found, err
}

// Put memoizes an attribute value for (vinKey, elementID).
func Put(db *bolt.DB, vinKey string, elementID int64, value string) error {
	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(attributeBucket))
		return b.Put(attributeKey(vinKey, elementID), []byte(value))
	})
}

// Invalidate removes a single cached (vinKey, elementID) entry, for example
// after the reference database is refreshed.
func Invalidate(db *bolt.DB, vinKey string, elementID int64) error {
	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(attributeBucket))
		return b.Delete(attributeKey(vinKey, elementID))
	})
}

// ClearAllAttributes drops every cached attribute, forcing every subsequent
// lookup back through the vPIC pattern-matching path.
func ClearAllAttributes(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(attributeBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(attributeBucket))
		return err
	})
}
