package db

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

const bucketDocuments = "Documents"

// BoltStorage implements storage interface for BoltDB
type BoltStorage struct {
	db *bolt.DB
}

// Read document from database
func (b *BoltStorage) Read(name string) (string, error) {
	var text string
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketDocuments)).Get([]byte(name))
		if data == nil {
			return ErrNotFound
		}
		text = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// Write overwrites existing document
func (b *BoltStorage) Write(name string, text string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketDocuments))
		if bucket.Get([]byte(name)) == nil {
			return ErrNotFound
		}
		if err := bucket.Put([]byte(name), []byte(text)); err != nil {
			return fmt.Errorf("failed to put document: %w", err)
		}
		return nil
	})
}

// Create saves new document
func (b *BoltStorage) Create(name string, text string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketDocuments))
		if bucket.Get([]byte(name)) != nil {
			return ErrAlreadyExists
		}
		if err := bucket.Put([]byte(name), []byte(text)); err != nil {
			return fmt.Errorf("failed to put document: %w", err)
		}
		return nil
	})
}

// NewBoltStorage creates BoltStorage instance and initialize buckets
func NewBoltStorage(db *bolt.DB) (*BoltStorage, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketDocuments))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &BoltStorage{db: db}, nil
}
