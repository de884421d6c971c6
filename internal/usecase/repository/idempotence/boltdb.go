// Package idempotence records already-handled message ids so redelivered
// chat updates are not applied twice.
package idempotence

import (
	bolt "go.etcd.io/bbolt"
)

var (
	handledBucketName = []byte("handled")
)

type BoltDBRepository struct {
	db *bolt.DB
}

func NewBoltDB(db *bolt.DB) (*BoltDBRepository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(handledBucketName)
		if err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &BoltDBRepository{db: db}, nil
}

func (r *BoltDBRepository) MakeRecord(id string) (ok bool, err error) {
	err = r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(handledBucketName)
		if bucket.Get([]byte(id)) != nil {
			ok = false
			return nil
		}

		if err := bucket.Put([]byte(id), []byte{}); err != nil {
			return err
		}

		ok = true
		return nil
	})
	return
}
