package ledger

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"finbot/internal/entity"
)

// BoltDBRepository keeps one JSON record per conversation id inside a
// bucket, one bucket per channel variant.
type BoltDBRepository struct {
	db     *bolt.DB
	bucket []byte
}

func NewBoltDB(db *bolt.DB, bucket string) (*BoltDBRepository, error) {
	name := []byte(bucket)
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(name)
		if err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &BoltDBRepository{db: db, bucket: name}, nil
}

// Load reads every conversation record. Records that no longer decode
// are skipped rather than failing the whole load.
func (r *BoltDBRepository) Load() (map[string]*entity.Ledger, error) {
	ledgers := make(map[string]*entity.Ledger)

	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(r.bucket).ForEach(func(k, v []byte) error {
			var l entity.Ledger
			if err := json.Unmarshal(v, &l); err != nil {
				return nil
			}
			if l.ID == "" {
				l.ID = string(k)
			}
			if l.Entries == nil {
				l.Entries = []entity.Entry{}
			}
			ledgers[string(k)] = &l
			return nil
		})
	})

	if err != nil {
		return make(map[string]*entity.Ledger), err
	}

	return ledgers, nil
}

func (r *BoltDBRepository) Save(ledgers map[string]*entity.Ledger) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(r.bucket)

		for id, l := range ledgers {
			raw, err := json.Marshal(l)
			if err != nil {
				return err
			}

			if err := bucket.Put([]byte(id), raw); err != nil {
				return err
			}
		}

		return nil
	})
}
