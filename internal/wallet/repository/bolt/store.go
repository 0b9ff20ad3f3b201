// Package bolt stores wallet transactions in an embedded bbolt database.
package bolt

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketTransactions = []byte("transactions")
	bucketInputs       = []byte("inputs")
	bucketOutputs      = []byte("outputs")
	bucketBlocks       = []byte("blocks")
	bucketSpent        = []byte("spent")
)

// ErrNilTransaction is returned when a nil transaction or header is stored.
var ErrNilTransaction = errors.New("bolt: nil transaction")

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Store persists wallet transactions. Inputs and outputs are keyed by the
// transaction hash followed by the big-endian index, so a prefix scan yields them
// in order. The spent bucket maps an outpoint to the hash of the spending tx.
type Store struct {
	db      *bbolt.DB
	metrics Metrics
}

// Open opens or creates the database at path.
func Open(path string, metrics Metrics) (*Store, error) {
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("bolt: create directory: %w", err)
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: open db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketTransactions, bucketInputs, bucketOutputs, bucketBlocks, bucketSpent} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt: create buckets: %w", err)
	}

	return &Store{db: db, metrics: metrics}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) view(ctx context.Context, fn func(tx *bbolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(fn)
}

func (s *Store) update(ctx context.Context, fn func(tx *bbolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(fn)
}

func indexKey(hash []byte, index uint32) []byte {
	key := make([]byte, len(hash)+4)
	copy(key, hash)
	binary.BigEndian.PutUint32(key[len(hash):], index)
	return key
}

func encodeGob(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeGob(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func put(bucket *bbolt.Bucket, key []byte, v any) error {
	data, err := encodeGob(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return bucket.Put(key, data)
}
