package bolt

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/safe"
	"go.etcd.io/bbolt"
)

// Transaction returns the stored header, or nil when the hash is unknown.
func (s *Store) Transaction(ctx context.Context, hash chainhash.Hash) (header *model.Transaction, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("transaction", err, start)
	}()

	err = s.view(ctx, func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTransactions).Get(hash[:])
		if data == nil {
			return nil
		}
		header = &model.Transaction{}
		if err := decodeGob(data, header); err != nil {
			return fmt.Errorf("bolt: decode transaction %s: %w", hash, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return header, nil
}

// FullTransaction returns the header with its inputs and outputs, or nil when the
// hash is unknown.
func (s *Store) FullTransaction(ctx context.Context, hash chainhash.Hash) (full *model.FullTransaction, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("full_transaction", err, start)
	}()

	err = s.view(ctx, func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTransactions).Get(hash[:])
		if data == nil {
			return nil
		}
		header := &model.Transaction{}
		if err := decodeGob(data, header); err != nil {
			return fmt.Errorf("bolt: decode transaction %s: %w", hash, err)
		}

		var inputs []*model.Input
		if err := scanPrefix(tx.Bucket(bucketInputs), hash[:], func(data []byte) error {
			input := &model.Input{}
			if err := decodeGob(data, input); err != nil {
				return fmt.Errorf("bolt: decode input: %w", err)
			}
			inputs = append(inputs, input)
			return nil
		}); err != nil {
			return err
		}

		var outputs []*model.Output
		if err := scanPrefix(tx.Bucket(bucketOutputs), hash[:], func(data []byte) error {
			output := &model.Output{}
			if err := decodeGob(data, output); err != nil {
				return fmt.Errorf("bolt: decode output: %w", err)
			}
			outputs = append(outputs, output)
			return nil
		}); err != nil {
			return err
		}

		full = model.NewFullTransaction(header, inputs, outputs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return full, nil
}

// AddTransaction stores the header, inputs and outputs of full and marks the
// outpoints it spends.
func (s *Store) AddTransaction(ctx context.Context, full *model.FullTransaction) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("add_transaction", err, start)
	}()

	if full == nil || full.Header == nil {
		return ErrNilTransaction
	}
	hash := full.Header.Hash

	return s.update(ctx, func(tx *bbolt.Tx) error {
		if err := put(tx.Bucket(bucketTransactions), hash[:], full.Header); err != nil {
			return fmt.Errorf("bolt: put transaction %s: %w", hash, err)
		}
		inputs := tx.Bucket(bucketInputs)
		spent := tx.Bucket(bucketSpent)
		for i, input := range full.Inputs {
			index, err := safe.Uint32(i)
			if err != nil {
				return fmt.Errorf("bolt: input index: %w", err)
			}
			if err := put(inputs, indexKey(hash[:], index), input); err != nil {
				return fmt.Errorf("bolt: put input %d: %w", i, err)
			}
			outpoint := indexKey(input.PreviousOutputTxHash[:], input.PreviousOutputIndex)
			if err := spent.Put(outpoint, hash[:]); err != nil {
				return fmt.Errorf("bolt: mark spent: %w", err)
			}
		}
		outputs := tx.Bucket(bucketOutputs)
		for _, output := range full.Outputs {
			if err := put(outputs, indexKey(hash[:], output.Index), output); err != nil {
				return fmt.Errorf("bolt: put output %d: %w", output.Index, err)
			}
		}
		return nil
	})
}

// UpdateTransaction replaces the stored header.
func (s *Store) UpdateTransaction(ctx context.Context, header *model.Transaction) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("update_transaction", err, start)
	}()

	if header == nil {
		return ErrNilTransaction
	}
	return s.update(ctx, func(tx *bbolt.Tx) error {
		if err := put(tx.Bucket(bucketTransactions), header.Hash[:], header); err != nil {
			return fmt.Errorf("bolt: put transaction %s: %w", header.Hash, err)
		}
		return nil
	})
}

func scanPrefix(bucket *bbolt.Bucket, prefix []byte, fn func(data []byte) error) error {
	c := bucket.Cursor()
	for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}
