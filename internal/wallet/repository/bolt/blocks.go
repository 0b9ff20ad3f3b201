package bolt

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"go.etcd.io/bbolt"
)

// UpdateBlock stores block, replacing any previous record.
func (s *Store) UpdateBlock(ctx context.Context, block *model.Block) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("update_block", err, start)
	}()

	return s.update(ctx, func(tx *bbolt.Tx) error {
		if err := put(tx.Bucket(bucketBlocks), block.HeaderHash[:], block); err != nil {
			return fmt.Errorf("bolt: put block %s: %w", block.HeaderHash, err)
		}
		return nil
	})
}

// Block returns the stored block, or nil when the hash is unknown.
func (s *Store) Block(ctx context.Context, hash chainhash.Hash) (block *model.Block, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("block", err, start)
	}()

	err = s.view(ctx, func(tx *bbolt.Tx) error {
		block, err = blockOf(tx, hash)
		return err
	})
	if err != nil {
		return nil, err
	}
	return block, nil
}

func blockOf(tx *bbolt.Tx, hash chainhash.Hash) (*model.Block, error) {
	data := tx.Bucket(bucketBlocks).Get(hash[:])
	if data == nil {
		return nil, nil
	}
	block := &model.Block{}
	if err := decodeGob(data, block); err != nil {
		return nil, fmt.Errorf("bolt: decode block %s: %w", hash, err)
	}
	return block, nil
}
