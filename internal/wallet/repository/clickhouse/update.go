package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

const (
	insertBlockQuery = `
INSERT INTO wallet_blocks (
	header_hash,
	height,
	timestamp,
	has_transactions,
	updated_at
) VALUES`

	blockQuery = `
SELECT
	header_hash,
	height,
	timestamp,
	has_transactions
FROM wallet_blocks FINAL
WHERE header_hash = ?
LIMIT 1`
)

// UpdateTransaction writes a newer version of the transaction header.
func (r *Repository) UpdateTransaction(ctx context.Context, tx *model.Transaction) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("update_transaction", err, start)
	}()

	return r.insertTransaction(ctx, tx, r.version())
}

// UpdateBlock writes the block, replacing any stored version.
func (r *Repository) UpdateBlock(ctx context.Context, block *model.Block) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("update_block", err, start)
	}()

	batch, err := r.conn.PrepareBatch(ctx, insertBlockQuery)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}
	if err = batch.Append(
		block.HeaderHash.String(),
		block.Height,
		block.Timestamp,
		block.HasTransactions,
		r.version(),
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append block: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}

// Block returns the stored block, or nil when the hash is unknown.
func (r *Repository) Block(ctx context.Context, hash chainhash.Hash) (block *model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block", err, start)
	}()

	rows, err := r.conn.Query(ctx, blockQuery, hash.String())
	if err != nil {
		return nil, fmt.Errorf("query block: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate block: %w", err)
		}
		return nil, nil
	}

	var headerHash string
	block = &model.Block{}
	if err = rows.Scan(&headerHash, &block.Height, &block.Timestamp, &block.HasTransactions); err != nil {
		return nil, fmt.Errorf("scan block: %w", err)
	}
	parsed, err := chainhash.NewHashFromStr(headerHash)
	if err != nil {
		return nil, fmt.Errorf("parse block hash %q: %w", headerHash, err)
	}
	block.HeaderHash = *parsed
	return block, nil
}
