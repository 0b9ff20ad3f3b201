package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

const transactionQuery = `
SELECT` + transactionColumns + `
FROM wallet_transactions FINAL
WHERE hash = ?
LIMIT 1`

// Transaction returns the latest version of the transaction header, or nil when
// the hash is unknown.
func (r *Repository) Transaction(ctx context.Context, hash chainhash.Hash) (tx *model.Transaction, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction", err, start)
	}()

	rows, err := r.conn.Query(ctx, transactionQuery, hash.String())
	if err != nil {
		return nil, fmt.Errorf("query transaction: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate transaction: %w", err)
		}
		return nil, nil
	}

	var row transactionRow
	if err = rows.Scan(row.dest()...); err != nil {
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	tx, err = row.model()
	if err != nil {
		return nil, err
	}
	return tx, nil
}
