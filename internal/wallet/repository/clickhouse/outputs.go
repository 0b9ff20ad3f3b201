package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

const (
	ownedOutputsQuery = `
SELECT` + outputColumns + `
FROM wallet_outputs FINAL
WHERE public_key_path != ''
	AND tx_hash IN (SELECT hash FROM wallet_transactions FINAL)
ORDER BY tx_hash ASC, output_index ASC`

	unspentOutputsQuery = `
SELECT
	o.tx_hash,
	o.output_index,
	o.value,
	o.locking_script,
	o.script_type,
	o.address,
	o.key_hash,
	o.public_key_path,
	o.redeem_script,
	t.hash,
	t.version,
	t.lock_time,
	t.status,
	t.is_mine,
	t.is_outgoing,
	t.block_hash,
	t.timestamp,
	t.tx_order,
	t.segwit,
	b.header_hash != '' AS confirmed,
	b.height
FROM (SELECT * FROM wallet_outputs FINAL WHERE public_key_path != '') AS o
INNER JOIN (SELECT * FROM wallet_transactions FINAL WHERE status != ?) AS t ON t.hash = o.tx_hash
LEFT JOIN (SELECT header_hash, height FROM wallet_blocks FINAL) AS b ON b.header_hash = ifNull(t.block_hash, '')
WHERE (o.tx_hash, o.output_index) NOT IN (
	SELECT prev_tx_hash, prev_output_index FROM wallet_inputs FINAL
	WHERE tx_hash IN (SELECT hash FROM wallet_transactions FINAL WHERE status != ?)
)
ORDER BY o.tx_hash ASC, o.output_index ASC`
)

// OwnedOutputs returns every stored output that pays to a wallet key. Rows left
// behind by an interrupted AddTransaction have no header and are skipped.
func (r *Repository) OwnedOutputs(ctx context.Context) (outputs []*model.Output, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("owned_outputs", err, start)
	}()

	rows, err := r.conn.Query(ctx, ownedOutputsQuery)
	if err != nil {
		return nil, fmt.Errorf("query owned outputs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var row outputRow
		if err = rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("scan owned output: %w", err)
		}
		output, convErr := row.model()
		if convErr != nil {
			err = convErr
			return nil, err
		}
		outputs = append(outputs, output)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate owned outputs: %w", err)
	}
	return outputs, nil
}

// UnspentOutputs returns owned outputs no stored input spends. Outputs and inputs
// of invalid or headerless transactions are left out. PublicKey carries only the path and key hash.
func (r *Repository) UnspentOutputs(ctx context.Context) (unspent []model.UnspentOutput, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("unspent_outputs", err, start)
	}()

	rows, err := r.conn.Query(ctx, unspentOutputsQuery, uint8(model.StatusInvalid), uint8(model.StatusInvalid))
	if err != nil {
		return nil, fmt.Errorf("query unspent outputs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			output    outputRow
			tx        transactionRow
			confirmed bool
			height    int32
		)
		dest := append(output.dest(), tx.dest()...)
		dest = append(dest, &confirmed, &height)
		if err = rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan unspent output: %w", err)
		}

		item, convErr := unspentOutput(output, tx, confirmed, height)
		if convErr != nil {
			err = convErr
			return nil, err
		}
		unspent = append(unspent, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unspent outputs: %w", err)
	}
	return unspent, nil
}

func unspentOutput(outputRow outputRow, txRow transactionRow, confirmed bool, height int32) (model.UnspentOutput, error) {
	output, err := outputRow.model()
	if err != nil {
		return model.UnspentOutput{}, err
	}
	tx, err := txRow.model()
	if err != nil {
		return model.UnspentOutput{}, err
	}

	item := model.UnspentOutput{
		Output:      output,
		Transaction: tx,
		PublicKey:   &model.PublicKey{Path: output.PublicKeyPath, KeyHash: output.KeyHash},
	}
	if confirmed {
		item.BlockHeight = &height
	}
	return item, nil
}
