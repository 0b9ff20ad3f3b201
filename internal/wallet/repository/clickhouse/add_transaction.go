package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/safe"
)

const (
	insertTransactionQuery = `
INSERT INTO wallet_transactions (` + transactionColumns + `,
	updated_at
) VALUES`

	insertInputsQuery = `
INSERT INTO wallet_inputs (
	tx_hash,
	input_index,
	prev_tx_hash,
	prev_output_index,
	signature_script,
	witness,
	sequence,
	key_hash,
	address,
	updated_at
) VALUES`

	insertOutputsQuery = `
INSERT INTO wallet_outputs (` + outputColumns + `,
	updated_at
) VALUES`
)

// AddTransaction stores the inputs, outputs and header of tx. The header goes last:
// a stored header means the whole transaction is stored, and a retry after a failed
// write only repeats child rows that ReplacingMergeTree collapses.
func (r *Repository) AddTransaction(ctx context.Context, tx *model.FullTransaction) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("add_transaction", err, start)
	}()

	version := r.version()
	if err = r.insertInputs(ctx, tx, version); err != nil {
		return err
	}
	if err = r.insertOutputs(ctx, tx, version); err != nil {
		return err
	}
	return r.insertTransaction(ctx, tx.Header, version)
}

func (r *Repository) insertTransaction(ctx context.Context, header *model.Transaction, version time.Time) error {
	batch, err := r.conn.PrepareBatch(ctx, insertTransactionQuery)
	if err != nil {
		return fmt.Errorf("prepare transaction batch: %w", err)
	}
	values, err := transactionValues(header)
	if err != nil {
		_ = batch.Abort()
		return err
	}
	if err = batch.Append(append(values, version)...); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append transaction: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *Repository) insertInputs(ctx context.Context, tx *model.FullTransaction, version time.Time) error {
	if len(tx.Inputs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertInputsQuery)
	if err != nil {
		return fmt.Errorf("prepare inputs batch: %w", err)
	}
	hash := tx.Header.Hash.String()
	for i, input := range tx.Inputs {
		witness := make([]string, 0, len(input.WitnessData))
		for _, item := range input.WitnessData {
			witness = append(witness, hex.EncodeToString(item))
		}
		index, err := safe.Uint32(i)
		if err != nil {
			_ = batch.Abort()
			return fmt.Errorf("input index: %w", err)
		}
		if err = batch.Append(
			hash,
			index,
			input.PreviousOutputTxHash.String(),
			input.PreviousOutputIndex,
			hex.EncodeToString(input.SignatureScript),
			witness,
			input.Sequence,
			hex.EncodeToString(input.KeyHash),
			input.Address,
			version,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append input %d: %w", i, err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert inputs: %w", err)
	}
	return nil
}

func (r *Repository) insertOutputs(ctx context.Context, tx *model.FullTransaction, version time.Time) error {
	if len(tx.Outputs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertOutputsQuery)
	if err != nil {
		return fmt.Errorf("prepare outputs batch: %w", err)
	}
	hash := tx.Header.Hash.String()
	for _, output := range tx.Outputs {
		if err = batch.Append(
			hash,
			output.Index,
			output.Value,
			hex.EncodeToString(output.LockingScript),
			uint8(output.ScriptType),
			output.Address,
			hex.EncodeToString(output.KeyHash),
			output.PublicKeyPath,
			hex.EncodeToString(output.RedeemScript),
			version,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append output %d: %w", output.Index, err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert outputs: %w", err)
	}
	return nil
}
