package bolt

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"go.etcd.io/bbolt"
)

// OwnedOutputs returns every stored output that pays to a wallet key.
func (s *Store) OwnedOutputs(ctx context.Context) (outputs []*model.Output, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("owned_outputs", err, start)
	}()

	err = s.view(ctx, func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOutputs).ForEach(func(_, data []byte) error {
			output := &model.Output{}
			if err := decodeGob(data, output); err != nil {
				return fmt.Errorf("bolt: decode output: %w", err)
			}
			if output.IsMine() {
				outputs = append(outputs, output)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return outputs, nil
}

// UnspentOutputs returns owned outputs no stored input spends. Outputs of invalid
// transactions are left out. PublicKey carries only the path and key hash.
func (s *Store) UnspentOutputs(ctx context.Context) (unspent []model.UnspentOutput, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe("unspent_outputs", err, start)
	}()

	err = s.view(ctx, func(tx *bbolt.Tx) error {
		spent := tx.Bucket(bucketSpent)
		transactions := tx.Bucket(bucketTransactions)

		return tx.Bucket(bucketOutputs).ForEach(func(key, data []byte) error {
			if spent.Get(key) != nil {
				return nil
			}
			output := &model.Output{}
			if err := decodeGob(data, output); err != nil {
				return fmt.Errorf("bolt: decode output: %w", err)
			}
			if !output.IsMine() {
				return nil
			}

			headerData := transactions.Get(output.TransactionHash[:])
			if headerData == nil {
				return nil
			}
			header := &model.Transaction{}
			if err := decodeGob(headerData, header); err != nil {
				return fmt.Errorf("bolt: decode transaction %s: %w", output.TransactionHash, err)
			}
			if header.Status == model.StatusInvalid {
				return nil
			}

			item := model.UnspentOutput{
				Output:      output,
				Transaction: header,
				PublicKey:   &model.PublicKey{Path: output.PublicKeyPath, KeyHash: output.KeyHash},
			}
			if header.BlockHash != nil {
				block, err := blockOf(tx, *header.BlockHash)
				if err != nil {
					return err
				}
				if block != nil {
					height := block.Height
					item.BlockHeight = &height
				}
			}
			unspent = append(unspent, item)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return unspent, nil
}
