package selector

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"go.uber.org/zap"
)

// StoredOutputs serves spendable coins from storage with their full public keys.
type StoredOutputs struct {
	store  UnspentOutputStore
	keys   PublicKeyStore
	logger *zap.Logger
}

// NewStoredOutputs builds a provider over store resolving keys through keys.
func NewStoredOutputs(store UnspentOutputStore, keys PublicKeyStore, logger *zap.Logger) *StoredOutputs {
	return &StoredOutputs{store: store, keys: keys, logger: logger.Named("stored_outputs")}
}

// SpendableOutputs returns stored unspent outputs whose key is held by the wallet.
func (p *StoredOutputs) SpendableOutputs(ctx context.Context) ([]model.UnspentOutput, error) {
	stored, err := p.store.UnspentOutputs(ctx)
	if err != nil {
		return nil, fmt.Errorf("unspent outputs: %w", err)
	}

	spendable := make([]model.UnspentOutput, 0, len(stored))
	for _, u := range stored {
		publicKey, ok := p.keys.PublicKeyByPath(u.Output.PublicKeyPath)
		if !ok {
			p.logger.Warn("skip output with unknown key",
				zap.Stringer("tx", u.Output.TransactionHash),
				zap.Uint32("index", u.Output.Index),
				zap.String("path", u.Output.PublicKeyPath),
			)
			continue
		}
		u.PublicKey = publicKey
		spendable = append(spendable, u)
	}
	return spendable, nil
}
