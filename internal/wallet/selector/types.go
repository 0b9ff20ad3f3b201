package selector

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// UnspentOutputProvider lists the coins the wallet may spend.
	UnspentOutputProvider interface {
		SpendableOutputs(ctx context.Context) ([]model.UnspentOutput, error)
	}
	SizeCalculator interface {
		InputSize(scriptType model.ScriptType) int64
		WitnessSize(scriptType model.ScriptType) int64
		OutputSize(scriptType model.ScriptType) int64
		TransactionSize(inputs, outputs []model.ScriptType) int64
	}
)

type (
	// UnspentOutputStore lists stored owned outputs no stored input spends.
	UnspentOutputStore interface {
		UnspentOutputs(ctx context.Context) ([]model.UnspentOutput, error)
	}
	PublicKeyStore interface {
		PublicKeyByPath(path string) (*model.PublicKey, bool)
	}
)
