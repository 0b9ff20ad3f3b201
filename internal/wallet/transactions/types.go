package transactions

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Storage is the durable record keeper. Transaction returns nil when no transaction
	// with the hash is stored.
	Storage interface {
		Transaction(ctx context.Context, hash chainhash.Hash) (*model.Transaction, error)
		AddTransaction(ctx context.Context, tx *model.FullTransaction) error
		UpdateTransaction(ctx context.Context, tx *model.Transaction) error
		UpdateBlock(ctx context.Context, block *model.Block) error
	}
	TransactionExtractor interface {
		Extract(tx *model.FullTransaction)
	}
	OutputAddressExtractor interface {
		ExtractOutputAddresses(tx *model.FullTransaction)
	}
	OutputsCache interface {
		HasOutputs(inputs []*model.Input) bool
		Add(outputs []*model.Output)
	}
	AddressManager interface {
		ChangePublicKey() (*model.PublicKey, error)
		GapShifts() bool
	}
	UnspentOutputSelector interface {
		Select(ctx context.Context, value, feeRate int64, outputScriptType, changeType model.ScriptType, senderPay bool) (model.SelectedUnspentOutputInfo, error)
	}
	InputSigner interface {
		SigScriptData(tx *model.FullTransaction, inputsToSign []model.InputToSign, outputs []*model.Output, index int) ([][]byte, error)
	}
	AddressConverter interface {
		Convert(address string) (model.Address, error)
		ConvertKeyHash(keyHash []byte, scriptType model.ScriptType) (model.Address, error)
	}
	ScriptBuilder interface {
		LockingScript(address model.Address) ([]byte, error)
	}
	TransactionSerializer interface {
		Hash(tx *model.FullTransaction) (chainhash.Hash, error)
	}
	SizeCalculator interface {
		TransactionSize(inputs, outputs []model.ScriptType) int64
	}

	// BlockchainDataListener receives one batched notification per processed batch.
	BlockchainDataListener interface {
		OnUpdate(updated, inserted []*model.Transaction, block *model.Block)
	}
	// TransactionListener is notified for every newly classified wallet transaction.
	TransactionListener interface {
		OnReceive(tx *model.FullTransaction)
	}

	ProcessorMetrics interface {
		ObserveProcessReceived(err error, inserted, updated int, started time.Time)
		ObserveProcessCreated(err error, started time.Time)
		ObserveFilterExpired()
	}
	BuilderMetrics interface {
		ObserveBuild(kind string, err error, started time.Time)
	}
)
