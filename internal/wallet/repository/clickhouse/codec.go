package clickhouse

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/safe"
)

const transactionColumns = `
	hash,
	version,
	lock_time,
	status,
	is_mine,
	is_outgoing,
	block_hash,
	timestamp,
	tx_order,
	segwit`

// transactionRow mirrors a wallet_transactions row.
type transactionRow struct {
	Hash       string
	Version    int32
	LockTime   uint32
	Status     uint8
	IsMine     bool
	IsOutgoing bool
	BlockHash  *string
	Timestamp  int64
	Order      int32
	SegWit     bool
}

func (row *transactionRow) dest() []any {
	return []any{
		&row.Hash,
		&row.Version,
		&row.LockTime,
		&row.Status,
		&row.IsMine,
		&row.IsOutgoing,
		&row.BlockHash,
		&row.Timestamp,
		&row.Order,
		&row.SegWit,
	}
}

func (row *transactionRow) model() (*model.Transaction, error) {
	hash, err := chainhash.NewHashFromStr(row.Hash)
	if err != nil {
		return nil, fmt.Errorf("parse hash %q: %w", row.Hash, err)
	}
	tx := &model.Transaction{
		Hash:       *hash,
		Version:    row.Version,
		LockTime:   row.LockTime,
		Status:     model.TransactionStatus(row.Status),
		IsMine:     row.IsMine,
		IsOutgoing: row.IsOutgoing,
		Timestamp:  row.Timestamp,
		Order:      int(row.Order),
		SegWit:     row.SegWit,
	}
	if row.BlockHash != nil {
		blockHash, err := chainhash.NewHashFromStr(*row.BlockHash)
		if err != nil {
			return nil, fmt.Errorf("parse block hash %q: %w", *row.BlockHash, err)
		}
		tx.BlockHash = blockHash
	}
	return tx, nil
}

func transactionValues(tx *model.Transaction) ([]any, error) {
	order, err := safe.Int32(tx.Order)
	if err != nil {
		return nil, fmt.Errorf("transaction order: %w", err)
	}
	var blockHash *string
	if tx.BlockHash != nil {
		encoded := tx.BlockHash.String()
		blockHash = &encoded
	}
	return []any{
		tx.Hash.String(),
		tx.Version,
		tx.LockTime,
		uint8(tx.Status),
		tx.IsMine,
		tx.IsOutgoing,
		blockHash,
		tx.Timestamp,
		order,
		tx.SegWit,
	}, nil
}

const outputColumns = `
	tx_hash,
	output_index,
	value,
	locking_script,
	script_type,
	address,
	key_hash,
	public_key_path,
	redeem_script`

// outputRow mirrors a wallet_outputs row.
type outputRow struct {
	TxHash        string
	Index         uint32
	Value         int64
	LockingScript string
	ScriptType    uint8
	Address       string
	KeyHash       string
	PublicKeyPath string
	RedeemScript  string
}

func (row *outputRow) dest() []any {
	return []any{
		&row.TxHash,
		&row.Index,
		&row.Value,
		&row.LockingScript,
		&row.ScriptType,
		&row.Address,
		&row.KeyHash,
		&row.PublicKeyPath,
		&row.RedeemScript,
	}
}

func (row *outputRow) model() (*model.Output, error) {
	hash, err := chainhash.NewHashFromStr(row.TxHash)
	if err != nil {
		return nil, fmt.Errorf("parse output tx hash %q: %w", row.TxHash, err)
	}
	script, err := hex.DecodeString(row.LockingScript)
	if err != nil {
		return nil, fmt.Errorf("decode locking script: %w", err)
	}
	keyHash, err := hex.DecodeString(row.KeyHash)
	if err != nil {
		return nil, fmt.Errorf("decode key hash: %w", err)
	}
	if len(keyHash) == 0 {
		keyHash = nil
	}
	redeemScript, err := hex.DecodeString(row.RedeemScript)
	if err != nil {
		return nil, fmt.Errorf("decode redeem script: %w", err)
	}
	if len(redeemScript) == 0 {
		redeemScript = nil
	}
	return &model.Output{
		Value:           row.Value,
		Index:           row.Index,
		LockingScript:   script,
		ScriptType:      model.ScriptType(row.ScriptType),
		Address:         row.Address,
		KeyHash:         keyHash,
		PublicKeyPath:   row.PublicKeyPath,
		RedeemScript:    redeemScript,
		TransactionHash: *hash,
	}, nil
}
