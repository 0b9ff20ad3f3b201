// Package model defines domain models of the wallet transaction engine.
package model

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// TransactionStatus describes the relay state of a wallet transaction.
type TransactionStatus int

const (
	// StatusNew marks a transaction that was just built or received and not yet seen relayed.
	StatusNew TransactionStatus = iota
	// StatusRelayed marks a transaction seen in a block or accepted by the network.
	StatusRelayed
	// StatusInvalid marks a transaction rejected by external validation.
	StatusInvalid
)

func (s TransactionStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusRelayed:
		return "relayed"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Transaction is the header of a wallet transaction. Relay fields (Status, BlockHash,
// Timestamp, Order) are mutated only by the transaction processor.
type Transaction struct {
	Hash       chainhash.Hash
	Version    int32
	LockTime   uint32
	Status     TransactionStatus
	IsMine     bool
	IsOutgoing bool
	BlockHash  *chainhash.Hash
	Timestamp  int64
	Order      int
	SegWit     bool
}

// Input spends a previous output.
type Input struct {
	PreviousOutputTxHash chainhash.Hash
	PreviousOutputIndex  uint32
	SignatureScript      []byte
	WitnessData          [][]byte
	Sequence             uint32

	// KeyHash and Address are filled by the input extractor.
	KeyHash []byte
	Address string
}

// Output is a transaction output. PublicKeyPath is set by the output extractor when the
// output pays to a wallet-owned key. RedeemScript is the script a P2SH or P2WSH output
// commits to; signing such an output needs it.
type Output struct {
	Value           int64
	Index           uint32
	LockingScript   []byte
	ScriptType      ScriptType
	Address         string
	KeyHash         []byte
	PublicKeyPath   string
	RedeemScript    []byte
	TransactionHash chainhash.Hash
}

// IsMine reports whether the output was recognized as wallet-owned.
func (o *Output) IsMine() bool {
	return o.PublicKeyPath != ""
}

// FullTransaction groups a transaction header with its inputs and outputs.
type FullTransaction struct {
	Header  *Transaction
	Inputs  []*Input
	Outputs []*Output
}

// NewFullTransaction builds a FullTransaction and stamps every output with the header hash.
func NewFullTransaction(header *Transaction, inputs []*Input, outputs []*Output) *FullTransaction {
	tx := &FullTransaction{Header: header, Inputs: inputs, Outputs: outputs}
	tx.SetHash(header.Hash)
	return tx
}

// SetHash sets the content hash on the header and on every output.
func (t *FullTransaction) SetHash(hash chainhash.Hash) {
	t.Header.Hash = hash
	for _, output := range t.Outputs {
		output.TransactionHash = hash
	}
}

// AddOutput appends an output, assigning the next output index.
func (t *FullTransaction) AddOutput(output *Output) {
	output.Index = uint32(len(t.Outputs))
	output.TransactionHash = t.Header.Hash
	t.Outputs = append(t.Outputs, output)
}

// Block is the block reference transactions are relayed in.
type Block struct {
	HeaderHash      chainhash.Hash
	Height          int32
	Timestamp       int64
	HasTransactions bool
}
