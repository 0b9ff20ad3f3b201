package bitcoin

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

// Serializer maps wallet transactions to the wire format.
type Serializer struct{}

// NewSerializer returns a Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// MsgTx converts tx to its wire form.
func (s *Serializer) MsgTx(tx *model.FullTransaction) *wire.MsgTx {
	msg := wire.NewMsgTx(tx.Header.Version)
	msg.LockTime = tx.Header.LockTime

	for _, input := range tx.Inputs {
		outPoint := wire.NewOutPoint(&input.PreviousOutputTxHash, input.PreviousOutputIndex)
		txIn := wire.NewTxIn(outPoint, input.SignatureScript, input.WitnessData)
		txIn.Sequence = input.Sequence
		msg.AddTxIn(txIn)
	}
	for _, output := range tx.Outputs {
		msg.AddTxOut(wire.NewTxOut(output.Value, output.LockingScript))
	}
	return msg
}

// Hash returns the transaction id, which never covers witness data.
func (s *Serializer) Hash(tx *model.FullTransaction) (chainhash.Hash, error) {
	return s.MsgTx(tx).TxHash(), nil
}

// Serialize returns the raw transaction, with witness data when present.
func (s *Serializer) Serialize(tx *model.FullTransaction) ([]byte, error) {
	msg := s.MsgTx(tx)
	var buf bytes.Buffer
	buf.Grow(msg.SerializeSize())
	if err := msg.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize transaction %s: %w", msg.TxHash(), err)
	}
	return buf.Bytes(), nil
}

// Deserialize parses a raw transaction.
func (s *Serializer) Deserialize(raw []byte) (*model.FullTransaction, error) {
	var msg wire.MsgTx
	if err := msg.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("deserialize transaction: %w", err)
	}
	return s.FromMsgTx(&msg), nil
}

// FromMsgTx converts a wire transaction, classifying every output script.
func (s *Serializer) FromMsgTx(msg *wire.MsgTx) *model.FullTransaction {
	header := &model.Transaction{
		Hash:     msg.TxHash(),
		Version:  msg.Version,
		LockTime: msg.LockTime,
		Status:   model.StatusNew,
		SegWit:   msg.HasWitness(),
	}

	inputs := make([]*model.Input, 0, len(msg.TxIn))
	for _, txIn := range msg.TxIn {
		inputs = append(inputs, &model.Input{
			PreviousOutputTxHash: txIn.PreviousOutPoint.Hash,
			PreviousOutputIndex:  txIn.PreviousOutPoint.Index,
			SignatureScript:      txIn.SignatureScript,
			WitnessData:          txIn.Witness,
			Sequence:             txIn.Sequence,
		})
	}

	outputs := make([]*model.Output, 0, len(msg.TxOut))
	for i, txOut := range msg.TxOut {
		scriptType := ScriptTypeOf(txOut.PkScript)
		outputs = append(outputs, &model.Output{
			Value:         txOut.Value,
			Index:         uint32(i),
			LockingScript: txOut.PkScript,
			ScriptType:    scriptType,
			KeyHash:       keyHashOf(txOut.PkScript, scriptType),
		})
	}

	return model.NewFullTransaction(header, inputs, outputs)
}
