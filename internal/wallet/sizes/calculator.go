// Package sizes estimates serialized transaction sizes in virtual bytes.
package sizes

import (
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/wallet/txsizes"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

const (
	// outpoint, script length and sequence of an input with an empty signature script.
	emptyInputSize = 32 + 4 + 1 + 4

	// push of a DER signature with the sighash byte.
	redeemP2PKSigScriptSize = 1 + 73

	p2pkPkScriptSize  = 1 + 33 + 1
	p2shPkScriptSize  = 1 + 1 + 20 + 1
	p2wshPkScriptSize = 1 + 1 + 32

	// nulldata outputs are priced for an OP_RETURN with an 80 byte push.
	nullDataPkScriptSize = 1 + 2 + 80

	// version and lock time.
	txOverhead = 4 + 4
	// segwit marker and flag, in weight units.
	witnessHeaderWeight = 2
)

// Calculator sizes inputs, outputs and whole transactions per script type. Sizes
// for script types whose unlocking data is unknown cover only the fixed part.
type Calculator struct{}

// NewCalculator returns a Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// InputSize returns the non-witness size of an input spending scriptType.
func (c *Calculator) InputSize(scriptType model.ScriptType) int64 {
	switch scriptType {
	case model.ScriptP2PKH:
		return txsizes.RedeemP2PKHInputSize
	case model.ScriptP2PK:
		return 32 + 4 + 1 + redeemP2PKSigScriptSize + 4
	case model.ScriptP2WPKH:
		return txsizes.RedeemP2WPKHInputSize
	case model.ScriptP2WPKHSH:
		return txsizes.RedeemNestedP2WPKHInputSize
	default:
		return emptyInputSize
	}
}

// WitnessSize returns the witness weight of an input spending scriptType.
func (c *Calculator) WitnessSize(scriptType model.ScriptType) int64 {
	switch scriptType {
	case model.ScriptP2WPKH, model.ScriptP2WPKHSH:
		return txsizes.RedeemP2WPKHInputWitnessWeight
	default:
		return 0
	}
}

// OutputSize returns the size of an output locked with scriptType.
func (c *Calculator) OutputSize(scriptType model.ScriptType) int64 {
	scriptSize := pkScriptSize(scriptType)
	return 8 + int64(wire.VarIntSerializeSize(uint64(scriptSize))) + scriptSize
}

// TransactionSize returns the virtual size of a transaction with the given inputs
// and outputs.
func (c *Calculator) TransactionSize(inputs, outputs []model.ScriptType) int64 {
	size := int64(txOverhead)
	size += int64(wire.VarIntSerializeSize(uint64(len(inputs))))
	size += int64(wire.VarIntSerializeSize(uint64(len(outputs))))

	segWit := false
	for _, input := range inputs {
		size += c.InputSize(input)
		if input.IsWitness() {
			segWit = true
		}
	}
	for _, output := range outputs {
		size += c.OutputSize(output)
	}
	if !segWit {
		return size
	}

	weight := int64(witnessHeaderWeight)
	for _, input := range inputs {
		if w := c.WitnessSize(input); w > 0 {
			weight += w
			continue
		}
		// empty witness stack
		weight++
	}
	return size + (weight+blockchain.WitnessScaleFactor-1)/blockchain.WitnessScaleFactor
}

func pkScriptSize(scriptType model.ScriptType) int64 {
	switch scriptType {
	case model.ScriptP2PKH:
		return txsizes.P2PKHPkScriptSize
	case model.ScriptP2PK:
		return p2pkPkScriptSize
	case model.ScriptP2SH, model.ScriptP2WPKHSH:
		return p2shPkScriptSize
	case model.ScriptP2WPKH:
		return txsizes.P2WPKHPkScriptSize
	case model.ScriptP2WSH:
		return p2wshPkScriptSize
	case model.ScriptNullData:
		return nullDataPkScriptSize
	default:
		return txsizes.P2PKHPkScriptSize
	}
}
