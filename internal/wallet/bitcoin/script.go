package bitcoin

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

// ScriptBuilder produces locking scripts for addresses of one network.
type ScriptBuilder struct {
	params *chaincfg.Params
}

// NewScriptBuilder initializes a builder for network.
func NewScriptBuilder(network model.Network) (*ScriptBuilder, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &ScriptBuilder{params: params}, nil
}

// LockingScript returns the output script paying to address. P2PK addresses are
// encoded as the hex public key.
func (b *ScriptBuilder) LockingScript(address model.Address) ([]byte, error) {
	decoded, err := btcutil.DecodeAddress(address.Encoded, b.params)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", address.Encoded, err)
	}
	script, err := txscript.PayToAddrScript(decoded)
	if err != nil {
		return nil, fmt.Errorf("pay to %q: %w", address.Encoded, err)
	}
	return script, nil
}

// ScriptTypeOf classifies a locking script. Nested witness outputs look like
// plain script hash outputs until the owning key is known.
func ScriptTypeOf(script []byte) model.ScriptType {
	switch txscript.GetScriptClass(script) {
	case txscript.PubKeyHashTy:
		return model.ScriptP2PKH
	case txscript.PubKeyTy:
		return model.ScriptP2PK
	case txscript.MultiSigTy:
		return model.ScriptP2MultiSig
	case txscript.ScriptHashTy:
		return model.ScriptP2SH
	case txscript.WitnessV0PubKeyHashTy:
		return model.ScriptP2WPKH
	case txscript.WitnessV0ScriptHashTy:
		return model.ScriptP2WSH
	case txscript.NullDataTy:
		return model.ScriptNullData
	default:
		return model.ScriptUnknown
	}
}

// keyHashOf returns the hash a locking script commits to: the key hash, the script
// hash or the witness program. For P2PK it is the HASH160 of the public key.
func keyHashOf(script []byte, scriptType model.ScriptType) []byte {
	switch scriptType {
	case model.ScriptP2PKH:
		return script[3:23]
	case model.ScriptP2SH, model.ScriptP2WPKHSH:
		return script[2:22]
	case model.ScriptP2WPKH:
		return script[2:22]
	case model.ScriptP2WSH:
		return script[2:34]
	case model.ScriptP2PK:
		return btcutil.Hash160(script[1 : len(script)-1])
	default:
		return nil
	}
}

// nestedWitnessScript is the redeem script of a P2WPKH program nested in P2SH.
func nestedWitnessScript(keyHash []byte) []byte {
	script := make([]byte, 0, 2+len(keyHash))
	script = append(script, txscript.OP_0, txscript.OP_DATA_20)
	return append(script, keyHash...)
}

// PushData prefixes data with the smallest push opcode able to carry it. Unlike
// minimal script pushes, small single byte values are never turned into OP_N.
func PushData(data []byte) []byte {
	n := len(data)
	var prefix []byte
	switch {
	case n <= txscript.OP_DATA_75:
		prefix = []byte{byte(n)}
	case n <= 0xff:
		prefix = []byte{txscript.OP_PUSHDATA1, byte(n)}
	case n <= 0xffff:
		prefix = make([]byte, 3)
		prefix[0] = txscript.OP_PUSHDATA2
		binary.LittleEndian.PutUint16(prefix[1:], uint16(n))
	default:
		prefix = make([]byte, 5)
		prefix[0] = txscript.OP_PUSHDATA4
		binary.LittleEndian.PutUint32(prefix[1:], uint32(n))
	}
	return append(prefix, data...)
}
