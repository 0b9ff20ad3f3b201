package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

// InputSigner signs inputs with SIGHASH_ALL using keys from a PrivateKeyStore.
type InputSigner struct {
	keys       PrivateKeyStore
	serializer *Serializer
}

// NewInputSigner builds an InputSigner over keys.
func NewInputSigner(keys PrivateKeyStore) *InputSigner {
	return &InputSigner{keys: keys, serializer: NewSerializer()}
}

// SigScriptData signs input index of tx. It returns the signature followed by the
// compressed public key, or only the signature for P2PK outputs. P2SH and P2WSH outputs
// are signed over their RedeemScript; assembling the unlocking data around the
// signature is left to the caller.
func (s *InputSigner) SigScriptData(
	tx *model.FullTransaction,
	inputsToSign []model.InputToSign,
	outputs []*model.Output,
	index int,
) ([][]byte, error) {
	if index < 0 || index >= len(inputsToSign) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInputIndex, index, len(inputsToSign))
	}
	inputToSign := inputsToSign[index]
	publicKey := inputToSign.PreviousOutputPublicKey
	if publicKey == nil {
		return nil, fmt.Errorf("%w: input %d has no public key", ErrNoPrivateKey, index)
	}
	key, ok := s.keys.PrivateKey(publicKey.Path)
	if !ok {
		return nil, fmt.Errorf("%w: path %s", ErrNoPrivateKey, publicKey.Path)
	}

	msg := s.serializer.MsgTx(&model.FullTransaction{Header: tx.Header, Inputs: tx.Inputs, Outputs: outputs})
	previous := inputToSign.PreviousOutput

	switch previous.ScriptType {
	case model.ScriptP2WPKH, model.ScriptP2WPKHSH, model.ScriptP2WSH:
		script := previous.LockingScript
		switch previous.ScriptType {
		case model.ScriptP2WPKHSH:
			script = nestedWitnessScript(publicKey.KeyHash)
		case model.ScriptP2WSH:
			if len(previous.RedeemScript) == 0 {
				return nil, fmt.Errorf("%w: input %d", ErrNoRedeemScript, index)
			}
			script = previous.RedeemScript
		}

		fetcher := txscript.NewMultiPrevOutFetcher(nil)
		for _, its := range inputsToSign {
			outPoint := wire.NewOutPoint(&its.Input.PreviousOutputTxHash, its.Input.PreviousOutputIndex)
			fetcher.AddPrevOut(*outPoint, wire.NewTxOut(its.PreviousOutput.Value, its.PreviousOutput.LockingScript))
		}
		sigHashes := txscript.NewTxSigHashes(msg, fetcher)

		sig, err := txscript.RawTxInWitnessSignature(msg, sigHashes, index, previous.Value, script, txscript.SigHashAll, key)
		if err != nil {
			return nil, fmt.Errorf("witness signature for input %d: %w", index, err)
		}
		return [][]byte{sig, publicKey.Raw}, nil
	case model.ScriptP2PK:
		sig, err := txscript.RawTxInSignature(msg, index, previous.LockingScript, txscript.SigHashAll, key)
		if err != nil {
			return nil, fmt.Errorf("signature for input %d: %w", index, err)
		}
		return [][]byte{sig}, nil
	case model.ScriptP2PKH, model.ScriptP2MultiSig, model.ScriptP2SH:
		script := previous.LockingScript
		if previous.ScriptType == model.ScriptP2SH {
			if len(previous.RedeemScript) == 0 {
				return nil, fmt.Errorf("%w: input %d", ErrNoRedeemScript, index)
			}
			script = previous.RedeemScript
		}
		sig, err := txscript.RawTxInSignature(msg, index, script, txscript.SigHashAll, key)
		if err != nil {
			return nil, fmt.Errorf("signature for input %d: %w", index, err)
		}
		return [][]byte{sig, publicKey.Raw}, nil
	default:
		return nil, fmt.Errorf("%w: input %d is %s", ErrUnsupportedScript, index, previous.ScriptType)
	}
}
