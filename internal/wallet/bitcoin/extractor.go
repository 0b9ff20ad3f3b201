package bitcoin

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"go.uber.org/zap"
)

// OutputExtractor recognizes outputs paying to wallet keys.
type OutputExtractor struct {
	keys KeyStore
}

// NewOutputExtractor builds an OutputExtractor over keys.
func NewOutputExtractor(keys KeyStore) *OutputExtractor {
	return &OutputExtractor{keys: keys}
}

// Extract classifies every output, links owned ones to their key and marks tx as
// mine when at least one output is owned.
func (e *OutputExtractor) Extract(tx *model.FullTransaction) {
	for _, output := range tx.Outputs {
		if output.ScriptType == model.ScriptUnknown {
			output.ScriptType = ScriptTypeOf(output.LockingScript)
		}
		if output.KeyHash == nil {
			output.KeyHash = keyHashOf(output.LockingScript, output.ScriptType)
		}
		if output.KeyHash == nil {
			continue
		}

		var (
			publicKey *model.PublicKey
			ok        bool
		)
		switch output.ScriptType {
		case model.ScriptP2SH, model.ScriptP2WPKHSH:
			publicKey, ok = e.keys.PublicKeyByScriptHash(output.KeyHash)
			if ok {
				output.ScriptType = model.ScriptP2WPKHSH
			}
		case model.ScriptP2PKH, model.ScriptP2PK, model.ScriptP2WPKH:
			publicKey, ok = e.keys.PublicKeyByKeyHash(output.KeyHash)
		}
		if !ok {
			continue
		}

		output.KeyHash = publicKey.KeyHash
		output.PublicKeyPath = publicKey.Path
		tx.Header.IsMine = true
	}
}

// InputExtractor fills the signer key hash and address of standard inputs.
type InputExtractor struct {
	params *chaincfg.Params
	logger *zap.Logger
}

// NewInputExtractor initializes an extractor for network.
func NewInputExtractor(network model.Network, logger *zap.Logger) (*InputExtractor, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &InputExtractor{params: params, logger: logger.Named("inputExtractor")}, nil
}

// Extract inspects the unlocking data of every input. Inputs whose public key cannot
// be found are left untouched.
func (e *InputExtractor) Extract(tx *model.FullTransaction) {
	for i, input := range tx.Inputs {
		publicKey, scriptType := unlockingPublicKey(input)
		if publicKey == nil {
			continue
		}

		keyHash := btcutil.Hash160(publicKey)
		address, err := e.address(keyHash, scriptType)
		if err != nil {
			e.logger.Debug("input address",
				zap.Stringer("tx", tx.Header.Hash),
				zap.Int("input", i),
				zap.Error(err),
			)
			continue
		}
		input.KeyHash = keyHash
		input.Address = address.EncodeAddress()
	}
}

func (e *InputExtractor) address(keyHash []byte, scriptType model.ScriptType) (btcutil.Address, error) {
	switch scriptType {
	case model.ScriptP2WPKH:
		return btcutil.NewAddressWitnessPubKeyHash(keyHash, e.params)
	case model.ScriptP2WPKHSH:
		return btcutil.NewAddressScriptHash(nestedWitnessScript(keyHash), e.params)
	default:
		return btcutil.NewAddressPubKeyHash(keyHash, e.params)
	}
}

// unlockingPublicKey finds the public key revealed by a P2PKH, P2WPKH or nested
// P2WPKH spend.
func unlockingPublicKey(input *model.Input) ([]byte, model.ScriptType) {
	if len(input.WitnessData) == 2 && isPublicKey(input.WitnessData[1]) {
		if len(input.SignatureScript) > 0 {
			return input.WitnessData[1], model.ScriptP2WPKHSH
		}
		return input.WitnessData[1], model.ScriptP2WPKH
	}

	pushes, err := txscript.PushedData(input.SignatureScript)
	if err != nil || len(pushes) != 2 || !isPublicKey(pushes[1]) {
		return nil, model.ScriptUnknown
	}
	return pushes[1], model.ScriptP2PKH
}

func isPublicKey(data []byte) bool {
	switch len(data) {
	case secp256k1.PubKeyBytesLenCompressed, secp256k1.PubKeyBytesLenUncompressed:
		_, err := btcec.ParsePubKey(data)
		return err == nil
	default:
		return false
	}
}

// OutputAddressExtractor fills the encoded address of standard outputs.
type OutputAddressExtractor struct {
	params *chaincfg.Params
}

// NewOutputAddressExtractor initializes an extractor for network.
func NewOutputAddressExtractor(network model.Network) (*OutputAddressExtractor, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &OutputAddressExtractor{params: params}, nil
}

// ExtractOutputAddresses sets Address on outputs that have none yet.
func (e *OutputAddressExtractor) ExtractOutputAddresses(tx *model.FullTransaction) {
	for _, output := range tx.Outputs {
		if output.Address != "" {
			continue
		}
		_, addrs, _, err := txscript.ExtractPkScriptAddrs(output.LockingScript, e.params)
		if err != nil || len(addrs) != 1 {
			continue
		}
		output.Address = addrs[0].EncodeAddress()
	}
}
