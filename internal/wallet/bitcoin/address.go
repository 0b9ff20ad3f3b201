package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

// AddressConverter decodes and encodes addresses of one network.
type AddressConverter struct {
	params *chaincfg.Params
}

// NewAddressConverter initializes a converter for network.
func NewAddressConverter(network model.Network) (*AddressConverter, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &AddressConverter{params: params}, nil
}

// Convert decodes an encoded address.
func (c *AddressConverter) Convert(address string) (model.Address, error) {
	decoded, err := btcutil.DecodeAddress(address, c.params)
	if err != nil {
		return model.Address{}, fmt.Errorf("decode %q: %w", address, err)
	}
	if !decoded.IsForNet(c.params) {
		return model.Address{}, fmt.Errorf("%w: %s", ErrWrongNetwork, address)
	}

	result := model.Address{Encoded: decoded.EncodeAddress()}
	switch a := decoded.(type) {
	case *btcutil.AddressPubKeyHash:
		result.ScriptType = model.ScriptP2PKH
		result.KeyHash = a.Hash160()[:]
	case *btcutil.AddressScriptHash:
		result.ScriptType = model.ScriptP2SH
		result.KeyHash = a.Hash160()[:]
	case *btcutil.AddressWitnessPubKeyHash:
		result.ScriptType = model.ScriptP2WPKH
		result.KeyHash = a.WitnessProgram()
	case *btcutil.AddressWitnessScriptHash:
		result.ScriptType = model.ScriptP2WSH
		result.KeyHash = a.WitnessProgram()
	case *btcutil.AddressPubKey:
		result.ScriptType = model.ScriptP2PK
		result.KeyHash = a.AddressPubKeyHash().Hash160()[:]
		result.Encoded = a.String()
	default:
		return model.Address{}, fmt.Errorf("%w: %T", ErrUnsupportedAddress, decoded)
	}
	return result, nil
}

// ConvertKeyHash encodes keyHash as an address of scriptType. For ScriptP2WPKHSH the
// hash is the script hash of the nested witness program.
func (c *AddressConverter) ConvertKeyHash(keyHash []byte, scriptType model.ScriptType) (model.Address, error) {
	var (
		address btcutil.Address
		err     error
	)
	switch scriptType {
	case model.ScriptP2PKH:
		address, err = btcutil.NewAddressPubKeyHash(keyHash, c.params)
	case model.ScriptP2SH, model.ScriptP2WPKHSH:
		address, err = btcutil.NewAddressScriptHashFromHash(keyHash, c.params)
	case model.ScriptP2WPKH:
		address, err = btcutil.NewAddressWitnessPubKeyHash(keyHash, c.params)
	case model.ScriptP2WSH:
		address, err = btcutil.NewAddressWitnessScriptHash(keyHash, c.params)
	default:
		return model.Address{}, fmt.Errorf("%w: %s", ErrUnsupportedAddress, scriptType)
	}
	if err != nil {
		return model.Address{}, fmt.Errorf("encode %s key hash: %w", scriptType, err)
	}

	return model.Address{
		Encoded:    address.EncodeAddress(),
		KeyHash:    keyHash,
		ScriptType: scriptType,
	}, nil
}
