package bitcoin

import "errors"

var (
	// ErrUnsupportedAddress is returned for address kinds the wallet cannot pay to.
	ErrUnsupportedAddress = errors.New("unsupported address")
	// ErrWrongNetwork is returned for an address encoded for another network.
	ErrWrongNetwork = errors.New("address is for another network")
	// ErrNoPrivateKey is returned when the signer has no key for an input.
	ErrNoPrivateKey = errors.New("no private key")
	// ErrInputIndex is returned for a signing index outside the inputs.
	ErrInputIndex = errors.New("input index out of range")
	// ErrNoRedeemScript is returned when a script hash output is signed without its redeem script.
	ErrNoRedeemScript = errors.New("no redeem script")
	// ErrUnsupportedScript is returned for outputs the signer cannot produce a signature for.
	ErrUnsupportedScript = errors.New("unsupported script type")
	// ErrInvalidPaymentAddress is returned for a malformed payment URI.
	ErrInvalidPaymentAddress = errors.New("invalid payment address")
)
