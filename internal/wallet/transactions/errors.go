package transactions

import "errors"

var (
	// ErrTransactionAlreadyExists is returned when a locally created transaction is already stored.
	ErrTransactionAlreadyExists = errors.New("transaction already exists")

	// ErrNoChangeAddress is returned when the key manager has no unused key for change.
	ErrNoChangeAddress = errors.New("no change address")

	// ErrFeeMoreThanValue is returned when a spend cannot cover its own fee.
	ErrFeeMoreThanValue = errors.New("fee more than value")

	// ErrAddressConversion is returned when the destination address cannot be decoded.
	ErrAddressConversion = errors.New("address conversion")

	// ErrNotEnoughSignatureData is returned when the signer returns fewer components than the unlocking script needs.
	ErrNotEnoughSignatureData = errors.New("not enough signature data")

	// ErrNoPreviousOutputPublicKey is returned when a nested witness input has no owning key.
	ErrNoPreviousOutputPublicKey = errors.New("no previous output public key")

	// ErrNoRedeemScript is returned when a script hash input has no redeem script to reveal.
	ErrNoRedeemScript = errors.New("no redeem script")
)
