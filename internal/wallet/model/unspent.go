package model

// PublicKey is a wallet-owned key.
type PublicKey struct {
	Path                string
	Raw                 []byte
	KeyHash             []byte
	ScriptHashForP2WPKH []byte
}

// UnspentOutput is a spendable coin. A nil BlockHeight means unconfirmed.
type UnspentOutput struct {
	Output      *Output
	PublicKey   *PublicKey
	Transaction *Transaction
	BlockHeight *int32
}

// SelectedUnspentOutputInfo is the result of coin selection.
type SelectedUnspentOutputInfo struct {
	UnspentOutputs  []UnspentOutput
	TotalValue      int64
	Fee             int64
	AddChangeOutput bool
}

// InputToSign pairs an input skeleton with the output it redeems and the key that signs it.
type InputToSign struct {
	Input                   *Input
	PreviousOutput          *Output
	PreviousOutputPublicKey *PublicKey
}
