package transactions

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"go.uber.org/zap"
)

// placeholderSignatureSize is the upper bound of a DER signature with its sighash byte.
const placeholderSignatureSize = 72

// SignatureScriptFunc turns a signature and the signing public key into the unlocking
// script of an output whose layout only the caller knows.
type SignatureScriptFunc func(signature, publicKey []byte) []byte

// BuildSweepTransaction spends a single known output entirely to toAddress, bypassing
// coin selection. The fee is taken from the swept value.
//
// The fee counts the callback's signature script on top of the input size of the
// previous script type. For types whose input size already includes an unlocking
// script (P2PKH) the script is counted twice and the sweep overpays.
func (b *Builder) BuildSweepTransaction(
	ctx context.Context,
	unspent model.UnspentOutput,
	toAddress string,
	feeRate int64,
	sigScriptFn SignatureScriptFunc,
) (tx *model.FullTransaction, err error) {
	started := time.Now()
	defer func() {
		b.metrics.ObserveBuild(buildSweep, err, started)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	address, err := b.addressConverter.Convert(toAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAddressConversion, err)
	}

	var publicKey []byte
	if unspent.PublicKey != nil {
		publicKey = unspent.PublicKey.Raw
	}

	placeholder := sigScriptFn(make([]byte, placeholderSignatureSize), publicKey)
	size := b.sizeCalculator.TransactionSize(
		[]model.ScriptType{unspent.Output.ScriptType},
		[]model.ScriptType{address.ScriptType},
	)
	fee := (size + int64(len(placeholder))) * feeRate
	if fee >= unspent.Output.Value {
		return nil, fmt.Errorf("%w: fee %d, value %d", ErrFeeMoreThanValue, fee, unspent.Output.Value)
	}

	output, err := b.output(address, unspent.Output.Value-fee)
	if err != nil {
		return nil, err
	}

	tx = model.NewFullTransaction(&model.Transaction{
		Version: transactionVersion,
		Status:  model.StatusNew,
		IsMine:  true,
	}, nil, nil)

	input := newInput(unspent.Output)
	tx.Inputs = append(tx.Inputs, input)
	tx.AddOutput(output)

	inputsToSign := []model.InputToSign{{
		Input:                   input,
		PreviousOutput:          unspent.Output,
		PreviousOutputPublicKey: unspent.PublicKey,
	}}
	sigData, err := b.inputSigner.SigScriptData(tx, inputsToSign, tx.Outputs, 0)
	if err != nil {
		return nil, fmt.Errorf("sign input 0: %w", err)
	}
	if len(sigData) < 2 {
		return nil, fmt.Errorf("%w: got %d components", ErrNotEnoughSignatureData, len(sigData))
	}
	input.SignatureScript = sigScriptFn(sigData[0], sigData[1])

	if err := b.hash(tx); err != nil {
		return nil, err
	}

	b.logger.Debug("built sweep transaction",
		zap.Stringer("tx", tx.Header.Hash),
		zap.Stringer("from", unspent.Output.TransactionHash),
		zap.Int64("fee", fee),
	)
	return tx, nil
}
