package transactions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"go.uber.org/zap"
)

const (
	transactionVersion = 1

	buildStandard = "standard"
	buildFee      = "fee"
	buildSweep    = "sweep"
)

// Builder assembles and signs transactions that spend wallet coins.
type Builder struct {
	selector         UnspentOutputSelector
	addressManager   AddressManager
	addressConverter AddressConverter
	scriptBuilder    ScriptBuilder
	inputSigner      InputSigner
	sizeCalculator   SizeCalculator
	serializer       TransactionSerializer
	metrics          BuilderMetrics
	logger           *zap.Logger
}

// NewBuilder builds a Builder with dependencies.
func NewBuilder(
	selector UnspentOutputSelector,
	addressManager AddressManager,
	addressConverter AddressConverter,
	scriptBuilder ScriptBuilder,
	inputSigner InputSigner,
	sizeCalculator SizeCalculator,
	serializer TransactionSerializer,
	metrics BuilderMetrics,
	logger *zap.Logger,
) (*Builder, error) {
	if metrics == nil {
		return nil, errors.New("builder metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Builder{
		selector:         selector,
		addressManager:   addressManager,
		addressConverter: addressConverter,
		scriptBuilder:    scriptBuilder,
		inputSigner:      inputSigner,
		sizeCalculator:   sizeCalculator,
		serializer:       serializer,
		metrics:          metrics,
		logger:           logger.Named("transactionBuilder"),
	}, nil
}

type selection struct {
	address       model.Address
	info          model.SelectedUnspentOutputInfo
	receivedValue int64
}

// selectOutputs resolves the destination and asks the selector for coins. Fee and
// BuildTransaction both go through it so they always agree on the fee.
func (b *Builder) selectOutputs(
	ctx context.Context,
	value, feeRate int64,
	senderPay bool,
	toAddress string,
	changeType model.ScriptType,
) (selection, error) {
	address := model.Address{ScriptType: model.ScriptP2PKH}
	if toAddress != "" {
		converted, err := b.addressConverter.Convert(toAddress)
		if err != nil {
			return selection{}, fmt.Errorf("%w: %w", ErrAddressConversion, err)
		}
		address = converted
	}

	info, err := b.selector.Select(ctx, value, feeRate, address.ScriptType, changeType, senderPay)
	if err != nil {
		return selection{}, fmt.Errorf("select unspent outputs: %w", err)
	}

	received := value
	if !senderPay {
		if info.Fee >= value {
			return selection{}, fmt.Errorf("%w: fee %d, value %d", ErrFeeMoreThanValue, info.Fee, value)
		}
		received = value - info.Fee
	}

	return selection{address: address, info: info, receivedValue: received}, nil
}

// Fee returns the fee BuildTransaction would apply for the same arguments. An empty
// toAddress is priced as a P2PKH destination.
func (b *Builder) Fee(
	ctx context.Context,
	value, feeRate int64,
	senderPay bool,
	toAddress string,
	changeType model.ScriptType,
) (fee int64, err error) {
	started := time.Now()
	defer func() {
		b.metrics.ObserveBuild(buildFee, err, started)
	}()

	sel, err := b.selectOutputs(ctx, value, feeRate, senderPay, toAddress, changeType)
	if err != nil {
		return 0, err
	}
	return sel.info.Fee, nil
}

// BuildTransaction builds a signed transaction paying value to toAddress. When senderPay
// is false the recipient absorbs the fee, otherwise the change output does.
func (b *Builder) BuildTransaction(
	ctx context.Context,
	value, feeRate int64,
	senderPay bool,
	toAddress string,
	changeType model.ScriptType,
) (tx *model.FullTransaction, err error) {
	started := time.Now()
	defer func() {
		b.metrics.ObserveBuild(buildStandard, err, started)
	}()

	sel, err := b.selectOutputs(ctx, value, feeRate, senderPay, toAddress, changeType)
	if err != nil {
		return nil, err
	}

	destination, err := b.output(sel.address, sel.receivedValue)
	if err != nil {
		return nil, err
	}

	var change *model.Output
	if sel.info.AddChangeOutput {
		changeValue := sel.info.TotalValue - value
		if senderPay {
			changeValue -= sel.info.Fee
		}
		change, err = b.changeOutput(changeType, changeValue)
		if err != nil {
			return nil, err
		}
	}

	tx = model.NewFullTransaction(&model.Transaction{
		Version:    transactionVersion,
		Status:     model.StatusNew,
		IsMine:     true,
		IsOutgoing: true,
	}, nil, nil)

	inputsToSign := make([]model.InputToSign, 0, len(sel.info.UnspentOutputs))
	for _, unspent := range sel.info.UnspentOutputs {
		input := newInput(unspent.Output)
		tx.Inputs = append(tx.Inputs, input)
		inputsToSign = append(inputsToSign, model.InputToSign{
			Input:                   input,
			PreviousOutput:          unspent.Output,
			PreviousOutputPublicKey: unspent.PublicKey,
		})
	}

	tx.AddOutput(destination)
	if change != nil {
		tx.AddOutput(change)
	}

	for i, inputToSign := range inputsToSign {
		sigData, err := b.inputSigner.SigScriptData(tx, inputsToSign, tx.Outputs, i)
		if err != nil {
			return nil, fmt.Errorf("sign input %d: %w", i, err)
		}
		if err := setUnlockingData(inputToSign, sigData); err != nil {
			return nil, fmt.Errorf("sign input %d: %w", i, err)
		}
		if inputToSign.PreviousOutput.ScriptType.IsWitness() {
			tx.Header.SegWit = true
		}
	}

	if err := b.hash(tx); err != nil {
		return nil, err
	}

	b.logger.Debug("built transaction",
		zap.Stringer("tx", tx.Header.Hash),
		zap.Int("inputs", len(tx.Inputs)),
		zap.Int("outputs", len(tx.Outputs)),
		zap.Int64("fee", sel.info.Fee),
	)
	return tx, nil
}

func (b *Builder) output(address model.Address, value int64) (*model.Output, error) {
	lockingScript, err := b.scriptBuilder.LockingScript(address)
	if err != nil {
		return nil, fmt.Errorf("locking script for %s: %w", address, err)
	}

	return &model.Output{
		Value:         value,
		LockingScript: lockingScript,
		ScriptType:    address.ScriptType,
		Address:       address.Encoded,
		KeyHash:       address.KeyHash,
	}, nil
}

// changeOutput takes exactly one key from the address manager.
func (b *Builder) changeOutput(changeType model.ScriptType, value int64) (*model.Output, error) {
	publicKey, err := b.addressManager.ChangePublicKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoChangeAddress, err)
	}

	keyHash := publicKey.KeyHash
	if changeType == model.ScriptP2WPKHSH {
		keyHash = publicKey.ScriptHashForP2WPKH
	}
	address, err := b.addressConverter.ConvertKeyHash(keyHash, changeType)
	if err != nil {
		return nil, fmt.Errorf("change address: %w", err)
	}

	output, err := b.output(address, value)
	if err != nil {
		return nil, err
	}
	output.KeyHash = publicKey.KeyHash
	output.PublicKeyPath = publicKey.Path
	return output, nil
}

func (b *Builder) hash(tx *model.FullTransaction) error {
	hash, err := b.serializer.Hash(tx)
	if err != nil {
		return fmt.Errorf("hash transaction: %w", err)
	}
	tx.SetHash(hash)
	return nil
}

func newInput(previous *model.Output) *model.Input {
	return &model.Input{
		PreviousOutputTxHash: previous.TransactionHash,
		PreviousOutputIndex:  previous.Index,
		Sequence:             wire.MaxTxInSequenceNum,
	}
}

// setUnlockingData places signer output where the previous output's script type
// expects it: the witness stack for segwit outputs, the signature script otherwise.
// Script hash outputs get their redeem script as the last item.
func setUnlockingData(inputToSign model.InputToSign, sigData [][]byte) error {
	input := inputToSign.Input
	previous := inputToSign.PreviousOutput
	switch previous.ScriptType {
	case model.ScriptP2WPKH:
		input.WitnessData = sigData
	case model.ScriptP2WSH:
		if len(previous.RedeemScript) == 0 {
			return ErrNoRedeemScript
		}
		input.WitnessData = append(append([][]byte{}, sigData...), previous.RedeemScript)
	case model.ScriptP2WPKHSH:
		publicKey := inputToSign.PreviousOutputPublicKey
		if publicKey == nil {
			return ErrNoPreviousOutputPublicKey
		}
		redeemScript := make([]byte, 0, 2+len(publicKey.KeyHash))
		redeemScript = append(redeemScript, txscript.OP_0, txscript.OP_DATA_20)
		redeemScript = append(redeemScript, publicKey.KeyHash...)

		input.WitnessData = sigData
		input.SignatureScript = bitcoin.PushData(redeemScript)
	default:
		var script []byte
		for _, data := range sigData {
			script = append(script, bitcoin.PushData(data)...)
		}
		if previous.ScriptType == model.ScriptP2SH {
			if len(previous.RedeemScript) == 0 {
				return ErrNoRedeemScript
			}
			script = append(script, bitcoin.PushData(previous.RedeemScript)...)
		}
		input.SignatureScript = script
	}
	return nil
}
