// Package selector picks wallet coins to fund a payment.
package selector

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

var (
	// ErrEmptyOutputs is returned when the wallet has nothing to spend.
	ErrEmptyOutputs = errors.New("no spendable outputs")
	// ErrInsufficientFunds is returned when all spendable outputs cannot cover the payment.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidValue is returned for a non-positive payment value or fee rate.
	ErrInvalidValue = errors.New("invalid value")
)

// UnspentOutputSelector funds payments largest coin first, preferring confirmed
// coins. A change output is added only when the leftover is worth more than the
// cost of creating and later spending it.
type UnspentOutputSelector struct {
	provider UnspentOutputProvider
	sizes    SizeCalculator
}

// NewUnspentOutputSelector builds a selector over provider.
func NewUnspentOutputSelector(provider UnspentOutputProvider, sizes SizeCalculator) *UnspentOutputSelector {
	return &UnspentOutputSelector{provider: provider, sizes: sizes}
}

// Select returns the coins paying value to an output of outputType. With senderPay
// the fee comes on top of value, otherwise the recipient absorbs it.
func (s *UnspentOutputSelector) Select(
	ctx context.Context,
	value, feeRate int64,
	outputType, changeType model.ScriptType,
	senderPay bool,
) (model.SelectedUnspentOutputInfo, error) {
	if value <= 0 || feeRate < 0 {
		return model.SelectedUnspentOutputInfo{}, fmt.Errorf("%w: value %d, fee rate %d", ErrInvalidValue, value, feeRate)
	}

	unspent, err := s.provider.SpendableOutputs(ctx)
	if err != nil {
		return model.SelectedUnspentOutputInfo{}, fmt.Errorf("spendable outputs: %w", err)
	}
	if len(unspent) == 0 {
		return model.SelectedUnspentOutputInfo{}, ErrEmptyOutputs
	}
	unspent = ordered(unspent)

	var (
		selected   []model.UnspentOutput
		inputTypes []model.ScriptType
		total      int64
		fee        int64
		covered    bool
	)
	for _, u := range unspent {
		selected = append(selected, u)
		inputTypes = append(inputTypes, u.Output.ScriptType)
		total += u.Output.Value

		fee = s.sizes.TransactionSize(inputTypes, []model.ScriptType{outputType}) * feeRate
		if total >= required(value, fee, senderPay) {
			covered = true
			break
		}
	}
	if !covered {
		return model.SelectedUnspentOutputInfo{}, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, total, required(value, fee, senderPay))
	}

	info := model.SelectedUnspentOutputInfo{
		UnspentOutputs: selected,
		TotalValue:     total,
		Fee:            fee,
	}

	feeWithChange := s.sizes.TransactionSize(inputTypes, []model.ScriptType{outputType, changeType}) * feeRate
	change := total - value
	if senderPay {
		change -= feeWithChange
	}
	if change > s.dust(changeType, feeRate) {
		info.Fee = feeWithChange
		info.AddChangeOutput = true
	}
	return info, nil
}

// dust is what a change output of changeType costs to create now and spend later.
func (s *UnspentOutputSelector) dust(changeType model.ScriptType, feeRate int64) int64 {
	witness := (s.sizes.WitnessSize(changeType) + blockchain.WitnessScaleFactor - 1) / blockchain.WitnessScaleFactor
	return (s.sizes.InputSize(changeType) + witness + s.sizes.OutputSize(changeType)) * feeRate
}

func required(value, fee int64, senderPay bool) int64 {
	if senderPay {
		return value + fee
	}
	return value
}

// ordered puts confirmed coins first, larger values first within each group.
func ordered(unspent []model.UnspentOutput) []model.UnspentOutput {
	sorted := make([]model.UnspentOutput, len(unspent))
	copy(sorted, unspent)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].BlockHeight != nil, sorted[j].BlockHeight != nil
		if ci != cj {
			return ci
		}
		return sorted[i].Output.Value > sorted[j].Output.Value
	})
	return sorted
}
