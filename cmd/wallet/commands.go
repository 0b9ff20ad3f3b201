package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/workerpool"
	"go.uber.org/zap"
)

type importCommand struct {
	app *app

	TxIDs     []string `long:"txid" description:"transaction id to import; repeat for a batch" required:"true"`
	BlockHash string   `long:"block-hash" description:"hash of the block containing the transactions; omit for mempool"`
	Height    int32    `long:"height" description:"height of the containing block"`
	BlockTime int64    `long:"block-time" description:"unix timestamp of the containing block"`
	Workers   int      `long:"workers" description:"concurrent transaction fetches" default:"4"`
	RPS       int      `long:"rps" description:"node requests per second, 0 for no limit" default:"20"`
}

func (c *importCommand) Execute([]string) error {
	ctx := c.app.ctx
	hashes := make([]*chainhash.Hash, 0, len(c.TxIDs))
	for _, txid := range c.TxIDs {
		hash, err := chainhash.NewHashFromStr(txid)
		if err != nil {
			return fmt.Errorf("parse txid %q: %w", txid, err)
		}
		hashes = append(hashes, hash)
	}

	var block *model.Block
	if c.BlockHash != "" {
		blockHash, err := chainhash.NewHashFromStr(c.BlockHash)
		if err != nil {
			return fmt.Errorf("parse block hash: %w", err)
		}
		block = &model.Block{HeaderHash: *blockHash, Height: c.Height, Timestamp: c.BlockTime}
	}

	w, err := openWallet(ctx, c.app.options, c.app.logger)
	if err != nil {
		return err
	}
	defer w.Close()

	txs, err := workerpool.Map(ctx, c.Workers, c.RPS, hashes, func(_ context.Context, hash *chainhash.Hash) (*model.FullTransaction, error) {
		raw, err := w.rpc.GetRawTransaction(hash)
		if err != nil {
			return nil, fmt.Errorf("fetch transaction %s: %w", hash, err)
		}
		return w.serializer.FromMsgTx(raw.MsgTx()), nil
	})
	if err != nil {
		return err
	}

	result, err := w.processor.ProcessReceived(ctx, txs, block, false)
	if err != nil {
		return err
	}
	w.logger.Info("transactions imported",
		zap.Int("requested", len(txs)),
		zap.Int("inserted", len(result.Inserted)),
		zap.Int("updated", len(result.Updated)),
		zap.Bool("filter_expired", result.FilterExpired),
	)
	return nil
}

type paymentOptions struct {
	To         string `long:"to" description:"destination address or bitcoin: URI" required:"true"`
	Value      uint64 `long:"value" description:"amount in satoshi; defaults to the URI amount"`
	FeeRate    uint64 `long:"fee-rate" description:"fee rate in satoshi per vbyte" default:"1"`
	SenderPay  bool   `long:"sender-pay" description:"add the fee on top of value instead of deducting it"`
	ChangeType string `long:"change-type" description:"script type of the change output" default:"p2pkh" choice:"p2pkh" choice:"p2wpkh" choice:"p2wpkh-sh"`
}

type payment struct {
	to         string
	value      int64
	feeRate    int64
	changeType model.ScriptType
}

func (o paymentOptions) parse() (payment, error) {
	request, err := bitcoin.ParsePaymentAddress(o.To)
	if err != nil {
		return payment{}, err
	}
	p := payment{to: request.Address, value: int64(request.Amount)}
	if o.Value > 0 {
		if p.value, err = safe.Int64(o.Value); err != nil {
			return payment{}, fmt.Errorf("value: %w", err)
		}
	}
	if p.value <= 0 {
		return payment{}, errors.New("value is required when the address carries no amount")
	}
	if p.feeRate, err = safe.Int64(o.FeeRate); err != nil {
		return payment{}, fmt.Errorf("fee rate: %w", err)
	}
	if p.changeType, err = model.ParseScriptType(o.ChangeType); err != nil {
		return payment{}, err
	}
	return p, nil
}

type feeCommand struct {
	app *app
	paymentOptions
}

func (c *feeCommand) Execute([]string) error {
	p, err := c.parse()
	if err != nil {
		return err
	}

	w, err := openWallet(c.app.ctx, c.app.options, c.app.logger)
	if err != nil {
		return err
	}
	defer w.Close()

	fee, err := w.builder.Fee(c.app.ctx, p.value, p.feeRate, c.SenderPay, p.to, p.changeType)
	if err != nil {
		return err
	}
	fmt.Println(fee)
	return nil
}

type sendCommand struct {
	app *app
	paymentOptions

	Broadcast bool `long:"broadcast" description:"send the transaction to the node"`
}

func (c *sendCommand) Execute([]string) error {
	p, err := c.parse()
	if err != nil {
		return err
	}

	w, err := openWallet(c.app.ctx, c.app.options, c.app.logger)
	if err != nil {
		return err
	}
	defer w.Close()

	tx, err := w.builder.BuildTransaction(c.app.ctx, p.value, p.feeRate, c.SenderPay, p.to, p.changeType)
	if err != nil {
		return err
	}
	return w.finish(c.app, tx, c.Broadcast)
}

type sweepCommand struct {
	app *app

	Outpoint  string `long:"outpoint" description:"output to sweep as txid:index" required:"true"`
	To        string `long:"to" description:"destination address or bitcoin: URI" required:"true"`
	FeeRate   uint64 `long:"fee-rate" description:"fee rate in satoshi per vbyte" default:"1"`
	Broadcast bool   `long:"broadcast" description:"send the transaction to the node"`
}

func (c *sweepCommand) Execute([]string) error {
	hash, index, err := parseOutpoint(c.Outpoint)
	if err != nil {
		return err
	}
	feeRate, err := safe.Int64(c.FeeRate)
	if err != nil {
		return fmt.Errorf("fee rate: %w", err)
	}
	request, err := bitcoin.ParsePaymentAddress(c.To)
	if err != nil {
		return err
	}

	w, err := openWallet(c.app.ctx, c.app.options, c.app.logger)
	if err != nil {
		return err
	}
	defer w.Close()

	raw, err := w.rpc.GetRawTransaction(hash)
	if err != nil {
		return fmt.Errorf("fetch transaction %s: %w", hash, err)
	}
	previous := w.serializer.FromMsgTx(raw.MsgTx())
	if int(index) >= len(previous.Outputs) {
		return fmt.Errorf("transaction %s has no output %d", hash, index)
	}
	w.outputs.Extract(previous)

	output := previous.Outputs[index]
	if !output.IsMine() {
		return fmt.Errorf("output %s:%d does not pay to the wallet key", hash, index)
	}
	if output.ScriptType != model.ScriptP2PKH {
		return fmt.Errorf("output %s:%d is %s, only p2pkh outputs can be swept", hash, index, output.ScriptType)
	}

	unspent := model.UnspentOutput{Output: output, PublicKey: w.publicKey, Transaction: previous.Header}
	tx, err := w.builder.BuildSweepTransaction(c.app.ctx, unspent, request.Address, feeRate, p2pkhSignatureScript)
	if err != nil {
		return err
	}
	return w.finish(c.app, tx, c.Broadcast)
}

func (w *wallet) finish(a *app, tx *model.FullTransaction, broadcast bool) error {
	encoded, err := w.rawHex(tx)
	if err != nil {
		return err
	}
	fmt.Println(encoded)

	if !broadcast {
		return nil
	}
	if err := w.broadcast(a.ctx, tx); err != nil {
		return err
	}
	w.logger.Info("transaction broadcast", zap.Stringer("tx", tx.Header.Hash))
	return nil
}

// p2pkhSignatureScript unlocks a pay-to-pubkey-hash output.
func p2pkhSignatureScript(signature, publicKey []byte) []byte {
	return append(bitcoin.PushData(signature), bitcoin.PushData(publicKey)...)
}

func parseOutpoint(s string) (*chainhash.Hash, uint32, error) {
	txid, rawIndex, ok := strings.Cut(s, ":")
	if !ok {
		return nil, 0, errors.New("outpoint must be txid:index")
	}
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, 0, fmt.Errorf("parse outpoint txid: %w", err)
	}
	index, err := strconv.ParseUint(rawIndex, 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("parse outpoint index: %w", err)
	}
	narrowed, err := safe.Uint32(index)
	if err != nil {
		return nil, 0, fmt.Errorf("outpoint index: %w", err)
	}
	return hash, narrowed, nil
}
