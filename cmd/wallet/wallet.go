package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/metrics"
	rpcclient2 "github.com/goodnatureofminers/blockinsight7000-wallet/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/cache"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/repository/bolt"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/selector"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/sizes"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/transactions"
	"go.uber.org/zap"
)

const keyPath = "0/0/0"

type options struct {
	Network           model.Network `long:"network" env:"WALLET_NETWORK" description:"network name" default:"mainnet"`
	Storage           string        `long:"storage" env:"WALLET_STORAGE" description:"storage backend" default:"bolt" choice:"bolt" choice:"clickhouse"`
	DBPath            string        `long:"db-path" env:"WALLET_DB_PATH" description:"bbolt database path" default:"wallet.db"`
	ClickhouseDSN     string        `long:"clickhouse-dsn" env:"WALLET_CLICKHOUSE_DSN" description:"ClickHouse DSN for the clickhouse backend"`
	WIF               string        `long:"wif" env:"WALLET_WIF" description:"wallet private key in WIF" required:"true"`
	RPCURL            string        `long:"rpc-url" env:"WALLET_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser           string        `long:"rpc-user" env:"WALLET_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword       string        `long:"rpc-password" env:"WALLET_RPC_PASSWORD" description:"Bitcoin RPC password"`
	BroadcastAttempts int           `long:"broadcast-attempts" env:"WALLET_BROADCAST_ATTEMPTS" description:"send attempts before giving up" default:"3"`
	BroadcastBackoff  time.Duration `long:"broadcast-backoff" env:"WALLET_BROADCAST_BACKOFF" description:"pause between send attempts" default:"2s"`
}

type walletStore interface {
	transactions.Storage
	OwnedOutputs(ctx context.Context) ([]*model.Output, error)
	UnspentOutputs(ctx context.Context) ([]model.UnspentOutput, error)
	Close() error
}

func openStore(opts options) (walletStore, error) {
	switch opts.Storage {
	case "clickhouse":
		return clickhouse.NewRepository(opts.ClickhouseDSN, metrics.NewRepository("clickhouse", opts.Network))
	default:
		return bolt.Open(opts.DBPath, metrics.NewRepository("bolt", opts.Network))
	}
}

// wallet is a single-key wallet backed by a store and a node RPC connection.
type wallet struct {
	logger     *zap.Logger
	publicKey  *model.PublicKey
	outputs    *bitcoin.OutputExtractor
	serializer *bitcoin.Serializer
	store      walletStore
	processor  *transactions.Processor
	builder    *transactions.Builder
	rpc        *rpcclient2.ObservedClient
	rpcClient  *rpcclient.Client
	attempts   int
	backoff    time.Duration
}

func openWallet(ctx context.Context, opts options, logger *zap.Logger) (*wallet, error) {
	params, err := bitcoin.ChainParams(opts.Network)
	if err != nil {
		return nil, err
	}
	wif, err := btcutil.DecodeWIF(opts.WIF)
	if err != nil {
		return nil, fmt.Errorf("decode wif: %w", err)
	}
	if !wif.IsForNet(params) {
		return nil, fmt.Errorf("wif is not for %s", opts.Network)
	}

	keyring := bitcoin.NewKeyring()
	publicKey := keyring.Add(keyPath, wif.PrivKey)
	addressManager := bitcoin.NewSingleKeyManager(publicKey)

	converter, err := bitcoin.NewAddressConverter(opts.Network)
	if err != nil {
		return nil, err
	}
	scripts, err := bitcoin.NewScriptBuilder(opts.Network)
	if err != nil {
		return nil, err
	}
	inputExtractor, err := bitcoin.NewInputExtractor(opts.Network, logger)
	if err != nil {
		return nil, err
	}
	addressExtractor, err := bitcoin.NewOutputAddressExtractor(opts.Network)
	if err != nil {
		return nil, err
	}

	store, err := openStore(opts)
	if err != nil {
		return nil, err
	}

	owned, err := store.OwnedOutputs(ctx)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("load owned outputs: %w", err)
	}
	outputsCache := cache.NewOutputs()
	outputsCache.Load(owned)

	outputExtractor := bitcoin.NewOutputExtractor(keyring)
	processor, err := transactions.NewProcessor(
		store,
		outputExtractor,
		inputExtractor,
		addressExtractor,
		outputsCache,
		addressManager,
		metrics.NewTransactionProcessor(opts.Network),
		logger,
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	calculator := sizes.NewCalculator()
	serializer := bitcoin.NewSerializer()
	builder, err := transactions.NewBuilder(
		selector.NewUnspentOutputSelector(selector.NewStoredOutputs(store, keyring, logger), calculator),
		addressManager,
		converter,
		scripts,
		bitcoin.NewInputSigner(keyring),
		calculator,
		serializer,
		metrics.NewTransactionBuilder(opts.Network),
		logger,
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	rpcClient, err := newRPCClient(opts.RPCURL, opts.RPCUser, opts.RPCPassword)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("init rpc client: %w", err)
	}

	w := &wallet{
		logger:     logger,
		publicKey:  publicKey,
		outputs:    outputExtractor,
		serializer: serializer,
		store:      store,
		processor:  processor,
		builder:    builder,
		rpc:        rpcclient2.NewObservedClient(rpcClient, metrics.NewRPCClient(opts.Network)),
		rpcClient:  rpcClient,
		attempts:   max(opts.BroadcastAttempts, 1),
		backoff:    opts.BroadcastBackoff,
	}
	listener := &logListener{logger: logger.Named("listener")}
	processor.SubscribeTransactions(listener)
	processor.SubscribeBlockchainData(listener)

	logger.Info("wallet opened",
		zap.String("network", string(opts.Network)),
		zap.Int("owned_outputs", outputsCache.Len()),
	)
	return w, nil
}

func (w *wallet) Close() {
	w.rpcClient.Shutdown()
	w.rpcClient.WaitForShutdown()
	if err := w.store.Close(); err != nil {
		w.logger.Error("failed to close store", zap.Error(err))
	}
}

// rawHex returns the signed transaction as hex.
func (w *wallet) rawHex(tx *model.FullTransaction) (string, error) {
	raw, err := w.serializer.Serialize(tx)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// broadcast sends tx to the node, retrying transport failures, and records it as
// created by the wallet once accepted.
func (w *wallet) broadcast(ctx context.Context, tx *model.FullTransaction) error {
	msg := w.serializer.MsgTx(tx)

	var err error
	for attempt := 1; attempt <= w.attempts; attempt++ {
		if _, err = w.rpc.SendRawTransaction(msg, false); err == nil {
			break
		}
		w.logger.Warn("broadcast failed",
			zap.Stringer("tx", tx.Header.Hash),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < w.attempts {
			if sleepErr := clock.Sleep(ctx, w.backoff); sleepErr != nil {
				return sleepErr
			}
		}
	}
	if err != nil {
		return fmt.Errorf("send transaction %s: %w", tx.Header.Hash, err)
	}

	result, err := w.processor.ProcessCreated(ctx, tx)
	if err != nil {
		return fmt.Errorf("record transaction %s: %w", tx.Header.Hash, err)
	}
	if result.FilterExpired {
		w.logger.Info("peer filter outdated by new wallet outputs", zap.Stringer("tx", tx.Header.Hash))
	}
	return nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   parsed.Scheme == "http",
	}
	return rpcclient.New(cfg, nil)
}

type logListener struct {
	logger *zap.Logger
}

func (l *logListener) OnReceive(tx *model.FullTransaction) {
	l.logger.Info("wallet transaction",
		zap.Stringer("tx", tx.Header.Hash),
		zap.Bool("outgoing", tx.Header.IsOutgoing),
		zap.Int("outputs", len(tx.Outputs)),
	)
}

func (l *logListener) OnUpdate(updated, inserted []*model.Transaction, block *model.Block) {
	fields := []zap.Field{zap.Int("updated", len(updated)), zap.Int("inserted", len(inserted))}
	if block != nil {
		fields = append(fields, zap.Stringer("block", block.HeaderHash), zap.Int32("height", block.Height))
	}
	l.logger.Info("wallet transactions changed", fields...)
}
