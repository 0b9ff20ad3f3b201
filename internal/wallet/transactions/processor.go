package transactions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
	"go.uber.org/zap"
)

// ProcessResult reports what a processing call did. FilterExpired means the peer
// filter no longer matches the wallet and must be rebuilt before further relay.
type ProcessResult struct {
	FilterExpired bool
	Inserted      []*model.Transaction
	Updated       []*model.Transaction
}

// Processor classifies incoming and locally created transactions, persists the ones
// that belong to the wallet and keeps their relay state current.
type Processor struct {
	// mu serializes every classify, persist and cache sequence.
	mu sync.Mutex

	storage                Storage
	outputExtractor        TransactionExtractor
	inputExtractor         TransactionExtractor
	outputAddressExtractor OutputAddressExtractor
	outputsCache           OutputsCache
	addressManager         AddressManager
	metrics                ProcessorMetrics
	logger                 *zap.Logger
	clock                  clock.Clock

	listenersMu         sync.RWMutex
	nextListenerID      uint64
	dataListeners       map[uint64]BlockchainDataListener
	transactionListener map[uint64]TransactionListener
}

// ProcessorOption customizes a Processor.
type ProcessorOption func(*Processor)

// WithClock sets the clock used for timestamps of unconfirmed transactions.
func WithClock(c clock.Clock) ProcessorOption {
	return func(p *Processor) {
		p.clock = c
	}
}

// NewProcessor builds a Processor with dependencies.
func NewProcessor(
	storage Storage,
	outputExtractor TransactionExtractor,
	inputExtractor TransactionExtractor,
	outputAddressExtractor OutputAddressExtractor,
	outputsCache OutputsCache,
	addressManager AddressManager,
	metrics ProcessorMetrics,
	logger *zap.Logger,
	opts ...ProcessorOption,
) (*Processor, error) {
	if storage == nil {
		return nil, errors.New("storage is required")
	}
	if outputExtractor == nil || inputExtractor == nil {
		return nil, errors.New("output and input extractors are required")
	}
	if outputAddressExtractor == nil {
		return nil, errors.New("output address extractor is required")
	}
	if outputsCache == nil {
		return nil, errors.New("outputs cache is required")
	}
	if addressManager == nil {
		return nil, errors.New("address manager is required")
	}
	if metrics == nil {
		return nil, errors.New("processor metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Processor{
		storage:                storage,
		outputExtractor:        outputExtractor,
		inputExtractor:         inputExtractor,
		outputAddressExtractor: outputAddressExtractor,
		outputsCache:           outputsCache,
		addressManager:         addressManager,
		metrics:                metrics,
		logger:                 logger.Named("transactionProcessor"),
		clock:                  clock.System{},
		dataListeners:          make(map[uint64]BlockchainDataListener),
		transactionListener:    make(map[uint64]TransactionListener),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// SubscribeBlockchainData registers l for batched update notifications. The returned
// function removes the registration; the processor never keeps l alive after it.
func (p *Processor) SubscribeBlockchainData(l BlockchainDataListener) (unsubscribe func()) {
	p.listenersMu.Lock()
	defer p.listenersMu.Unlock()

	id := p.nextListenerID
	p.nextListenerID++
	p.dataListeners[id] = l

	return func() {
		p.listenersMu.Lock()
		defer p.listenersMu.Unlock()
		delete(p.dataListeners, id)
	}
}

// SubscribeTransactions registers l for every newly classified wallet transaction.
func (p *Processor) SubscribeTransactions(l TransactionListener) (unsubscribe func()) {
	p.listenersMu.Lock()
	defer p.listenersMu.Unlock()

	id := p.nextListenerID
	p.nextListenerID++
	p.transactionListener[id] = l

	return func() {
		p.listenersMu.Lock()
		defer p.listenersMu.Unlock()
		delete(p.transactionListener, id)
	}
}

// ProcessReceived classifies a batch of transactions seen in block, or in the mempool
// when block is nil. Storage errors abort the batch; transactions settled before the
// failure stay persisted.
func (p *Processor) ProcessReceived(
	ctx context.Context,
	txs []*model.FullTransaction,
	block *model.Block,
	skipFilterCheck bool,
) (result ProcessResult, err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveProcessReceived(err, len(result.Inserted), len(result.Updated), started)
		if result.FilterExpired {
			p.metrics.ObserveFilterExpired()
		}
	}()

	result, err = p.processReceived(ctx, txs, block, skipFilterCheck)
	if err != nil {
		return ProcessResult{}, err
	}

	if len(result.Updated) > 0 || len(result.Inserted) > 0 {
		p.notifyUpdate(result.Updated, result.Inserted, block)
	}
	return result, nil
}

func (p *Processor) processReceived(
	ctx context.Context,
	txs []*model.FullTransaction,
	block *model.Block,
	skipFilterCheck bool,
) (ProcessResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var result ProcessResult
	for order, tx := range InTopologicalOrder(txs) {
		hash := tx.Header.Hash
		existing, err := p.storage.Transaction(ctx, hash)
		if err != nil {
			return result, fmt.Errorf("get transaction %s: %w", hash, err)
		}

		if existing != nil {
			if existing.BlockHash != nil && block == nil {
				p.logger.Debug("skip mempool relay of confirmed transaction", zap.Stringer("tx", hash))
				continue
			}
			if err := p.relay(ctx, existing, order, block); err != nil {
				return result, err
			}
			if err := p.storage.UpdateTransaction(ctx, existing); err != nil {
				return result, fmt.Errorf("update transaction %s: %w", hash, err)
			}
			result.Updated = append(result.Updated, existing)
			continue
		}

		if !p.classify(tx) {
			continue
		}
		p.notifyReceive(tx)

		if err := p.relay(ctx, tx.Header, order, block); err != nil {
			return result, err
		}
		if err := p.storage.AddTransaction(ctx, tx); err != nil {
			return result, fmt.Errorf("add transaction %s: %w", hash, err)
		}
		result.Inserted = append(result.Inserted, tx.Header)

		if !skipFilterCheck {
			result.FilterExpired = result.FilterExpired || p.addressManager.GapShifts() || expiresFilter(tx.Outputs)
		}
	}

	if len(result.Inserted) > 0 || len(result.Updated) > 0 {
		p.logger.Debug("processed received transactions",
			zap.Int("received", len(txs)),
			zap.Int("inserted", len(result.Inserted)),
			zap.Int("updated", len(result.Updated)),
			zap.Bool("filterExpired", result.FilterExpired),
		)
	}
	return result, nil
}

// ProcessCreated records a transaction built by this wallet before the network relays it
// back. It stays StatusNew until ProcessReceived sees it.
func (p *Processor) ProcessCreated(ctx context.Context, tx *model.FullTransaction) (result ProcessResult, err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveProcessCreated(err, started)
		if result.FilterExpired {
			p.metrics.ObserveFilterExpired()
		}
	}()

	result, err = p.processCreated(ctx, tx)
	if err != nil {
		return ProcessResult{}, err
	}

	p.notifyUpdate(nil, result.Inserted, nil)
	return result, nil
}

func (p *Processor) processCreated(ctx context.Context, tx *model.FullTransaction) (ProcessResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	hash := tx.Header.Hash
	existing, err := p.storage.Transaction(ctx, hash)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("get transaction %s: %w", hash, err)
	}
	if existing != nil {
		return ProcessResult{}, fmt.Errorf("%w: %s", ErrTransactionAlreadyExists, hash)
	}

	p.classify(tx)
	if err := p.storage.AddTransaction(ctx, tx); err != nil {
		return ProcessResult{}, fmt.Errorf("add transaction %s: %w", hash, err)
	}

	return ProcessResult{
		FilterExpired: expiresFilter(tx.Outputs),
		Inserted:      []*model.Transaction{tx.Header},
	}, nil
}

// classify runs ownership detection and, for wallet transactions, fills the cache and
// the address metadata. It reports whether tx belongs to the wallet.
func (p *Processor) classify(tx *model.FullTransaction) bool {
	p.outputExtractor.Extract(tx)
	if hasOwnedOutputs(tx.Outputs) {
		tx.Header.IsMine = true
	}
	if p.outputsCache.HasOutputs(tx.Inputs) {
		tx.Header.IsMine = true
		tx.Header.IsOutgoing = true
	}
	if !tx.Header.IsMine {
		return false
	}

	p.outputsCache.Add(tx.Outputs)
	p.outputAddressExtractor.ExtractOutputAddresses(tx)
	p.inputExtractor.Extract(tx)
	return true
}

func (p *Processor) relay(ctx context.Context, tx *model.Transaction, order int, block *model.Block) error {
	tx.Status = model.StatusRelayed
	tx.Order = order
	if block == nil {
		tx.BlockHash = nil
		tx.Timestamp = p.clock.Now().Unix()
		return nil
	}

	blockHash := block.HeaderHash
	tx.BlockHash = &blockHash
	tx.Timestamp = block.Timestamp

	if !block.HasTransactions {
		block.HasTransactions = true
		if err := p.storage.UpdateBlock(ctx, block); err != nil {
			return fmt.Errorf("update block %s: %w", block.HeaderHash, err)
		}
	}
	return nil
}

func (p *Processor) notifyUpdate(updated, inserted []*model.Transaction, block *model.Block) {
	p.listenersMu.RLock()
	listeners := make([]BlockchainDataListener, 0, len(p.dataListeners))
	for _, l := range p.dataListeners {
		listeners = append(listeners, l)
	}
	p.listenersMu.RUnlock()

	for _, l := range listeners {
		l.OnUpdate(updated, inserted, block)
	}
}

// notifyReceive runs while the batch lock is held: a listener may subscribe or
// unsubscribe from OnReceive but must not call back into ProcessReceived or
// ProcessCreated.
func (p *Processor) notifyReceive(tx *model.FullTransaction) {
	p.listenersMu.RLock()
	listeners := make([]TransactionListener, 0, len(p.transactionListener))
	for _, l := range p.transactionListener {
		listeners = append(listeners, l)
	}
	p.listenersMu.RUnlock()

	for _, l := range listeners {
		l.OnReceive(tx)
	}
}

// expiresFilter reports whether outputs hold owned coins whose spends a filter can
// only match by the public key itself.
func expiresFilter(outputs []*model.Output) bool {
	for _, output := range outputs {
		if !output.IsMine() {
			continue
		}
		switch output.ScriptType {
		case model.ScriptP2PK, model.ScriptP2WPKH, model.ScriptP2WPKHSH:
			return true
		}
	}
	return false
}

func hasOwnedOutputs(outputs []*model.Output) bool {
	for _, output := range outputs {
		if output.IsMine() {
			return true
		}
	}
	return false
}
