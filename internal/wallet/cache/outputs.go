// Package cache keeps the in-memory set of wallet-owned outputs used for spend detection.
package cache

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

// Outputs records owned outputs by outpoint. Entries are never retired here; spent
// coins are tracked by storage.
type Outputs struct {
	mu      sync.RWMutex
	outputs map[chainhash.Hash]map[uint32]struct{}
}

// NewOutputs returns an empty cache.
func NewOutputs() *Outputs {
	return &Outputs{outputs: make(map[chainhash.Hash]map[uint32]struct{})}
}

// Add records the owned outputs among outputs and ignores the rest.
func (c *Outputs) Add(outputs []*model.Output) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, output := range outputs {
		if !output.IsMine() {
			continue
		}
		indexes, ok := c.outputs[output.TransactionHash]
		if !ok {
			indexes = make(map[uint32]struct{})
			c.outputs[output.TransactionHash] = indexes
		}
		indexes[output.Index] = struct{}{}
	}
}

// HasOutputs reports whether any of inputs spends a recorded output.
func (c *Outputs) HasOutputs(inputs []*model.Input) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, input := range inputs {
		indexes, ok := c.outputs[input.PreviousOutputTxHash]
		if !ok {
			continue
		}
		if _, ok := indexes[input.PreviousOutputIndex]; ok {
			return true
		}
	}
	return false
}

// Load seeds the cache, typically with the owned outputs already in storage.
func (c *Outputs) Load(outputs []*model.Output) {
	c.Add(outputs)
}

// Len returns the number of recorded outpoints.
func (c *Outputs) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, indexes := range c.outputs {
		n += len(indexes)
	}
	return n
}

// Clear drops every entry.
func (c *Outputs) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.outputs = make(map[chainhash.Hash]map[uint32]struct{})
}
