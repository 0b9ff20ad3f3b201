package transactions

import (
	"container/heap"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/model"
)

// InTopologicalOrder returns txs reordered so every transaction follows the batch
// transactions whose outputs it spends. Among transactions that are ready at the same
// time the input order wins.
func InTopologicalOrder(txs []*model.FullTransaction) []*model.FullTransaction {
	if len(txs) < 2 {
		return txs
	}

	byHash := make(map[chainhash.Hash]int, len(txs))
	for i, tx := range txs {
		if _, dup := byHash[tx.Header.Hash]; !dup {
			byHash[tx.Header.Hash] = i
		}
	}

	pending := make([]int, len(txs))
	children := make([][]int, len(txs))
	for i, tx := range txs {
		parents := make(map[int]struct{})
		for _, input := range tx.Inputs {
			p, ok := byHash[input.PreviousOutputTxHash]
			if !ok || p == i {
				continue
			}
			if _, dup := parents[p]; dup {
				continue
			}
			parents[p] = struct{}{}
			pending[i]++
			children[p] = append(children[p], i)
		}
	}

	ready := make(indexHeap, 0, len(txs))
	for i := range txs {
		if pending[i] == 0 {
			ready = append(ready, i)
		}
	}
	heap.Init(&ready)

	sorted := make([]*model.FullTransaction, 0, len(txs))
	emitted := make([]bool, len(txs))
	for ready.Len() > 0 {
		i := heap.Pop(&ready).(int)
		sorted = append(sorted, txs[i])
		emitted[i] = true
		for _, c := range children[i] {
			pending[c]--
			if pending[c] == 0 {
				heap.Push(&ready, c)
			}
		}
	}

	// a spend cycle cannot exist on chain; keep whatever is left in input order
	for i, done := range emitted {
		if !done {
			sorted = append(sorted, txs[i])
		}
	}
	return sorted
}

type indexHeap []int

func (h indexHeap) Len() int           { return len(h) }
func (h indexHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *indexHeap) Push(x any) {
	*h = append(*h, x.(int))
}

func (h *indexHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
