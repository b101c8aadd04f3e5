// Package frontier provides the min-priority structures used by the
// shortest-path and MST engines.
//
// Both queues reproduce a plain list that is stably sorted before every
// removal: new entries join at the back, updated entries keep their place,
// and equal keys leave in list order.
package frontier

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/lvstep/core"
)

// nodeItem is one frontier entry; index is maintained by heap.Interface.
type nodeItem struct {
	id    string
	prio  float64
	seq   uint64
	index int
}

// nodePQ orders by (prio, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *nodePQ) Push(x interface{}) {
	it := x.(*nodeItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]

	return it
}

// Queue is a keyed min-priority queue of node IDs. Each ID is present at most
// once; pushing a present ID updates its priority and keeps its list position.
//
// The list position of an entry is its rank after the most recent Pop, or
// its arrival order for entries pushed since then. A node whose key drops
// into a tie therefore stays behind entries that were sorted ahead of it.
type Queue struct {
	pq    nodePQ
	items map[string]*nodeItem
	seq   uint64
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{items: make(map[string]*nodeItem)}
}

// Push inserts id with prio, or updates the priority of an existing entry.
// Complexity: O(log n).
func (q *Queue) Push(id string, prio float64) {
	if it, ok := q.items[id]; ok {
		it.prio = prio
		heap.Fix(&q.pq, it.index)
		return
	}
	it := &nodeItem{id: id, prio: prio, seq: q.seq}
	q.seq++
	q.items[id] = it
	heap.Push(&q.pq, it)
}

// Pop removes the entry with the smallest (prio, seq).
// ok is false when the queue is empty.
func (q *Queue) Pop() (id string, prio float64, ok bool) {
	if len(q.pq) == 0 {
		return "", 0, false
	}
	it := heap.Pop(&q.pq).(*nodeItem)
	delete(q.items, it.id)
	q.rerank()

	return it.id, it.prio, true
}

// rerank renumbers the remaining entries by their current (prio, seq) order.
// Relative order is unchanged, so the heap stays valid.
// Complexity: O(n log n).
func (q *Queue) rerank() {
	ranked := make([]*nodeItem, len(q.pq))
	copy(ranked, q.pq)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].prio != ranked[j].prio {
			return ranked[i].prio < ranked[j].prio
		}
		return ranked[i].seq < ranked[j].seq
	})
	for i, it := range ranked {
		it.seq = uint64(i)
	}
	q.seq = uint64(len(ranked))
}

// Contains reports whether id is queued.
func (q *Queue) Contains(id string) bool {
	_, ok := q.items[id]

	return ok
}

// Priority returns the current priority of id.
func (q *Queue) Priority(id string) (float64, bool) {
	it, ok := q.items[id]
	if !ok {
		return 0, false
	}

	return it.prio, true
}

// Len returns the number of queued IDs.
func (q *Queue) Len() int { return len(q.pq) }

// IDs returns the queued IDs in pop order without disturbing the queue.
// Complexity: O(n log n).
func (q *Queue) IDs() []string {
	cp := make(nodePQ, len(q.pq))
	for i, it := range q.pq {
		c := *it
		cp[i] = &c
	}
	out := make([]string, 0, len(cp))
	for cp.Len() > 0 {
		out = append(out, heap.Pop(&cp).(*nodeItem).id)
	}

	return out
}

// edgeItem is one boundary entry of EdgeQueue.
type edgeItem struct {
	edge   *core.Edge
	weight float64
	seq    uint64
}

type edgePQ []edgeItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(edgeItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// EdgeQueue is a min-priority queue of edges by weight, stable by insertion.
// The same edge may be queued more than once.
type EdgeQueue struct {
	pq  edgePQ
	seq uint64
}

// NewEdgeQueue returns an empty EdgeQueue.
func NewEdgeQueue() *EdgeQueue { return &EdgeQueue{} }

// Push queues e with the given weight.
func (q *EdgeQueue) Push(e *core.Edge, weight float64) {
	heap.Push(&q.pq, edgeItem{edge: e, weight: weight, seq: q.seq})
	q.seq++
}

// Pop removes the lightest, earliest-queued edge.
func (q *EdgeQueue) Pop() (*core.Edge, float64, bool) {
	if len(q.pq) == 0 {
		return nil, 0, false
	}
	it := heap.Pop(&q.pq).(edgeItem)

	return it.edge, it.weight, true
}

// Len returns the number of queued edges.
func (q *EdgeQueue) Len() int { return len(q.pq) }
