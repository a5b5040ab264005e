// Package dedupe tracks already-ingested observation ids so a replayed
// scouting feed cannot double-count a session.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"
)

// Default capacity covers several seasons of observations for a full league.
const defaultMaxSize = 50000

// Deduper records seen observation ids for at-most-once ingestion.
type Deduper interface {
	// SeenAndRecord atomically checks whether id was seen and records it if
	// not. Returns true when the observation was already ingested.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord forgets an id so the observation can be retried. Used when an
	// observation was recorded but could not be enqueued.
	Unrecord(ctx context.Context, id string)

	Size() int64
}

// node is one entry in the recency list.
type node struct {
	id   string
	next *node
}

func (n *node) reset() {
	n.id = ""
	n.next = nil
}

// memoryDeduper keeps seen ids in memory. Bounded mode (maxSize > 0) evicts
// the oldest id once full, tracked through a singly linked list with pooled
// nodes; maxSize <= 0 disables eviction entirely.
type memoryDeduper struct {
	mu       sync.RWMutex
	seen     map[string]*node
	head     *node
	maxSize  int
	size     atomic.Int64
	nodePool sync.Pool
}

// NewInMemoryDeduper builds a deduper, bounded by default.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &memoryDeduper{maxSize: defaultMaxSize}
	for _, opt := range opts {
		opt(d)
	}

	d.seen = make(map[string]*node)
	if d.maxSize > 0 {
		d.nodePool = sync.Pool{New: func() interface{} { return &node{} }}
	}
	return d
}

func (d *memoryDeduper) SeenAndRecord(ctx context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[id]; exists {
		return true
	}

	if d.maxSize > 0 {
		if len(d.seen) >= d.maxSize {
			d.evictOldest()
		}
		n := d.nodePool.Get().(*node)
		n.id = id
		n.next = d.head
		d.head = n
		d.seen[id] = n
	} else {
		d.seen[id] = nil
	}
	d.size.Add(1)
	return false
}

func (d *memoryDeduper) Unrecord(ctx context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, exists := d.seen[id]
	if !exists {
		return
	}
	delete(d.seen, id)
	d.size.Add(-1)

	if d.maxSize <= 0 {
		return
	}

	if d.head == n {
		d.head = n.next
	} else {
		current := d.head
		for current != nil && current.next != n {
			current = current.next
		}
		if current != nil {
			current.next = n.next
		}
	}
	n.reset()
	d.nodePool.Put(n)
}

// evictOldest drops the tail of the recency list. Caller holds the lock.
func (d *memoryDeduper) evictOldest() {
	if d.head == nil {
		return
	}

	if d.head.next == nil {
		delete(d.seen, d.head.id)
		d.head.reset()
		d.nodePool.Put(d.head)
		d.head = nil
		d.size.Add(-1)
		return
	}

	var prev *node
	current := d.head
	for current.next != nil {
		prev = current
		current = current.next
	}
	prev.next = nil
	delete(d.seen, current.id)
	current.reset()
	d.nodePool.Put(current)
	d.size.Add(-1)
}

func (d *memoryDeduper) Size() int64 {
	return d.size.Load()
}
