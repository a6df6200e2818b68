package memo

import (
	"container/list"
	"fmt"
)

// Policy selects the eviction strategy for a bounded cache.
type Policy int

const (
	// LRU evicts the least recently used key. Cache hits move the accessed
	// key to the back of the eviction queue.
	LRU Policy = iota

	// FIFO evicts the oldest inserted key. Cache hits never reorder the
	// queue, so a hit does not protect a key from eviction.
	FIFO
)

// ParsePolicy maps a policy name to a Policy. Supported names are "LRU" and
// "FIFO"; anything else fails with ErrUnsupportedPolicy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "LRU":
		return LRU, nil
	case "FIFO":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedPolicy, name)
	}
}

func (p Policy) String() string {
	switch p {
	case LRU:
		return "LRU"
	case FIFO:
		return "FIFO"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// evictionQueue orders keys from the next eviction victim (front) to the
// most recently relevant key (back). It holds exactly the keys held by the
// store, with no duplicates.
type evictionQueue struct {
	policy Policy
	order  *list.List // holds Key values; front is the next victim
	elems  map[Key]*list.Element
}

func newEvictionQueue(policy Policy) *evictionQueue {
	return &evictionQueue{
		policy: policy,
		order:  list.New(),
		elems:  make(map[Key]*list.Element),
	}
}

// onHit records an access to a cached key. LRU moves the key to the back of
// the queue; FIFO ignores accesses entirely.
func (q *evictionQueue) onHit(k Key) {
	if q.policy != LRU {
		return
	}
	if el, ok := q.elems[k]; ok {
		q.order.MoveToBack(el)
	}
}

// onInsert appends a newly stored key to the back of the queue. A key that
// is already tracked is left in place.
func (q *evictionQueue) onInsert(k Key) {
	if _, ok := q.elems[k]; ok {
		return
	}
	q.elems[k] = q.order.PushBack(k)
}

// victim removes and returns the key at the front of the queue. It returns
// false when the queue is empty.
func (q *evictionQueue) victim() (Key, bool) {
	front := q.order.Front()
	if front == nil {
		return "", false
	}
	k := front.Value.(Key)
	q.order.Remove(front)
	delete(q.elems, k)
	return k, true
}

// remove drops a key from the queue wherever it sits.
func (q *evictionQueue) remove(k Key) {
	if el, ok := q.elems[k]; ok {
		q.order.Remove(el)
		delete(q.elems, k)
	}
}

func (q *evictionQueue) len() int {
	return q.order.Len()
}
