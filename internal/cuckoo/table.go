package cuckoo

import (
	"errors"
	"sync/atomic"
	"unsafe"

	"github.com/zeebo/xxh3"

	"github.com/ayjmax/cuckooset/internal/xruntime"
)

var (
	// ErrOverload is returned by Insert when repeated displacement and
	// resize attempts did not produce a free candidate slot.
	ErrOverload = errors.New("cuckooset: set overloaded, resize did not make progress")
	// ErrCapacityLimit is returned by Insert when growing further would
	// exceed the configured maximum capacity.
	ErrCapacityLimit = errors.New("cuckooset: maximum capacity reached")
)

const (
	// number of outer passes an insertion makes before reporting ErrOverload.
	maxInsertAttempts = 8
	minCounterLength  = 8
	maxCounterLength  = 32
)

type counter struct {
	c int64
}

type paddedCounter struct {
	//nolint:unused // prevents false sharing
	padding [xruntime.CacheLineSize - unsafe.Sizeof(counter{})]byte

	counter
}

// table is one published generation of the set: both slot arrays, the
// capacity they were allocated with and the striped size counters. It is
// swapped out as a whole under the full stripe sweep, so capacity and
// slots can never be observed torn.
type table[T comparable] struct {
	slots    [2][]unsafe.Pointer
	size     []paddedCounter
	capacity uint64
	mask     uint64
	sizeMask uint64
}

func newTable[T comparable](capacity uint64) *table[T] {
	counterLength := int(capacity >> 10)
	if counterLength < minCounterLength {
		counterLength = minCounterLength
	} else if counterLength > maxCounterLength {
		counterLength = maxCounterLength
	}
	t := &table[T]{
		size:     make([]paddedCounter, counterLength),
		capacity: capacity,
		mask:     capacity - 1,
		sizeMask: uint64(counterLength - 1),
	}
	t.slots[0] = make([]unsafe.Pointer, capacity)
	t.slots[1] = make([]unsafe.Pointer, capacity)
	return t
}

// at reads a slot with atomic semantics. Safe on a published table.
func (t *table[T]) at(ti int, idx uint64) unsafe.Pointer {
	return atomic.LoadPointer(&t.slots[ti][idx])
}

// set writes a slot with atomic semantics. Callers must hold the stripe
// of idx.
func (t *table[T]) set(ti int, idx uint64, p unsafe.Pointer) {
	atomic.StorePointer(&t.slots[ti][idx], p)
}

// atPlain and setPlain access slots that cannot be written concurrently:
// an unpublished resize target, or a published table frozen under the
// full stripe sweep.
func (t *table[T]) atPlain(ti int, idx uint64) unsafe.Pointer {
	return t.slots[ti][idx]
}

func (t *table[T]) setPlain(ti int, idx uint64, p unsafe.Pointer) {
	t.slots[ti][idx] = p
}

func (t *table[T]) addSize(bucketIdx uint64, delta int) {
	counterIdx := t.sizeMask & bucketIdx
	atomic.AddInt64(&t.size[counterIdx].c, int64(delta))
}

func (t *table[T]) addSizePlain(bucketIdx uint64, delta int) {
	counterIdx := t.sizeMask & bucketIdx
	t.size[counterIdx].c += int64(delta)
}

func (t *table[T]) sumSize() int64 {
	sum := int64(0)
	for i := range t.size {
		sum += atomic.LoadInt64(&t.size[i].c)
	}
	return sum
}

// containsAt reports whether value is present at either of its candidate
// positions. Callers must hold both stripes.
func (t *table[T]) containsAt(value T, i0, i1 uint64) bool {
	if p := t.at(0, i0); p != nil && *(*T)(p) == value {
		return true
	}
	if p := t.at(1, i1); p != nil && *(*T)(p) == value {
		return true
	}
	return false
}

func newBox[T comparable](value T) unsafe.Pointer {
	return unsafe.Pointer(&value)
}

// remixHash derives the second bucket index from the base hash by
// rehashing its bytes, so the two candidate positions stay effectively
// independent. Reusing the base hash for both defeats the two-choice
// guarantee.
func remixHash(h uint64) uint64 {
	return xxh3.Hash((*(*[8]byte)(unsafe.Pointer(&h)))[:])
}

// Table is a concurrent cuckoo hash set. A value lives in exactly one of
// two candidate positions, table 0 at its base hash or table 1 at its
// remixed hash, both taken modulo the current capacity. Mutations lock
// the one or two stripes covering the touched positions, in ascending
// stripe order; displacement moves each lock the moved value's own
// stripe pair; growing locks every stripe, rehashes into a fresh pair of
// arrays and publishes them with a single atomic pointer store.
// Operations re-validate the published pointer after locking and retry
// when a resize got there first.
type Table[T comparable] struct {
	table unsafe.Pointer // *table[T]

	hashes  func(T) (uint64, uint64)
	stripes *stripeSet

	initialCapacity uint64
	maxCapacity     uint64
	maxKicks        int
	recorder        Recorder
}

// NewTable creates an empty Table configured by opts.
func NewTable[T comparable](opts ...Option[T]) *Table[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(o)
	}
	if o.maxCapacity < o.initialCapacity {
		o.maxCapacity = o.initialCapacity
	}

	t := &Table[T]{
		stripes:         newStripeSet(o.lockStripes),
		initialCapacity: o.initialCapacity,
		maxCapacity:     o.maxCapacity,
		maxKicks:        o.maxKicks,
		recorder:        o.recorder,
	}
	base := o.hasher
	if alt := o.altHasher; alt != nil {
		t.hashes = func(value T) (uint64, uint64) {
			return base(value), alt(value)
		}
	} else {
		t.hashes = func(value T) (uint64, uint64) {
			h := base(value)
			return h, remixHash(h)
		}
	}
	t.storeTable(newTable[T](o.initialCapacity))
	return t
}

func (t *Table[T]) loadTable() *table[T] {
	return (*table[T])(atomic.LoadPointer(&t.table))
}

func (t *Table[T]) storeTable(tab *table[T]) {
	atomic.StorePointer(&t.table, unsafe.Pointer(tab))
}

// Insert adds value to the set. It returns false with a nil error when
// the value is already present, and false with ErrOverload or
// ErrCapacityLimit when no room could be made; in that case the set is
// unchanged and no resident value has been lost.
func (t *Table[T]) Insert(value T) (bool, error) {
	h0, h1 := t.hashes(value)
	attempts := 0
	for {
		tab := t.loadTable()
		i0 := h0 & tab.mask
		i1 := h1 & tab.mask
		s0 := t.stripes.forIndex(i0)
		s1 := t.stripes.forIndex(i1)
		t.stripes.lockPair(s0, s1)
		if t.loadTable() != tab {
			// resized underneath, positions are stale
			t.stripes.unlockPair(s0, s1)
			continue
		}
		if tab.containsAt(value, i0, i1) {
			t.stripes.unlockPair(s0, s1)
			return false, nil
		}
		if tab.at(0, i0) == nil {
			tab.set(0, i0, newBox(value))
			tab.addSize(i0, 1)
			t.stripes.unlockPair(s0, s1)
			return true, nil
		}
		if tab.at(1, i1) == nil {
			tab.set(1, i1, newBox(value))
			tab.addSize(i1, 1)
			t.stripes.unlockPair(s0, s1)
			return true, nil
		}
		t.stripes.unlockPair(s0, s1)

		// Both candidate positions are occupied: displace an occupant,
		// or grow when no vacancy is reachable.
		attempts++
		if attempts >= maxInsertAttempts {
			return false, ErrOverload
		}
		if t.makeRoom(tab, i0, i1) == roomNeedsResize {
			if err := t.resize(tab); err != nil {
				return false, err
			}
		}
	}
}

// Delete removes value from the set and reports whether it was present.
func (t *Table[T]) Delete(value T) bool {
	h0, h1 := t.hashes(value)
	for {
		tab := t.loadTable()
		i0 := h0 & tab.mask
		i1 := h1 & tab.mask
		s0 := t.stripes.forIndex(i0)
		s1 := t.stripes.forIndex(i1)
		t.stripes.lockPair(s0, s1)
		if t.loadTable() != tab {
			t.stripes.unlockPair(s0, s1)
			continue
		}
		if p := tab.at(0, i0); p != nil && *(*T)(p) == value {
			tab.set(0, i0, nil)
			tab.addSize(i0, -1)
			t.stripes.unlockPair(s0, s1)
			return true
		}
		if p := tab.at(1, i1); p != nil && *(*T)(p) == value {
			tab.set(1, i1, nil)
			tab.addSize(i1, -1)
			t.stripes.unlockPair(s0, s1)
			return true
		}
		t.stripes.unlockPair(s0, s1)
		return false
	}
}

// Has reports whether value is present.
func (t *Table[T]) Has(value T) bool {
	h0, h1 := t.hashes(value)
	for {
		tab := t.loadTable()
		i0 := h0 & tab.mask
		i1 := h1 & tab.mask
		s0 := t.stripes.forIndex(i0)
		s1 := t.stripes.forIndex(i1)
		t.stripes.lockPair(s0, s1)
		if t.loadTable() != tab {
			t.stripes.unlockPair(s0, s1)
			continue
		}
		found := tab.containsAt(value, i0, i1)
		t.stripes.unlockPair(s0, s1)
		return found
	}
}

// Size returns the number of values in the set. The count is exact when
// no mutation is in flight.
func (t *Table[T]) Size() int {
	sum := t.loadTable().sumSize()
	if sum < 0 {
		return 0
	}
	return int(sum)
}

// Capacity returns the current per-table slot count. The set holds at
// most twice this many values.
func (t *Table[T]) Capacity() int {
	return int(t.loadTable().capacity)
}

// Clear removes all values, shrinking back to the initial capacity.
func (t *Table[T]) Clear() {
	t.stripes.lockAll()
	t.storeTable(newTable[T](t.initialCapacity))
	t.stripes.unlockAll()
}

// Range calls f for present values until f returns false. The sweep is
// weakly consistent: it runs without locks against one published
// generation, so values displaced concurrently may be visited twice or
// not at all. A quiescent sweep is exact.
func (t *Table[T]) Range(f func(value T) bool) {
	tab := t.loadTable()
	for ti := 0; ti < 2; ti++ {
		for idx := range tab.slots[ti] {
			if p := tab.at(ti, uint64(idx)); p != nil {
				if !f(*(*T)(p)) {
					return
				}
			}
		}
	}
}
