package cuckoo

import (
	"unsafe"

	"github.com/gammazero/deque"
)

// Displacement runs in two modes. For live insertions makeRoom searches
// the displacement chains without locks and then replays the found path
// one move at a time, each move under the moved value's own stripe pair
// with re-validation. During resize and clear every stripe is already
// held, so chainInsert can swap values in hand along the chain directly.
// In both modes maxKicks bounds the work: probed slots in the search,
// swaps in the chain.

// number of search/replay passes before a contended insertion gives up
// on displacement and retries from scratch.
const maxSearchAttempts = 8

type roomResult int

const (
	roomMade roomResult = iota
	roomContended
	roomNeedsResize
)

type slotRef struct {
	ti  int
	idx uint64
}

type move struct {
	from slotRef
	to   slotRef
	box  unsafe.Pointer
}

// makeRoom tries to free one of the two candidate positions. It reports
// roomNeedsResize only when no vacancy is reachable within the kick
// budget; contention failures ask the caller to retry without growing.
func (t *Table[T]) makeRoom(tab *table[T], i0, i1 uint64) roomResult {
	for attempt := 0; attempt < maxSearchAttempts; attempt++ {
		if t.loadTable() != tab {
			return roomContended
		}
		moves, found := t.findPath(tab, i0, i1)
		if !found {
			return roomNeedsResize
		}
		if t.executePath(tab, moves) {
			return roomMade
		}
	}
	return roomContended
}

// findPath walks the two displacement chains rooted at the candidate
// positions breadth-first until it reaches an empty slot, reading slots
// atomically and without locks. It returns the chain of moves that would
// shift the vacancy back to a root, deepest move first. The snapshot of
// observed occupants is validated later, during execution.
func (t *Table[T]) findPath(tab *table[T], i0, i1 uint64) ([]move, bool) {
	type visit struct {
		slot   slotRef
		box    unsafe.Pointer // occupant that would move into slot
		parent int32
	}

	arena := make([]visit, 0, 2+t.maxKicks)
	arena = append(arena, visit{slot: slotRef{ti: 0, idx: i0}, parent: -1})
	arena = append(arena, visit{slot: slotRef{ti: 1, idx: i1}, parent: -1})

	frontier := deque.New[int32]()
	frontier.PushBack(0)
	frontier.PushBack(1)

	probes := 0
	for frontier.Len() > 0 && probes < t.maxKicks {
		ni := frontier.PopFront()
		n := arena[ni]
		p := tab.at(n.slot.ti, n.slot.idx)
		if p == nil {
			moves := make([]move, 0, 8)
			for cur := ni; arena[cur].parent >= 0; cur = arena[cur].parent {
				par := arena[cur].parent
				moves = append(moves, move{
					from: arena[par].slot,
					to:   arena[cur].slot,
					box:  arena[cur].box,
				})
			}
			return moves, true
		}
		probes++

		value := *(*T)(p)
		h0, h1 := t.hashes(value)
		var next slotRef
		if n.slot.ti == 0 {
			next = slotRef{ti: 1, idx: h1 & tab.mask}
		} else {
			next = slotRef{ti: 0, idx: h0 & tab.mask}
		}
		arena = append(arena, visit{slot: next, box: p, parent: ni})
		frontier.PushBack(int32(len(arena) - 1))
	}
	return nil, false
}

// executePath replays the moves from the vacancy backwards. Every move
// locks the stripe pair of the value being moved (its source and
// destination are exactly its two candidate positions), re-validates
// that the world still matches the search, then shifts the value and
// the vacancy in one critical section, so a moved value is never absent
// from the table or present twice.
func (t *Table[T]) executePath(tab *table[T], moves []move) bool {
	executed := 0
	ok := true
	for i := range moves {
		m := &moves[i]
		sa := t.stripes.forIndex(m.from.idx)
		sb := t.stripes.forIndex(m.to.idx)
		t.stripes.lockPair(sa, sb)
		if t.loadTable() != tab ||
			tab.at(m.from.ti, m.from.idx) != m.box ||
			tab.at(m.to.ti, m.to.idx) != nil {
			t.stripes.unlockPair(sa, sb)
			ok = false
			break
		}
		tab.set(m.to.ti, m.to.idx, m.box)
		tab.set(m.from.ti, m.from.idx, nil)
		t.stripes.unlockPair(sa, sb)
		executed++
	}
	if executed > 0 {
		t.recorder.RecordKicks(executed)
	}
	return ok
}

// chainInsert places value into an unpublished table, displacing
// occupants cuckoo style: the incoming value takes the slot, the evicted
// occupant becomes the value in hand and the next attempt targets its
// position in the other table. When the kick budget runs out the value
// left in hand is returned instead of being dropped, so the caller can
// abort the rehash without losing it.
func (t *Table[T]) chainInsert(dst *table[T], value T) (orphan T, kicks int, ok bool) {
	h0, h1 := t.hashes(value)
	i0 := h0 & dst.mask
	i1 := h1 & dst.mask
	if dst.atPlain(0, i0) == nil {
		dst.setPlain(0, i0, newBox(value))
		dst.addSizePlain(i0, 1)
		return orphan, 0, true
	}
	if dst.atPlain(1, i1) == nil {
		dst.setPlain(1, i1, newBox(value))
		dst.addSizePlain(i1, 1)
		return orphan, 0, true
	}

	in := newBox(value)
	ti, idx := 0, i0
	for kick := 0; kick < t.maxKicks; kick++ {
		p := dst.atPlain(ti, idx)
		if p == nil {
			dst.setPlain(ti, idx, in)
			dst.addSizePlain(idx, 1)
			return orphan, kick, true
		}
		dst.setPlain(ti, idx, in)
		in = p

		evicted := *(*T)(in)
		eh0, eh1 := t.hashes(evicted)
		if ti == 0 {
			ti, idx = 1, eh1&dst.mask
		} else {
			ti, idx = 0, eh0&dst.mask
		}
	}
	return *(*T)(in), t.maxKicks, false
}
