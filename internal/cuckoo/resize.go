package cuckoo

// resize doubles the capacity and rehashes every value into a fresh pair
// of arrays. It runs under every stripe, so nothing else is mid-flight:
// the only path that holds more than two stripes. The new generation is
// built aside and published with one atomic store; when any rehash chain
// exhausts its kick budget even at the doubled capacity the half-built
// copy is discarded and the old generation stays published, keeping the
// visible state consistent at all times.
func (t *Table[T]) resize(from *table[T]) error {
	t.stripes.lockAll()
	defer t.stripes.unlockAll()

	cur := t.loadTable()
	if cur != from {
		// Another goroutine resized first; the condition that brought us
		// here may no longer hold.
		return nil
	}
	newCapacity := cur.capacity << 1
	if newCapacity > t.maxCapacity {
		return ErrCapacityLimit
	}

	next := newTable[T](newCapacity)
	kicks := 0
	for ti := 0; ti < 2; ti++ {
		for idx := range cur.slots[ti] {
			p := cur.atPlain(ti, uint64(idx))
			if p == nil {
				continue
			}
			_, k, ok := t.chainInsert(next, *(*T)(p))
			if !ok {
				// The value stays resident in the published generation;
				// only the copy is abandoned.
				return nil
			}
			kicks += k
		}
	}

	t.storeTable(next)
	t.recorder.RecordResizes(1)
	if kicks > 0 {
		t.recorder.RecordKicks(kicks)
	}
	return nil
}
