package cuckoo

import (
	"github.com/dolthub/maphash"

	"github.com/ayjmax/cuckooset/internal/xmath"
)

const (
	// MinCapacity is the smallest per-table slot count a Table is created with.
	MinCapacity = 16
	// DefaultMaxCapacity bounds capacity doubling.
	DefaultMaxCapacity = 1 << 28
	// DefaultLockStripes is the default stripe count.
	DefaultLockStripes = 32
	// DefaultMaxKicks bounds displacement work per insertion.
	DefaultMaxKicks = 100
)

// Recorder receives table level events. The methods must be safe for
// concurrent use and must not acquire table locks.
type Recorder interface {
	RecordKicks(count int)
	RecordResizes(count int)
}

type noopRecorder struct{}

func (noopRecorder) RecordKicks(count int)   {}
func (noopRecorder) RecordResizes(count int) {}

type options[T comparable] struct {
	initialCapacity uint64
	maxCapacity     uint64
	lockStripes     uint32
	maxKicks        int
	hasher          func(T) uint64
	altHasher       func(T) uint64
	recorder        Recorder
}

func defaultOptions[T comparable]() *options[T] {
	return &options[T]{
		initialCapacity: MinCapacity,
		maxCapacity:     DefaultMaxCapacity,
		lockStripes:     DefaultLockStripes,
		maxKicks:        DefaultMaxKicks,
		hasher:          maphash.NewHasher[T]().Hash,
		recorder:        noopRecorder{},
	}
}

// Option configures a Table.
type Option[T comparable] func(*options[T])

// WithInitialCapacity sets the starting per-table slot count. The value is
// coerced to at least MinCapacity and rounded up to a power of two.
func WithInitialCapacity[T comparable](capacity int) Option[T] {
	return func(o *options[T]) {
		if capacity < MinCapacity {
			capacity = MinCapacity
		}
		o.initialCapacity = xmath.RoundUpPowerOf264(uint64(capacity))
	}
}

// WithMaxCapacity sets the per-table slot count above which the table
// refuses to grow. Rounded up to a power of two.
func WithMaxCapacity[T comparable](capacity int) Option[T] {
	return func(o *options[T]) {
		if capacity <= 0 {
			return
		}
		o.maxCapacity = xmath.RoundUpPowerOf264(uint64(capacity))
	}
}

// WithLockStripes sets the stripe count. The count is fixed for the
// lifetime of the table and independent of capacity; it is rounded up to
// a power of two and is at least 1.
func WithLockStripes[T comparable](count int) Option[T] {
	return func(o *options[T]) {
		if count < 1 {
			count = 1
		}
		o.lockStripes = xmath.RoundUpPowerOf2(uint32(count))
	}
}

// WithMaxKicks bounds the displacement chain walked per insertion before
// the table is declared full.
func WithMaxKicks[T comparable](maxKicks int) Option[T] {
	return func(o *options[T]) {
		if maxKicks < 0 {
			return
		}
		o.maxKicks = maxKicks
	}
}

// WithHasher replaces the base hash function.
func WithHasher[T comparable](hasher func(T) uint64) Option[T] {
	return func(o *options[T]) {
		o.hasher = hasher
	}
}

// WithAltHasher installs an independent hash function for the second
// candidate position instead of deriving it from the base hash.
func WithAltHasher[T comparable](hasher func(T) uint64) Option[T] {
	return func(o *options[T]) {
		o.altHasher = hasher
	}
}

// WithRecorder installs an event recorder.
func WithRecorder[T comparable](r Recorder) Option[T] {
	return func(o *options[T]) {
		if r != nil {
			o.recorder = r
		}
	}
}
