// Package indexkit adapts index-call style interfaces into lazy, length-aware iterators.
//
// An index-call interface exposes a collection through two calls:
// one that reports the number of items, and one that returns the item at a given zero-based index.
// Libraries bridged over a foreign function interface commonly use this convention
// instead of a native iteration protocol.
// indexkit turns such a pair of capabilities into an iterator
// that produces items one at a time and always knows exactly how many items remain.
//
// The count is resolved once, at construction time, and never re-queried.
// If the underlying source is a live external collection,
// it must not change shape between the count query and the last item query;
// that precondition belongs to the caller, the adapter does not enforce it.
package indexkit

import (
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
)

// ErrContractViolation is the panic cause used when an index-call source
// breaks its documented interface,
// such as reporting a negative count other than InapplicableCount.
// This signals a programming error in the source, not a recoverable condition.
const ErrContractViolation errorkit.Error = "indexkit: index-call contract violation"

// InapplicableCount is the reserved sentinel value a signed count query
// returns to express that no sequence applies at all.
// It is distinct from a count of zero, which yields a valid empty sequence.
const InapplicableCount = -1

// Count is the resolved outcome of a count query.
// It either holds a valid non-negative item count,
// or records that the source reported the sequence as inapplicable.
type Count struct {
	n            int
	inapplicable bool
}

// CountOf interprets an unsigned count value.
// An unsigned count is always valid, so there is no error path.
func CountOf(n uint) Count {
	return Count{n: int(n)}
}

// SignedCountOf interprets a signed count value.
// A non-negative value is a valid count.
// InapplicableCount reports that no sequence applies.
// Any other negative value breaks the index-call contract and panics.
func SignedCountOf(n int) Count {
	if 0 <= n {
		return Count{n: n}
	}
	if n == InapplicableCount {
		return Count{inapplicable: true}
	}
	panic(ErrContractViolation.F("unexpected negative count: %d", n))
}

// Lookup returns the item count and whether a sequence applies at all.
func (c Count) Lookup() (int, bool) {
	return c.n, !c.inapplicable
}

// ItemFunc is the item capability of an index-call interface.
// It returns the item at a zero-based index.
// The adapter only ever invokes it with 0 <= index < total,
// where total is the count fixed at construction time.
// It is expected to be pure with respect to its arguments for the adapter's lifetime.
type ItemFunc[T any] func(index, total int) T

// Callable bundles the two halves of an index-call interface
// for sources that are naturally a single object.
type Callable[T any] interface {
	// Count reports how many items the source exposes.
	Count() Count
	// Item returns the item at the given zero-based index.
	// It is only invoked with 0 <= index < total.
	Item(index, total int) T
}

// From adapts an unconditional index-call source into an iterator.
// The count capability is queried exactly once, during construction.
func From[T any](count func() uint, item ItemFunc[T]) *Iter[T] {
	return &Iter[T]{total: int(count()), item: item}
}

// FromSigned adapts a guarded index-call source into an iterator.
// The signed count capability is queried exactly once, during construction.
// When it reports a valid count, the returned iterator behaves exactly as one made with From.
// When it reports InapplicableCount, no iterator is produced and the item capability is never invoked.
// Any other negative count panics with ErrContractViolation.
func FromSigned[T any](count func() int, item ItemFunc[T]) (*Iter[T], bool) {
	n, ok := SignedCountOf(count()).Lookup()
	if !ok {
		return nil, false
	}
	return &Iter[T]{total: n, item: item}, true
}

// FromCallable adapts a bundled index-call source into an iterator.
// It follows the guarded construction rules of FromSigned.
func FromCallable[T any](c Callable[T]) (*Iter[T], bool) {
	n, ok := c.Count().Lookup()
	if !ok {
		return nil, false
	}
	return &Iter[T]{total: n, item: c.Item}, true
}

// Iter is a lazy, forward-only, length-aware iterator over an index-call source.
// It owns the count captured at construction and a cursor starting at zero;
// the iterator is exhausted exactly when the cursor reaches the count.
// A single Iter is single-use,
// but constructing another from the same capabilities restarts the sequence.
// An Iter is not safe for concurrent use.
type Iter[T any] struct {
	item   ItemFunc[T]
	total  int
	cursor int
	value  T
}

var _ iterkit.PullIter[any] = (*Iter[any])(nil)

// Next ensures that Value returns the next item when executed.
// Once the sequence is exhausted, Next keeps returning false.
func (i *Iter[T]) Next() bool {
	if i.total <= i.cursor {
		return false
	}
	i.value = i.item(i.cursor, i.total)
	i.cursor++
	return true
}

// Value returns the current value in the iterator.
// The action is repeatable without side effects.
func (i *Iter[T]) Value() T {
	return i.value
}

// Err returns the error cause of the iteration.
// Construction is the only point of failure for an index-call source,
// so Err always reports nil.
func (i *Iter[T]) Err() error {
	return nil
}

// Close exhausts the iterator.
// No external resources are held beyond the captured capabilities,
// so Close never fails and is repeatable.
func (i *Iter[T]) Close() error {
	i.cursor = i.total
	return nil
}

// Len returns exactly how many items are still left to produce.
// This is a correctness invariant of the adapter, not an estimate.
func (i *Iter[T]) Len() int {
	if i.total < i.cursor {
		panic(ErrContractViolation.F("cursor %d is past the item count %d", i.cursor, i.total))
	}
	return i.total - i.cursor
}

// Total returns the item count that was fixed at construction time.
// It is unaffected by consumption.
func (i *Iter[T]) Total() int {
	return i.total
}

// Seq exposes the remaining items as a range-over-func sequence.
// The sequence shares the iterator's cursor,
// so breaking out early leaves the iterator positioned after the last yielded item.
func (i *Iter[T]) Seq() iterkit.SingleUseSeq[T] {
	return func(yield func(T) bool) {
		for i.Next() {
			if !yield(i.Value()) {
				return
			}
		}
	}
}

// ErrSeq exposes the remaining items in the error-aware sequence form.
// An index-call iterator has no failure mode after construction,
// so the yielded error is always nil.
func (i *Iter[T]) ErrSeq() iterkit.ErrSeq[T] {
	return iterkit.FromPullIter[T](i)
}

// Collect drains the iterator into a slice sized from its remaining length.
func Collect[T any](i *Iter[T]) []T {
	if i == nil {
		return nil
	}
	vs := make([]T, 0, i.Len())
	for i.Next() {
		vs = append(vs, i.Value())
	}
	return vs
}

// Map transforms the items of an index-call iterator
// while preserving its exact remaining length and the index-call invariants.
// The source iterator must not be used after Map.
func Map[To, From any](i *Iter[From], transform func(From) To) *Iter[To] {
	return &Iter[To]{
		total:  i.total,
		cursor: i.cursor,
		item: func(index, total int) To {
			return transform(i.item(index, total))
		},
	}
}
