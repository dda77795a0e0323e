// Package pkg is a package that provides utilities for imgfork.
package pkg

// Partition is a success/failure accumulator for batch stages. Stages
// record each processed item exactly once and never abort mid-batch;
// the caller decides whether accumulated failures are fatal.
//
// Each side deduplicates independently, preserving insertion order. An
// item may appear on both sides: a destination produced by one mapping
// and then refused for a colliding mapping is both a success and a
// failure, and the failure must count toward the exit status.
type Partition[T comparable] struct {
	succeeded     []T
	failed        []T
	seenSucceeded map[T]struct{}
	seenFailed    map[T]struct{}
}

// NewPartition creates an empty Partition.
func NewPartition[T comparable]() *Partition[T] {
	return &Partition[T]{
		seenSucceeded: make(map[T]struct{}),
		seenFailed:    make(map[T]struct{}),
	}
}

// Succeed records item as succeeded. Items already recorded as
// succeeded are ignored.
func (p *Partition[T]) Succeed(item T) {
	if _, ok := p.seenSucceeded[item]; ok {
		return
	}

	p.seenSucceeded[item] = struct{}{}
	p.succeeded = append(p.succeeded, item)
}

// Fail records item as failed. Items already recorded as failed are
// ignored.
func (p *Partition[T]) Fail(item T) {
	if _, ok := p.seenFailed[item]; ok {
		return
	}

	p.seenFailed[item] = struct{}{}
	p.failed = append(p.failed, item)
}

// Succeeded returns the succeeded items in insertion order.
func (p *Partition[T]) Succeeded() []T {
	return p.succeeded
}

// Failed returns the failed items in insertion order.
func (p *Partition[T]) Failed() []T {
	return p.failed
}

// HasFailures reports whether any item was recorded as failed.
func (p *Partition[T]) HasFailures() bool {
	return len(p.failed) > 0
}

// Len returns the total number of recorded items.
func (p *Partition[T]) Len() int {
	return len(p.succeeded) + len(p.failed)
}
