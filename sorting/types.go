// Package sorting options and shared instrumentation helpers.
package sorting

import (
	"context"
	"fmt"

	"github.com/algolens/algolens/core"
)

// Option configures an instrumenter via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a sorting replay.
type Options struct {
	// Ctx allows cancellation of long replays. Cancellation aborts the
	// run and discards the partial trace.
	Ctx context.Context
}

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// buildOptions folds opts over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// canceled reports the context error, if any.
func canceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// Instrument dispatches to the instrumenter named by algo.
// Returns core.ErrUnknownAlgorithm for search identifiers and anything else
// outside the sorting enumeration.
func Instrument(algo core.Algorithm, arr []int, opts ...Option) (core.Trace, error) {
	switch algo {
	case core.BubbleSort:
		return Bubble(arr, opts...)
	case core.SelectionSort:
		return Selection(arr, opts...)
	case core.InsertionSort:
		return Insertion(arr, opts...)
	case core.MergeSort:
		return Merge(arr, opts...)
	case core.QuickSort:
		return Quick(arr, opts...)
	case core.HeapSort:
		return Heap(arr, opts...)
	}
	return nil, fmt.Errorf("%w: %q is not a sorting algorithm", core.ErrUnknownAlgorithm, algo)
}

// emitInitial opens a sorting trace with the canonical boundary step.
func emitInitial(rec *core.Recorder, algo core.Algorithm) {
	rec.Emit(core.Snap{
		Label:       core.LabelInitialArray,
		Explanation: fmt.Sprintf("Starting %s on %d elements.", algo.Title(), rec.Len()),
	})
}

// emitSorted closes a sorting trace with the canonical terminal step,
// marking every index sorted and carrying the final metrics totals.
func emitSorted(rec *core.Recorder) {
	m := rec.Metrics()
	rec.Emit(core.Snap{
		Label:      core.LabelSorted,
		Highlights: core.Highlights{Sorted: core.Range(0, rec.Len()-1)},
		Explanation: fmt.Sprintf("Array is fully sorted: %d comparisons, %d swaps, %d passes.",
			m.Comparisons, m.Swaps, m.Passes),
	})
}
