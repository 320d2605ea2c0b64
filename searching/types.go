// Package searching options and shared instrumentation helpers.
package searching

import (
	"context"
	"fmt"
	"sort"

	"github.com/algolens/algolens/core"
)

// Option configures a search instrumenter via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a search replay.
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

// Instrument dispatches to the search instrumenter named by algo.
// Returns core.ErrUnknownAlgorithm for sorting identifiers and anything
// else outside the searching enumeration.
func Instrument(algo core.Algorithm, arr []int, target int, opts ...Option) (core.Trace, error) {
	switch algo {
	case core.LinearSearch:
		return Linear(arr, target, opts...)
	case core.BinarySearch:
		return Binary(arr, target, opts...)
	case core.JumpSearch:
		return Jump(arr, target, opts...)
	case core.InterpolationSearch:
		return Interpolation(arr, target, opts...)
	}
	return nil, fmt.Errorf("%w: %q is not a search algorithm", core.ErrUnknownAlgorithm, algo)
}

// start opens a search trace. When sortFirst is set, the working copy is
// sorted as part of the opening step — the Before→After transition shows
// the preparation, and metrics stay untouched.
func start(rec *core.Recorder, algo core.Algorithm, target int, sortFirst bool) {
	explanation := fmt.Sprintf("Searching for %d with %s.", target, algo.Title())
	if sortFirst {
		sorted := append([]int(nil), rec.Values()...)
		sort.Ints(sorted)
		rec.Replace(sorted)
		explanation = fmt.Sprintf("Searching for %d with %s; working copy sorted first.", target, algo.Title())
	}
	rec.Emit(core.Snap{Label: core.LabelStartSearch, Explanation: explanation})
}

// emitFound closes a trace with the successful terminal step.
func emitFound(rec *core.Recorder, idx, target int) {
	rec.Emit(core.Snap{
		Label:       core.LabelFound,
		Highlights:  core.Highlights{Found: []int{idx}},
		Pointers:    core.Pointers{core.PointerI: idx},
		Explanation: fmt.Sprintf("Found %d at position %d after %d comparisons.", target, idx, rec.Metrics().Comparisons),
	})
}

// emitNotFound closes a trace with every candidate eliminated.
func emitNotFound(rec *core.Recorder, target int) {
	rec.Emit(core.Snap{
		Label:       core.LabelNotFound,
		Highlights:  core.Highlights{Eliminated: core.Range(0, rec.Len()-1)},
		Explanation: fmt.Sprintf("%d is not present; all candidates eliminated after %d comparisons.", target, rec.Metrics().Comparisons),
	})
}
