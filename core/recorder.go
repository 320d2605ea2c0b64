package core

// Snap describes one step about to be emitted: its labels, the post-state
// highlight sets, pointer positions and move arrows. Array snapshots and
// metrics are captured by the Recorder itself.
type Snap struct {
	Label       string
	Explanation string
	Highlights  Highlights
	Pointers    Pointers
	Arrows      []MoveArrow
}

// Recorder accumulates the steps of one instrumented run. It owns a private
// working copy of the input, the running metrics, and the previous After
// snapshot — which becomes the next step's Before, so trace continuity holds
// by construction regardless of how an instrumenter interleaves mutation
// and emission.
type Recorder struct {
	arr    []int
	prev   []int
	prevHl Highlights
	mx     Metrics
	steps  Trace
}

// NewRecorder copies input into a fresh working array. The caller's slice
// is never touched.
func NewRecorder(input []int) *Recorder {
	arr := make([]int, len(input))
	copy(arr, input)
	prev := make([]int, len(input))
	copy(prev, input)
	return &Recorder{arr: arr, prev: prev}
}

// Values exposes the live working array for reading and index arithmetic.
// Mutations must go through Swap, Assign or Replace so metrics and
// snapshots stay consistent.
func (r *Recorder) Values() []int { return r.arr }

// Len returns the working array length.
func (r *Recorder) Len() int { return len(r.arr) }

// Metrics returns the running totals so far.
func (r *Recorder) Metrics() Metrics { return r.mx }

// CountCompare adds one comparison to the running metrics.
func (r *Recorder) CountCompare() { r.mx.Comparisons++ }

// CountPass adds one completed outer pass to the running metrics.
func (r *Recorder) CountPass() { r.mx.Passes++ }

// Swap exchanges the values at i and j and counts one swap.
func (r *Recorder) Swap(i, j int) {
	r.arr[i], r.arr[j] = r.arr[j], r.arr[i]
	r.mx.Swaps++
}

// Assign writes v at index i and counts it as one swap-class movement
// (shift in insertion sort, merge write, pivot placement).
func (r *Recorder) Assign(i, v int) {
	r.arr[i] = v
	r.mx.Swaps++
}

// Replace overwrites the whole working array without touching metrics.
// Used by search instrumenters that pre-sort their working copy: the
// preparation is not part of the measured run.
func (r *Recorder) Replace(values []int) {
	r.arr = make([]int, len(values))
	copy(r.arr, values)
}

// Emit appends one Step. Before is the previous step's After (the original
// input for the first step); After is the current working array; Metrics
// are the running totals at this moment.
func (r *Recorder) Emit(s Snap) {
	after := make([]int, len(r.arr))
	copy(after, r.arr)
	r.steps = append(r.steps, Step{
		Label:            s.Label,
		Before:           r.prev,
		After:            after,
		HighlightsBefore: r.prevHl,
		HighlightsAfter:  s.Highlights.Clone(),
		Pointers:         s.Pointers.Clone(),
		MoveArrows:       append([]MoveArrow(nil), s.Arrows...),
		Explanation:      s.Explanation,
		Metrics:          r.mx,
	})
	r.prev = after
	r.prevHl = s.Highlights.Clone()
}

// Steps returns the accumulated trace.
func (r *Recorder) Steps() Trace { return r.steps }
