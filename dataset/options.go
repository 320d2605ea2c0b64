// Package dataset functional options.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic and return sentinel errors.
//   - Determinism is explicit: stochastic generators draw from a seeded
//     rand.Rand resolved in newConfig, never from a global source.
package dataset

import "math/rand"

// Option mutates the generator configuration before an array is built.
// Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config holds the resolved generator parameters. It is never exposed;
// everything flows through Option constructors.
type config struct {
	size     int
	minValue int
	maxValue int
	seed     int64
	swapFrac float64
	distinct int
}

// newConfig resolves defaults, applies opts in order and returns the
// final configuration alongside its seeded RNG.
func newConfig(opts ...Option) (config, *rand.Rand) {
	cfg := config{
		size:     DefaultSize,
		minValue: DefaultMinValue,
		maxValue: DefaultMaxValue,
		seed:     DefaultSeed,
		swapFrac: DefaultSwapFraction,
		distinct: DefaultDistinct,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, rand.New(rand.NewSource(cfg.seed))
}

// WithSize sets the length of the generated array.
// Panics on n < MinSize to surface programmer error early.
func WithSize(n int) Option {
	if n < MinSize {
		panic("dataset: WithSize below minimum")
	}
	return func(c *config) { c.size = n }
}

// WithValueRange bounds generated values to [min, max] inclusive.
// Panics when min > max.
func WithValueRange(min, max int) Option {
	if min > max {
		panic("dataset: WithValueRange inverted")
	}
	return func(c *config) {
		c.minValue = min
		c.maxValue = max
	}
}

// WithSeed fixes the RNG seed so stochastic generators reproduce the
// same array on every run. Use it in tests and examples to lock
// outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithSwapFraction sets the share of adjacent pairs NearlySorted
// perturbs, in [0, 1]. Panics outside that interval.
func WithSwapFraction(f float64) Option {
	if f < 0 || f > 1 {
		panic("dataset: WithSwapFraction out of [0,1]")
	}
	return func(c *config) { c.swapFrac = f }
}

// WithDistinct sets how many distinct values FewUnique draws from.
// Panics on k < 1.
func WithDistinct(k int) Option {
	if k < 1 {
		panic("dataset: WithDistinct below 1")
	}
	return func(c *config) { c.distinct = k }
}
