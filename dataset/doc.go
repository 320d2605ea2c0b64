// Package dataset builds and parses the integer arrays the trace engine
// consumes.
//
// What you get:
//
//   - 🎲 Deterministic generators — Random, Sorted, Reversed, NearlySorted,
//     FewUnique. Every stochastic path is driven by an explicit seed
//     (WithSeed), so the same options always yield the same array.
//   - 🧰 Functional options — WithSize, WithValueRange, WithSeed,
//     WithSwapFraction, WithDistinct. Option constructors validate and
//     panic on meaningless input; generators themselves never panic.
//   - ✂️ Input parsing — ParseList turns a comma-separated string into an
//     int slice, silently dropping tokens that do not parse. ParseTarget
//     resolves a search target with a first-element fallback.
//
// Contracts:
//
//   - Determinism: identical options ⇒ identical output, byte for byte.
//   - Generators return fresh slices; callers may mutate freely.
//   - ParseList returns ErrNoValues when no token survives parsing, and
//     callers are expected to keep their previous array untouched.
//
// See generators.go for the per-generator shape guarantees and parse.go
// for the exact tokenization rules.
package dataset
