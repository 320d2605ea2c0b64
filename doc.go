// Package algolens is an interactive lens on classic sorting and searching
// algorithms — every run is replayed as a deterministic sequence of
// inspectable snapshots, ready for step-through playback or head-to-head
// comparison.
//
// 🚀 What is algolens?
//
//	A dependency-light trace engine that brings together:
//		• Step traces: full before/after snapshots with highlights & metrics
//		• Instrumenters: 6 sorting + 4 searching algorithms, faithfully replayed
//		• Playback: a single-trace cursor with play/pause/step/seek/reset
//		• Comparison: two algorithms under one shared clock, with a
//		  fairness-normalized timeline, work score and speed verdict
//		• Datasets: deterministic input builders (random, sorted, reversed…)
//		• A terminal UI (cmd/algolens) that renders all of the above
//
// ✨ Why choose algolens?
//
//   - Deterministic – identical inputs always yield the identical trace
//   - Inspectable – each step carries both array states, so no replaying
//   - Fair – comparison mode filters narration steps before scoring
//   - Pure Go core – the engine has no UI or clock dependencies
//
// Under the hood, everything is organized into small focused packages:
//
//	core/      — Step, Highlights, MoveArrow, Metrics, Trace & the Recorder
//	sorting/   — bubble, selection, insertion, merge, quick, heap
//	searching/ — linear, binary, jump, interpolation
//	playback/  — the single-trace playback state machine
//	compare/   — timeline filter, work estimator, dual-lane scheduler, verdicts
//	dataset/   — input array builders and list parsing
//
// Quick ASCII example of one bubble-sort step:
//
//	before: [3 1 2]      after: [1 3 2]
//	         ↑ ↑                 ↑ ↑
//	       compare              swap
//
// Dive into each package's doc.go for full contracts, and into cmd/algolens
// for the interactive front-end.
//
//	go get github.com/algolens/algolens
package algolens
