// Package bench is the measurement harness: it times repeated multiplies,
// summarizes the durations, and drives whole benchmark sessions.
//
// The bench package provides:
//
//   - Measure / Summarize: wall-clock timing of `runs` calls and the
//     mean, median, population standard deviation, min and max of the samples.
//   - Registry: the named algorithms a session can select
//     (ijk, ikj, kij, blocked, blocked-parallel, reference).
//   - Plan: the YAML-loadable session description (sizes, runs, seed, block
//     size, algorithms, baseline, verification tolerances).
//   - Runner: executes a Plan, verifies each product against the reference,
//     computes speedups and hands inputs and products to an optional Sink.
//   - Host: a fingerprint of the measuring machine.
//
// Nothing in this package logs or writes files; callers observe progress
// through Runner.Progress and persist through Sink.
package bench
