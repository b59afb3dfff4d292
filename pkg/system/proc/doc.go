// Package proc provides lightweight, zero-dependency procfs primitives on
// Linux: page size discovery, PID liveness checks, and resident-memory
// reading for a single PID.
//
// It exists to give the judge's memory sampler (see pkg/judge) a one-shot
// reading of a single process's resident memory without shelling out or
// requiring cgo. It intentionally does not aggregate PIDs, compute deltas,
// or track CPU utilization — those concerns belong to whatever calls this
// package in a loop.
//
// # Reading RSS
//
// ReadProcRSS prefers /proc/<pid>/smaps_rollup (aggregated since kernel
// 4.14), falling back to /proc/<pid>/statm's resident page count times
// PageSize() when smaps_rollup is unavailable. Either source returns bytes.
//
// # Liveness
//
// Exists reports whether /proc/<pid> is still present. It is a plain stat
// call and is intentionally racy against process exit — callers that need
// an authoritative answer should combine it with a blocking wait on the
// process, not rely on Exists alone.
//
// # Testing guidance
//
//   - Tests are hermetic (read from /proc) and require no privileges.
//   - Some kernels may omit smaps_rollup; the statm fallback is exercised
//     by running against a real spawned child.
package proc
