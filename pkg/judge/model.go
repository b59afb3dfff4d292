//go:build linux

package judge

import (
	"os"
	"os/exec"
	"sync"
)

// RunConfig is immutable for the duration of one judge invocation.
type RunConfig struct {
	// CaseCount is the number of cases to run, N >= 1.
	CaseCount int
	// TimeLimitMs is the wall-clock bound per case, in milliseconds.
	TimeLimitMs int64
	// MemLimitBytes is the resident-memory bound per case, in bytes. Callers
	// ingesting SPACE_LIMIT (which is expressed in KiB on the wire) must
	// convert with types.FromKiB before constructing a RunConfig.
	MemLimitBytes uint64
	// Command is the executable command: Command[0] is the program path,
	// Command[1:] is the argv tail. Never empty.
	Command []string
	// Dev enables verbose diagnostics.
	Dev bool
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	CaseID    int     `json:"case_id"`
	Status    Verdict `json:"status"`
	TimeUsed  int64   `json:"time_used"`
	SpaceUsed int64   `json:"space_used"`
}

// PeakMemory is a shared mutable scalar, monotonically non-decreasing during
// one case, written by the memory observer and read once by the supervisor
// after the observer has been quiesced. The mutex exists purely as a memory
// barrier between the writer goroutine and the single post-cancellation
// read; there is never read-side contention.
type PeakMemory struct {
	mu   sync.Mutex
	peak uint64
}

// Update raises the peak to sample if sample is larger than the current
// peak. It never lowers the peak.
func (p *PeakMemory) Update(sample uint64) {
	p.mu.Lock()
	if sample > p.peak {
		p.peak = sample
	}
	p.mu.Unlock()
}

// Get returns the current peak. Callers must ensure the memory observer has
// been cancelled and has acknowledged cancellation before relying on this
// value as final.
func (p *PeakMemory) Get() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.peak
}

// ProcessHandle is an exclusive handle to a spawned child. Destroying it
// (Release) closes the redirection files; this must only happen after the
// child has been reaped, never before.
type ProcessHandle struct {
	Cmd *exec.Cmd

	// Pid is the child's OS process id.
	Pid int
	// Pgid is the child's process-group id. Equal to Pid when process-group
	// placement succeeded (Grouped is true); otherwise it mirrors Pid but
	// must not be used for group-wide signalling.
	Pgid int
	// Grouped reports whether the child was confirmed to be its own
	// process-group leader.
	Grouped bool

	stdin  *os.File
	stdout *os.File
}

// Release closes the stdin/stdout redirection files. Safe to call once,
// after the child has been reaped.
func (h *ProcessHandle) Release() {
	if h.stdin != nil {
		_ = h.stdin.Close()
	}
	if h.stdout != nil {
		_ = h.stdout.Close()
	}
}
