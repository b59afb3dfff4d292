//go:build linux

package judge

import "github.com/ja7ad/judge/pkg/system/proc"

// MemoryProbe returns a one-shot resident-memory reading for a PID.
type MemoryProbe interface {
	// Sample returns the process's current resident memory in bytes, or
	// ok=false if the process no longer exists.
	Sample(pid int) (bytes uint64, ok bool)
}

// ProcfsMemoryProbe reads resident memory from /proc. Stateless: every call
// refreshes from the filesystem, so there is no stale-cache risk.
type ProcfsMemoryProbe struct{}

func (ProcfsMemoryProbe) Sample(pid int) (uint64, bool) {
	if !proc.Exists(pid) {
		return 0, false
	}
	rss, err := proc.ReadProcRSS(pid)
	if err != nil {
		return 0, false
	}
	return rss, true
}
