//go:build linux

package judge

import (
	"log/slog"

	"golang.org/x/sys/unix"
)

// Terminator issues a best-effort, fatal, uncatchable signal to a child's
// process group (falling back to the child's pid alone when process-group
// placement at launch could not be confirmed). Errors are logged, never
// raised — the Supervisor only calls this after it already has a verdict.
type Terminator struct{}

// KillGroup sends SIGKILL to every process in pgid's group.
func (Terminator) KillGroup(pgid int) error {
	return unix.Kill(-pgid, unix.SIGKILL)
}

// KillOne sends SIGKILL to a single pid.
func (Terminator) KillOne(pid int) error {
	return unix.Kill(pid, unix.SIGKILL)
}

// Kill terminates handle's child, preferring the process group and falling
// back to the bare pid when the group placement was never confirmed.
func (t Terminator) Kill(handle *ProcessHandle) {
	var err error
	if handle.Grouped {
		err = t.KillGroup(handle.Pgid)
	} else {
		err = t.KillOne(handle.Pid)
	}
	if err != nil {
		slog.Warn("terminator: kill failed", "pid", handle.Pid, "pgid", handle.Pgid, "grouped", handle.Grouped, "err", err)
	}
}
