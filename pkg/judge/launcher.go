//go:build linux

package judge

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/ja7ad/judge/pkg/system/cgroup"
)

// ProcessLauncher spawns a child with redirected stdin/stdout, places it in
// its own process group, and returns a handle plus nothing else — the
// Supervisor is responsible for timing, see Clock.
type ProcessLauncher struct {
	// Dev enables a verbose slog.Debug line per spawn, including the host's
	// detected cgroup mode (diagnostic only; the memory sampler never reads
	// cgroup accounting).
	Dev bool
}

// Launch opens stdinPath for reading and stdoutPath for writing (truncating
// it if it exists), spawns command with those as the child's stdin/stdout,
// and places the child in a new process group.
//
// If command has exactly one element, the launcher first chmods it to
// 0o755 so a freshly-extracted submission binary can be executed;
// best-effort — a chmod failure is logged and execution proceeds anyway.
//
// Process-group placement is requested from the child's pre-exec hook
// (SysProcAttr.Setpgid), which avoids the parent-vs-child race a post-spawn
// setpgid call would have. Placement is still verified after Start returns;
// if it cannot be confirmed, the handle reports Grouped=false and the
// Terminator will fall back to signalling the pid directly.
func (l ProcessLauncher) Launch(command []string, stdinPath, stdoutPath string) (*ProcessHandle, error) {
	if len(command) == 0 {
		return nil, ErrEmptyCommand
	}

	if len(command) == 1 {
		if err := os.Chmod(command[0], 0o755); err != nil {
			slog.Warn("launcher: chmod executable failed", "path", command[0], "err", err)
		}
	}

	stdin, err := os.Open(stdinPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open input: %v", ErrSpawnFailed, err)
	}
	stdout, err := os.OpenFile(stdoutPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		_ = stdin.Close()
		return nil, fmt.Errorf("%w: create output: %v", ErrSpawnFailed, err)
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		_ = stdout.Close()
		return nil, fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}

	pid := cmd.Process.Pid
	grouped := true
	pgid, gerr := unix.Getpgid(pid)
	if gerr != nil || pgid != pid {
		grouped = false
		slog.Warn("launcher: process-group placement could not be confirmed", "pid", pid, "err", gerr)
	}

	if l.Dev {
		if ver, detail, derr := cgroup.Detect(); derr == nil {
			slog.Debug("launcher: spawned child", "pid", pid, "grouped", grouped, "cgroup_mode", ver.String(), "cgroup_detail", detail)
		} else {
			slog.Debug("launcher: spawned child", "pid", pid, "grouped", grouped)
		}
	}

	return &ProcessHandle{
		Cmd:     cmd,
		Pid:     pid,
		Pgid:    pid,
		Grouped: grouped,
		stdin:   stdin,
		stdout:  stdout,
	}, nil
}
