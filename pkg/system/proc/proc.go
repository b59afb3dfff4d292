//go:build linux

package proc

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PageSize returns the system memory page size in bytes.
// It first checks an env override (PAGE_SIZE) to ease testing, then falls
// back to os.Getpagesize().
func PageSize() int {
	if ps := os.Getenv("PAGE_SIZE"); ps != "" {
		if v, _ := strconv.Atoi(ps); v > 0 {
			return v
		}
	}
	return os.Getpagesize()
}

// Exists reports whether a given PID currently exists in /proc. A one-shot
// stat of /proc/<pid>; used by the memory sampler to distinguish "the child
// is still running" from "the child is gone" without racing a process wait.
func Exists(pid int) bool {
	_, err := os.Stat(fmt.Sprintf("/proc/%d", pid))
	return err == nil
}

// ReadProcRSS returns the resident set size in bytes for a PID. It prefers
// smaps_rollup (aggregated, since kernel 4.14) for accuracy, falling back to
// statm's resident page count when smaps_rollup is unavailable.
//
// Returns ErrNoRSS if neither source is readable, which also covers the case
// where the PID has already exited between the caller's existence check and
// this read.
func ReadProcRSS(pid int) (uint64, error) {
	// Prefer smaps_rollup
	if f, err := os.Open(fmt.Sprintf("/proc/%d/smaps_rollup", pid)); err == nil {
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if strings.HasPrefix(sc.Text(), "Rss:") {
				fs := strings.Fields(sc.Text())
				if len(fs) >= 2 {
					kb, _ := strconv.ParseUint(fs[1], 10, 64)
					return kb * 1024, nil
				}
			}
		}
	}
	// Fallback: statm field 2 × page size
	if b, err := os.ReadFile(fmt.Sprintf("/proc/%d/statm", pid)); err == nil {
		fs := strings.Fields(string(b))
		if len(fs) >= 2 {
			pages, _ := strconv.ParseUint(fs[1], 10, 64)
			return pages * uint64(PageSize()), nil
		}
	}
	return 0, ErrNoRSS
}
