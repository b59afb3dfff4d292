//go:build linux

package judge

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newCaseFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "1.in")
	out := filepath.Join(dir, "1.out")
	require.NoError(t, os.WriteFile(in, []byte("hello\n"), 0o644))
	return in, out
}

func newTestSupervisor() *Supervisor {
	return &Supervisor{
		Launcher:       ProcessLauncher{},
		Prober:         ProcfsMemoryProbe{},
		Term:           Terminator{},
		Clock:          SystemClock{},
		SampleInterval: 10 * time.Millisecond,
	}
}

func TestRunCase_OK(t *testing.T) {
	in, out := newCaseFiles(t)
	sup := newTestSupervisor()

	result := sup.RunCase(1, []string{"/bin/sh", "-c", "cat >/dev/null; exit 0"}, in, out, 2000, 1<<30)

	require.Equal(t, OK, result.Status)
	require.Less(t, result.TimeUsed, int64(2000))
	require.GreaterOrEqual(t, result.TimeUsed, int64(0))
}

func TestRunCase_RuntimeError(t *testing.T) {
	in, out := newCaseFiles(t)
	sup := newTestSupervisor()

	result := sup.RunCase(1, []string{"/bin/sh", "-c", "exit 7"}, in, out, 2000, 1<<30)

	require.Equal(t, RE, result.Status)
}

func TestRunCase_TimeLimitExceeded(t *testing.T) {
	in, out := newCaseFiles(t)
	sup := newTestSupervisor()

	start := time.Now()
	result := sup.RunCase(1, []string{"/bin/sh", "-c", "while true; do :; done"}, in, out, 300, 1<<30)
	elapsed := time.Since(start)

	require.Equal(t, TLE, result.Status)
	require.GreaterOrEqual(t, result.TimeUsed, int64(250))
	require.Less(t, elapsed, 2*time.Second, "cleanup must not hang well past the limit")
}

func TestRunCase_SpawnFailure(t *testing.T) {
	in, out := newCaseFiles(t)
	sup := newTestSupervisor()

	result := sup.RunCase(1, []string{filepath.Join(t.TempDir(), "does-not-exist")}, in, out, 1000, 1<<30)

	require.Equal(t, RE, result.Status)
	require.Equal(t, int64(0), result.TimeUsed)
	require.Equal(t, int64(0), result.SpaceUsed)
}

func TestRunCase_MemoryLimitExceeded(t *testing.T) {
	in, out := newCaseFiles(t)
	sup := newTestSupervisor()
	sup.Prober = fakeMemoryProbe{bytes: 10 * 1024 * 1024, ok: true}

	result := sup.RunCase(1, []string{"/bin/sh", "-c", "sleep 1"}, in, out, 2000, 1024)

	require.Equal(t, MLE, result.Status)
	require.Greater(t, result.SpaceUsed, int64(1024))
}

func TestRunCase_DisappearingChildDefersToCompletion(t *testing.T) {
	in, out := newCaseFiles(t)
	sup := newTestSupervisor()
	sup.SampleInterval = 5 * time.Millisecond
	sup.Prober = fakeMemoryProbe{ok: false}

	result := sup.RunCase(1, []string{"/bin/sh", "-c", "sleep 0.05; exit 0"}, in, out, 2000, 1<<30)

	require.Equal(t, OK, result.Status)
}

type fakeMemoryProbe struct {
	bytes uint64
	ok    bool
}

func (f fakeMemoryProbe) Sample(int) (uint64, bool) { return f.bytes, f.ok }
