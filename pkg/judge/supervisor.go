//go:build linux

package judge

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ja7ad/judge/pkg/system/util"
	"github.com/ja7ad/judge/pkg/types"
)

// DefaultMemorySampleInterval is the memory observer's polling cadence. A
// tunable constant rather than a literal buried in the observer, per the
// trade-off between responsiveness and sampling overhead.
const DefaultMemorySampleInterval = 50 * time.Millisecond

// Supervisor runs one case: it launches a child, races three observers
// (completion, wall-clock timeout, memory sampler) against each other,
// resolves a single verdict, and reaps the child before RunCase returns. On
// any non-OK verdict the child's process group (or, if placement was not
// confirmed, the child alone) is sent SIGKILL first; on OK the child has
// already exited and no signal is sent, so descendants it left running are
// not killed.
type Supervisor struct {
	Launcher ProcessLauncher
	Prober   MemoryProbe
	Term     Terminator
	Clock    Clock

	// SampleInterval overrides DefaultMemorySampleInterval when positive.
	SampleInterval time.Duration

	// Dev enables a verbose per-case slog.Debug summary.
	Dev bool
}

// NewSupervisor builds a Supervisor with production collaborators.
func NewSupervisor(dev bool) *Supervisor {
	return &Supervisor{
		Launcher: ProcessLauncher{Dev: dev},
		Prober:   ProcfsMemoryProbe{},
		Term:     Terminator{},
		Clock:    SystemClock{},
		Dev:      dev,
	}
}

// RunCase runs command once under the given limits and returns its verdict.
// It never returns an error for per-case failures (spawn errors, runtime
// errors, timeouts, memory overshoots): those are encoded as Verdict values
// in the returned CaseResult, per the judge's error-handling policy of
// converting all recoverable per-case failures into result values.
func (s *Supervisor) RunCase(caseID int, command []string, stdinPath, stdoutPath string, timeLimitMs int64, memLimitBytes uint64) CaseResult {
	interval := s.SampleInterval
	if interval <= 0 {
		interval = DefaultMemorySampleInterval
	}

	t0 := s.Clock.Now()

	handle, err := s.Launcher.Launch(command, stdinPath, stdoutPath)
	if err != nil {
		slog.Warn("supervisor: spawn failed", "case_id", caseID, "err", err)
		return CaseResult{CaseID: caseID, Status: RE, TimeUsed: 0, SpaceUsed: 0}
	}

	peak := &PeakMemory{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered 1: the winning observer's send never blocks. Losing
	// observers race cancellation instead of blocking forever on a full
	// channel.
	results := make(chan Verdict, 1)

	var wg sync.WaitGroup
	wg.Add(3)

	go s.completionObserver(ctx, &wg, handle, results)
	go s.timeObserver(ctx, &wg, timeLimitMs, results)
	go s.memoryObserver(ctx, &wg, handle.Pid, memLimitBytes, interval, peak, results)

	verdict := <-results
	if verdict == continueSentinel {
		// The memory observer saw the process vanish before it could
		// decide whether that was a clean exit or a self-inflicted
		// crash; defer to whichever of completion/time observers
		// decides next.
		verdict = <-results
	}

	t1 := s.Clock.Now()

	cancel()
	if verdict != OK {
		s.Term.Kill(handle)
	}

	wg.Wait()
	handle.Release()

	spaceUsed := peak.Get()

	result := CaseResult{
		CaseID:    caseID,
		Status:    verdict,
		TimeUsed:  t1.Sub(t0).Milliseconds(),
		SpaceUsed: int64(spaceUsed),
	}

	if s.Dev {
		ratio := util.Clamp01(float64(spaceUsed) / float64(memLimitBytes))
		slog.Debug("supervisor: case finished",
			"case_id", caseID, "status", verdict,
			"time_used_ms", result.TimeUsed,
			"peak_memory", types.Bytes(spaceUsed).Humanized(),
			"limit_fraction", ratio,
		)
	}

	return result
}

func (s *Supervisor) completionObserver(ctx context.Context, wg *sync.WaitGroup, handle *ProcessHandle, results chan<- Verdict) {
	defer wg.Done()

	err := handle.Cmd.Wait()

	var v Verdict
	if err == nil {
		v = OK
	} else {
		v = RE
	}

	select {
	case results <- v:
	case <-ctx.Done():
	}
}

func (s *Supervisor) timeObserver(ctx context.Context, wg *sync.WaitGroup, timeLimitMs int64, results chan<- Verdict) {
	defer wg.Done()

	timer := time.NewTimer(time.Duration(timeLimitMs) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-timer.C:
		select {
		case results <- TLE:
		case <-ctx.Done():
		}
	case <-ctx.Done():
	}
}

func (s *Supervisor) memoryObserver(ctx context.Context, wg *sync.WaitGroup, pid int, memLimitBytes uint64, interval time.Duration, peak *PeakMemory, results chan<- Verdict) {
	defer wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sample, ok := s.Prober.Sample(pid)
			if !ok {
				select {
				case results <- continueSentinel:
				case <-ctx.Done():
				}
				return
			}

			peak.Update(sample)

			if sample > memLimitBytes {
				select {
				case results <- MLE:
				case <-ctx.Done():
				}
				return
			}
		}
	}
}
