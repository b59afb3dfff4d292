//go:build linux

package judge

import (
	"fmt"
	"log/slog"

	"github.com/ja7ad/judge/pkg/paths"
)

// CaseRunner runs one case and reports its verdict. Supervisor satisfies it.
type CaseRunner interface {
	RunCase(caseID int, command []string, stdinPath, stdoutPath string, timeLimitMs int64, memLimitBytes uint64) CaseResult
}

// CaseDriver iterates cases 1..N, invoking a CaseRunner per case and
// accumulating the verdict vector. Cases share no mutable state: one case's
// outcome never influences another's inputs or limits.
type CaseDriver struct {
	Runner CaseRunner
	Paths  paths.Resolver
}

// Run executes cfg.CaseCount cases in order and returns the accumulated
// results, always of length cfg.CaseCount.
func (d CaseDriver) Run(cfg RunConfig) []CaseResult {
	results := make([]CaseResult, 0, cfg.CaseCount)

	for i := 1; i <= cfg.CaseCount; i++ {
		slog.Info("casedriver: running case", "case_id", i, "of", cfg.CaseCount)

		in := d.Paths.CaseInput(i)
		out := d.Paths.CaseOutput(i)

		result := d.Runner.RunCase(i, cfg.Command, in, out, cfg.TimeLimitMs, cfg.MemLimitBytes)
		results = append(results, result)

		slog.Info("casedriver: case finished",
			"case_id", i, "status", result.Status,
			"time_used_ms", result.TimeUsed, "space_used_bytes", result.SpaceUsed)
	}

	return results
}

// Describe returns a short human summary, useful for dev-mode console output.
func Describe(results []CaseResult) string {
	counts := map[Verdict]int{}
	for _, r := range results {
		counts[r.Status]++
	}
	return fmt.Sprintf("OK=%d RE=%d TLE=%d MLE=%d", counts[OK], counts[RE], counts[TLE], counts[MLE])
}
