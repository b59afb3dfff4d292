//go:build linux

// Package result serializes a judge run's verdict vector to disk.
package result

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ja7ad/judge/pkg/judge"
)

// Sink writes a completed verdict vector to the result file. Write failure
// is fatal per the judge's error taxonomy: the run's output is unusable
// without it.
type Sink struct {
	// Path is the destination file, created or truncated on Write.
	Path string
}

// Write serializes results as a JSON array, in case execution order, to
// s.Path.
func (s Sink) Write(results []judge.CaseResult) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("result: marshal: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("result: mkdir %s: %w", filepath.Dir(s.Path), err)
	}

	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("result: write %s: %w", s.Path, err)
	}

	return nil
}
