//go:build linux

package result

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ja7ad/judge/pkg/judge"
)

func TestSink_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "info.json")
	sink := Sink{Path: path}

	results := []judge.CaseResult{
		{CaseID: 1, Status: judge.OK, TimeUsed: 12, SpaceUsed: 4096},
		{CaseID: 2, Status: judge.TLE, TimeUsed: 1000, SpaceUsed: 8192},
	}

	require.NoError(t, sink.Write(results))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []judge.CaseResult
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, results, got)
}

func TestSink_Write_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "info.json")
	sink := Sink{Path: path}

	results := []judge.CaseResult{{CaseID: 1, Status: judge.MLE, TimeUsed: 50, SpaceUsed: 999}}
	require.NoError(t, sink.Write(results))

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed []judge.CaseResult
	require.NoError(t, json.Unmarshal(first, &parsed))
	require.NoError(t, sink.Write(parsed))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, string(first), string(second))
}
