//go:build linux

package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CASE_COUNT", "3")
	t.Setenv("TIME_LIMIT", "1000")
	t.Setenv("SPACE_LIMIT", "131072")
	t.Setenv("EXEC_COMMAND", `["./solution"]`)
}

func TestLoad_Valid(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.CaseCount)
	require.EqualValues(t, 1000, cfg.TimeLimitMs)
	require.EqualValues(t, 131072*1024, cfg.MemLimitBytes)
	require.Equal(t, []string{"./solution"}, cfg.Command)
	require.False(t, cfg.Dev)
}

func TestLoad_DevFlag(t *testing.T) {
	setValidEnv(t)
	t.Setenv("DEV", "1")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Dev)
}

func TestLoad_MissingCaseCount(t *testing.T) {
	setValidEnv(t)
	t.Setenv("CASE_COUNT", "")

	_, err := Load()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingEnv))
}

func TestLoad_NonPositiveCaseCount(t *testing.T) {
	setValidEnv(t)
	t.Setenv("CASE_COUNT", "0")

	_, err := Load()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrBadCaseCount))
}

func TestLoad_MalformedExecCommand(t *testing.T) {
	setValidEnv(t)
	t.Setenv("EXEC_COMMAND", "not-json")

	_, err := Load()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrBadExecCommand))
}

func TestLoad_EmptyExecCommand(t *testing.T) {
	setValidEnv(t)
	t.Setenv("EXEC_COMMAND", "[]")

	_, err := Load()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrBadExecCommand))
}

func TestLoad_SpaceLimitUnitConversion(t *testing.T) {
	setValidEnv(t)
	t.Setenv("SPACE_LIMIT", "1024")

	cfg, err := Load()
	require.NoError(t, err)
	require.EqualValues(t, 1024*1024, cfg.MemLimitBytes)
}
