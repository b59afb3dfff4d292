//go:build linux

package judge

import "errors"

var (
	// ErrEmptyCommand means RunConfig.Command (or the command vector handed
	// to the launcher) had no elements.
	ErrEmptyCommand = errors.New("judge: empty command")

	// ErrSpawnFailed wraps an underlying OS error from opening the case's
	// input/output files or from exec.Cmd.Start.
	ErrSpawnFailed = errors.New("judge: spawn failed")
)
