package proc

import "errors"

// ErrNoRSS indicates that resident set size could not be determined for a
// PID (neither smaps_rollup nor statm succeeded). The memory sampler treats
// this the same as a vanished process: it cannot judge, so it defers.
var ErrNoRSS = errors.New("proc: no rss")
