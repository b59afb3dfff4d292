//go:build linux

package judge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystemClock_Monotonic(t *testing.T) {
	c := SystemClock{}
	t0 := c.Now()
	time.Sleep(5 * time.Millisecond)
	t1 := c.Now()
	require.True(t, t1.After(t0))
}
