package unittest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// RequireCloseBefore requires that the given channel closes before the
// given duration elapses.
func RequireCloseBefore(t *testing.T, c <-chan struct{}, d time.Duration, message string) {
	select {
	case <-c:
	case <-time.After(d):
		require.Fail(t, "channel did not close in time", message)
	}
}

// RequireNeverClosedWithin requires that the given channel stays open for
// at least the given duration.
func RequireNeverClosedWithin(t *testing.T, c <-chan struct{}, d time.Duration, message string) {
	select {
	case <-c:
		require.Fail(t, "channel closed too early", message)
	case <-time.After(d):
	}
}
