package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_SetsCurrent(t *testing.T) {
	c := NewCenter(time.Hour)

	n := c.Show("sess-1", "Item added to bag", SeveritySuccess)

	assert.Equal(t, "Item added to bag", n.Message)
	assert.Equal(t, SeveritySuccess, n.Severity)
	assert.False(t, n.IssuedAt.IsZero())

	got, ok := c.Current("sess-1")
	require.True(t, ok)
	assert.Equal(t, n, got)
}

func TestShow_PreemptsPrevious(t *testing.T) {
	c := NewCenter(time.Hour)

	c.Show("sess-1", "first", SeverityInfo)
	c.Show("sess-1", "second", SeverityWarning)

	got, ok := c.Current("sess-1")
	require.True(t, ok)
	assert.Equal(t, "second", got.Message)
	assert.Equal(t, SeverityWarning, got.Severity)
}

func TestShow_SessionsAreIndependent(t *testing.T) {
	c := NewCenter(time.Hour)

	c.Show("sess-1", "for one", SeverityInfo)

	_, ok := c.Current("sess-2")
	assert.False(t, ok)
}

func TestAutoDismiss(t *testing.T) {
	c := NewCenter(20 * time.Millisecond)

	c.Show("sess-1", "fleeting", SeverityInfo)

	require.Eventually(t, func() bool {
		_, ok := c.Current("sess-1")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestAutoDismiss_DoesNotClearPreemptingNotification(t *testing.T) {
	c := NewCenter(30 * time.Millisecond)

	c.Show("sess-1", "first", SeverityInfo)
	time.Sleep(10 * time.Millisecond)
	c.Show("sess-1", "second", SeverityInfo)

	// Past the first message's would-be deadline, the second must survive
	// since its own clock restarted.
	time.Sleep(25 * time.Millisecond)
	got, ok := c.Current("sess-1")
	require.True(t, ok)
	assert.Equal(t, "second", got.Message)

	require.Eventually(t, func() bool {
		_, ok := c.Current("sess-1")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestDismiss(t *testing.T) {
	c := NewCenter(time.Hour)

	c.Show("sess-1", "to be dismissed", SeverityInfo)
	c.Dismiss("sess-1")

	_, ok := c.Current("sess-1")
	assert.False(t, ok)
}

func TestDismiss_MissingIsNoOp(t *testing.T) {
	c := NewCenter(time.Hour)
	assert.NotPanics(t, func() { c.Dismiss("missing") })
}

func TestNewCenter_NonPositiveDurationUsesDefault(t *testing.T) {
	c := NewCenter(0)
	assert.Equal(t, DefaultDismissAfter, c.dismissAfter)
}
