package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/ui"
)

func fixedClock(start time.Time) (*time.Time, func() time.Time) {
	now := start
	return &now, func() time.Time { return now }
}

func TestPushAndDismiss(t *testing.T) {
	c := NewCenter(time.Second)
	n, cmd := c.Push(Success, "Todo added!")
	require.NotNil(t, cmd)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, Success, n.Kind)
	assert.Len(t, c.Active(), 1)

	c.Dismiss("unknown")
	assert.Equal(t, 1, c.Len())

	c.Dismiss(n.ID)
	assert.Empty(t, c.Active())
}

func TestActiveDropsExpired(t *testing.T) {
	now, clock := fixedClock(time.Unix(1000, 0))
	c := NewCenter(2 * time.Second)
	c.Now = clock

	c.Push(Info, "first")
	*now = now.Add(time.Second)
	c.Push(Info, "second")
	*now = now.Add(1500 * time.Millisecond)

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Text)
}

func TestPushBoundsActive(t *testing.T) {
	c := NewCenter(time.Minute)
	c.Max = 2
	c.Push(Info, "a")
	c.Push(Info, "b")
	c.Push(Info, "c")

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "b", active[0].Text)
	assert.Equal(t, "c", active[1].Text)
}

func TestDefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewCenter(0).TTL)
}

func TestView(t *testing.T) {
	th := ui.Named("mono")
	c := NewCenter(time.Minute)
	assert.Equal(t, "", c.View(th))

	c.Push(Success, "Todo added!")
	c.Push(Warning, "Please enter a todo.")
	c.Push(Error, "Todo deleted!")

	assert.Equal(t, "x Todo added!\n! Please enter a todo.\n✖ Todo deleted!", c.View(th))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
