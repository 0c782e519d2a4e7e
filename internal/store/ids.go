package store

import (
	"fmt"
	"strings"
	"time"
)

// IDSource hands out item ids. Every call returns a value greater than the
// previous one.
type IDSource interface {
	Next() int64
}

// Counter yields 1, 2, 3, ...
type Counter struct {
	last int64
}

func (c *Counter) Next() int64 {
	c.last++
	return c.last
}

// Clock derives ids from wall-clock milliseconds. When the clock has not
// advanced since the previous call (or went backwards) it returns last+1.
type Clock struct {
	Now  func() time.Time
	last int64
}

func (c *Clock) Next() int64 {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	id := now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

// NewIDSource returns the source registered under name ("counter" or "clock").
func NewIDSource(name string) (IDSource, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "counter":
		return &Counter{}, nil
	case "clock":
		return &Clock{}, nil
	}
	return nil, fmt.Errorf("unknown id source %q (want counter or clock)", name)
}
