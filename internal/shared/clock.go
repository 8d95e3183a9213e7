package shared

import "time"

// Clock supplies the current time to services so tests can control it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock returns a preset instant, advanced manually.
type FixedClock struct {
	Instant time.Time
}

// Now returns the preset instant.
func (c *FixedClock) Now() time.Time { return c.Instant }

// Advance moves the clock forward.
func (c *FixedClock) Advance(d time.Duration) {
	c.Instant = c.Instant.Add(d)
}
