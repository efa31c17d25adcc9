package site

import "time"

// Clock supplies the current year, the only time-dependent input to composition.
type Clock interface {
	Year() int
}

// FixedClock always reports the same year.
type FixedClock int

func (c FixedClock) Year() int { return int(c) }

type systemClock struct{ now func() time.Time }

func (c systemClock) Year() int { return c.now().Year() }

// SystemClock reads the local wall clock.
func SystemClock() Clock { return systemClock{now: time.Now} }
