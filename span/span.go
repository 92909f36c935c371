// Package span is a non-negative stretch of time as whole seconds and a
// sub-second nanosecond offset. Unlike a timestamp it has no sign, so it is
// the natural operand for shifting a timestamp by a known duration.
package span

import (
	"time"

	"unixts.mleku.dev/errorf"
)

// T is a span of Sec whole seconds plus Nano nanoseconds, with Nano always
// in [0, 1_000_000_000) after construction.
type T struct {
	Sec  uint64
	Nano uint32
}

// New creates a span from the given seconds and nanoseconds. Nanoseconds of
// a whole second or more are carried into the seconds.
func New(sec uint64, nano uint32) (s *T) {
	for nano >= 1_000_000_000 {
		sec++
		nano -= 1_000_000_000
	}
	return &T{Sec: sec, Nano: nano}
}

// FromDuration converts a time.Duration to a span. Negative durations have
// no span representation and return an error.
func FromDuration(d time.Duration) (s *T, err error) {
	if d < 0 {
		err = errorf.E("negative duration %v cannot be a span", d)
		return
	}
	return New(uint64(d/time.Second), uint32(d%time.Second)), nil
}

// Duration returns the span as a time.Duration. Spans beyond the int64
// nanosecond range (about 292 years) do not fit and the result is
// undefined for them, the same caveat as time.Time.UnixNano.
func (s *T) Duration() time.Duration {
	return time.Duration(s.Sec)*time.Second + time.Duration(s.Nano)
}

// Seconds returns the whole seconds of the span.
func (s *T) Seconds() uint64 { return s.Sec }

// Nanos returns the sub-second nanoseconds of the span.
func (s *T) Nanos() uint32 { return s.Nano }

// Equal reports whether two spans are the same length.
func (s *T) Equal(other *T) bool {
	return s.Sec == other.Sec && s.Nano == other.Nano
}
