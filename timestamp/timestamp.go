// Package timestamp is a value type for instants as whole seconds since the
// unix epoch plus a sub-second nanosecond offset.
//
// The representation is a signed second count and an unsigned nanosecond
// field that is always a non-negative offset added to the seconds, whatever
// their sign. A timestamp of -0.25 seconds is therefore (-1, 750_000_000),
// never (0, -250_000_000), which keeps the (Sec, Nano) pair ordered
// lexicographically in step with real time.
//
// All arithmetic is total and allocation is limited to the result value.
// Second arithmetic uses native int64 semantics, so results that exceed the
// int64 range wrap rather than saturate or fail.
package timestamp

import (
	"strconv"
	"time"

	"unixts.mleku.dev/errorf"
	"unixts.mleku.dev/ints"
	"unixts.mleku.dev/span"
)

// T is a timestamp of Sec whole seconds since the unix epoch plus Nano
// nanoseconds, with Nano always in [0, 1_000_000_000) after construction.
// The zero value is the epoch. Values are immutable: every operation
// returns a new one, and the struct compares with == and works as a map
// key.
type T struct {
	Sec  int64
	Nano uint32
}

// New creates a timestamp from the given seconds and nanoseconds.
// Nanoseconds of a whole second or more are carried into the seconds; this
// is the only place the carry rule lives and every other constructor and
// operator routes through it.
//
// For negative timestamps Nano is always a positive offset, so -0.25
// seconds is New(-1, 750_000_000).
func New(sec int64, nano uint32) (t *T) {
	for nano >= 1_000_000_000 {
		sec++
		nano -= 1_000_000_000
	}
	return &T{Sec: sec, Nano: nano}
}

// From creates a timestamp from a count of whole seconds of any common
// integer width.
func From[V int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32](sec V) (t *T) {
	return &T{Sec: int64(sec)}
}

// FromUnix creates a timestamp from a standard int64 unix second count.
func FromUnix(sec int64) (t *T) { return &T{Sec: sec} }

// split divides a signed sub-second count into floor seconds and a
// non-negative remainder, so that n == sec*unit + rem with 0 <= rem < unit.
func split(n, unit int64) (sec, rem int64) {
	sec = n / unit
	rem = n % unit
	if rem < 0 {
		rem += unit
		sec--
	}
	return
}

// FromNanos creates a timestamp from a count of nanoseconds since the
// epoch. Negative counts floor-divide, so -1_500_000_000 becomes
// (-2, 500_000_000).
func FromNanos(n int64) (t *T) {
	sec, rem := split(n, 1_000_000_000)
	return New(sec, uint32(rem))
}

// FromMicros creates a timestamp from a count of microseconds since the
// epoch, floor-dividing negative counts.
func FromMicros(n int64) (t *T) {
	sec, rem := split(n, 1_000_000)
	return New(sec, uint32(rem*1_000))
}

// FromMillis creates a timestamp from a count of milliseconds since the
// epoch, floor-dividing negative counts, so -1750 becomes
// (-2, 250_000_000).
func FromMillis(n int64) (t *T) {
	sec, rem := split(n, 1_000)
	return New(sec, uint32(rem*1_000_000))
}

// FromTime creates a timestamp from a time.Time. Go reports pre-epoch
// instants as negative seconds with non-negative nanoseconds, which is
// already this representation.
func FromTime(tt time.Time) (t *T) { return New(tt.Unix(), uint32(tt.Nanosecond())) }

// Now returns the current time as a timestamp.
func Now() (t *T) { return FromTime(time.Now()) }

// Seconds returns the whole seconds since the epoch, discarding the
// sub-second part. For negative timestamps this is the floor second, so
// -0.25 seconds reports -1.
func (t *T) Seconds() int64 { return t.Sec }

var pow10 = [10]uint32{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
}

func checkPrecision(e uint) {
	if e > 9 {
		panic("precision exponent out of range 0..9")
	}
}

// AtPrecision returns the time since the epoch as an integer in units of
// 10^-e seconds, so e of 3 gives milliseconds and e of 9 nanoseconds.
// Valid e is 0 through 9, anything larger panics. The result is an int64,
// so as with time.Time.UnixNano the value is undefined once sec*10^e no
// longer fits.
func (t *T) AtPrecision(e uint) int64 {
	checkPrecision(e)
	return t.Sec*int64(pow10[e]) + int64(t.Nano/pow10[9-e])
}

// Subsec returns only the sub-second part in units of 10^-e seconds, so e
// of 3 gives milliseconds. It is never negative, whatever the sign of the
// timestamp. Valid e is 0 through 9, anything larger panics.
func (t *T) Subsec(e uint) uint32 {
	checkPrecision(e)
	return t.Nano / pow10[9-e]
}

// Compare returns -1, 0 or 1 ordering two timestamps by (Sec, Nano), which
// is the same as ordering them by real time.
func (t *T) Compare(other *T) int {
	switch {
	case t.Sec < other.Sec:
		return -1
	case t.Sec > other.Sec:
		return 1
	case t.Nano < other.Nano:
		return -1
	case t.Nano > other.Nano:
		return 1
	}
	return 0
}

// Equal reports whether two timestamps are the same instant.
func (t *T) Equal(other *T) bool { return t.Sec == other.Sec && t.Nano == other.Nano }

// Less reports whether t is before other.
func (t *T) Less(other *T) bool { return t.Compare(other) < 0 }

// Add sums two timestamps. The nanos of two normalized values sum to less
// than two seconds, so New's carry loop runs at most once.
func (t *T) Add(other *T) *T { return New(t.Sec+other.Sec, t.Nano+other.Nano) }

// Sub subtracts other from t, borrowing a whole second when the
// subtrahend's nanos exceed the minuend's. The borrow rule is the same for
// every sign combination of the two second fields.
func (t *T) Sub(other *T) *T {
	if other.Nano > t.Nano {
		return New(t.Sec-other.Sec-1, t.Nano+1_000_000_000-other.Nano)
	}
	return New(t.Sec-other.Sec, t.Nano-other.Nano)
}

// AddSec shifts the timestamp forward by n whole seconds, nanos untouched.
func (t *T) AddSec(n int64) *T { return &T{Sec: t.Sec + n, Nano: t.Nano} }

// SubSec shifts the timestamp back by n whole seconds, nanos untouched.
func (t *T) SubSec(n int64) *T { return &T{Sec: t.Sec - n, Nano: t.Nano} }

// Mod reduces the seconds modulo n, leaving the nanos untouched. This is
// seconds-only modulo, not sub-second modulo.
func (t *T) Mod(n int64) *T { return &T{Sec: t.Sec % n, Nano: t.Nano} }

// AddSpan shifts the timestamp forward by a span.
func (t *T) AddSpan(s *span.T) *T { return New(t.Sec+int64(s.Sec), t.Nano+s.Nano) }

// SubSpan shifts the timestamp back by a span, borrowing a whole second
// when the span's nanos exceed the timestamp's.
func (t *T) SubSpan(s *span.T) *T {
	if s.Nano > t.Nano {
		return New(t.Sec-int64(s.Sec)-1, t.Nano+1_000_000_000-s.Nano)
	}
	return New(t.Sec-int64(s.Sec), t.Nano-s.Nano)
}

// Span converts the timestamp to a span of the same length. Timestamps
// before the epoch have no span representation and return an error.
func (t *T) Span() (s *span.T, err error) {
	if t.Sec < 0 {
		err = errorf.E("negative timestamp %s cannot be a span", t)
		return
	}
	return span.New(uint64(t.Sec), t.Nano), nil
}

// Time returns the timestamp as a time.Time in UTC.
func (t *T) Time() time.Time { return time.Unix(t.Sec, int64(t.Nano)).UTC() }

// In returns the timestamp as a time.Time in the given location. The
// location is entirely the caller's business; only Sec and Nano feed in.
func (t *T) In(loc *time.Location) time.Time { return time.Unix(t.Sec, int64(t.Nano)).In(loc) }

// AppendText appends the default rendering, the decimal whole seconds only,
// to dst.
func (t *T) AppendText(dst []byte) (b []byte) {
	b = dst
	mag := uint64(t.Sec)
	if t.Sec < 0 {
		b = append(b, '-')
		// unsigned negation gives the magnitude even for MinInt64
		mag = -mag
	}
	return ints.New(mag).Marshal(b)
}

// String renders the whole seconds in decimal, e.g. "1335020400".
// Sub-second values are discarded; use Format for fixed precision.
func (t *T) String() string {
	b := make([]byte, 0, 20)
	return string(t.AppendText(b))
}

// Format renders the timestamp as a decimal with exactly prec digits after
// the point, e.g. "1335020400.00" at precision 2. The value is rendered
// through a float64, so very high precision on very large seconds is
// subject to float rounding.
func (t *T) Format(prec uint) string {
	return strconv.FormatFloat(
		float64(t.Sec)+float64(t.Nano)/1_000_000_000, 'f', int(prec), 64)
}
