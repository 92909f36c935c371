// Package literal parses signed decimal numerals like "1335020400.50",
// "-.5" or "-1000" into timestamps.
//
// Because a timestamp's nanoseconds are always a non-negative offset added
// to its seconds, a negative numeral with a fraction lands one whole second
// lower than its integer part: "-0.5" parses to (-1, 500_000_000), which is
// -(0+1) + 0.5.
package literal

import (
	"bytes"
	"math"

	"unixts.mleku.dev/errorf"
	"unixts.mleku.dev/ints"
	"unixts.mleku.dev/timestamp"
)

// Parse converts a textual signed decimal numeral into a timestamp. The
// numeral is an optional leading '-' (whitespace after it is allowed), an
// optional whole part, and an optional '.' followed by fraction digits; a
// bare leading '.' reads as "0.". Fractions are kept to nanosecond
// precision: shorter ones are zero-extended and digits past the ninth are
// dropped. Empty input, a second '.', or stray non-digit characters are
// errors.
func Parse(b []byte) (t *timestamp.T, err error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		err = errorf.E("empty timestamp literal")
		return
	}
	var neg bool
	if b[0] == '-' {
		neg = true
		b = bytes.TrimSpace(b[1:])
	}
	dot := bytes.IndexByte(b, '.')
	if dot < 0 {
		// pure integer, nothing to normalize
		var sec int64
		if sec, err = parseSeconds(b); err != nil {
			return
		}
		if neg {
			sec = -sec
		}
		return timestamp.New(sec, 0), nil
	}
	if b[0] == '.' {
		b = append([]byte{'0'}, b...)
		dot++
	}
	if bytes.IndexByte(b[dot+1:], '.') >= 0 {
		err = errorf.E("more than one '.' in timestamp literal '%s'", b)
		return
	}
	var sec int64
	if sec, err = parseSeconds(b[:dot]); err != nil {
		return
	}
	frac := b[dot+1:]
	if len(frac) > 9 {
		// digits past nanosecond precision round down
		frac = frac[:9]
	}
	padded := make([]byte, 0, 9)
	padded = append(padded, frac...)
	for len(padded) < 9 {
		padded = append(padded, '0')
	}
	n := ints.New(0)
	var rem []byte
	if rem, err = n.Unmarshal(padded); err != nil {
		return
	}
	if len(rem) != 0 {
		err = errorf.E("non-digit characters in fraction of timestamp literal '%s'", b)
		return
	}
	nano := n.Uint32()
	// the fraction is a positive offset added to the seconds, so a negative
	// numeral with a non-zero fraction sits one whole second lower
	if neg {
		if nano != 0 {
			sec++
		}
		sec = -sec
	}
	return timestamp.New(sec, nano), nil
}

// MustParse is Parse for literals in source: it panics on malformed input.
func MustParse(b []byte) (t *timestamp.T) {
	t, err := Parse(b)
	if err != nil {
		panic(err)
	}
	return
}

func parseSeconds(b []byte) (sec int64, err error) {
	n := ints.New(0)
	var rem []byte
	if rem, err = n.Unmarshal(b); err != nil {
		return
	}
	if len(rem) != 0 {
		err = errorf.E("non-digit characters in timestamp literal '%s'", b)
		return
	}
	if n.Uint64() > math.MaxInt64 {
		err = errorf.E("timestamp literal '%s' overflows int64 seconds", b)
		return
	}
	return n.Int64(), nil
}
