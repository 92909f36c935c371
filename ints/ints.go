// Package ints is an optimised codec for decimal numbers in ASCII format.
// Encoding uses a base of 10000 and a lookup table so it is faster than
// strconv, and decoding is a strict leading digit-run scan that keeps
// leading zeroes significant, which matters when the digits being read are
// the fractional part of a number.
package ints

import (
	_ "embed"
	"math"

	"unixts.mleku.dev/errorf"
)

// run this to regenerate (pointlessly) the base 10 array of 4 places per entry
//go:generate go run ./gen/.

//go:embed base10k.txt
var base10k []byte

const base = 10000

type T struct {
	N uint64
}

func New[V uint | int | uint64 | uint32 | uint16 | uint8 | int64 | int32 | int16 | int8](n V) *T {
	return &T{uint64(n)}
}

func (n *T) Uint64() uint64 { return n.N }
func (n *T) Int64() int64   { return int64(n.N) }
func (n *T) Uint32() uint32 { return uint32(n.N) }

var powers = []*T{
	{1},
	{1_0000},
	{1_0000_0000},
	{1_0000_0000_0000},
	{1_0000_0000_0000_0000},
}

const zero = '0'
const nine = '9'

// Marshal appends the decimal rendering of the value to dst.
func (n *T) Marshal(dst []byte) (b []byte) {
	nn := n.N
	b = dst
	if n.N == 0 {
		b = append(b, '0')
		return
	}
	var i int
	var trimmed bool
	k := len(powers)
	for k > 0 {
		k--
		q := n.N / powers[k].N
		if !trimmed && q == 0 {
			continue
		}
		offset := q * 4
		bb := base10k[offset : offset+4]
		if !trimmed {
			for i = range bb {
				if bb[i] != '0' {
					bb = bb[i:]
					trimmed = true
					break
				}
			}
		}
		b = append(b, bb...)
		n.N = n.N - q*powers[k].N
	}
	n.N = nn
	return
}

// Unmarshal reads the digit run at the start of b into the value and
// returns everything after it. Leading zeroes are read as significant
// digits, so "007" decodes as 7 after consuming all three bytes. It is an
// error if b is empty, if the first byte is not a digit, or if the run
// does not fit in a uint64.
func (n *T) Unmarshal(b []byte) (r []byte, err error) {
	if len(b) < 1 {
		err = errorf.E("zero length number")
		return
	}
	if b[0] < zero || b[0] > nine {
		err = errorf.E("number starts with non-digit character '%c'", b[0])
		return
	}
	var sLen int
	for ; sLen < len(b) && b[sLen] >= zero && b[sLen] <= nine; sLen++ {
	}
	r = b[sLen:]
	b = b[:sLen]
	n.N = 0
	for _, ch := range b {
		ch -= zero
		if n.N > (math.MaxUint64-uint64(ch))/10 {
			n.N = 0
			r = nil
			err = errorf.E("number '%s' overflows uint64", b)
			return
		}
		n.N = n.N*10 + uint64(ch)
	}
	return
}
