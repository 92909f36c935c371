package ints

import (
	"math"
	"strconv"
	"testing"

	"lukechampine.com/frand"

	"unixts.mleku.dev/chk"
)

func TestMarshalUnmarshal(t *testing.T) {
	b := make([]byte, 0, 20)
	var rem []byte
	var err error
	for i := 0; i < 1000000; i++ {
		n := New(uint64(frand.Intn(math.MaxInt64)))
		b = n.Marshal(b)
		m := New(0)
		if rem, err = m.Unmarshal(b); chk.E(err) {
			t.Fatal(err)
		}
		if n.N != m.N {
			t.Fatalf("failed to round trip %d: got %s -> %d", n.N, b, m.N)
		}
		if len(rem) > 0 {
			t.Fatalf("leftover bytes after round trip: '%s'", rem)
		}
		b = b[:0]
	}
}

func TestMarshalMatchesStrconv(t *testing.T) {
	b := make([]byte, 0, 20)
	for i := 0; i < 100000; i++ {
		n := New(uint64(frand.Intn(math.MaxInt64)))
		b = n.Marshal(b)
		if string(b) != strconv.FormatUint(n.N, 10) {
			t.Fatalf("got %s want %s", b, strconv.FormatUint(n.N, 10))
		}
		b = b[:0]
	}
}

func TestUnmarshalLeadingZeroes(t *testing.T) {
	n := New(0)
	rem, err := n.Unmarshal([]byte("007"))
	if chk.E(err) {
		t.Fatal(err)
	}
	if n.N != 7 {
		t.Fatalf("got %d want 7", n.N)
	}
	if len(rem) != 0 {
		t.Fatalf("leading zeroes not consumed, remainder '%s'", rem)
	}
}

func TestUnmarshalStopsAtNonDigit(t *testing.T) {
	n := New(0)
	rem, err := n.Unmarshal([]byte("123x456"))
	if chk.E(err) {
		t.Fatal(err)
	}
	if n.N != 123 || string(rem) != "x456" {
		t.Fatalf("got %d remainder '%s'", n.N, rem)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	n := New(0)
	if _, err := n.Unmarshal(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := n.Unmarshal([]byte("abc")); err == nil {
		t.Fatal("expected error for non-digit input")
	}
	if _, err := n.Unmarshal([]byte("123456789012345678901")); err == nil {
		t.Fatal("expected error for overlong digit run")
	}
}

func TestUnmarshalOverflow(t *testing.T) {
	// the largest uint64 is 20 digits, so a 20 digit run can still overflow
	n := New(0)
	rem, err := n.Unmarshal([]byte("18446744073709551615"))
	if chk.E(err) {
		t.Fatal(err)
	}
	if n.N != math.MaxUint64 || len(rem) != 0 {
		t.Fatalf("got %d remainder '%s'", n.N, rem)
	}
	if _, err = n.Unmarshal([]byte("18446744073709551616")); err == nil {
		t.Fatal("expected error one above MaxUint64")
	}
	if _, err = n.Unmarshal([]byte("99999999999999999999")); err == nil {
		t.Fatal("expected error for 20 nines")
	}
	// leading zeroes lengthen the run without growing the value
	rem, err = n.Unmarshal([]byte("0000018446744073709551615"))
	if chk.E(err) {
		t.Fatal(err)
	}
	if n.N != math.MaxUint64 || len(rem) != 0 {
		t.Fatalf("got %d remainder '%s'", n.N, rem)
	}
}

func BenchmarkMarshal(bb *testing.B) {
	b := make([]byte, 0, 20)
	const nTests = 10000
	testInts := make([]*T, nTests)
	for i := 0; i < nTests; i++ {
		testInts[i] = New(frand.Intn(math.MaxInt64))
	}
	bb.Run("Marshal", func(bb *testing.B) {
		bb.ReportAllocs()
		for i := 0; i < bb.N; i++ {
			b = testInts[i%nTests].Marshal(b)
			b = b[:0]
		}
	})
	bb.Run("Itoa", func(bb *testing.B) {
		bb.ReportAllocs()
		var s string
		for i := 0; i < bb.N; i++ {
			s = strconv.Itoa(int(testInts[i%nTests].N))
			_ = s
		}
	})
}
