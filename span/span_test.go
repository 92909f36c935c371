package span

import (
	"testing"
	"time"

	"lukechampine.com/frand"

	"unixts.mleku.dev/chk"
)

func TestNewNormalizes(t *testing.T) {
	s := New(1, 2_500_000_000)
	if s.Sec != 3 || s.Nano != 500_000_000 {
		t.Fatalf("got (%d,%d) want (3,500000000)", s.Sec, s.Nano)
	}
	s = New(0, 999_999_999)
	if s.Sec != 0 || s.Nano != 999_999_999 {
		t.Fatalf("got (%d,%d) want (0,999999999)", s.Sec, s.Nano)
	}
}

func TestDurationRoundTrip(t *testing.T) {
	var err error
	var s *T
	for i := 0; i < 100000; i++ {
		d := time.Duration(frand.Intn(1 << 40))
		if s, err = FromDuration(d); chk.E(err) {
			t.Fatal(err)
		}
		if s.Duration() != d {
			t.Fatalf("round trip failed: %v -> (%d,%d) -> %v",
				d, s.Sec, s.Nano, s.Duration())
		}
	}
}

func TestFromDurationNegative(t *testing.T) {
	if _, err := FromDuration(-time.Second); err == nil {
		t.Fatal("expected error for negative duration")
	}
}

func TestEqual(t *testing.T) {
	if !New(1, 500_000_000).Equal(New(0, 1_500_000_000)) {
		t.Fatal("normalized spans should be equal")
	}
	if New(1, 0).Equal(New(1, 1)) {
		t.Fatal("different spans should not be equal")
	}
}
