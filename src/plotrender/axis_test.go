package plotrender

import (
	"math"
	"testing"
)

func TestNiceAxisBounds_ContainsDataWithMargin(t *testing.T) {
	cases := []struct{ min, max float64 }{
		{0, 9},
		{2400, 2950},
		{-5, 5},
		{0.001, 0.009},
	}
	for _, tc := range cases {
		a, b := niceAxisBounds(tc.min, tc.max)
		if a > tc.min+eps {
			t.Fatalf("[%v,%v]: lower bound %v clips data", tc.min, tc.max, a)
		}
		if b < tc.max-eps {
			t.Fatalf("[%v,%v]: upper bound %v clips data", tc.min, tc.max, b)
		}
		if !(b > a) {
			t.Fatalf("[%v,%v]: empty range [%v,%v]", tc.min, tc.max, a, b)
		}
	}
}

func TestNiceAxisBounds_DegenerateSpan(t *testing.T) {
	a, b := niceAxisBounds(5, 5)
	if !(b > a) {
		t.Fatalf("equal min/max must still produce a positive span, got [%v,%v]", a, b)
	}
}

func TestNiceTicks_CoverRangeAndStayBounded(t *testing.T) {
	ticks := niceTicks(0, 100, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected at least 2 ticks, got %d", len(ticks))
	}
	if len(ticks) > 8 {
		t.Fatalf("too many ticks: %d", len(ticks))
	}
	if ticks[0].Value > eps {
		t.Fatalf("first tick %v should not be above the range start", ticks[0].Value)
	}
	last := ticks[len(ticks)-1].Value
	if last < 100-eps {
		t.Fatalf("last tick %v should reach the range end", last)
	}
	for i := 1; i < len(ticks); i++ {
		if !(ticks[i].Value > ticks[i-1].Value) {
			t.Fatalf("ticks not increasing at %d", i)
		}
	}
}

func TestFormatTick_PrecisionByMagnitude(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{2500, "2500"},
		{150, "150"},
		{25, "25.0"},
		{-25, "-25.0"},
		{2.5, "2.50"},
	}
	for _, tc := range cases {
		if got := formatTick(tc.v); got != tc.want {
			t.Fatalf("formatTick(%v) = %q want %q", tc.v, got, tc.want)
		}
	}
}

func TestNiceTicks_RejectsBadInput(t *testing.T) {
	if ticks := niceTicks(0, 1, 1); ticks != nil {
		t.Fatalf("n<2 must yield nil")
	}
	if ticks := niceTicks(math.NaN(), 1, 5); ticks != nil {
		t.Fatalf("NaN bounds must yield nil")
	}
}
