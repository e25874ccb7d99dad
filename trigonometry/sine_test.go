package trigonometry

import (
	"math"
	"sync"
	"testing"
)

const tolerance = 1e-9

func TestSinKnownAngles(t *testing.T) {
	cases := []struct {
		degrees float64
		want    float64
	}{
		{0, 0},
		{30, 0.5},
		{45, math.Sqrt2 / 2},
		{90, 1},
		{180, 0},
		{270, -1},
		{360, 0},
		{-90, -1},
		{450, 1},
	}
	for _, c := range cases {
		if got := Sin(c.degrees); math.Abs(got-c.want) > tolerance {
			t.Errorf("Sin(%v) = %v, want %v", c.degrees, got, c.want)
		}
	}
}

func TestSinZeroIsExact(t *testing.T) {
	if got := Sin(0); got != 0 || math.Signbit(got) {
		t.Fatalf("Sin(0) = %v, want +0", got)
	}
	if got := Sin(math.Copysign(0, -1)); got != 0 || !math.Signbit(got) {
		t.Fatalf("Sin(-0) = %v, want -0", got)
	}
}

func TestSinMatchesRadianSine(t *testing.T) {
	for d := -1080.0; d <= 1080; d += 7.25 {
		want := math.Sin(d * math.Pi / 180)
		if got := Sin(d); math.Abs(got-want) > tolerance {
			t.Errorf("Sin(%v) = %v, want %v", d, got, want)
		}
	}
}

func TestSinPeriodic(t *testing.T) {
	for d := -720.0; d <= 720; d += 3.5 {
		if a, b := Sin(d), Sin(d+360); math.Abs(a-b) > tolerance {
			t.Errorf("Sin(%v) = %v, Sin(%v) = %v", d, a, d+360, b)
		}
	}
}

func TestSinOdd(t *testing.T) {
	for d := 0.0; d <= 720; d += 11 {
		if a, b := Sin(-d), -Sin(d); math.Abs(a-b) > tolerance {
			t.Errorf("Sin(-%v) = %v, -Sin(%v) = %v", d, a, d, b)
		}
	}
}

func TestSinRange(t *testing.T) {
	for d := -3600.0; d <= 3600; d += 0.7 {
		if got := Sin(d); got < -1 || got > 1 {
			t.Errorf("Sin(%v) = %v out of [-1, 1]", d, got)
		}
	}
}

func TestSinNonFinite(t *testing.T) {
	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Sin(in); !math.IsNaN(got) {
			t.Errorf("Sin(%v) = %v, want NaN", in, got)
		}
	}
}

func TestSinDeterministicAcrossGoroutines(t *testing.T) {
	const angle = 123.456
	want := math.Float64bits(Sin(angle))

	var wg sync.WaitGroup
	errs := make(chan uint64, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := math.Float64bits(Sin(angle)); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("Sin(%v) bits = %x, want %x", angle, got, want)
	}
}
