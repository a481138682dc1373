package density

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestNormalLogPDFVsGonum(t *testing.T) {
	cases := []struct {
		x, mu, sigma float64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{-2.5, 0, 1},
		{3, 1, 0.5},
		{-7, 2, 4},
		{0.123, -0.456, 2.5},
	}

	for _, c := range cases {
		want := distuv.Normal{Mu: c.mu, Sigma: c.sigma}.LogProb(c.x)
		got := NormalLogPDF(c.x, c.mu, c.sigma)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("NormalLogPDF(%v, %v, %v) = %.15f, want %.15f",
				c.x, c.mu, c.sigma, got, want)
		}
	}
}

func TestNormalLogPDFAtMean(t *testing.T) {
	// At x == mu with sigma = 1 the density reduces to the constant term.
	got := NormalLogPDF(0.7, 0.7, 1)
	want := -0.9189385332046727
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("Got %.16f, want %.16f", got, want)
	}
}

func TestSumNormalLogPDFMatchesPointwise(t *testing.T) {
	data := make([]float64, 200)
	for i := range data {
		data[i] = math.Sin(float64(i)) * 3.2
	}

	for _, mu := range []float64{-1.5, 0, 0.77, 4} {
		for _, sigma := range []float64{0.5, 1, 2} {
			var want float64
			for _, x := range data {
				want += NormalLogPDF(x, mu, sigma)
			}
			got := SumNormalLogPDF(data, mu, sigma)
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("SumNormalLogPDF(mu=%v, sigma=%v) = %.12f, want %.12f",
					mu, sigma, got, want)
			}
		}
	}
}

func TestSumNormalLogPDFEmpty(t *testing.T) {
	if got := SumNormalLogPDF(nil, 1.0, 1.0); got != 0 {
		t.Errorf("Empty buffer: got %v, want 0", got)
	}
}

func BenchmarkSumNormalLogPDF(b *testing.B) {
	data := make([]float64, 1000)
	for i := range data {
		data[i] = float64(i%17) * 0.1
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SumNormalLogPDF(data, 0.5, 1.0)
	}
}
