package scoring

import (
	"math"
	"testing"

	"github.com/finsight/zscore-service/internal/core/domain"
)

func TestScoreRatiosAndAggregate(t *testing.T) {
	res := Score(Inputs{
		WorkingCapital:    1000000,
		TotalAssets:       5000000,
		RetainedEarnings:  800000,
		OperatingIncome:   400000,
		MarketValueEquity: 6000000,
		TotalLiabilities:  2500000,
		Sales:             3000000,
	})

	if res.X1 != 0.2 {
		t.Fatalf("x1 = %v, want 0.2", res.X1)
	}
	if res.X2 != 0.16 {
		t.Fatalf("x2 = %v, want 0.16", res.X2)
	}
	if res.X3 != 0.08 {
		t.Fatalf("x3 = %v, want 0.08", res.X3)
	}
	if res.X4 != 2.4 {
		t.Fatalf("x4 = %v, want 2.4", res.X4)
	}
	if res.X5 != 0.6 {
		t.Fatalf("x5 = %v, want 0.6", res.X5)
	}

	// 1.2*0.2 + 1.4*0.16 + 3.3*0.08 + 0.6*2.4 + 0.6 = 2.768
	if res.ZScore != 2.768 {
		t.Fatalf("z = %v, want 2.768", res.ZScore)
	}
	if res.Zone != domain.ZoneGrey {
		t.Fatalf("zone = %v, want grey", res.Zone)
	}

	// Raw inputs carried through unchanged.
	if res.TotalAssets != 5000000 || res.Sales != 3000000 {
		t.Fatalf("raw inputs mutated: %+v", res)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		z    float64
		want domain.Zone
	}{
		{2.99, domain.ZoneGrey},
		{2.990001, domain.ZoneSafe},
		{1.81, domain.ZoneDistress},
		{1.810001, domain.ZoneGrey},
		{0, domain.ZoneDistress},
		{-3.5, domain.ZoneDistress},
		{100, domain.ZoneSafe},
	}
	for _, tc := range cases {
		if got := Classify(tc.z); got != tc.want {
			t.Fatalf("Classify(%v) = %v, want %v", tc.z, got, tc.want)
		}
	}
}

func TestScoreZeroDenominators(t *testing.T) {
	res := Score(Inputs{
		WorkingCapital:    100,
		TotalAssets:       0,
		RetainedEarnings:  100,
		OperatingIncome:   100,
		MarketValueEquity: 100,
		TotalLiabilities:  0,
		Sales:             100,
	})

	for name, v := range map[string]float64{
		"x1": res.X1, "x2": res.X2, "x3": res.X3, "x4": res.X4, "x5": res.X5,
	} {
		if v != 0.0 {
			t.Fatalf("%s = %v, want 0.0 on zero denominator", name, v)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s is not finite", name)
		}
	}
	if res.ZScore != 0.0 {
		t.Fatalf("z = %v, want 0.0", res.ZScore)
	}
	if res.Zone != domain.ZoneDistress {
		t.Fatalf("zone = %v, want distress", res.Zone)
	}
}

func TestScoreRoundTripReproducesZ(t *testing.T) {
	in := Inputs{
		WorkingCapital:    1234567,
		TotalAssets:       9876543,
		RetainedEarnings:  -250000,
		OperatingIncome:   410000,
		MarketValueEquity: 123.45 * 78900000, // price × shares outstanding
		TotalLiabilities:  4321000,
		Sales:             6543210,
	}

	first := Score(in)
	second := Score(Inputs{
		WorkingCapital:    first.WorkingCapital,
		TotalAssets:       first.TotalAssets,
		RetainedEarnings:  first.RetainedEarnings,
		OperatingIncome:   first.OperatingIncome,
		MarketValueEquity: first.MarketValueEquity,
		TotalLiabilities:  first.TotalLiabilities,
		Sales:             first.Sales,
	})

	if first.ZScore != second.ZScore {
		t.Fatalf("round trip z mismatch: %v vs %v", first.ZScore, second.ZScore)
	}
	if first.Zone != second.Zone {
		t.Fatalf("round trip zone mismatch: %v vs %v", first.Zone, second.Zone)
	}
}

func TestScoreRoundingPrecision(t *testing.T) {
	// x1 = 1/3 must round to 6 decimals, z to 4.
	res := Score(Inputs{
		WorkingCapital: 1,
		TotalAssets:    3,
	})
	if res.X1 != 0.333333 {
		t.Fatalf("x1 = %v, want 0.333333", res.X1)
	}
	if res.ZScore != 0.4 {
		t.Fatalf("z = %v, want 0.4", res.ZScore)
	}
}
