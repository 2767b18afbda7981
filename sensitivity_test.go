package main

import (
	"testing"
)

// Sensitivity and ETF Comparison Tests
//
// Sensitivity reruns the simulation with the annual return rate shifted by
// each delta (floored at zero); CompareETFs reruns it with each active ETF's
// return and dividend rates under the shared base parameters.

// =============================================================================
// Scenario Construction
// =============================================================================

func TestSensitivity_DefaultDeltas(t *testing.T) {
	params := baseParams() // 10% base return

	scenarios := Sensitivity(params, DefaultSensitivityDeltas)

	if len(scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(scenarios))
	}

	tests := []struct {
		index int
		label string
		delta float64
		rate  float64
	}{
		{0, "Pessimistic", -5, 5},
		{1, "Base", 0, 10},
		{2, "Optimistic", 5, 15},
	}

	for _, tc := range tests {
		s := scenarios[tc.index]
		if s.Label != tc.label {
			t.Errorf("scenario %d: expected label %q, got %q", tc.index, tc.label, s.Label)
		}
		if s.Delta != tc.delta {
			t.Errorf("scenario %d: expected delta %.1f, got %.1f", tc.index, tc.delta, s.Delta)
		}
		if s.Params.AnnualReturnRate != tc.rate {
			t.Errorf("scenario %d: expected return rate %.1f%%, got %.1f%%",
				tc.index, tc.rate, s.Params.AnnualReturnRate)
		}
	}
}

func TestSensitivity_FlooredAtZero(t *testing.T) {
	// A pessimistic shift below zero clamps to a 0% return, never negative.
	params := baseParams()
	params.AnnualReturnRate = 2

	scenarios := Sensitivity(params, []float64{-5, 0, 5})

	if got := scenarios[0].Params.AnnualReturnRate; got != 0 {
		t.Errorf("expected clamped rate 0%%, got %.1f%%", got)
	}
	if got := scenarios[2].Params.AnnualReturnRate; got != 7 {
		t.Errorf("expected optimistic rate 7%%, got %.1f%%", got)
	}
}

func TestSensitivity_BaseMatchesSimulate(t *testing.T) {
	// The zero-delta scenario must reproduce the plain simulation exactly.
	params := baseParams()

	scenarios := Sensitivity(params, []float64{0})

	assertMoneyEquals(t, Simulate(params).FinalCapital(), scenarios[0].FinalCapital,
		"base scenario final capital")
}

func TestSensitivity_PreservesDeltaOrder(t *testing.T) {
	deltas := []float64{3, -2, 0, 7}

	scenarios := Sensitivity(baseParams(), deltas)

	if len(scenarios) != len(deltas) {
		t.Fatalf("expected %d scenarios, got %d", len(deltas), len(scenarios))
	}
	for i, s := range scenarios {
		if s.Delta != deltas[i] {
			t.Errorf("scenario %d: expected delta %.1f, got %.1f", i, deltas[i], s.Delta)
		}
	}
}

func TestSensitivity_MonotonicInDelta(t *testing.T) {
	// Property: a higher return rate can never produce a lower final capital.
	scenarios := Sensitivity(baseParams(), []float64{-5, -2, 0, 2, 5})

	for i := 1; i < len(scenarios); i++ {
		if scenarios[i].FinalCapital < scenarios[i-1].FinalCapital {
			t.Errorf("final capital decreased from $%.2f (delta %.1f) to $%.2f (delta %.1f)",
				scenarios[i-1].FinalCapital, scenarios[i-1].Delta,
				scenarios[i].FinalCapital, scenarios[i].Delta)
		}
	}
}

func TestSensitivity_EmptyDeltas(t *testing.T) {
	if got := Sensitivity(baseParams(), nil); len(got) != 0 {
		t.Errorf("expected no scenarios, got %d", len(got))
	}
}

// =============================================================================
// Risk Summary Spread
// =============================================================================

func TestSensitivitySpread(t *testing.T) {
	scenarios := Sensitivity(baseParams(), DefaultSensitivityDeltas)

	worst, base, best, ok := sensitivitySpread(scenarios)
	if !ok {
		t.Fatal("expected a base scenario in the default deltas")
	}
	if worst.Delta != -5 || base.Delta != 0 || best.Delta != 5 {
		t.Errorf("expected deltas -5/0/5, got %.1f/%.1f/%.1f",
			worst.Delta, base.Delta, best.Delta)
	}
	if worst.FinalCapital > base.FinalCapital || best.FinalCapital < base.FinalCapital {
		t.Errorf("spread out of order: worst $%.2f, base $%.2f, best $%.2f",
			worst.FinalCapital, base.FinalCapital, best.FinalCapital)
	}
}

func TestSensitivitySpread_NoBase(t *testing.T) {
	scenarios := Sensitivity(baseParams(), []float64{-5, 5})
	if _, _, _, ok := sensitivitySpread(scenarios); ok {
		t.Error("spread without a zero-delta scenario should report no base")
	}
}

func TestSensitivitySpread_Empty(t *testing.T) {
	if _, _, _, ok := sensitivitySpread(nil); ok {
		t.Error("empty scenario set should report no base")
	}
}

// =============================================================================
// ETF Comparison
// =============================================================================

func TestCompareETFs_SharedBaseParameters(t *testing.T) {
	base := baseParams()
	etfs := []ETFConfig{
		{Name: "SPY", AnnualReturn: 10, AnnualDividend: 1.5, Active: true},
		{Name: "QQQ", AnnualReturn: 15, AnnualDividend: 0.6, Active: true},
	}

	results := CompareETFs(base, etfs)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	for i, r := range results {
		if r.Name != etfs[i].Name {
			t.Errorf("result %d: expected name %q, got %q", i, etfs[i].Name, r.Name)
		}
		if r.Params.AnnualReturnRate != etfs[i].AnnualReturn {
			t.Errorf("%s: return rate not overridden", r.Name)
		}
		if r.Params.AnnualDividendRate != etfs[i].AnnualDividend {
			t.Errorf("%s: dividend rate not overridden", r.Name)
		}
		// Capital, contribution, withholding and horizon come from the base.
		if r.Params.InitialCapital != base.InitialCapital ||
			r.Params.MonthlyContribution != base.MonthlyContribution ||
			r.Params.WithholdingRate != base.WithholdingRate ||
			r.Params.HorizonMonths != base.HorizonMonths {
			t.Errorf("%s: base parameters not shared", r.Name)
		}
		if len(r.Trajectory) != base.HorizonMonths {
			t.Errorf("%s: expected %d-month trajectory, got %d",
				r.Name, base.HorizonMonths, len(r.Trajectory))
		}
		assertMoneyEquals(t, r.Trajectory.FinalCapital(), r.FinalCapital, "final capital")
		assertMoneyEquals(t, r.FinalCapital-r.Params.TotalInvested(), r.Gain, "gain")
	}
}

func TestCompareETFs_SkipsInactive(t *testing.T) {
	etfs := []ETFConfig{
		{Name: "SPY", AnnualReturn: 10, AnnualDividend: 1.5, Active: true},
		{Name: "VOO", AnnualReturn: 10, AnnualDividend: 1.4, Active: false},
		{Name: "SCHD", AnnualReturn: 11, AnnualDividend: 3.5, Active: true},
	}

	results := CompareETFs(baseParams(), etfs)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "SPY" || results[1].Name != "SCHD" {
		t.Errorf("expected [SPY SCHD], got [%s %s]", results[0].Name, results[1].Name)
	}
}

func TestCompareETFs_HigherRatesWin(t *testing.T) {
	// Same dividend yield, higher price return: final capital must be higher.
	etfs := []ETFConfig{
		{Name: "Low", AnnualReturn: 5, AnnualDividend: 2, Active: true},
		{Name: "High", AnnualReturn: 12, AnnualDividend: 2, Active: true},
	}

	results := CompareETFs(baseParams(), etfs)

	if results[1].FinalCapital <= results[0].FinalCapital {
		t.Errorf("higher-return ETF ended at $%.2f, not above $%.2f",
			results[1].FinalCapital, results[0].FinalCapital)
	}
}

func TestCompareETFs_NoActiveETFs(t *testing.T) {
	etfs := []ETFConfig{{Name: "SPY", Active: false}}
	if got := CompareETFs(baseParams(), etfs); len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}
