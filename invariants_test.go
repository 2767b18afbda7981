package main

import (
	"math"
	"testing"
)

// Mathematical Invariants Test Suite
//
// Property-based checks that must hold for every valid parameter set,
// independent of specific numeric values. Each sweep runs a grid of
// parameter combinations through the engine.

func parameterGrid() []SimulationParams {
	var grid []SimulationParams
	for _, initial := range []float64{0, 1000, 10000, 250000} {
		for _, contribution := range []float64{0, 100, 500, 2000} {
			for _, returnRate := range []float64{0, 4, 10, 18} {
				for _, dividendRate := range []float64{0, 2, 5} {
					for _, withholding := range []float64{0, 15, 30, 100} {
						grid = append(grid, SimulationParams{
							InitialCapital:      initial,
							MonthlyContribution: contribution,
							AnnualReturnRate:    returnRate,
							AnnualDividendRate:  dividendRate,
							WithholdingRate:     withholding,
							HorizonMonths:       36,
						})
					}
				}
			}
		}
	}
	return grid
}

func TestInvariant_CapitalNeverDecreases(t *testing.T) {
	// Property: with non-negative rates and contributions, closing capital
	// never drops below opening capital in any month.

	for _, params := range parameterGrid() {
		previous := params.InitialCapital
		for _, rec := range Simulate(params) {
			if rec.ClosingCapital < previous-moneyTolerance {
				t.Fatalf("capital dropped from $%.2f to $%.2f in month %d (params %+v)",
					previous, rec.ClosingCapital, rec.Month, params)
			}
			previous = rec.ClosingCapital
		}
	}
}

func TestInvariant_FinalCapitalAtLeastDeposits(t *testing.T) {
	// Property: final capital is never below the sum of all deposits.

	for _, params := range parameterGrid() {
		final := Simulate(params).FinalCapital()
		if final < params.TotalInvested()-moneyTolerance {
			t.Fatalf("final capital $%.2f below deposits $%.2f (params %+v)",
				final, params.TotalInvested(), params)
		}
	}
}

func TestInvariant_AccrualsNeverNegative(t *testing.T) {
	// Property: net dividends and growth are non-negative every month.

	for _, params := range parameterGrid() {
		for _, rec := range Simulate(params) {
			if rec.NetDividends < 0 || rec.Growth < 0 {
				t.Fatalf("negative accrual in month %d: div=%.6f growth=%.6f (params %+v)",
					rec.Month, rec.NetDividends, rec.Growth, params)
			}
		}
	}
}

func TestInvariant_WithholdingMonotone(t *testing.T) {
	// Property: raising the withholding rate never raises final capital.

	params := baseParams()
	previous := math.Inf(1)

	for _, withholding := range []float64{0, 10, 30, 50, 100} {
		params.WithholdingRate = withholding
		final := Simulate(params).FinalCapital()
		if final > previous+moneyTolerance {
			t.Errorf("final capital rose from $%.2f to $%.2f when withholding rose to %.0f%%",
				previous, final, withholding)
		}
		previous = final
	}
}

func TestInvariant_LongerHorizonNeverLoses(t *testing.T) {
	// Property: extending the horizon can only grow final capital.

	params := baseParams()
	var previous float64

	for _, horizon := range []int{1, 12, 60, 120, 360} {
		params.HorizonMonths = horizon
		final := Simulate(params).FinalCapital()
		if final < previous-moneyTolerance {
			t.Errorf("final capital fell from $%.2f to $%.2f at horizon %d",
				previous, final, horizon)
		}
		previous = final
	}
}

func TestInvariant_GoalSearchConsistentWithSimulate(t *testing.T) {
	// Property: whenever the goal search succeeds in n months, simulating
	// n months from the same parameters reaches the target too.

	targets := []float64{15000, 50000, 250000}

	for _, params := range parameterGrid() {
		for _, target := range targets {
			result := MonthsToGoal(params, target)
			if !result.Reached || result.Months == 0 {
				continue
			}
			check := params
			check.HorizonMonths = result.Months
			if final := Simulate(check).FinalCapital(); final < target-moneyTolerance {
				t.Fatalf("goal search says %d months for $%.0f but simulation ends at $%.2f (params %+v)",
					result.Months, target, final, params)
			}
		}
	}
}

func TestInvariant_GoalSearchBounded(t *testing.T) {
	// Property: the search never reports more than 600 months.

	for _, params := range parameterGrid() {
		result := MonthsToGoal(params, 1e9)
		if result.Months > maxGoalMonths {
			t.Fatalf("search exceeded cap: %d months (params %+v)", result.Months, params)
		}
	}
}
