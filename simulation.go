package main

import (
	"errors"
	"fmt"
)

// maxGoalMonths caps the time-to-goal search so it always terminates even
// when contributions and rates are too small to ever reach the target.
const maxGoalMonths = 600

// ErrInvalidParameter is wrapped by every parameter validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

// ValidateParams checks the basic numeric ranges of the inputs. It is called
// at the boundary (config load, CLI, HTTP); the engine itself assumes valid
// parameters and performs no partial work on invalid ones.
func ValidateParams(p SimulationParams) error {
	switch {
	case p.InitialCapital < 0:
		return fmt.Errorf("%w: initial_capital must be >= 0, got %.2f", ErrInvalidParameter, p.InitialCapital)
	case p.MonthlyContribution < 0:
		return fmt.Errorf("%w: monthly_contribution must be >= 0, got %.2f", ErrInvalidParameter, p.MonthlyContribution)
	case p.AnnualReturnRate < 0:
		return fmt.Errorf("%w: annual_return_rate must be >= 0, got %.2f", ErrInvalidParameter, p.AnnualReturnRate)
	case p.AnnualDividendRate < 0:
		return fmt.Errorf("%w: annual_dividend_rate must be >= 0, got %.2f", ErrInvalidParameter, p.AnnualDividendRate)
	case p.WithholdingRate < 0 || p.WithholdingRate > 100:
		return fmt.Errorf("%w: withholding_rate must be in [0, 100], got %.2f", ErrInvalidParameter, p.WithholdingRate)
	case p.HorizonMonths < 1:
		return fmt.Errorf("%w: horizon_months must be >= 1, got %d", ErrInvalidParameter, p.HorizonMonths)
	}
	return nil
}

// advanceMonth applies one month of the DRIP recurrence to the given capital:
// the contribution lands first, then dividends (net of withholding) and price
// growth both accrue on the post-contribution balance.
func advanceMonth(capital float64, p SimulationParams) (closing, netDividends, growth float64) {
	monthlyReturn := p.AnnualReturnRate / 100 / 12
	monthlyDividend := p.AnnualDividendRate / 100 / 12
	withholding := p.WithholdingRate / 100

	contributed := capital + p.MonthlyContribution
	grossDividends := contributed * monthlyDividend
	netDividends = grossDividends * (1 - withholding)
	growth = contributed * monthlyReturn
	closing = contributed + netDividends + growth
	return closing, netDividends, growth
}

// Simulate runs the monthly compounding recurrence over the configured
// horizon and returns one record per month. Every term added each month is
// non-negative for valid parameters, so closing capital never decreases.
func Simulate(p SimulationParams) Trajectory {
	trajectory := make(Trajectory, 0, p.HorizonMonths)
	capital := p.InitialCapital

	for month := 1; month <= p.HorizonMonths; month++ {
		opening := capital
		closing, netDividends, growth := advanceMonth(capital, p)
		capital = closing

		trajectory = append(trajectory, MonthlyRecord{
			Month:          month,
			OpeningCapital: opening,
			Contribution:   p.MonthlyContribution,
			NetDividends:   netDividends,
			Growth:         growth,
			ClosingCapital: capital,
		})
	}

	return trajectory
}

// MonthsToGoal runs the same recurrence forward until capital reaches the
// target or maxGoalMonths is hit. HorizonMonths is ignored. A target already
// covered by the starting capital reports reached in zero months; an
// exhausted search reports Reached=false and the caller must present the
// goal as unreachable rather than extrapolate.
func MonthsToGoal(p SimulationParams, targetCapital float64) GoalResult {
	capital := p.InitialCapital
	months := 0

	for capital < targetCapital && months < maxGoalMonths {
		months++
		capital, _, _ = advanceMonth(capital, p)
	}

	invested := p.InitialCapital + p.MonthlyContribution*float64(months)
	return GoalResult{
		Reached:       capital >= targetCapital,
		Months:        months,
		FinalCapital:  capital,
		TotalInvested: invested,
		EstimatedGain: capital - invested,
	}
}

// DefaultSensitivityDeltas are the canonical pessimistic/base/optimistic
// shifts, in percentage points of annual return.
var DefaultSensitivityDeltas = []float64{-5, 0, 5}

// scenarioLabel names a scenario by the sign of its return-rate shift.
func scenarioLabel(delta float64) string {
	switch {
	case delta < 0:
		return "Pessimistic"
	case delta > 0:
		return "Optimistic"
	default:
		return "Base"
	}
}

// Sensitivity reruns the simulation once per delta with the annual return
// rate shifted by that many percentage points, floored at zero (returns
// cannot go negative in this model). Results preserve the order of deltas.
func Sensitivity(p SimulationParams, deltas []float64) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(deltas))

	for _, delta := range deltas {
		variant := p
		variant.AnnualReturnRate = p.AnnualReturnRate + delta
		if variant.AnnualReturnRate < 0 {
			variant.AnnualReturnRate = 0
		}

		trajectory := Simulate(variant)
		results = append(results, ScenarioResult{
			Label:        scenarioLabel(delta),
			Delta:        delta,
			Params:       variant,
			FinalCapital: trajectory.FinalCapital(),
		})
	}

	return results
}

// sensitivitySpread picks the zero-delta base plus the worst and best
// outcomes from a scenario set, for the risk summary shown under the
// sensitivity views. ok is false when the set is empty or has no base
// scenario to measure against.
func sensitivitySpread(scenarios []ScenarioResult) (worst, base, best ScenarioResult, ok bool) {
	if len(scenarios) == 0 {
		return
	}

	worst, best = scenarios[0], scenarios[0]
	for _, s := range scenarios {
		if s.Delta == 0 {
			base = s
			ok = true
		}
		if s.FinalCapital < worst.FinalCapital {
			worst = s
		}
		if s.FinalCapital > best.FinalCapital {
			best = s
		}
	}
	return worst, base, best, ok
}

// CompareETFs simulates each active ETF entry under the shared capital,
// contribution, withholding and horizon of the base parameters. Inactive
// entries are skipped; result order follows the input list.
func CompareETFs(base SimulationParams, etfs []ETFConfig) []ComparisonResult {
	var results []ComparisonResult

	for _, etf := range etfs {
		if !etf.Active {
			continue
		}
		variant := base
		variant.AnnualReturnRate = etf.AnnualReturn
		variant.AnnualDividendRate = etf.AnnualDividend

		trajectory := Simulate(variant)
		results = append(results, ComparisonResult{
			Name:         etf.Name,
			Color:        etf.Color,
			Params:       variant,
			Trajectory:   trajectory,
			FinalCapital: trajectory.FinalCapital(),
			Gain:         trajectory.Gain(variant),
		})
	}

	return results
}
