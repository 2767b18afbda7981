package main

// SimulationParams holds the scalar inputs for one simulation run.
// Rates are in percent units as entered by the user (10 means 10%/year);
// the engine converts to monthly decimals internally.
type SimulationParams struct {
	InitialCapital      float64 `yaml:"initial_capital" json:"initial_capital"`
	MonthlyContribution float64 `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnRate    float64 `yaml:"annual_return_rate" json:"annual_return_rate"`
	AnnualDividendRate  float64 `yaml:"annual_dividend_rate" json:"annual_dividend_rate"`
	WithholdingRate     float64 `yaml:"withholding_rate" json:"withholding_rate"`
	HorizonMonths       int     `yaml:"horizon_months" json:"horizon_months"`
}

// TotalInvested returns the total cash put in over the horizon:
// starting capital plus every monthly contribution.
func (p SimulationParams) TotalInvested() float64 {
	return p.InitialCapital + p.MonthlyContribution*float64(p.HorizonMonths)
}

// MonthlyRecord is one month of the simulation. Dividends are net of
// withholding; growth is price appreciation on the post-contribution balance.
type MonthlyRecord struct {
	Month          int     `json:"month"`
	OpeningCapital float64 `json:"opening_capital"`
	Contribution   float64 `json:"contribution"`
	NetDividends   float64 `json:"net_dividends"`
	Growth         float64 `json:"growth"`
	ClosingCapital float64 `json:"closing_capital"`
}

// Trajectory is the month-by-month result of a simulation, ordered and
// contiguous from month 1.
type Trajectory []MonthlyRecord

// FinalCapital returns the closing capital of the last simulated month.
func (t Trajectory) FinalCapital() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].ClosingCapital
}

// Gain returns final capital minus total invested cash for the given params.
func (t Trajectory) Gain(p SimulationParams) float64 {
	return t.FinalCapital() - p.TotalInvested()
}

// TotalReturnPct returns the total return over invested cash as a percentage.
func (t Trajectory) TotalReturnPct(p SimulationParams) float64 {
	invested := p.TotalInvested()
	if invested <= 0 {
		return 0
	}
	return (t.FinalCapital()/invested - 1) * 100
}

// GoalResult is the outcome of a time-to-goal search. Reached=false means the
// target was not met within the month cap; that is a normal outcome the
// caller must present, not an error.
type GoalResult struct {
	Reached       bool    `json:"reached"`
	Months        int     `json:"months"`
	FinalCapital  float64 `json:"final_capital"`
	TotalInvested float64 `json:"total_invested"`
	EstimatedGain float64 `json:"estimated_gain"`
}

// Years returns the whole-year part of the month count.
func (g GoalResult) Years() int { return g.Months / 12 }

// RemainderMonths returns the months left over after whole years.
func (g GoalResult) RemainderMonths() int { return g.Months % 12 }

// ScenarioResult is one sensitivity scenario: the base parameters with the
// annual return rate shifted by Delta (floored at zero), reduced to the
// final capital it produces.
type ScenarioResult struct {
	Label        string           `json:"label"`
	Delta        float64          `json:"delta"`
	Params       SimulationParams `json:"params"`
	FinalCapital float64          `json:"final_capital"`
}

// Gain returns the scenario's final capital minus its invested cash.
func (s ScenarioResult) Gain() float64 {
	return s.FinalCapital - s.Params.TotalInvested()
}

// ComparisonResult is one ETF's simulation in a side-by-side comparison.
// All entries share capital, contribution, withholding and horizon; only the
// return and dividend rates differ.
type ComparisonResult struct {
	Name         string           `json:"name"`
	Color        string           `json:"color,omitempty"`
	Params       SimulationParams `json:"params"`
	Trajectory   Trajectory       `json:"trajectory,omitempty"`
	FinalCapital float64          `json:"final_capital"`
	Gain         float64          `json:"gain"`
}
