package main

import (
	"fmt"
	"strings"
)

// FormatMoney formats a float as an abbreviated currency string
func FormatMoney(amount float64) string {
	if amount >= 1000000 {
		return fmt.Sprintf("$%.2fM", amount/1000000)
	}
	if amount >= 1000 {
		return fmt.Sprintf("$%.0fk", amount/1000)
	}
	return fmt.Sprintf("$%.0f", amount)
}

// FormatMoneyFull formats a float as full currency with two decimals and
// thousands separators, e.g. 10599.75 -> $10,599.75
func FormatMoneyFull(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	whole := s[:len(s)-3]
	frac := s[len(s)-3:]

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + "$" + b.String() + frac
}

// FormatPercent formats a percent-unit rate, e.g. 10.0 -> "10.00%"
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

// pluralize counts a unit, dropping the s for exactly one
func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatMonths formats a month count with its year breakdown,
// e.g. 67 -> "67 months (5 years, 7 months)"
func FormatMonths(months int) string {
	return fmt.Sprintf("%s (%s, %s)",
		pluralize(months, "month"),
		pluralize(months/12, "year"),
		pluralize(months%12, "month"))
}

// PrintHeader prints the simulation header with the configured parameters
func PrintHeader(config *Config) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                 ETF INVESTMENT GROWTH SIMULATOR (DRIP + DCA)                 ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Parameters:")
	fmt.Println("───────────")
	fmt.Printf("  Initial Capital:      %s\n", FormatMoneyFull(config.Investment.InitialCapital))
	fmt.Printf("  Monthly Contribution: %s\n", FormatMoneyFull(config.Investment.MonthlyContribution))
	fmt.Printf("  Annual Return:        %s | Annual Dividends: %s | Withholding: %s\n",
		FormatPercent(config.Investment.AnnualReturnRate),
		FormatPercent(config.Investment.AnnualDividendRate),
		FormatPercent(config.Investment.WithholdingRate))
	fmt.Printf("  Horizon:              %d months (%.1f years)\n",
		config.Investment.HorizonMonths, float64(config.Investment.HorizonMonths)/12)
	fmt.Println()
}

// PrintSummary prints the headline metrics for a completed simulation
func PrintSummary(params SimulationParams, trajectory Trajectory) {
	invested := params.TotalInvested()
	final := trajectory.FinalCapital()

	fmt.Println("Results:")
	fmt.Println("────────")
	fmt.Printf("  Total Invested:  %s\n", FormatMoneyFull(invested))
	fmt.Printf("  Final Capital:   %s\n", FormatMoneyFull(final))
	fmt.Printf("  Total Gain:      %s\n", FormatMoneyFull(trajectory.Gain(params)))
	fmt.Printf("  Total Return:    %s\n", FormatPercent(trajectory.TotalReturnPct(params)))
	fmt.Println()
}

// PrintMonthlyTable prints the month-by-month breakdown. Unless full is set,
// it elides to the first month, every 12th month, and the last month.
func PrintMonthlyTable(trajectory Trajectory, full bool) {
	fmt.Printf("%-7s │ %14s %12s %12s %12s │ %14s\n",
		"Month", "Opening", "Contribution", "Dividends", "Growth", "Closing")
	fmt.Println(strings.Repeat("─", 85))

	for i, rec := range trajectory {
		isKeyMonth := full || i == 0 || i == len(trajectory)-1 || rec.Month%12 == 0
		if !isKeyMonth {
			continue
		}
		fmt.Printf("%-7d │ %14s %12s %12s %12s │ %14s\n",
			rec.Month,
			FormatMoneyFull(rec.OpeningCapital),
			FormatMoneyFull(rec.Contribution),
			FormatMoneyFull(rec.NetDividends),
			FormatMoneyFull(rec.Growth),
			FormatMoneyFull(rec.ClosingCapital))
	}
	fmt.Println()
}

// PrintGoalResult prints the time-to-goal outcome
func PrintGoalResult(target float64, result GoalResult) {
	fmt.Println("Time to Goal:")
	fmt.Println("─────────────")
	fmt.Printf("  Target Capital:  %s\n", FormatMoneyFull(target))

	if !result.Reached {
		fmt.Printf("  Goal unreachable within %d months (%.0f years).\n", maxGoalMonths, float64(maxGoalMonths)/12)
		fmt.Println("  Increase the monthly contribution or the expected return.")
		fmt.Println()
		return
	}

	fmt.Printf("  Time Needed:     %s and %s (%d months total)\n",
		pluralize(result.Years(), "year"), pluralize(result.RemainderMonths(), "month"), result.Months)
	fmt.Printf("  Total Invested:  %s\n", FormatMoneyFull(result.TotalInvested))
	fmt.Printf("  Estimated Gain:  %s\n", FormatMoneyFull(result.EstimatedGain))
	fmt.Println()
}

// PrintSensitivity prints the scenario comparison table
func PrintSensitivity(params SimulationParams, scenarios []ScenarioResult) {
	fmt.Println("Sensitivity Analysis:")
	fmt.Println("─────────────────────")
	fmt.Printf("%-14s │ %10s │ %14s │ %14s\n", "Scenario", "Return", "Final Capital", "Gain")
	fmt.Println(strings.Repeat("─", 62))

	for _, s := range scenarios {
		fmt.Printf("%-14s │ %10s │ %14s │ %14s\n",
			s.Label,
			FormatPercent(s.Params.AnnualReturnRate),
			FormatMoneyFull(s.FinalCapital),
			FormatMoneyFull(s.Gain()))
	}

	if worst, base, best, ok := sensitivitySpread(scenarios); ok {
		fmt.Printf("  Worst case vs base: %s │ Best case vs base: +%s\n",
			FormatMoneyFull(worst.FinalCapital-base.FinalCapital),
			FormatMoneyFull(best.FinalCapital-base.FinalCapital))
	}
	fmt.Println()
}

// PrintComparison prints the ETF comparison table
func PrintComparison(results []ComparisonResult) {
	if len(results) == 0 {
		fmt.Println("No active ETFs configured for comparison.")
		fmt.Println()
		return
	}

	fmt.Println("ETF Comparison:")
	fmt.Println("───────────────")
	fmt.Printf("%-22s │ %8s %9s │ %14s │ %14s\n", "ETF", "Return", "Dividends", "Final Capital", "Gain")
	fmt.Println(strings.Repeat("─", 80))

	for _, r := range results {
		fmt.Printf("%-22s │ %8s %9s │ %14s │ %14s\n",
			r.Name,
			FormatPercent(r.Params.AnnualReturnRate),
			FormatPercent(r.Params.AnnualDividendRate),
			FormatMoneyFull(r.FinalCapital),
			FormatMoneyFull(r.Gain))
	}
	fmt.Println()
}
