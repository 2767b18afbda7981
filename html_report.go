package main

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// chartWidth/chartHeight are the SVG viewbox dimensions for line charts
const (
	chartWidth  = 900
	chartHeight = 320
	chartPad    = 40
)

// svgPoints converts a trajectory's closing capitals to SVG polyline points,
// scaled to the chart viewbox. maxY sets the shared vertical scale so
// comparison curves stay commensurable.
func svgPoints(trajectory Trajectory, maxY float64) string {
	if len(trajectory) == 0 || maxY <= 0 {
		return ""
	}

	plotW := float64(chartWidth - 2*chartPad)
	plotH := float64(chartHeight - 2*chartPad)

	var b strings.Builder
	for i, rec := range trajectory {
		x := float64(chartPad)
		if len(trajectory) > 1 {
			x += plotW * float64(i) / float64(len(trajectory)-1)
		}
		y := float64(chartHeight-chartPad) - plotH*rec.ClosingCapital/maxY
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f,%.1f", x, y)
	}
	return b.String()
}

// writeLineChart writes an SVG line chart of one or more trajectories
func writeLineChart(f *os.File, curves []ComparisonResult) {
	maxY := 0.0
	for _, c := range curves {
		if fc := c.Trajectory.FinalCapital(); fc > maxY {
			maxY = fc
		}
	}

	fmt.Fprintf(f, `            <svg viewBox="0 0 %d %d" style="width:100%%; height:auto; background:#fff;">
`, chartWidth, chartHeight)

	// Horizontal gridlines with axis labels
	for i := 0; i <= 4; i++ {
		y := float64(chartHeight-chartPad) - float64(chartHeight-2*chartPad)*float64(i)/4
		value := maxY * float64(i) / 4
		fmt.Fprintf(f, `                <line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#e2e8f0" stroke-width="1"/>
                <text x="%d" y="%.1f" font-size="11" fill="#64748b" text-anchor="end">%s</text>
`, chartPad, y, chartWidth-chartPad, y, chartPad-6, y+4, FormatMoney(value))
	}

	// Month axis labels (start, middle, end)
	if len(curves) > 0 && len(curves[0].Trajectory) > 0 {
		months := len(curves[0].Trajectory)
		for _, m := range []int{1, months / 2, months} {
			x := float64(chartPad)
			if months > 1 {
				x += float64(chartWidth-2*chartPad) * float64(m-1) / float64(months-1)
			}
			fmt.Fprintf(f, `                <text x="%.1f" y="%d" font-size="11" fill="#64748b" text-anchor="middle">Month %d</text>
`, x, chartHeight-chartPad+18, m)
		}
	}

	for _, c := range curves {
		color := c.Color
		if color == "" {
			color = "#2563eb"
		}
		fmt.Fprintf(f, `                <polyline points="%s" fill="none" stroke="%s" stroke-width="2.5"/>
`, svgPoints(c.Trajectory, maxY), color)
	}

	fmt.Fprintf(f, "            </svg>\n")
}

// GenerateHTMLReport generates a self-contained HTML report covering the
// projection, the ETF comparison, the goal outcome and the sensitivity
// scenarios for the given configuration.
func GenerateHTMLReport(config *Config, filename string) error {
	params := config.Investment
	trajectory := Simulate(params)
	scenarios := Sensitivity(params, config.SensitivityDeltas())
	comparisons := CompareETFs(params, config.ETFs)
	goal := MonthsToGoal(params, config.Goal.TargetCapital)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	// Write HTML header
	fmt.Fprintf(f, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ETF Investment Projection</title>
    <style>
        :root {
            --primary: #2563eb;
            --success: #16a34a;
            --warning: #ea580c;
            --danger: #dc2626;
            --bg: #f8fafc;
            --card-bg: #ffffff;
            --text: #1e293b;
            --text-muted: #64748b;
            --border: #e2e8f0;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
            padding: 2rem;
        }
        .container { max-width: 1100px; margin: 0 auto; }
        h1 { font-size: 1.75rem; margin-bottom: 0.5rem; color: var(--primary); }
        h2 {
            font-size: 1.25rem;
            margin: 1.5rem 0 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid var(--primary);
        }
        .subtitle { color: var(--text-muted); margin-bottom: 1.5rem; }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }
        .grid { display: grid; gap: 1rem; }
        .grid-4 { grid-template-columns: repeat(4, 1fr); }
        @media (max-width: 768px) { .grid-4 { grid-template-columns: 1fr 1fr; } }
        .metric-label { font-size: 0.8rem; color: var(--text-muted); }
        .metric-value { font-size: 1.4rem; font-weight: 700; }
        .metric-value.positive { color: var(--success); }
        table { border-collapse: collapse; width: 100%%; font-size: 0.85rem; }
        th, td { padding: 6px 10px; text-align: right; border-bottom: 1px solid var(--border); }
        th { background: var(--primary); color: white; }
        td:first-child, th:first-child { text-align: left; }
        .bar-row { display: flex; align-items: center; gap: 10px; margin: 8px 0; }
        .bar-label { width: 160px; font-size: 0.85rem; text-align: right; }
        .bar-track { flex: 1; background: var(--bg); border-radius: 4px; }
        .bar-fill { height: 26px; border-radius: 4px; color: white; font-size: 0.8rem;
                    line-height: 26px; padding-left: 8px; white-space: nowrap; }
        .goal-box { text-align: center; padding: 1rem; }
        .goal-big { font-size: 2.5rem; font-weight: 700; color: var(--primary); }
        .goal-warning { color: var(--danger); font-weight: 600; }
    </style>
</head>
<body>
    <div class="container">
        <h1>ETF Investment Projection</h1>
        <p class="subtitle">%s starting capital, %s/month, %s return, %s dividends (%s withholding), %d months</p>
`,
		FormatMoneyFull(params.InitialCapital),
		FormatMoneyFull(params.MonthlyContribution),
		FormatPercent(params.AnnualReturnRate),
		FormatPercent(params.AnnualDividendRate),
		FormatPercent(params.WithholdingRate),
		params.HorizonMonths)

	// Headline metrics
	fmt.Fprintf(f, `
        <div class="card">
            <div class="grid grid-4">
                <div><div class="metric-label">Total Invested</div><div class="metric-value">%s</div></div>
                <div><div class="metric-label">Final Capital</div><div class="metric-value">%s</div></div>
                <div><div class="metric-label">Total Gain</div><div class="metric-value positive">%s</div></div>
                <div><div class="metric-label">Total Return</div><div class="metric-value positive">%s</div></div>
            </div>
        </div>
`,
		FormatMoneyFull(params.TotalInvested()),
		FormatMoneyFull(trajectory.FinalCapital()),
		FormatMoneyFull(trajectory.Gain(params)),
		FormatPercent(trajectory.TotalReturnPct(params)))

	// Capital growth chart
	fmt.Fprintf(f, `
        <div class="card">
            <h2>Capital Growth</h2>
`)
	writeLineChart(f, []ComparisonResult{{Trajectory: trajectory}})
	fmt.Fprintf(f, "        </div>\n")

	// ETF comparison
	if len(comparisons) > 0 {
		fmt.Fprintf(f, `
        <div class="card">
            <h2>ETF Comparison</h2>
`)
		writeLineChart(f, comparisons)
		fmt.Fprintf(f, `            <table>
                <tr><th>ETF</th><th>Return</th><th>Dividends</th><th>Final Capital</th><th>Gain</th></tr>
`)
		for _, r := range comparisons {
			fmt.Fprintf(f, "                <tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				r.Name,
				FormatPercent(r.Params.AnnualReturnRate),
				FormatPercent(r.Params.AnnualDividendRate),
				FormatMoneyFull(r.FinalCapital),
				FormatMoneyFull(r.Gain))
		}
		fmt.Fprintf(f, "            </table>\n        </div>\n")
	}

	// Goal outcome
	fmt.Fprintf(f, `
        <div class="card">
            <h2>Time to Goal (%s)</h2>
            <div class="goal-box">
`, FormatMoneyFull(config.Goal.TargetCapital))
	if goal.Reached {
		fmt.Fprintf(f, `                <div class="goal-big">%d years, %d months</div>
                <p>%d months total &middot; %s invested &middot; %s estimated gain</p>
`,
			goal.Years(), goal.RemainderMonths(), goal.Months,
			FormatMoneyFull(goal.TotalInvested), FormatMoneyFull(goal.EstimatedGain))
	} else {
		fmt.Fprintf(f, `                <p class="goal-warning">Goal unreachable within %d months. Increase the monthly contribution or the expected return.</p>
`, maxGoalMonths)
	}
	fmt.Fprintf(f, "            </div>\n        </div>\n")

	// Sensitivity bar chart
	writeSensitivityBars(f, params, scenarios)

	// Monthly table
	fmt.Fprintf(f, `
        <div class="card">
            <h2>Monthly Detail</h2>
            <table>
                <tr><th>Month</th><th>Opening</th><th>Contribution</th><th>Net Dividends</th><th>Growth</th><th>Closing</th></tr>
`)
	for _, rec := range trajectory {
		fmt.Fprintf(f, "                <tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			rec.Month,
			FormatMoneyFull(rec.OpeningCapital),
			FormatMoneyFull(rec.Contribution),
			FormatMoneyFull(rec.NetDividends),
			FormatMoneyFull(rec.Growth),
			FormatMoneyFull(rec.ClosingCapital))
	}
	fmt.Fprintf(f, "            </table>\n        </div>\n")

	// Footer
	fmt.Fprintf(f, `
        <p style="text-align: center; color: var(--text-muted); margin-top: 2rem;">
            Generated: %s
        </p>
    </div>
</body>
</html>
`, time.Now().Format("2 January 2006 15:04"))

	return nil
}

// writeSensitivityBars writes the scenario comparison as a CSS bar chart
func writeSensitivityBars(f *os.File, params SimulationParams, scenarios []ScenarioResult) {
	if len(scenarios) == 0 {
		return
	}

	maxFinal := 0.0
	for _, s := range scenarios {
		if s.FinalCapital > maxFinal {
			maxFinal = s.FinalCapital
		}
	}
	if maxFinal <= 0 {
		maxFinal = 1
	}

	barColors := map[string]string{
		"Pessimistic": "#ef4444",
		"Base":        "#3b82f6",
		"Optimistic":  "#10b981",
	}

	fmt.Fprintf(f, `
        <div class="card">
            <h2>Sensitivity Analysis</h2>
`)
	for _, s := range scenarios {
		color := barColors[s.Label]
		if color == "" {
			color = "#3b82f6"
		}
		width := s.FinalCapital / maxFinal * 100
		fmt.Fprintf(f, `            <div class="bar-row">
                <div class="bar-label">%s (%s)</div>
                <div class="bar-track"><div class="bar-fill" style="width:%.1f%%; background:%s">%s</div></div>
            </div>
`,
			s.Label, FormatPercent(s.Params.AnnualReturnRate), width, color, FormatMoneyFull(s.FinalCapital))
	}

	if worst, base, best, ok := sensitivitySpread(scenarios); ok {
		fmt.Fprintf(f, `            <p style="margin-top: 1rem; color: var(--text-muted);">
                Worst case vs base: <strong style="color: #ef4444">%s</strong> &middot;
                Best case vs base: <strong style="color: #10b981">+%s</strong>
            </p>
`,
			FormatMoneyFull(worst.FinalCapital-base.FinalCapital),
			FormatMoneyFull(best.FinalCapital-base.FinalCapital))
	}
	fmt.Fprintf(f, "        </div>\n")
}
