package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

func main() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `ETF Investment Growth Simulator

Projects month-by-month compound growth of an investment portfolio with
monthly contributions (DCA) and automatic dividend reinvestment (DRIP),
net of a flat dividend withholding tax.

MODES:
  PROJECTION (default)
    Simulates the configured horizon and prints the headline metrics plus
    a month-by-month table (-details for every month).

  GOAL (-goal flag)
    Iterates the same recurrence until capital reaches goal.target_capital
    (or -target) and reports the months needed. Capped at 600 months; if
    the target cannot be reached within the cap, it is reported as
    unreachable rather than extrapolated.

  COMPARE (-compare flag)
    Runs the projection once per configured ETF (etfs list in config),
    sharing capital, contribution, withholding and horizon.

  SENSITIVITY (-sensitivity flag)
    Reruns the projection with the annual return shifted by the configured
    deltas (default -5/0/+5 percentage points, floored at 0%%) to bound
    pessimistic and optimistic outcomes.

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                           Projection with config.yaml (or defaults)
  %s -config my.yaml           Use custom configuration file
  %s -details                  Full month-by-month table
  %s -goal -target 250000      Months needed to reach $250k
  %s -compare                  Compare the configured ETFs
  %s -sensitivity              Pessimistic/base/optimistic scenarios
  %s -html                     Self-contained HTML report (opens browser)
  %s -pdf                      PDF report
  %s -csv                      Export the monthly table as CSV
  %s -compare -csv             Export the ETF comparison as CSV
  %s -months 120 -save         Persist the overridden horizon to config.yaml
  %s -web                      Interactive browser UI
  %s -web -addr :8080          Web UI on a specific port

Configuration:
  Edit config.yaml to change the investment parameters, goal, sensitivity
  deltas and ETF comparison list. Without a config file the embedded
  defaults are used ($10,000 + $500/month, 10%% return, 2%% dividends,
  30%% withholding, 60 months). -save writes the effective configuration
  back so it can be edited by hand.
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0],
			os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0],
			os.Args[0], os.Args[0])
	}

	// Command line flags
	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	showDetails := flag.Bool("details", false, "Show every month in the projection table")
	runGoal := flag.Bool("goal", false, "Calculate months needed to reach the target capital")
	runCompare := flag.Bool("compare", false, "Compare the configured ETFs over the same horizon")
	runSensitivity := flag.Bool("sensitivity", false, "Run return-rate sensitivity scenarios")
	generateHTML := flag.Bool("html", false, "Generate a self-contained HTML report")
	generatePDF := flag.Bool("pdf", false, "Generate a PDF report")
	exportCSV := flag.Bool("csv", false, "Export the monthly projection as CSV")
	webMode := flag.Bool("web", false, "Start web server mode (opens browser)")
	webAddr := flag.String("addr", "localhost:0", "Web server address (for -web mode, use :0 for auto port)")
	targetOverride := flag.Float64("target", 0, "Override goal.target_capital (for -goal mode)")
	monthsOverride := flag.Int("months", 0, "Override investment.horizon_months")
	saveConfigFlag := flag.Bool("save", false, "Save the effective configuration back to the config file")
	flag.Parse()

	config, err := loadConfigOrDefault(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *monthsOverride > 0 {
		config.Investment.HorizonMonths = *monthsOverride
	}
	if *targetOverride > 0 {
		config.Goal.TargetCapital = *targetOverride
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Persist the effective config (with overrides applied)
	if *saveConfigFlag {
		if err := SaveConfig(config, *configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Configuration saved to %s\n", *configFile)
	}

	// Web server mode
	if *webMode {
		server := NewWebServer(config, *webAddr, *configFile)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runConsoleMode(config, *showDetails, *runGoal, *runCompare, *runSensitivity,
		*generateHTML, *generatePDF, *exportCSV)
}

// runConsoleMode runs the selected analyses and prints or exports results
func runConsoleMode(config *Config, showDetails, runGoal, runCompare, runSensitivity,
	generateHTML, generatePDF, exportCSV bool) {

	PrintHeader(config)

	params := config.Investment
	trajectory := Simulate(params)

	PrintSummary(params, trajectory)

	// Goal mode replaces the projection table with the goal outcome
	if runGoal {
		PrintGoalResult(config.Goal.TargetCapital, MonthsToGoal(params, config.Goal.TargetCapital))
	}

	var comparison []ComparisonResult
	if runCompare {
		comparison = CompareETFs(params, config.ETFs)
		PrintComparison(comparison)
	}

	if runSensitivity {
		PrintSensitivity(params, Sensitivity(params, config.SensitivityDeltas()))
	}

	if !runGoal && !runCompare && !runSensitivity {
		PrintMonthlyTable(trajectory, showDetails)
	}

	timestamp := time.Now().Format("2006-01-02_1504")

	if generateHTML {
		filename := fmt.Sprintf("etf_report_%s.html", timestamp)
		if err := GenerateHTMLReport(config, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating HTML report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("HTML report written to %s\n", filename)
		openBrowser(filename)
	}

	if generatePDF {
		filename := fmt.Sprintf("etf_report_%s.pdf", timestamp)
		if err := GeneratePDFReport(config, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating PDF report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PDF report written to %s\n", filename)
	}

	if exportCSV {
		var filename string
		var err error
		if runCompare {
			filename = fmt.Sprintf("etf_comparison_%s.csv", timestamp)
			err = ExportComparisonCSV(filename, comparison)
		} else {
			filename = fmt.Sprintf("etf_projection_%s.csv", timestamp)
			err = ExportTrajectoryCSV(filename, trajectory)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("CSV written to %s\n", filename)
	}
}

// openBrowser opens a file or URL in the default browser
func openBrowser(target string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		fmt.Printf("Open %s manually in your browser\n", target)
	}
}
