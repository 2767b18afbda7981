package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteTrajectoryCSV writes the month-by-month projection as CSV
func WriteTrajectoryCSV(w io.Writer, trajectory Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Month", "Opening Capital", "Contribution", "Net Dividends", "Growth", "Closing Capital"}); err != nil {
		return err
	}

	for _, rec := range trajectory {
		row := []string{
			fmt.Sprintf("%d", rec.Month),
			fmt.Sprintf("%.2f", rec.OpeningCapital),
			fmt.Sprintf("%.2f", rec.Contribution),
			fmt.Sprintf("%.2f", rec.NetDividends),
			fmt.Sprintf("%.2f", rec.Growth),
			fmt.Sprintf("%.2f", rec.ClosingCapital),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportTrajectoryCSV writes the projection CSV to a file
func ExportTrajectoryCSV(filename string, trajectory Trajectory) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteTrajectoryCSV(f, trajectory)
}

// ExportComparisonCSV writes the comparison CSV to a file
func ExportComparisonCSV(filename string, results []ComparisonResult) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteComparisonCSV(f, results)
}

// WriteComparisonCSV writes the ETF comparison finals as CSV
func WriteComparisonCSV(w io.Writer, results []ComparisonResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ETF", "Annual Return %", "Annual Dividend %", "Final Capital", "Gain"}); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Name,
			fmt.Sprintf("%.2f", r.Params.AnnualReturnRate),
			fmt.Sprintf("%.2f", r.Params.AnnualDividendRate),
			fmt.Sprintf("%.2f", r.FinalCapital),
			fmt.Sprintf("%.2f", r.Gain),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
