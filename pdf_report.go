package main

import (
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport generates a PDF report with the headline metrics, the
// sensitivity scenarios, the goal outcome and the paginated monthly table.
func GeneratePDFReport(config *Config, filename string) error {
	params := config.Investment
	trajectory := Simulate(params)
	scenarios := Sensitivity(params, config.SensitivityDeltas())
	goal := MonthsToGoal(params, config.Goal.TargetCapital)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(0, 10, "ETF Investment Projection", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 6, "DRIP + monthly contributions, net of dividend withholding", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Parameter summary
	pdf.SetTextColor(30, 41, 59)
	writePDFKeyValue(pdf, "Initial Capital", FormatMoneyFull(params.InitialCapital))
	writePDFKeyValue(pdf, "Monthly Contribution", FormatMoneyFull(params.MonthlyContribution))
	writePDFKeyValue(pdf, "Annual Return", FormatPercent(params.AnnualReturnRate))
	writePDFKeyValue(pdf, "Annual Dividends", FormatPercent(params.AnnualDividendRate))
	writePDFKeyValue(pdf, "Withholding", FormatPercent(params.WithholdingRate))
	writePDFKeyValue(pdf, "Horizon", FormatMonths(params.HorizonMonths))
	pdf.Ln(4)

	// Headline results
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Results", "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	writePDFKeyValue(pdf, "Total Invested", FormatMoneyFull(params.TotalInvested()))
	writePDFKeyValue(pdf, "Final Capital", FormatMoneyFull(trajectory.FinalCapital()))
	writePDFKeyValue(pdf, "Total Gain", FormatMoneyFull(trajectory.Gain(params)))
	writePDFKeyValue(pdf, "Total Return", FormatPercent(trajectory.TotalReturnPct(params)))
	pdf.Ln(4)

	// Goal outcome
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Time to Goal ("+FormatMoneyFull(config.Goal.TargetCapital)+")", "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 10)
	if goal.Reached {
		writePDFKeyValue(pdf, "Time Needed", FormatMonths(goal.Months))
		writePDFKeyValue(pdf, "Total Invested", FormatMoneyFull(goal.TotalInvested))
		writePDFKeyValue(pdf, "Estimated Gain", FormatMoneyFull(goal.EstimatedGain))
	} else {
		pdf.SetTextColor(220, 38, 38)
		pdf.CellFormat(0, 6, "Goal unreachable within 600 months with these parameters.", "", 1, "L", false, 0, "")
		pdf.SetTextColor(30, 41, 59)
	}
	pdf.Ln(4)

	// Sensitivity scenarios
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Sensitivity Analysis", "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(37, 99, 235)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(40, 7, "Scenario", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Return", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 7, "Final Capital", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 7, "Gain", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 41, 59)
	for _, s := range scenarios {
		pdf.CellFormat(40, 6, s.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, FormatPercent(s.Params.AnnualReturnRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, FormatMoneyFull(s.FinalCapital), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, FormatMoneyFull(s.Gain()), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Monthly table on a fresh page
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Monthly Detail", "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	writeMonthlyTableHeader(pdf)

	pdf.SetFont("Helvetica", "", 8)
	for _, rec := range trajectory {
		// Repeat the header after each page break
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeMonthlyTableHeader(pdf)
			pdf.SetFont("Helvetica", "", 8)
		}
		pdf.CellFormat(18, 5.5, strconv.Itoa(rec.Month), "1", 0, "R", false, 0, "")
		pdf.CellFormat(34, 5.5, FormatMoneyFull(rec.OpeningCapital), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 5.5, FormatMoneyFull(rec.Contribution), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 5.5, FormatMoneyFull(rec.NetDividends), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 5.5, FormatMoneyFull(rec.Growth), "1", 0, "R", false, 0, "")
		pdf.CellFormat(34, 5.5, FormatMoneyFull(rec.ClosingCapital), "1", 1, "R", false, 0, "")
	}

	// Footer timestamp
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 5, "Generated: "+time.Now().Format("2 January 2006 15:04"), "", 1, "L", false, 0, "")

	return pdf.OutputFileAndClose(filename)
}

// writePDFKeyValue writes a label/value pair as a two-column row
func writePDFKeyValue(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(55, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

// writeMonthlyTableHeader writes the monthly table column headers
func writeMonthlyTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(37, 99, 235)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(18, 6, "Month", "1", 0, "R", true, 0, "")
	pdf.CellFormat(34, 6, "Opening", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 6, "Contribution", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 6, "Dividends", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 6, "Growth", "1", 0, "R", true, 0, "")
	pdf.CellFormat(34, 6, "Closing", "1", 1, "R", true, 0, "")
	pdf.SetTextColor(30, 41, 59)
}
