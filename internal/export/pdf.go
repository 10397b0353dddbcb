package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"workforce/internal/analytics"
)

// WritePDF renders the report grouped by department: a heading with the
// department aggregates, its top performer and turnover summary, then
// one line per salary quartile bucket.
func WritePDF(w io.Writer, rows []analytics.ReportRow) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Workforce Analytics Report")
	pdf.Ln(12)

	currentDept := ""
	currentPerformer := ""
	for _, row := range rows {
		if row.DepartmentName != currentDept || row.TopPerformerName != currentPerformer {
			currentDept = row.DepartmentName
			currentPerformer = row.TopPerformerName

			pdf.SetFont("Helvetica", "B", 12)
			pdf.Cell(0, 8, fmt.Sprintf("%s (rank %d)", row.DepartmentName, row.PerformanceRank))
			pdf.Ln(7)
			pdf.SetFont("Helvetica", "", 10)
			pdf.Cell(0, 6, fmt.Sprintf("Avg score %.2f (min %.2f, max %.2f, total %.2f) over %d employees",
				row.AvgDepartmentScore, row.MinDepartmentScore, row.MaxDepartmentScore, row.TotalScore, row.EmployeeCount))
			pdf.Ln(5)
			pdf.Cell(0, 6, fmt.Sprintf("Top performer: %s, avg %.2f over %d reviews",
				row.TopPerformerName, row.TopPerformerScore, row.TopPerformerReviews))
			pdf.Ln(5)
			turnover := "n/a"
			if row.TurnoverRate != nil {
				turnover = fmt.Sprintf("%.1f%%", *row.TurnoverRate*100)
			}
			latest := ""
			if row.LatestTurnoverDate != nil {
				latest = ", latest departure " + row.LatestTurnoverDate.Format("2006-01-02")
			}
			pdf.Cell(0, 6, fmt.Sprintf("Project %s: turnover %s (rank %d, tenure rank %d)%s",
				row.ProjectName, turnover, row.TurnoverRank, row.AvgTenureRank, latest))
			pdf.Ln(6)
		}

		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("  Q%d: %d salaries, %.2f - %.2f (avg %.2f), pct-rank %.3f, cume-dist %.3f",
			row.SalaryQuartile, row.SalaryCount, row.MinSalary, row.MaxSalary, row.AvgSalary,
			row.MaxPercentRank, row.MaxCumeDist))
		pdf.Ln(5)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
