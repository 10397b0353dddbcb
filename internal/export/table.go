package export

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"workforce/internal/analytics"
)

// WriteTable renders the report as a terminal table with the columns a
// reader scans for first; the full column set is available via CSV.
func WriteTable(w io.Writer, rows []analytics.ReportRow) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{
		"Department", "Avg Score", "Rank", "Top Performer", "Score", "Reviews",
		"Quartile", "Salaries", "Avg Salary", "Project", "Turnover", "T-Rank", "Latest Departure",
	})

	for _, row := range rows {
		turnover := ""
		if row.TurnoverRate != nil {
			turnover = fmt.Sprintf("%.1f%%", *row.TurnoverRate*100)
		}
		latest := ""
		if row.LatestTurnoverDate != nil {
			latest = row.LatestTurnoverDate.Format("2006-01-02")
		}
		tbl.AppendRow(table.Row{
			row.DepartmentName,
			fmt.Sprintf("%.2f", row.AvgDepartmentScore),
			row.PerformanceRank,
			row.TopPerformerName,
			fmt.Sprintf("%.2f", row.TopPerformerScore),
			row.TopPerformerReviews,
			row.SalaryQuartile,
			row.SalaryCount,
			fmt.Sprintf("%.2f", row.AvgSalary),
			row.ProjectName,
			turnover,
			row.TurnoverRank,
			latest,
		})
	}

	tbl.Render()
}
