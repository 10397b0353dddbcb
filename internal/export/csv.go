package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"workforce/internal/analytics"
)

var csvHeader = []string{
	"department_name", "avg_department_score", "min_department_score", "max_department_score",
	"total_score", "stddev_score", "employee_count", "performance_rank",
	"top_performer_name", "top_performer_score", "top_performer_reviews",
	"top_performer_min", "top_performer_max", "top_performer_stddev", "top_performer_rank",
	"salary_quartile", "salary_count", "min_salary", "max_salary", "avg_salary",
	"max_percent_rank", "max_cume_dist",
	"project_name", "turnover_rate", "turnover_rank", "avg_tenure_rank", "latest_turnover_date",
}

// WriteCSV streams the report with one record per row. Undefined values
// (nil pointers) become empty fields.
func WriteCSV(w io.Writer, rows []analytics.ReportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.DepartmentName,
			formatFloat(row.AvgDepartmentScore),
			formatFloat(row.MinDepartmentScore),
			formatFloat(row.MaxDepartmentScore),
			formatFloat(row.TotalScore),
			formatFloatPtr(row.StdDevScore),
			strconv.Itoa(row.EmployeeCount),
			strconv.Itoa(row.PerformanceRank),
			row.TopPerformerName,
			formatFloat(row.TopPerformerScore),
			strconv.Itoa(row.TopPerformerReviews),
			formatFloat(row.TopPerformerMin),
			formatFloat(row.TopPerformerMax),
			formatFloatPtr(row.TopPerformerStdDev),
			strconv.Itoa(row.TopPerformerRank),
			strconv.Itoa(row.SalaryQuartile),
			strconv.Itoa(row.SalaryCount),
			formatFloat(row.MinSalary),
			formatFloat(row.MaxSalary),
			formatFloat(row.AvgSalary),
			formatFloat(row.MaxPercentRank),
			formatFloat(row.MaxCumeDist),
			row.ProjectName,
			formatFloatPtr(row.TurnoverRate),
			strconv.Itoa(row.TurnoverRank),
			strconv.Itoa(row.AvgTenureRank),
			formatDatePtr(row.LatestTurnoverDate),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatDatePtr(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02")
}
