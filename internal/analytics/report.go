package analytics

import (
	"sort"
	"sync"
)

// Run computes the four independent stage chains concurrently over the
// same snapshot and composes their outputs. Stages share nothing but the
// read-only snapshot, so plain goroutines are enough.
func Run(snap Snapshot) []ReportRow {
	var (
		ranked      []RankedEmployee
		departments []DepartmentMetrics
		salaries    []SalaryQuartileRow
		turnover    []ProjectTurnover
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		ranked = RankWithinDepartments(ScoreEmployees(snap))
	}()
	go func() {
		defer wg.Done()
		departments = AggregateDepartments(snap)
	}()
	go func() {
		defer wg.Done()
		salaries = AnalyzeSalaries(snap)
	}()
	go func() {
		defer wg.Done()
		turnover = AnalyzeTurnover(snap)
	}()
	wg.Wait()

	return ComposeReport(departments, ranked, salaries, turnover)
}

// salaryBucket is a per-(department, quartile) re-aggregation of the
// salary distribution rows.
type salaryBucket struct {
	quartile       int
	stats          runningStats
	maxPercentRank float64
	maxCumeDist    float64
}

// ComposeReport joins department metrics to their rank-1 performers,
// quartile salary buckets and the turnover row whose project ID equals
// the department ID. All joins are inner: a department missing a top
// performer, salary rows or a turnover match is dropped. Rows come back
// ordered by department average score, then turnover rate, descending.
func ComposeReport(departments []DepartmentMetrics, ranked []RankedEmployee, salaries []SalaryQuartileRow, turnover []ProjectTurnover) []ReportRow {
	topPerformers := make(map[string][]RankedEmployee)
	for _, r := range ranked {
		if r.DeptRank == 1 {
			topPerformers[r.DepartmentID] = append(topPerformers[r.DepartmentID], r)
		}
	}

	buckets := make(map[string][]*salaryBucket)
	for _, row := range salaries {
		var bucket *salaryBucket
		for _, b := range buckets[row.DepartmentID] {
			if b.quartile == row.Quartile {
				bucket = b
				break
			}
		}
		if bucket == nil {
			bucket = &salaryBucket{quartile: row.Quartile}
			buckets[row.DepartmentID] = append(buckets[row.DepartmentID], bucket)
		}
		bucket.stats.add(row.Salary)
		if row.PercentRank > bucket.maxPercentRank {
			bucket.maxPercentRank = row.PercentRank
		}
		if row.CumeDist > bucket.maxCumeDist {
			bucket.maxCumeDist = row.CumeDist
		}
	}

	turnoverByProject := make(map[string]ProjectTurnover, len(turnover))
	for _, t := range turnover {
		turnoverByProject[t.ProjectID] = t
	}

	var report []ReportRow
	for _, dept := range departments {
		performers := topPerformers[dept.DepartmentID]
		deptBuckets := buckets[dept.DepartmentID]
		projectRow, hasTurnover := turnoverByProject[dept.DepartmentID]
		if len(performers) == 0 || len(deptBuckets) == 0 || !hasTurnover {
			continue
		}

		sort.Slice(deptBuckets, func(i, j int) bool {
			return deptBuckets[i].quartile < deptBuckets[j].quartile
		})

		for _, performer := range performers {
			for _, bucket := range deptBuckets {
				report = append(report, ReportRow{
					DepartmentName:     dept.Name,
					AvgDepartmentScore: dept.AvgScore,
					MinDepartmentScore: dept.MinScore,
					MaxDepartmentScore: dept.MaxScore,
					TotalScore:         dept.TotalScore,
					StdDevScore:        dept.StdDev,
					EmployeeCount:      dept.EmployeeCount,
					PerformanceRank:    dept.Rank,

					TopPerformerName:    performer.Name,
					TopPerformerScore:   performer.AvgScore,
					TopPerformerReviews: performer.ReviewCount,
					TopPerformerMin:     performer.MinScore,
					TopPerformerMax:     performer.MaxScore,
					TopPerformerStdDev:  performer.StdDev,
					TopPerformerRank:    performer.DeptRank,

					SalaryQuartile: bucket.quartile,
					SalaryCount:    bucket.stats.count,
					MinSalary:      bucket.stats.min,
					MaxSalary:      bucket.stats.max,
					AvgSalary:      bucket.stats.avg(),
					MaxPercentRank: bucket.maxPercentRank,
					MaxCumeDist:    bucket.maxCumeDist,

					ProjectName:        projectRow.ProjectName,
					TurnoverRate:       projectRow.TurnoverRate,
					TurnoverRank:       projectRow.TurnoverRank,
					AvgTenureRank:      projectRow.TenureRank,
					LatestTurnoverDate: projectRow.LatestTurnoverDate,
				})
			}
		}
	}

	sort.Slice(report, func(i, j int) bool {
		if report[i].AvgDepartmentScore != report[j].AvgDepartmentScore {
			return report[i].AvgDepartmentScore > report[j].AvgDepartmentScore
		}
		if !floatPtrEqual(report[i].TurnoverRate, report[j].TurnoverRate) {
			return floatPtrLess(report[j].TurnoverRate, report[i].TurnoverRate)
		}
		if report[i].PerformanceRank != report[j].PerformanceRank {
			return report[i].PerformanceRank < report[j].PerformanceRank
		}
		if report[i].TopPerformerName != report[j].TopPerformerName {
			return report[i].TopPerformerName < report[j].TopPerformerName
		}
		return report[i].SalaryQuartile < report[j].SalaryQuartile
	})
	return report
}
