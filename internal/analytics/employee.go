package analytics

import "sort"

// ScoreEmployees aggregates review scores per employee: average, count,
// min, max and sample standard deviation. Employees with no reviews and
// reviews without a matching employee are dropped (inner-join
// semantics). Rows come back ordered by employee ID.
func ScoreEmployees(snap Snapshot) []EmployeeScore {
	employees := make(map[string]Employee, len(snap.Employees))
	for _, e := range snap.Employees {
		employees[e.ID] = e
	}

	stats := make(map[string]*runningStats)
	for _, review := range snap.Reviews {
		if _, ok := employees[review.EmployeeID]; !ok {
			continue
		}
		agg, ok := stats[review.EmployeeID]
		if !ok {
			agg = &runningStats{}
			stats[review.EmployeeID] = agg
		}
		agg.add(review.Score)
	}

	scores := make([]EmployeeScore, 0, len(stats))
	for employeeID, agg := range stats {
		employee := employees[employeeID]
		scores = append(scores, EmployeeScore{
			EmployeeID:   employeeID,
			Name:         employee.Name,
			DepartmentID: employee.DepartmentID,
			AvgScore:     agg.avg(),
			MinScore:     agg.min,
			MaxScore:     agg.max,
			StdDev:       agg.stdDev(),
			ReviewCount:  agg.count,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].EmployeeID < scores[j].EmployeeID
	})
	return scores
}
