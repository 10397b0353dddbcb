package analytics

import "sort"

// AggregateDepartments computes per-department statistics over every raw
// review score, so an employee with six reviews contributes six samples.
// Departments without any reviewed employee produce no row. The global
// Rank is assigned by position after sorting by descending average
// score, ties broken by department ID so reruns stay stable.
func AggregateDepartments(snap Snapshot) []DepartmentMetrics {
	departments := make(map[string]Department, len(snap.Departments))
	for _, d := range snap.Departments {
		departments[d.ID] = d
	}
	employees := make(map[string]Employee, len(snap.Employees))
	for _, e := range snap.Employees {
		employees[e.ID] = e
	}

	stats := make(map[string]*runningStats)
	reviewed := make(map[string]map[string]struct{})
	for _, review := range snap.Reviews {
		employee, ok := employees[review.EmployeeID]
		if !ok {
			continue
		}
		if _, ok := departments[employee.DepartmentID]; !ok {
			continue
		}
		agg, ok := stats[employee.DepartmentID]
		if !ok {
			agg = &runningStats{}
			stats[employee.DepartmentID] = agg
			reviewed[employee.DepartmentID] = make(map[string]struct{})
		}
		agg.add(review.Score)
		reviewed[employee.DepartmentID][employee.ID] = struct{}{}
	}

	metrics := make([]DepartmentMetrics, 0, len(stats))
	for departmentID, agg := range stats {
		metrics = append(metrics, DepartmentMetrics{
			DepartmentID:  departmentID,
			Name:          departments[departmentID].Name,
			AvgScore:      agg.avg(),
			MinScore:      agg.min,
			MaxScore:      agg.max,
			StdDev:        agg.stdDev(),
			EmployeeCount: len(reviewed[departmentID]),
			TotalScore:    agg.sum,
		})
	}

	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].AvgScore != metrics[j].AvgScore {
			return metrics[i].AvgScore > metrics[j].AvgScore
		}
		return metrics[i].DepartmentID < metrics[j].DepartmentID
	})
	for i := range metrics {
		metrics[i].Rank = i + 1
	}
	return metrics
}
