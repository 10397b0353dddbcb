package analytics

import "sort"

// AnalyzeSalaries places every salaried employee within their
// department's pay distribution: a quartile bucket (remainder rows fall
// into the earliest buckets), a percent rank and a cumulative
// distribution fraction, all over salaries sorted ascending. Salaries
// without a matching employee are dropped.
func AnalyzeSalaries(snap Snapshot) []SalaryQuartileRow {
	employees := make(map[string]Employee, len(snap.Employees))
	for _, e := range snap.Employees {
		employees[e.ID] = e
	}

	var joined []SalaryQuartileRow
	for _, salary := range snap.Salaries {
		employee, ok := employees[salary.EmployeeID]
		if !ok {
			continue
		}
		joined = append(joined, SalaryQuartileRow{
			DepartmentID: employee.DepartmentID,
			EmployeeID:   salary.EmployeeID,
			Salary:       salary.Salary,
		})
	}

	groups := partition(joined, func(r SalaryQuartileRow) string { return r.DepartmentID })

	var out []SalaryQuartileRow
	for _, departmentID := range sortedKeys(groups) {
		rows := groups[departmentID]
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Salary != rows[j].Salary {
				return rows[i].Salary < rows[j].Salary
			}
			return rows[i].EmployeeID < rows[j].EmployeeID
		})

		n := len(rows)
		tied := func(i, j int) bool { return rows[i].Salary == rows[j].Salary }
		quartiles := ntileBuckets(n, 4)
		pctRanks := percentRanks(n, tied)
		dists := cumeDists(n, tied)
		for i := range rows {
			rows[i].Quartile = quartiles[i]
			rows[i].PercentRank = pctRanks[i]
			rows[i].CumeDist = dists[i]
		}
		out = append(out, rows...)
	}
	return out
}
