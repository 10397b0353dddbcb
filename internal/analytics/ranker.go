package analytics

import "sort"

// RankWithinDepartments assigns each scored employee two independent
// rankings that restart at 1 per department: a competition rank by
// descending average score and a dense rank by descending review count.
// Several employees can share dept rank 1; all of them count as the
// department's top performers.
func RankWithinDepartments(scores []EmployeeScore) []RankedEmployee {
	groups := partition(scores, func(s EmployeeScore) string { return s.DepartmentID })

	var ranked []RankedEmployee
	for _, departmentID := range sortedKeys(groups) {
		members := groups[departmentID]

		rows := make([]RankedEmployee, len(members))
		for i, member := range members {
			rows[i] = RankedEmployee{EmployeeScore: member}
		}

		sort.Slice(rows, func(i, j int) bool {
			if rows[i].AvgScore != rows[j].AvgScore {
				return rows[i].AvgScore > rows[j].AvgScore
			}
			return rows[i].EmployeeID < rows[j].EmployeeID
		})
		for i, rank := range competitionRanks(len(rows), func(i, j int) bool {
			return rows[i].AvgScore == rows[j].AvgScore
		}) {
			rows[i].DeptRank = rank
		}

		sort.Slice(rows, func(i, j int) bool {
			if rows[i].ReviewCount != rows[j].ReviewCount {
				return rows[i].ReviewCount > rows[j].ReviewCount
			}
			return rows[i].EmployeeID < rows[j].EmployeeID
		})
		for i, rank := range denseRanks(len(rows), func(i, j int) bool {
			return rows[i].ReviewCount == rows[j].ReviewCount
		}) {
			rows[i].ReviewRank = rank
		}

		sort.Slice(rows, func(i, j int) bool {
			if rows[i].DeptRank != rows[j].DeptRank {
				return rows[i].DeptRank < rows[j].DeptRank
			}
			return rows[i].EmployeeID < rows[j].EmployeeID
		})
		ranked = append(ranked, rows...)
	}
	return ranked
}
