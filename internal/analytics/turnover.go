package analytics

import (
	"sort"
	"time"
)

// AnalyzeTurnover summarizes departures per project. Employees are
// associated to a project by matching their department ID against the
// project ID: the schema carries no employee-project membership
// relation, so each department's departures are attributed to the
// project sharing its identifier. TotalEmployees counts the whole
// association; the termination-filtered subset feeds TurnoverCount,
// tenure and the latest departure date.
// Projects are ranked by descending turnover rate (competition rank) and
// independently by descending average tenure (dense rank).
func AnalyzeTurnover(snap Snapshot) []ProjectTurnover {
	groups := partition(snap.Employees, func(e Employee) string { return e.DepartmentID })

	var rows []ProjectTurnover
	for _, project := range snap.Projects {
		members := groups[project.ID]
		if len(members) == 0 {
			continue
		}

		row := ProjectTurnover{
			ProjectID:      project.ID,
			ProjectName:    project.Name,
			TotalEmployees: len(members),
		}
		var tenure runningStats
		for _, member := range members {
			if member.TerminationDate == nil {
				continue
			}
			row.TurnoverCount++
			tenure.add(float64(wholeYears(member.HireDate, *member.TerminationDate)))
			if row.LatestTurnoverDate == nil || member.TerminationDate.After(*row.LatestTurnoverDate) {
				departed := *member.TerminationDate
				row.LatestTurnoverDate = &departed
			}
		}
		if row.TotalEmployees > 0 {
			rate := float64(row.TurnoverCount) / float64(row.TotalEmployees)
			row.TurnoverRate = &rate
		}
		if tenure.count > 0 {
			avg := tenure.avg()
			row.AvgTenureYears = &avg
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if !floatPtrEqual(rows[i].TurnoverRate, rows[j].TurnoverRate) {
			return floatPtrLess(rows[j].TurnoverRate, rows[i].TurnoverRate)
		}
		return rows[i].ProjectID < rows[j].ProjectID
	})
	for i, rank := range competitionRanks(len(rows), func(i, j int) bool {
		return floatPtrEqual(rows[i].TurnoverRate, rows[j].TurnoverRate)
	}) {
		rows[i].TurnoverRank = rank
	}

	sort.Slice(rows, func(i, j int) bool {
		if !floatPtrEqual(rows[i].AvgTenureYears, rows[j].AvgTenureYears) {
			return floatPtrLess(rows[j].AvgTenureYears, rows[i].AvgTenureYears)
		}
		return rows[i].ProjectID < rows[j].ProjectID
	})
	for i, rank := range denseRanks(len(rows), func(i, j int) bool {
		return floatPtrEqual(rows[i].AvgTenureYears, rows[j].AvgTenureYears)
	}) {
		rows[i].TenureRank = rank
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TurnoverRank != rows[j].TurnoverRank {
			return rows[i].TurnoverRank < rows[j].TurnoverRank
		}
		return rows[i].ProjectID < rows[j].ProjectID
	})
	return rows
}

// wholeYears counts full elapsed years between two dates; an anniversary
// not yet reached does not count.
func wholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	anniversary := from.AddDate(years, 0, 0)
	if anniversary.After(to) {
		years--
	}
	return years
}

// floatPtrEqual treats two nils as equal and nil as unequal to any
// value.
func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// floatPtrLess orders nil below every value.
func floatPtrLess(a, b *float64) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return *a < *b
}
