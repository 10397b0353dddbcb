package analytics

import (
	"testing"
	"time"
)

func TestAnalyzeTurnover(t *testing.T) {
	snap := Snapshot{
		Projects: []Project{
			{ID: "d1", Name: "Platform"},
			{ID: "d2", Name: "Mobile"},
		},
		Employees: []Employee{
			{ID: "e1", DepartmentID: "d1", HireDate: date(2015, 1, 1), TerminationDate: datePtr(2020, 1, 1)},
			{ID: "e2", DepartmentID: "d1", HireDate: date(2018, 1, 1), TerminationDate: datePtr(2021, 6, 1)},
			{ID: "e3", DepartmentID: "d1", HireDate: date(2019, 1, 1)},
			{ID: "e4", DepartmentID: "d1", HireDate: date(2020, 1, 1)},
			{ID: "e5", DepartmentID: "d2", HireDate: date(2020, 1, 1)},
		},
	}

	rows := AnalyzeTurnover(snap)
	if len(rows) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(rows))
	}

	platform := rows[0]
	if platform.ProjectID != "d1" {
		t.Fatalf("expected d1 ranked first by turnover rate, got %s", platform.ProjectID)
	}
	if platform.TotalEmployees != 4 {
		t.Fatalf("total must count the whole association, got %d", platform.TotalEmployees)
	}
	if platform.TurnoverCount != 2 {
		t.Fatalf("expected 2 departures, got %d", platform.TurnoverCount)
	}
	if platform.TurnoverRate == nil || !almostEqual(*platform.TurnoverRate, 0.5) {
		t.Fatalf("expected rate 0.5, got %v", platform.TurnoverRate)
	}
	// Tenures 5 and 3 whole years.
	if platform.AvgTenureYears == nil || !almostEqual(*platform.AvgTenureYears, 4) {
		t.Fatalf("expected avg tenure 4, got %v", platform.AvgTenureYears)
	}
	if platform.LatestTurnoverDate == nil || !platform.LatestTurnoverDate.Equal(date(2021, 6, 1)) {
		t.Fatalf("expected latest departure 2021-06-01, got %v", platform.LatestTurnoverDate)
	}
	if platform.TurnoverRank != 1 || platform.TenureRank != 1 {
		t.Fatalf("expected platform first on both rankings, got %+v", platform)
	}
}

func TestAnalyzeTurnoverZeroDeparturesIsRateZero(t *testing.T) {
	snap := Snapshot{
		Projects: []Project{{ID: "d1", Name: "Stable"}},
		Employees: []Employee{
			{ID: "e1", DepartmentID: "d1", HireDate: date(2020, 1, 1)},
			{ID: "e2", DepartmentID: "d1", HireDate: date(2020, 1, 1)},
			{ID: "e3", DepartmentID: "d1", HireDate: date(2020, 1, 1)},
			{ID: "e4", DepartmentID: "d1", HireDate: date(2020, 1, 1)},
			{ID: "e5", DepartmentID: "d1", HireDate: date(2020, 1, 1)},
		},
	}

	rows := AnalyzeTurnover(snap)
	if len(rows) != 1 {
		t.Fatalf("expected 1 project, got %d", len(rows))
	}
	row := rows[0]
	if row.TurnoverRate == nil || *row.TurnoverRate != 0 {
		t.Fatalf("five employees and zero departures must give rate 0, got %v", row.TurnoverRate)
	}
	if row.AvgTenureYears != nil {
		t.Fatalf("expected nil tenure with no departures, got %v", *row.AvgTenureYears)
	}
	if row.LatestTurnoverDate != nil {
		t.Fatal("expected nil latest departure date")
	}
}

func TestAnalyzeTurnoverRateBounds(t *testing.T) {
	snap := engineeringSnapshot()
	for _, row := range AnalyzeTurnover(snap) {
		if row.TurnoverRate == nil {
			t.Fatalf("rate must be defined when employees exist: %+v", row)
		}
		if *row.TurnoverRate < 0 || *row.TurnoverRate > 1 {
			t.Fatalf("rate out of [0,1]: %v", *row.TurnoverRate)
		}
	}
}

func TestAnalyzeTurnoverSkipsProjectsWithoutEmployees(t *testing.T) {
	snap := Snapshot{
		Projects:  []Project{{ID: "p-lonely", Name: "Lonely"}},
		Employees: []Employee{{ID: "e1", DepartmentID: "d1", HireDate: date(2020, 1, 1)}},
	}
	if rows := AnalyzeTurnover(snap); len(rows) != 0 {
		t.Fatalf("project with no associated employees must produce no row, got %d", len(rows))
	}
}

func TestAnalyzeTurnoverRankings(t *testing.T) {
	term := func(y int) *time.Time { return datePtr(y, 1, 2) }
	snap := Snapshot{
		Projects: []Project{
			{ID: "d1", Name: "A"},
			{ID: "d2", Name: "B"},
			{ID: "d3", Name: "C"},
		},
		Employees: []Employee{
			// d1: 2/2 departed, tenures 3 and 3.
			{ID: "a1", DepartmentID: "d1", HireDate: date(2015, 1, 1), TerminationDate: term(2018)},
			{ID: "a2", DepartmentID: "d1", HireDate: date(2016, 1, 1), TerminationDate: term(2019)},
			// d2: 1/1 departed, tenure 5.
			{ID: "b1", DepartmentID: "d2", HireDate: date(2014, 1, 1), TerminationDate: term(2019)},
			// d3: 0/2 departed.
			{ID: "c1", DepartmentID: "d3", HireDate: date(2020, 1, 1)},
			{ID: "c2", DepartmentID: "d3", HireDate: date(2020, 1, 1)},
		},
	}

	rows := AnalyzeTurnover(snap)
	byID := make(map[string]ProjectTurnover)
	for _, r := range rows {
		byID[r.ProjectID] = r
	}

	// d1 and d2 tie at rate 1.0 and share rank 1; d3 skips to rank 3.
	if byID["d1"].TurnoverRank != 1 || byID["d2"].TurnoverRank != 1 {
		t.Fatalf("tied rates must share the turnover rank: %+v", byID)
	}
	if byID["d3"].TurnoverRank != 3 {
		t.Fatalf("competition rank must skip after ties, got %d", byID["d3"].TurnoverRank)
	}
	// Tenure dense rank: d2 (5y) = 1, d1 (3y) = 2, d3 (undefined) = 3.
	if byID["d2"].TenureRank != 1 || byID["d1"].TenureRank != 2 || byID["d3"].TenureRank != 3 {
		t.Fatalf("unexpected tenure ranks: %+v", byID)
	}
}

func TestWholeYears(t *testing.T) {
	hire := date(2020, 6, 15)
	if got := wholeYears(hire, date(2023, 6, 14)); got != 2 {
		t.Fatalf("day before anniversary: expected 2, got %d", got)
	}
	if got := wholeYears(hire, date(2023, 6, 15)); got != 3 {
		t.Fatalf("on anniversary: expected 3, got %d", got)
	}
	if got := wholeYears(hire, date(2020, 9, 1)); got != 0 {
		t.Fatalf("under a year: expected 0, got %d", got)
	}
}
