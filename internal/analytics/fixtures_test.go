package analytics

import "time"

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y, m, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// engineeringSnapshot is the worked scenario: three engineers with
// review sets {80,90,100}, {70} and {60,60}, plus salaries and a project
// sharing the department's identifier.
func engineeringSnapshot() Snapshot {
	return Snapshot{
		Departments: []Department{{ID: "d1", Name: "Engineering"}},
		Projects:    []Project{{ID: "d1", Name: "Platform"}},
		Employees: []Employee{
			{ID: "e1", Name: "Amara", DepartmentID: "d1", HireDate: date(2018, 3, 1)},
			{ID: "e2", Name: "Bo", DepartmentID: "d1", HireDate: date(2019, 7, 15)},
			{ID: "e3", Name: "Caleb", DepartmentID: "d1", HireDate: date(2017, 1, 10), TerminationDate: datePtr(2022, 6, 30)},
		},
		Reviews: []PerformanceReview{
			{ID: "r1", EmployeeID: "e1", Score: 80},
			{ID: "r2", EmployeeID: "e1", Score: 90},
			{ID: "r3", EmployeeID: "e1", Score: 100},
			{ID: "r4", EmployeeID: "e2", Score: 70},
			{ID: "r5", EmployeeID: "e3", Score: 60},
			{ID: "r6", EmployeeID: "e3", Score: 60},
		},
		Salaries: []Salary{
			{EmployeeID: "e1", Salary: 95000},
			{EmployeeID: "e2", Salary: 70000},
			{EmployeeID: "e3", Salary: 62000},
		},
	}
}
