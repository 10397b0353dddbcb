package analytics

import "time"

// Snapshot is an immutable copy of the five source tables. All pipeline
// functions read from it and never modify it.
type Snapshot struct {
	Employees   []Employee
	Departments []Department
	Projects    []Project
	Reviews     []PerformanceReview
	Salaries    []Salary
}

type Employee struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	DepartmentID    string     `json:"departmentId"`
	HireDate        time.Time  `json:"hireDate"`
	TerminationDate *time.Time `json:"terminationDate,omitempty"`
}

type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PerformanceReview struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	Score      float64 `json:"score"`
}

type Salary struct {
	EmployeeID string  `json:"employeeId"`
	Salary     float64 `json:"salary"`
}

// EmployeeScore is one employee's aggregate review statistics. StdDev is
// nil when the employee has a single review (sample variance needs two).
type EmployeeScore struct {
	EmployeeID   string   `json:"employeeId"`
	Name         string   `json:"name"`
	DepartmentID string   `json:"departmentId"`
	AvgScore     float64  `json:"avgScore"`
	MinScore     float64  `json:"minScore"`
	MaxScore     float64  `json:"maxScore"`
	StdDev       *float64 `json:"stdDev"`
	ReviewCount  int      `json:"reviewCount"`
}

// RankedEmployee carries two independent per-department rankings:
// DeptRank is a competition rank by descending average score and
// ReviewRank a dense rank by descending review count.
type RankedEmployee struct {
	EmployeeScore
	DeptRank   int `json:"deptRank"`
	ReviewRank int `json:"reviewRank"`
}

// DepartmentMetrics aggregates every raw review score in a department,
// so employees with more reviews weigh more. Rank is a strict ordinal
// position over all departments by descending average score.
type DepartmentMetrics struct {
	DepartmentID  string   `json:"departmentId"`
	Name          string   `json:"name"`
	AvgScore      float64  `json:"avgScore"`
	MinScore      float64  `json:"minScore"`
	MaxScore      float64  `json:"maxScore"`
	StdDev        *float64 `json:"stdDev"`
	EmployeeCount int      `json:"employeeCount"`
	TotalScore    float64  `json:"totalScore"`
	Rank          int      `json:"rank"`
}

// SalaryQuartileRow places one employee's salary within their
// department's distribution.
type SalaryQuartileRow struct {
	DepartmentID string  `json:"departmentId"`
	EmployeeID   string  `json:"employeeId"`
	Salary       float64 `json:"salary"`
	Quartile     int     `json:"quartile"`
	PercentRank  float64 `json:"percentRank"`
	CumeDist     float64 `json:"cumeDist"`
}

// ProjectTurnover summarizes departures for one project. TurnoverRate is
// nil only when no employees are associated; AvgTenureYears and
// LatestTurnoverDate are nil when nobody has left.
type ProjectTurnover struct {
	ProjectID          string     `json:"projectId"`
	ProjectName        string     `json:"projectName"`
	TotalEmployees     int        `json:"totalEmployees"`
	TurnoverCount      int        `json:"turnoverCount"`
	TurnoverRate       *float64   `json:"turnoverRate"`
	AvgTenureYears     *float64   `json:"avgTenureYears"`
	LatestTurnoverDate *time.Time `json:"latestTurnoverDate,omitempty"`
	TurnoverRank       int        `json:"turnoverRank"`
	TenureRank         int        `json:"tenureRank"`
}

// ReportRow is one line of the final denormalized report: a department,
// one of its top performers, one salary quartile bucket and the matching
// project turnover summary.
type ReportRow struct {
	DepartmentName     string   `json:"departmentName"`
	AvgDepartmentScore float64  `json:"avgDepartmentScore"`
	MinDepartmentScore float64  `json:"minDepartmentScore"`
	MaxDepartmentScore float64  `json:"maxDepartmentScore"`
	TotalScore         float64  `json:"totalScore"`
	StdDevScore        *float64 `json:"stdDevScore"`
	EmployeeCount      int      `json:"employeeCount"`
	PerformanceRank    int      `json:"performanceRank"`

	TopPerformerName    string   `json:"topPerformerName"`
	TopPerformerScore   float64  `json:"topPerformerScore"`
	TopPerformerReviews int      `json:"topPerformerReviews"`
	TopPerformerMin     float64  `json:"topPerformerMin"`
	TopPerformerMax     float64  `json:"topPerformerMax"`
	TopPerformerStdDev  *float64 `json:"topPerformerStdDev"`
	TopPerformerRank    int      `json:"topPerformerRank"`

	SalaryQuartile int     `json:"salaryQuartile"`
	SalaryCount    int     `json:"salaryCount"`
	MinSalary      float64 `json:"minSalary"`
	MaxSalary      float64 `json:"maxSalary"`
	AvgSalary      float64 `json:"avgSalary"`
	MaxPercentRank float64 `json:"maxPercentRank"`
	MaxCumeDist    float64 `json:"maxCumeDist"`

	ProjectName        string     `json:"projectName"`
	TurnoverRate       *float64   `json:"turnoverRate"`
	TurnoverRank       int        `json:"turnoverRank"`
	AvgTenureRank      int        `json:"avgTenureRank"`
	LatestTurnoverDate *time.Time `json:"latestTurnoverDate,omitempty"`
}
