package domain

// Report periods
const (
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
)

type CheckStateSummary struct {
	Total     int `json:"total" db:"total"`
	Excellent int `json:"excellent" db:"excellent"`
	Good      int `json:"good" db:"good"`
	Poor      int `json:"poor" db:"poor"`
}

type DepartmentPerformance struct {
	Name      string `json:"name" db:"name"`
	Devices   int    `json:"devices" db:"devices"`
	Excellent int    `json:"excellent" db:"excellent"`
	Good      int    `json:"good" db:"good"`
	Poor      int    `json:"poor" db:"poor"`
}

type TimelinePoint struct {
	Date      string `json:"date" db:"date"`
	Excellent int    `json:"excellent" db:"excellent"`
	Good      int    `json:"good" db:"good"`
	Poor      int    `json:"poor" db:"poor"`
}

type DistributionEntry struct {
	Name  string `json:"name" db:"name"`
	Value int    `json:"value" db:"value"`
}

type DepartmentRef struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Report is the aggregate payload behind the dashboard charts.
type Report struct {
	Summary               CheckStateSummary        `json:"summary"`
	DepartmentPerformance []*DepartmentPerformance `json:"departmentPerformance"`
	Timeline              []*TimelinePoint         `json:"timeline"`
	DevicesDistribution   []*DistributionEntry     `json:"devicesDistribution"`
	Departments           []*DepartmentRef         `json:"departments"`
}

type StateCount struct {
	State string `json:"state" db:"state"`
	Count int    `json:"count" db:"count"`
}

// Stats is the landing-page counters payload.
type Stats struct {
	Devices             int           `json:"devices"`
	Checks              int           `json:"checks"`
	Departments         int           `json:"departments"`
	RecentChecksByState []*StateCount `json:"recentChecksByState"`
}
