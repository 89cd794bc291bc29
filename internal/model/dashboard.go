package model

// DashboardStats is the headline block of the admin dashboard.
type DashboardStats struct {
	TotalReports    int     `json:"totalReports"`
	UniqueLocations int     `json:"uniqueLocations"`
	MostCommon      *string `json:"mostCommon"`
	MostCommonCount int     `json:"mostCommonCount"`
}

// SymptomStat is one row of the per-symptom prevalence table. Every catalog
// symptom appears, with count 0 when absent from the window.
type SymptomStat struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// WeekOverWeekStat compares a symptom's count between the current and the
// previous window.
type WeekOverWeekStat struct {
	Symptom  string  `json:"symptom"`
	Change   float64 `json:"change"`
	ThisWeek int     `json:"thisWeek"`
	LastWeek int     `json:"lastWeek"`
}

// ZipStat is a per-zip-code report count.
type ZipStat struct {
	Zip   string `json:"zip"`
	Count int    `json:"count"`
}

// DailyStat is the report count for one calendar date (YYYY-MM-DD).
type DailyStat struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DashboardData is the full dashboard response body.
type DashboardData struct {
	Stats        DashboardStats     `json:"stats"`
	SymptomData  []SymptomStat      `json:"symptomData"`
	WeekOverWeek []WeekOverWeekStat `json:"weekOverWeek"`
	ZipData      []ZipStat          `json:"zipData"`
	DailyTrend   []DailyStat        `json:"dailyTrend"`
}
