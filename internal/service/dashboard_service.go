package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"symptom_reporter/internal/model"
	"symptom_reporter/internal/repository"
)

// DefaultWindowDays is the dashboard window size when none is requested.
const DefaultWindowDays = 7

// DashboardService computes admin dashboard statistics
type DashboardService interface {
	GetDashboard(ctx context.Context, days int) (*model.DashboardData, error)
}

type dashboardService struct {
	reportRepo repository.ReportRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(reportRepo repository.ReportRepository) DashboardService {
	return &dashboardService{reportRepo: reportRepo}
}

// GetDashboard loads the current and previous windows and derives all
// dashboard views. Pure read, recomputed on every request.
func (s *dashboardService) GetDashboard(ctx context.Context, days int) (*model.DashboardData, error) {
	if days < 1 {
		days = DefaultWindowDays
	}

	now := time.Now()
	start := now.AddDate(0, 0, -days)
	prevStart := start.AddDate(0, 0, -days)

	current, err := s.reportRepo.FindWithSymptoms(ctx, start, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load current window: %w", err)
	}
	previous, err := s.reportRepo.FindWithSymptoms(ctx, prevStart, start)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous window: %w", err)
	}

	return aggregate(current, previous), nil
}

// aggregate derives every dashboard view from the two report windows.
func aggregate(current, previous []model.ReportWithSymptoms) *model.DashboardData {
	total := len(current)

	currentCounts := countSymptoms(current)
	previousCounts := countSymptoms(previous)

	// Per-symptom prevalence over the full catalog, count 0 when absent.
	// Building in catalog order and sorting stably makes catalog order the
	// tie-break.
	symptomData := make([]model.SymptomStat, 0, len(model.SymptomCatalog))
	for _, name := range model.SymptomCatalog {
		count := currentCounts[name]
		var pct float64
		if total > 0 {
			pct = round1(float64(count) / float64(total) * 100)
		}
		symptomData = append(symptomData, model.SymptomStat{Name: name, Count: count, Percentage: pct})
	}
	sort.SliceStable(symptomData, func(i, j int) bool {
		return symptomData[i].Count > symptomData[j].Count
	})

	stats := model.DashboardStats{
		TotalReports:    total,
		UniqueLocations: countUniqueZips(current),
	}
	if len(symptomData) > 0 && symptomData[0].Count > 0 {
		name := symptomData[0].Name
		stats.MostCommon = &name
		stats.MostCommonCount = symptomData[0].Count
	}

	weekOverWeek := make([]model.WeekOverWeekStat, 0, len(model.SymptomCatalog))
	for _, name := range model.SymptomCatalog {
		thisWeek := currentCounts[name]
		lastWeek := previousCounts[name]
		var change float64
		switch {
		case lastWeek == 0 && thisWeek > 0:
			change = 100
		case lastWeek == 0:
			change = 0
		default:
			change = round1(float64(thisWeek-lastWeek) / float64(lastWeek) * 100)
		}
		weekOverWeek = append(weekOverWeek, model.WeekOverWeekStat{
			Symptom:  name,
			Change:   change,
			ThisWeek: thisWeek,
			LastWeek: lastWeek,
		})
	}
	sort.SliceStable(weekOverWeek, func(i, j int) bool {
		return math.Abs(weekOverWeek[i].Change) > math.Abs(weekOverWeek[j].Change)
	})

	return &model.DashboardData{
		Stats:        stats,
		SymptomData:  symptomData,
		WeekOverWeek: weekOverWeek,
		ZipData:      topZips(current),
		DailyTrend:   dailyTrend(current),
	}
}

func countSymptoms(reports []model.ReportWithSymptoms) map[string]int {
	counts := make(map[string]int, len(model.SymptomCatalog))
	for _, r := range reports {
		for _, name := range r.Symptoms {
			if model.IsKnownSymptom(name) {
				counts[name]++
			}
		}
	}
	return counts
}

func countUniqueZips(reports []model.ReportWithSymptoms) int {
	zips := make(map[string]struct{})
	for _, r := range reports {
		zips[r.ZipCode] = struct{}{}
	}
	return len(zips)
}

// topZips returns zip codes with at least 10 reports in the window, highest
// counts first, capped at 10 entries. Always a non-nil slice so an empty
// result serializes as [].
func topZips(reports []model.ReportWithSymptoms) []model.ZipStat {
	counts := make(map[string]int)
	for _, r := range reports {
		counts[r.ZipCode]++
	}

	zipData := make([]model.ZipStat, 0, len(counts))
	for zip, count := range counts {
		if count >= 10 {
			zipData = append(zipData, model.ZipStat{Zip: zip, Count: count})
		}
	}
	sort.Slice(zipData, func(i, j int) bool {
		if zipData[i].Count != zipData[j].Count {
			return zipData[i].Count > zipData[j].Count
		}
		return zipData[i].Zip < zipData[j].Zip
	})
	if len(zipData) > 10 {
		zipData = zipData[:10]
	}
	return zipData
}

// dailyTrend returns per-calendar-date report counts, dates ascending.
func dailyTrend(reports []model.ReportWithSymptoms) []model.DailyStat {
	counts := make(map[string]int)
	for _, r := range reports {
		counts[r.CreatedAt.Format("2006-01-02")]++
	}

	trend := make([]model.DailyStat, 0, len(counts))
	for date, count := range counts {
		trend = append(trend, model.DailyStat{Date: date, Count: count})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
