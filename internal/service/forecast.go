package service

import (
	"fmt"
	"time"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"
)

// ForecastBucket counts members for one period
type ForecastBucket struct {
	PeriodStart   string `json:"period_start"`
	ActiveMembers int    `json:"active_members"`
	PlannedExits  int    `json:"planned_exits"`
}

// YearlyFlow summarizes entries and exits for one calendar year
type YearlyFlow struct {
	Year    int `json:"year"`
	Entries int `json:"entries"`
	Exits   int `json:"exits"`
}

// Forecast is the projection over a date range at one granularity
type Forecast struct {
	Granularity   models.Granularity `json:"granularity"`
	Start         string             `json:"start"`
	End           string             `json:"end"`
	Buckets       []ForecastBucket   `json:"buckets"`
	YearlySummary []YearlyFlow       `json:"yearly_summary"`
}

// ParseGranularity maps the query-string value onto a Granularity
func ParseGranularity(s string) (models.Granularity, error) {
	switch models.Granularity(s) {
	case models.GranularityMonthly, models.GranularityQuarterly, models.GranularityYearly:
		return models.Granularity(s), nil
	default:
		return "", apperrors.ErrInvalidGranularity
	}
}

// periodStart snaps a date back to the start of its period
func periodStart(t time.Time, g models.Granularity) time.Time {
	switch g {
	case models.GranularityQuarterly:
		quarterMonth := time.Month(((int(t.Month())-1)/3)*3 + 1)
		return time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, time.UTC)
	case models.GranularityYearly:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

// nextPeriod advances a period start by one period
func nextPeriod(p time.Time, g models.Granularity) time.Time {
	switch g {
	case models.GranularityQuarterly:
		return p.AddDate(0, 3, 0)
	case models.GranularityYearly:
		return p.AddDate(1, 0, 0)
	default:
		return p.AddDate(0, 1, 0)
	}
}

// samePeriod reports whether two dates fall into the same bucket
func samePeriod(a, p time.Time, g models.Granularity) bool {
	return periodStart(a, g).Equal(periodStart(p, g))
}

// ProjectForecast buckets the member set into calendar periods between start
// and end. Per bucket it counts members active at the period start (exit
// boundary exclusive) and members whose planned exit falls within that
// period. A start date at or after the end date is a user input error,
// rejected before any bucket is computed.
//
// Members with an unparsable date are excluded from the counts; the bad
// record never aborts the projection.
func ProjectForecast(members []models.TeamMember, start, end time.Time, g models.Granularity) (*Forecast, error) {
	if !start.Before(end) {
		return nil, apperrors.ErrInvalidForecastRange
	}

	forecast := &Forecast{
		Granularity: g,
		Start:       start.Format(DateLayout),
		End:         end.Format(DateLayout),
	}

	for p := periodStart(start, g); !p.After(end); p = nextPeriod(p, g) {
		bucket := ForecastBucket{PeriodStart: p.Format(DateLayout)}
		for i := range members {
			if IsActiveAt(&members[i], p) {
				bucket.ActiveMembers++
			}
			_, exit, ok := memberDates(&members[i])
			if ok && exit != nil && samePeriod(*exit, p, g) {
				bucket.PlannedExits++
			}
		}
		forecast.Buckets = append(forecast.Buckets, bucket)
	}

	for year := start.Year(); year <= end.Year(); year++ {
		flow := YearlyFlow{Year: year}
		for i := range members {
			startDate, exit, ok := memberDates(&members[i])
			if !ok {
				continue
			}
			if startDate.Year() == year {
				flow.Entries++
			}
			if exit != nil && exit.Year() == year {
				flow.Exits++
			}
		}
		forecast.YearlySummary = append(forecast.YearlySummary, flow)
	}

	return forecast, nil
}

// ForecastService projects team size over a requested range
type ForecastService struct {
	memberRepo repository.TeamMemberRepositoryInterface
}

// NewForecastService creates a new forecast service
func NewForecastService(memberRepo repository.TeamMemberRepositoryInterface) *ForecastService {
	return &ForecastService{memberRepo: memberRepo}
}

// Project loads the record set and runs the projection
func (s *ForecastService) Project(start, end time.Time, g models.Granularity) (*Forecast, error) {
	members, err := s.memberRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	return ProjectForecast(members, start, end, g)
}
