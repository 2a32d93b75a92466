package stats

import (
	"context"
	"time"

	"github.com/campuscare/campuscare-backend/pkg/enums"
	pkgerrors "github.com/campuscare/campuscare-backend/pkg/errors"
)

// CleaningCounter is the slice of the cleaning repository this service needs.
type CleaningCounter interface {
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// RepairCounter is the slice of the repairs repository this service needs.
type RepairCounter interface {
	CountByStatus(ctx context.Context, status enums.ReportStatus) (int64, error)
}

// WeeklyCleaningStat is one day of the Monday-start histogram.
type WeeklyCleaningStat struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// RepairStatusDistribution buckets open reports by lifecycle status.
type RepairStatusDistribution struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
}

// AdminStats is the combined dashboard payload.
type AdminStats struct {
	WeeklyCleaning           []WeeklyCleaningStat     `json:"weekly_cleaning"`
	RepairStatusDistribution RepairStatusDistribution `json:"repair_status_distribution"`
}

// Service computes dashboard aggregates for the current UTC week.
type Service interface {
	Admin(ctx context.Context) (*AdminStats, error)
}

type service struct {
	cleaning CleaningCounter
	repairs  RepairCounter
	now      func() time.Time
}

// NewService wires stats dependencies.
func NewService(cleaning CleaningCounter, repairs RepairCounter) (Service, error) {
	if cleaning == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cleaning counter required")
	}
	if repairs == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "repair counter required")
	}
	return &service{
		cleaning: cleaning,
		repairs:  repairs,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) Admin(ctx context.Context) (*AdminStats, error) {
	monday := StartOfWeek(s.now())

	weekly := make([]WeeklyCleaningStat, 0, 7)
	for i := 0; i < 7; i++ {
		dayStart := monday.AddDate(0, 0, i)
		dayEnd := dayStart.AddDate(0, 0, 1)
		count, err := s.cleaning.CountBetween(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count cleaning records")
		}
		weekly = append(weekly, WeeklyCleaningStat{Day: dayStart.Format("Mon"), Count: count})
	}

	var distribution RepairStatusDistribution
	for _, status := range enums.ReportStatuses() {
		count, err := s.repairs.CountByStatus(ctx, status)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count repair reports")
		}
		switch status {
		case enums.ReportStatusPending:
			distribution.Pending = count
		case enums.ReportStatusInProgress:
			distribution.InProgress = count
		case enums.ReportStatusCompleted:
			distribution.Completed = count
		}
	}

	return &AdminStats{
		WeeklyCleaning:           weekly,
		RepairStatusDistribution: distribution,
	}, nil
}

// StartOfWeek returns midnight UTC on the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	t = t.UTC()
	// time.Weekday counts from Sunday; shift so Monday is index 0.
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}
