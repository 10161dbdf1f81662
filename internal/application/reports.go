package application

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/wanjicode/CareerBridge/internal/domain"
)

type ProgramSummary struct {
	ActiveMentorships   int `json:"active_mentorships"`
	ApprovedMentors     int `json:"approved_mentors"`
	ApprovedMentees     int `json:"approved_mentees"`
	PendingApplications int `json:"pending_applications"`
}

type DistributionSlice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type CohortReport struct {
	Cohort         domain.Cohort `json:"cohort"`
	FillPercentage float64       `json:"fill_percentage"`
	AvailableSlots int           `json:"available_slots"`
}

// CohortFillPercentage reports how full a cohort is, in [0, 100]. A cohort
// with zero capacity reports 0 rather than dividing by zero.
func CohortFillPercentage(cohort domain.Cohort) float64 {
	if cohort.Capacity <= 0 {
		return 0
	}
	pct := float64(cohort.ActiveMentees) / float64(cohort.Capacity) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// AvailableSlots never goes negative, even if the stored counter drifts
// past capacity.
func AvailableSlots(cohort domain.Cohort) int {
	slots := cohort.Capacity - cohort.ActiveMentees
	if slots < 0 {
		return 0
	}
	return slots
}

func (s *ProgramService) Summary(ctx context.Context) (ProgramSummary, error) {
	active, err := s.ActiveMentorships(ctx)
	if err != nil {
		return ProgramSummary{}, err
	}
	mentors, err := s.ApprovedMentors(ctx)
	if err != nil {
		return ProgramSummary{}, err
	}
	mentees, err := s.ApprovedMentees(ctx)
	if err != nil {
		return ProgramSummary{}, err
	}
	pending, err := s.PendingApplications(ctx)
	if err != nil {
		return ProgramSummary{}, err
	}

	return ProgramSummary{
		ActiveMentorships:   len(active),
		ApprovedMentors:     len(mentors),
		ApprovedMentees:     len(mentees),
		PendingApplications: len(pending),
	}, nil
}

func (s *ProgramService) CohortReport(ctx context.Context, cohortID uint) (CohortReport, error) {
	if cohortID == 0 {
		return CohortReport{}, errors.New("cohort id is required")
	}
	cohort, err := s.repo.GetCohortByID(ctx, cohortID)
	if err != nil {
		return CohortReport{}, err
	}
	return CohortReport{
		Cohort:         cohort,
		FillPercentage: CohortFillPercentage(cohort),
		AvailableSlots: AvailableSlots(cohort),
	}, nil
}

// MentorshipDistribution groups active mentorships by the mentor's primary
// specialization. Mentors without specializations fall under "Other". Slices
// come back largest first, ties broken alphabetically.
func (s *ProgramService) MentorshipDistribution(ctx context.Context) ([]DistributionSlice, error) {
	active, err := s.ActiveMentorships(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	mentorLabel := make(map[uint]string)
	for _, mentorship := range active {
		label, ok := mentorLabel[mentorship.MentorID]
		if !ok {
			label = "Other"
			mentor, err := s.repo.GetMentorByID(ctx, mentorship.MentorID)
			if err == nil && len(mentor.Specializations) > 0 {
				label = mentor.Specializations[0]
			}
			mentorLabel[mentorship.MentorID] = label
		}
		counts[label]++
	}

	result := make([]DistributionSlice, 0, len(counts))
	for label, count := range counts {
		result = append(result, DistributionSlice{Label: label, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Label < result[j].Label
	})
	return result, nil
}

// CohortActivityTimeseries returns one point per calendar month across the
// cohort's date range, zero-filled, with meeting and feedback counts merged in.
func (s *ProgramService) CohortActivityTimeseries(ctx context.Context, cohortID uint) ([]domain.ActivityPoint, error) {
	if cohortID == 0 {
		return nil, errors.New("cohort id is required")
	}
	cohort, err := s.repo.GetCohortByID(ctx, cohortID)
	if err != nil {
		return nil, err
	}
	activity, err := s.repo.MonthlyActivityByCohort(ctx, cohortID)
	if err != nil {
		return nil, err
	}

	byPeriod := make(map[string]domain.ActivityPoint, len(activity))
	for _, point := range activity {
		byPeriod[point.Period] = point
	}

	start := time.Date(cohort.StartDate.Year(), cohort.StartDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(cohort.EndDate.Year(), cohort.EndDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	result := make([]domain.ActivityPoint, 0)
	for month := start; !month.After(end); month = month.AddDate(0, 1, 0) {
		period := month.Format("2006-01")
		if point, ok := byPeriod[period]; ok {
			result = append(result, point)
			continue
		}
		result = append(result, domain.ActivityPoint{Period: period})
	}
	return result, nil
}
