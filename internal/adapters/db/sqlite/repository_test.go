package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/wanjicode/CareerBridge/internal/domain"
)

func newTestRepo(t *testing.T) *ProgramRepository {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "careerbridge_test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return NewProgramRepository(db)
}

func TestMentorRoundTripAndDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created, err := repo.CreateMentor(ctx, domain.Mentor{
		Participant: domain.Participant{
			Reference: "m-001",
			Name:      "Sarah Chen",
			Email:     "Sarah.Chen@example.com",
			Status:    domain.ApplicationPending,
			JobTitle:  "Staff Engineer",
			Company:   "TechCorp",
			Skills:    []string{"go", "systems design"},
		},
		YearsOfExperience: 12,
		Specializations:   []string{"Backend", "Leadership"},
		Availability:      []string{"weekday-evenings"},
		MenteeCapacity:    3,
	})
	if err != nil {
		t.Fatalf("create mentor: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.Email != "sarah.chen@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}

	got, err := repo.GetMentorByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get mentor: %v", err)
	}
	if got.Name != "Sarah Chen" || got.MenteeCapacity != 3 {
		t.Fatalf("unexpected mentor: %+v", got)
	}
	if len(got.Specializations) != 2 || got.Specializations[0] != "Backend" {
		t.Fatalf("unexpected specializations: %+v", got.Specializations)
	}

	_, err = repo.CreateMentor(ctx, domain.Mentor{
		Participant: domain.Participant{
			Reference: "m-002",
			Name:      "Other",
			Email:     "sarah.chen@example.com",
			Status:    domain.ApplicationPending,
		},
	})
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	_, err = repo.GetMentorByID(ctx, 9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestActivePairUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	mentor, err := repo.CreateMentor(ctx, domain.Mentor{
		Participant: domain.Participant{Reference: "m-1", Name: "Mentor", Email: "mentor@example.com", Status: domain.ApplicationApproved},
	})
	if err != nil {
		t.Fatalf("create mentor: %v", err)
	}
	mentee, err := repo.CreateMentee(ctx, domain.Mentee{
		Participant: domain.Participant{Reference: "me-1", Name: "Mentee", Email: "mentee@example.com", Status: domain.ApplicationApproved},
	})
	if err != nil {
		t.Fatalf("create mentee: %v", err)
	}

	first, err := repo.CreateMentorship(ctx, domain.Mentorship{
		MentorID:  mentor.ID,
		MenteeID:  mentee.ID,
		Status:    domain.MentorshipActive,
		StartDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("create mentorship: %v", err)
	}

	_, err = repo.CreateMentorship(ctx, domain.Mentorship{
		MentorID:  mentor.ID,
		MenteeID:  mentee.ID,
		Status:    domain.MentorshipActive,
		StartDate: time.Now(),
	})
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey for second active pair, got %v", err)
	}

	ended := time.Now()
	if _, err := repo.UpdateMentorshipStatus(ctx, first.ID, domain.MentorshipCompleted, &ended); err != nil {
		t.Fatalf("complete mentorship: %v", err)
	}

	_, err = repo.CreateMentorship(ctx, domain.Mentorship{
		MentorID:  mentor.ID,
		MenteeID:  mentee.ID,
		Status:    domain.MentorshipActive,
		StartDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("expected new active pair after completion, got %v", err)
	}
}

func TestApproveMenteeIntoCohortGuardsCapacity(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	cohort, err := repo.CreateCohort(ctx, domain.Cohort{
		Name:      "Spring 2024",
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC),
		Capacity:  1,
		Status:    domain.CohortActive,
	})
	if err != nil {
		t.Fatalf("create cohort: %v", err)
	}

	first, err := repo.CreateMentee(ctx, domain.Mentee{
		Participant: domain.Participant{Reference: "me-1", Name: "First", Email: "first@example.com", Status: domain.ApplicationPending},
	})
	if err != nil {
		t.Fatalf("create mentee: %v", err)
	}
	second, err := repo.CreateMentee(ctx, domain.Mentee{
		Participant: domain.Participant{Reference: "me-2", Name: "Second", Email: "second@example.com", Status: domain.ApplicationPending},
	})
	if err != nil {
		t.Fatalf("create mentee: %v", err)
	}

	if err := repo.ApproveMenteeIntoCohort(ctx, first.ID, cohort.ID); err != nil {
		t.Fatalf("approve first: %v", err)
	}
	err = repo.ApproveMenteeIntoCohort(ctx, second.ID, cohort.ID)
	if !errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	got, err := repo.GetCohortByID(ctx, cohort.ID)
	if err != nil {
		t.Fatalf("get cohort: %v", err)
	}
	if got.ActiveMentees != 1 {
		t.Fatalf("expected active_mentees 1 after rollback, got %d", got.ActiveMentees)
	}

	approved, err := repo.GetMenteeByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("get mentee: %v", err)
	}
	if approved.Status != domain.ApplicationApproved || approved.CohortID == nil || *approved.CohortID != cohort.ID {
		t.Fatalf("unexpected approved mentee: %+v", approved)
	}

	rejected, err := repo.GetMenteeByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("get mentee: %v", err)
	}
	if rejected.Status != domain.ApplicationPending || rejected.CohortID != nil {
		t.Fatalf("mentee should be untouched after failed approval: %+v", rejected)
	}
}

func TestMentorshipSummaryCounts(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	mentor, _ := repo.CreateMentor(ctx, domain.Mentor{
		Participant: domain.Participant{Reference: "m-1", Name: "Marcus Johnson", Email: "marcus@example.com", Status: domain.ApplicationApproved},
	})
	mentee, _ := repo.CreateMentee(ctx, domain.Mentee{
		Participant: domain.Participant{Reference: "me-1", Name: "Emily Watson", Email: "emily@example.com", Status: domain.ApplicationApproved},
	})

	mentorship, err := repo.CreateMentorship(ctx, domain.Mentorship{
		MentorID:  mentor.ID,
		MenteeID:  mentee.ID,
		Status:    domain.MentorshipActive,
		StartDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create mentorship: %v", err)
	}

	for i := 0; i < 3; i++ {
		meeting, err := repo.CreateMeeting(ctx, domain.Meeting{
			MentorshipID:    mentorship.ID,
			ScheduledAt:     time.Date(2024, 4, 1+7*i, 17, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			Status:          domain.MeetingScheduled,
		})
		if err != nil {
			t.Fatalf("create meeting: %v", err)
		}
		if _, err := repo.UpdateMeetingStatus(ctx, meeting.ID, domain.MeetingCompleted, "done"); err != nil {
			t.Fatalf("complete meeting: %v", err)
		}
	}
	if _, err := repo.CreateMeeting(ctx, domain.Meeting{
		MentorshipID:    mentorship.ID,
		ScheduledAt:     time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
		Status:          domain.MeetingScheduled,
	}); err != nil {
		t.Fatalf("create meeting: %v", err)
	}

	if _, err := repo.CreateFeedback(ctx, domain.Feedback{
		MentorshipID: mentorship.ID,
		FromID:       mentee.ID,
		ToID:         mentor.ID,
		Rating:       5,
		Comment:      "very helpful",
	}); err != nil {
		t.Fatalf("create feedback: %v", err)
	}

	summaries, err := repo.ListMentorships(ctx, nil)
	if err != nil {
		t.Fatalf("list mentorships: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected one mentorship, got %d", len(summaries))
	}
	got := summaries[0]
	if got.MentorName != "Marcus Johnson" || got.MenteeName != "Emily Watson" {
		t.Fatalf("unexpected names: %+v", got)
	}
	if got.MeetingsCompleted != 3 {
		t.Fatalf("expected 3 completed meetings, got %d", got.MeetingsCompleted)
	}
	if got.FeedbackSubmitted != 1 {
		t.Fatalf("expected 1 feedback, got %d", got.FeedbackSubmitted)
	}

	meetings, err := repo.ListMeetingsByMentorship(ctx, mentorship.ID)
	if err != nil {
		t.Fatalf("list meetings: %v", err)
	}
	if len(meetings) != 4 {
		t.Fatalf("expected 4 meetings, got %d", len(meetings))
	}
	for i := 1; i < len(meetings); i++ {
		if meetings[i].ID < meetings[i-1].ID {
			t.Fatalf("meetings out of creation order: %+v", meetings)
		}
	}
}

func TestMonthlyActivityByCohortBucketsRFC3339Timestamps(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	cohort, err := repo.CreateCohort(ctx, domain.Cohort{
		Name:      "Spring 2024",
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC),
		Capacity:  10,
		Status:    domain.CohortActive,
	})
	if err != nil {
		t.Fatalf("create cohort: %v", err)
	}

	mentor, err := repo.CreateMentor(ctx, domain.Mentor{
		Participant: domain.Participant{Reference: "m-1", Name: "Mentor", Email: "mentor@example.com", Status: domain.ApplicationApproved},
	})
	if err != nil {
		t.Fatalf("create mentor: %v", err)
	}
	mentee, err := repo.CreateMentee(ctx, domain.Mentee{
		Participant: domain.Participant{Reference: "me-1", Name: "Mentee", Email: "mentee@example.com", Status: domain.ApplicationPending},
	})
	if err != nil {
		t.Fatalf("create mentee: %v", err)
	}
	if err := repo.ApproveMenteeIntoCohort(ctx, mentee.ID, cohort.ID); err != nil {
		t.Fatalf("approve mentee: %v", err)
	}

	mentorship, err := repo.CreateMentorship(ctx, domain.Mentorship{
		MentorID:  mentor.ID,
		MenteeID:  mentee.ID,
		Status:    domain.MentorshipActive,
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create mentorship: %v", err)
	}

	// The driver persists these as RFC3339 text; the query must still
	// bucket them by month.
	for _, at := range []time.Time{
		time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 19, 17, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 2, 17, 0, 0, 0, time.UTC),
	} {
		if _, err := repo.CreateMeeting(ctx, domain.Meeting{
			MentorshipID:    mentorship.ID,
			ScheduledAt:     at,
			DurationMinutes: 60,
			Status:          domain.MeetingScheduled,
		}); err != nil {
			t.Fatalf("create meeting: %v", err)
		}
	}
	if _, err := repo.CreateFeedback(ctx, domain.Feedback{
		MentorshipID: mentorship.ID,
		FromID:       mentee.ID,
		ToID:         mentor.ID,
		Rating:       4,
		Comment:      "useful session",
	}); err != nil {
		t.Fatalf("create feedback: %v", err)
	}

	points, err := repo.MonthlyActivityByCohort(ctx, cohort.ID)
	if err != nil {
		t.Fatalf("monthly activity: %v", err)
	}
	if len(points) == 0 {
		t.Fatalf("expected activity points, got none")
	}

	meetingsByPeriod := make(map[string]int)
	totalFeedback := 0
	for _, p := range points {
		if len(p.Period) != 7 {
			t.Fatalf("expected YYYY-MM period, got %q", p.Period)
		}
		meetingsByPeriod[p.Period] += p.Meetings
		totalFeedback += p.Feedback
	}
	if meetingsByPeriod["2024-03"] != 2 {
		t.Fatalf("expected 2 meetings in 2024-03, got %d", meetingsByPeriod["2024-03"])
	}
	if meetingsByPeriod["2024-04"] != 1 {
		t.Fatalf("expected 1 meeting in 2024-04, got %d", meetingsByPeriod["2024-04"])
	}
	// Feedback timestamps come from the insert time, so only the total
	// is stable here.
	if totalFeedback != 1 {
		t.Fatalf("expected 1 feedback overall, got %d", totalFeedback)
	}
}
