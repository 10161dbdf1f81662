package application

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanjicode/CareerBridge/internal/adapters/db/sqlite"
	"github.com/wanjicode/CareerBridge/internal/domain"
)

func newTestService(t *testing.T) *ProgramService {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "careerbridge_test.db")

	db, err := sqlite.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.RunMigrations(ctx, db))

	return NewProgramService(sqlite.NewProgramRepository(db))
}

func submitTestMentor(t *testing.T, svc *ProgramService, name, email string, capacity int, specializations ...string) domain.Mentor {
	t.Helper()
	mentor, err := svc.SubmitMentorApplication(context.Background(), MentorApplicationInput{
		Name:            name,
		Email:           email,
		MenteeCapacity:  capacity,
		Specializations: specializations,
	})
	require.NoError(t, err)
	return mentor
}

func submitTestMentee(t *testing.T, svc *ProgramService, name, email string) domain.Mentee {
	t.Helper()
	mentee, err := svc.SubmitMenteeApplication(context.Background(), MenteeApplicationInput{
		Name:  name,
		Email: email,
	})
	require.NoError(t, err)
	return mentee
}

func TestPendingApplicationsListsMentorsThenMentees(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	menteeFirst := submitTestMentee(t, svc, "Early Mentee", "early@example.com")
	mentor := submitTestMentor(t, svc, "Late Mentor", "late@example.com", 2)
	approved := submitTestMentor(t, svc, "Approved Mentor", "approved@example.com", 2)
	_, err := svc.ApproveMentor(ctx, approved.ID)
	require.NoError(t, err)

	pending, err := svc.PendingApplications(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	assert.Equal(t, mentor.ID, pending[0].ID)
	assert.Equal(t, domain.RoleMentor, pending[0].Role)
	assert.Equal(t, menteeFirst.ID, pending[1].ID)
	assert.Equal(t, domain.RoleMentee, pending[1].Role)
	for _, app := range pending {
		assert.NotEmpty(t, app.Reference)
	}
}

func TestApproveMenteeRespectsCohortCapacity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cohort, err := svc.CreateCohort(ctx, "Tiny",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)

	first := submitTestMentee(t, svc, "First", "first@example.com")
	second := submitTestMentee(t, svc, "Second", "second@example.com")

	approved, err := svc.ApproveMentee(ctx, first.ID, cohort.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationApproved, approved.Status)
	require.NotNil(t, approved.CohortID)
	assert.Equal(t, cohort.ID, *approved.CohortID)

	_, err = svc.ApproveMentee(ctx, second.ID, cohort.ID, false)
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	got, err := svc.GetMentee(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, got.Status)

	waitlisted, err := svc.ApproveMentee(ctx, second.ID, cohort.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchWaitlisted, waitlisted.MatchState)
	assert.Equal(t, domain.ApplicationApproved, waitlisted.Status)

	report, err := svc.CohortReport(ctx, cohort.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Cohort.ActiveMentees)
}

func TestApproveMentorTransitions(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	mentor := submitTestMentor(t, svc, "Mentor", "mentor@example.com", 2)

	approved, err := svc.ApproveMentor(ctx, mentor.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationApproved, approved.Status)

	_, err = svc.ApproveMentor(ctx, mentor.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.RejectParticipant(ctx, mentor.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.ApproveMentor(ctx, 9999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateMentorshipEnforcesPairingRules(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cohort, err := svc.CreateCohort(ctx, "Main",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), 10)
	require.NoError(t, err)

	mentor := submitTestMentor(t, svc, "Mentor", "mentor@example.com", 1)
	menteeA := submitTestMentee(t, svc, "Mentee A", "a@example.com")
	menteeB := submitTestMentee(t, svc, "Mentee B", "b@example.com")

	// Neither side approved yet.
	_, err = svc.CreateMentorship(ctx, mentor.ID, menteeA.ID, "weekly")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.ApproveMentor(ctx, mentor.ID)
	require.NoError(t, err)
	_, err = svc.ApproveMentee(ctx, menteeA.ID, cohort.ID, false)
	require.NoError(t, err)
	_, err = svc.ApproveMentee(ctx, menteeB.ID, cohort.ID, false)
	require.NoError(t, err)

	mentorship, err := svc.CreateMentorship(ctx, mentor.ID, menteeA.ID, "weekly")
	require.NoError(t, err)
	assert.Equal(t, domain.MentorshipActive, mentorship.Status)

	matched, err := svc.GetMentee(ctx, menteeA.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchMatched, matched.MatchState)
	require.NotNil(t, matched.MentorID)
	assert.Equal(t, mentor.ID, *matched.MentorID)

	_, err = svc.CreateMentorship(ctx, mentor.ID, menteeA.ID, "weekly")
	require.ErrorIs(t, err, domain.ErrDuplicateKey)

	// Capacity of one is used up by mentee A.
	_, err = svc.CreateMentorship(ctx, mentor.ID, menteeB.ID, "weekly")
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)

	cancelled, err := svc.CancelMentorship(ctx, mentorship.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MentorshipCancelled, cancelled.Status)
	require.NotNil(t, cancelled.EndDate)

	freed, err := svc.GetMentee(ctx, menteeA.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchUnmatched, freed.MatchState)
	assert.Nil(t, freed.MentorID)

	_, err = svc.CancelMentorship(ctx, mentorship.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Slot freed, pair gone, so a new mentorship may start.
	_, err = svc.CreateMentorship(ctx, mentor.ID, menteeB.ID, "weekly")
	require.NoError(t, err)
}

func TestCreateMentorshipZeroCapacityMentor(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cohort, err := svc.CreateCohort(ctx, "Main",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), 10)
	require.NoError(t, err)

	mentor := submitTestMentor(t, svc, "Full Up", "full@example.com", 0)
	mentee := submitTestMentee(t, svc, "Mentee", "mentee@example.com")

	_, err = svc.ApproveMentor(ctx, mentor.ID)
	require.NoError(t, err)
	_, err = svc.ApproveMentee(ctx, mentee.ID, cohort.ID, false)
	require.NoError(t, err)

	// A capacity of zero means no slots, not unlimited slots.
	_, err = svc.CreateMentorship(ctx, mentor.ID, mentee.ID, "weekly")
	require.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestCreateMentorshipRejectsMatchedMentee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cohort, err := svc.CreateCohort(ctx, "Main",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), 10)
	require.NoError(t, err)

	mentorA := submitTestMentor(t, svc, "Mentor A", "mentor-a@example.com", 2)
	mentorB := submitTestMentor(t, svc, "Mentor B", "mentor-b@example.com", 2)
	mentee := submitTestMentee(t, svc, "Mentee", "mentee@example.com")

	_, err = svc.ApproveMentor(ctx, mentorA.ID)
	require.NoError(t, err)
	_, err = svc.ApproveMentor(ctx, mentorB.ID)
	require.NoError(t, err)
	_, err = svc.ApproveMentee(ctx, mentee.ID, cohort.ID, false)
	require.NoError(t, err)

	first, err := svc.CreateMentorship(ctx, mentorA.ID, mentee.ID, "weekly")
	require.NoError(t, err)

	// The mentee already belongs to mentor A, so a second active
	// mentorship via another mentor is refused.
	_, err = svc.CreateMentorship(ctx, mentorB.ID, mentee.ID, "weekly")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.CancelMentorship(ctx, first.ID)
	require.NoError(t, err)

	freed, err := svc.GetMentee(ctx, mentee.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchUnmatched, freed.MatchState)

	_, err = svc.CreateMentorship(ctx, mentorB.ID, mentee.ID, "weekly")
	require.NoError(t, err)

	rematched, err := svc.GetMentee(ctx, mentee.ID)
	require.NoError(t, err)
	require.NotNil(t, rematched.MentorID)
	assert.Equal(t, mentorB.ID, *rematched.MentorID)

	active, err := svc.ActiveMentorships(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestFeedbackValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cohort, err := svc.CreateCohort(ctx, "Main",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), 10)
	require.NoError(t, err)

	mentor := submitTestMentor(t, svc, "Mentor", "mentor@example.com", 2)
	mentee := submitTestMentee(t, svc, "Mentee", "mentee@example.com")
	outsider := submitTestMentee(t, svc, "Outsider", "outsider@example.com")

	_, err = svc.ApproveMentor(ctx, mentor.ID)
	require.NoError(t, err)
	_, err = svc.ApproveMentee(ctx, mentee.ID, cohort.ID, false)
	require.NoError(t, err)

	mentorship, err := svc.CreateMentorship(ctx, mentor.ID, mentee.ID, "biweekly")
	require.NoError(t, err)

	_, err = svc.SubmitFeedback(ctx, mentorship.ID, mentee.ID, mentor.ID, 6, "too good")
	require.ErrorIs(t, err, domain.ErrInvariantViolation)
	_, err = svc.SubmitFeedback(ctx, mentorship.ID, mentee.ID, mentor.ID, 0, "")
	require.ErrorIs(t, err, domain.ErrInvariantViolation)
	_, err = svc.SubmitFeedback(ctx, mentorship.ID, outsider.ID, mentor.ID, 4, "not my pair")
	require.ErrorIs(t, err, domain.ErrInvariantViolation)

	fromMentee, err := svc.SubmitFeedback(ctx, mentorship.ID, mentee.ID, mentor.ID, 5, "great advice")
	require.NoError(t, err)
	fromMentor, err := svc.SubmitFeedback(ctx, mentorship.ID, mentor.ID, mentee.ID, 4, "good progress")
	require.NoError(t, err)

	list, err := svc.FeedbackForMentorship(ctx, mentorship.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, fromMentee.ID, list[0].ID)
	assert.Equal(t, fromMentor.ID, list[1].ID)
}

func TestMeetingLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cohort, err := svc.CreateCohort(ctx, "Main",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), 10)
	require.NoError(t, err)

	mentor := submitTestMentor(t, svc, "Mentor", "mentor@example.com", 2)
	mentee := submitTestMentee(t, svc, "Mentee", "mentee@example.com")
	_, err = svc.ApproveMentor(ctx, mentor.ID)
	require.NoError(t, err)
	_, err = svc.ApproveMentee(ctx, mentee.ID, cohort.ID, false)
	require.NoError(t, err)
	mentorship, err := svc.CreateMentorship(ctx, mentor.ID, mentee.ID, "biweekly")
	require.NoError(t, err)

	_, err = svc.ScheduleMeeting(ctx, mentorship.ID, time.Now().Add(24*time.Hour), 0, "")
	require.ErrorIs(t, err, domain.ErrInvariantViolation)

	meeting, err := svc.ScheduleMeeting(ctx, mentorship.ID, time.Now().Add(24*time.Hour), 60, "kickoff")
	require.NoError(t, err)
	assert.Equal(t, domain.MeetingScheduled, meeting.Status)

	completed, err := svc.CompleteMeeting(ctx, meeting.ID, "went well")
	require.NoError(t, err)
	assert.Equal(t, domain.MeetingCompleted, completed.Status)
	assert.Equal(t, "went well", completed.Notes)

	_, err = svc.CancelMeeting(ctx, meeting.ID, "")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	meetings, err := svc.MeetingsForMentorship(ctx, mentorship.ID)
	require.NoError(t, err)
	require.Len(t, meetings, 1)

	_, err = svc.MeetingsForMentorship(ctx, 9999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActiveCohortPrefersMostRecentlyStarted(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.ActiveCohort(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound)

	older, err := svc.CreateCohort(ctx, "Winter 2024",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), 10)
	require.NoError(t, err)
	newer, err := svc.CreateCohort(ctx, "Spring 2024",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), 10)
	require.NoError(t, err)

	_, err = svc.StartCohort(ctx, older.ID)
	require.NoError(t, err)
	_, err = svc.StartCohort(ctx, newer.ID)
	require.NoError(t, err)

	active, err := svc.ActiveCohort(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Spring 2024", active.Name)

	_, err = svc.CompleteCohort(ctx, newer.ID)
	require.NoError(t, err)
	active, err = svc.ActiveCohort(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Winter 2024", active.Name)

	_, err = svc.StartCohort(ctx, newer.ID)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCohortMath(t *testing.T) {
	full := domain.Cohort{Capacity: 15, ActiveMentees: 15}
	assert.InDelta(t, 100, CohortFillPercentage(full), 0.001)
	assert.Equal(t, 0, AvailableSlots(full))

	half := domain.Cohort{Capacity: 10, ActiveMentees: 5}
	assert.InDelta(t, 50, CohortFillPercentage(half), 0.001)
	assert.Equal(t, 5, AvailableSlots(half))

	empty := domain.Cohort{Capacity: 0, ActiveMentees: 0}
	assert.Zero(t, CohortFillPercentage(empty))
	assert.Equal(t, 0, AvailableSlots(empty))

	drifted := domain.Cohort{Capacity: 10, ActiveMentees: 12}
	assert.InDelta(t, 100, CohortFillPercentage(drifted), 0.001)
	assert.Equal(t, 0, AvailableSlots(drifted))
}

func TestResourceFilters(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.AddResource(ctx, "Guide", "", "https://example.com/guide.pdf", domain.ResourcePDF, []string{"career", "resume"})
	require.NoError(t, err)
	_, err = svc.AddResource(ctx, "Interview Series", "", "https://example.com/videos", domain.ResourceVideo, []string{"interviews"})
	require.NoError(t, err)

	_, err = svc.AddResource(ctx, "Bad", "", "https://example.com/bad", domain.ResourceType("slideshow"), nil)
	require.ErrorIs(t, err, domain.ErrInvariantViolation)

	all, err := svc.ListResources(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pdfs, err := svc.ListResources(ctx, "pdf", "")
	require.NoError(t, err)
	require.Len(t, pdfs, 1)
	assert.Equal(t, "Guide", pdfs[0].Title)

	tagged, err := svc.ListResources(ctx, "", "resume")
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, "Guide", tagged[0].Title)
}

func TestSeedDemoProgram(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.SeedDemoProgram(ctx))
	// Idempotent.
	require.NoError(t, svc.SeedDemoProgram(ctx))

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ActiveMentorships)
	assert.Equal(t, 1, summary.ApprovedMentors)
	assert.Equal(t, 2, summary.ApprovedMentees)
	assert.Equal(t, 2, summary.PendingApplications)

	active, err := svc.ActiveCohort(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Spring 2024", active.Name)
	assert.Equal(t, 15, active.ActiveMentees)
	assert.InDelta(t, 100, CohortFillPercentage(active), 0.001)
	assert.Equal(t, 0, AvailableSlots(active))

	mentorships, err := svc.ActiveMentorships(ctx)
	require.NoError(t, err)
	require.Len(t, mentorships, 1)
	assert.Equal(t, "David Rodriguez", mentorships[0].MentorName)
	assert.Equal(t, "Emma Wilson", mentorships[0].MenteeName)
	assert.Equal(t, 3, mentorships[0].MeetingsCompleted)
	assert.Equal(t, 2, mentorships[0].FeedbackSubmitted)

	meetings, err := svc.MeetingsForMentorship(ctx, mentorships[0].ID)
	require.NoError(t, err)
	require.Len(t, meetings, 4)
	for i := 1; i < len(meetings); i++ {
		assert.True(t, meetings[i].ScheduledAt.After(meetings[i-1].ScheduledAt))
	}

	distribution, err := svc.MentorshipDistribution(ctx)
	require.NoError(t, err)
	require.Len(t, distribution, 1)
	assert.Equal(t, "Product Strategy", distribution[0].Label)
	assert.Equal(t, 1, distribution[0].Count)

	series, err := svc.CohortActivityTimeseries(ctx, active.ID)
	require.NoError(t, err)
	require.Len(t, series, 4) // March through June 2024
	assert.Equal(t, "2024-03", series[0].Period)
	assert.Equal(t, "2024-06", series[3].Period)
	var totalMeetings int
	for _, point := range series {
		totalMeetings += point.Meetings
	}
	assert.Equal(t, 4, totalMeetings)
	assert.Zero(t, series[3].Meetings)

	resources, err := svc.ListResources(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, resources, 5)

	unmatched, err := svc.UnmatchedMentees(ctx)
	require.NoError(t, err)
	assert.Empty(t, unmatched)
}

func TestAuthFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.BootstrapAdmin(ctx, "admin@careerbridge.test", "secret"))
	// Second bootstrap is a no-op once an account exists.
	require.NoError(t, svc.BootstrapAdmin(ctx, "other@careerbridge.test", "secret"))

	_, _, err := svc.LoginWithSession(ctx, "admin@careerbridge.test", "wrong", time.Hour)
	require.Error(t, err)

	account, token, err := svc.LoginWithSession(ctx, "admin@careerbridge.test", "secret", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := svc.AuthenticateSession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, identity.Account.ID)
	assert.True(t, svc.Can(identity, PermissionProgramWrite))
	assert.True(t, svc.Can(identity, "anything.at.all"))

	require.NoError(t, svc.LogoutSession(ctx, token))
	_, err = svc.AuthenticateSession(ctx, token)
	require.Error(t, err)

	_, apiToken, err := svc.LoginWithAPIToken(ctx, "admin@careerbridge.test", "secret", "ci", nil)
	require.NoError(t, err)
	identity, err = svc.AuthenticateBearerToken(ctx, apiToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, identity.Account.ID)

	logs, err := svc.ListAuditLogs(ctx, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, logs)
	assert.Equal(t, "admin@careerbridge.test", logs[len(logs)-1].ActorAccountEmail)
}
