package domain

import (
	"context"
	"time"
)

// ActivityPoint is one month of cohort activity. Period is formatted YYYY-MM.
type ActivityPoint struct {
	Period   string
	Meetings int
	Feedback int
}

type ProgramRepository interface {
	CreateMentor(ctx context.Context, value Mentor) (Mentor, error)
	GetMentorByID(ctx context.Context, id uint) (Mentor, error)
	ListMentors(ctx context.Context, status *ApplicationStatus) ([]Mentor, error)
	CreateMentee(ctx context.Context, value Mentee) (Mentee, error)
	GetMenteeByID(ctx context.Context, id uint) (Mentee, error)
	ListMentees(ctx context.Context, status *ApplicationStatus) ([]Mentee, error)
	GetParticipantByID(ctx context.Context, id uint) (Participant, error)
	GetParticipantByEmail(ctx context.Context, email string) (Participant, error)
	UpdateParticipantStatus(ctx context.Context, id uint, status ApplicationStatus) error
	ApproveMenteeIntoCohort(ctx context.Context, menteeID, cohortID uint) error
	WaitlistMentee(ctx context.Context, menteeID uint, cohortID *uint) error
	SetMenteeMatch(ctx context.Context, menteeID uint, mentorID *uint, state MatchState) error

	CreateMentorship(ctx context.Context, value Mentorship) (Mentorship, error)
	GetMentorshipByID(ctx context.Context, id uint) (Mentorship, error)
	GetMentorshipByPair(ctx context.Context, mentorID, menteeID uint) (Mentorship, error)
	ListMentorships(ctx context.Context, status *MentorshipStatus) ([]MentorshipSummary, error)
	UpdateMentorshipStatus(ctx context.Context, id uint, status MentorshipStatus, endDate *time.Time) (Mentorship, error)
	CountActiveMentorshipsByMentor(ctx context.Context, mentorID uint) (int64, error)

	CreateFeedback(ctx context.Context, value Feedback) (Feedback, error)
	ListFeedbackByMentorship(ctx context.Context, mentorshipID uint) ([]Feedback, error)

	CreateMeeting(ctx context.Context, value Meeting) (Meeting, error)
	GetMeetingByID(ctx context.Context, id uint) (Meeting, error)
	UpdateMeetingStatus(ctx context.Context, id uint, status MeetingStatus, notes string) (Meeting, error)
	ListMeetingsByMentorship(ctx context.Context, mentorshipID uint) ([]Meeting, error)

	CreateCohort(ctx context.Context, value Cohort) (Cohort, error)
	GetCohortByID(ctx context.Context, id uint) (Cohort, error)
	ListCohorts(ctx context.Context) ([]Cohort, error)
	ListCohortsByStatus(ctx context.Context, status CohortStatus) ([]Cohort, error)
	UpdateCohortStatus(ctx context.Context, id uint, status CohortStatus) (Cohort, error)
	MonthlyActivityByCohort(ctx context.Context, cohortID uint) ([]ActivityPoint, error)

	CreateResource(ctx context.Context, value Resource) (Resource, error)
	ListResources(ctx context.Context, resourceType *ResourceType, tag string) ([]Resource, error)

	CreateAccount(ctx context.Context, value Account) (Account, error)
	CountAccounts(ctx context.Context) (int64, error)
	GetAccountByEmail(ctx context.Context, email string) (Account, error)
	GetAccountByID(ctx context.Context, id uint) (Account, error)
	CreateSession(ctx context.Context, value AuthSession) (AuthSession, error)
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (AuthSession, error)
	DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error
	CreateAPIToken(ctx context.Context, value APIToken) (APIToken, error)
	GetAPITokenByTokenHash(ctx context.Context, tokenHash string) (APIToken, error)
	CreateRoleIfMissing(ctx context.Context, key, name string) (uint, error)
	ListRoles(ctx context.Context) ([]AccessRole, error)
	CreatePermissionIfMissing(ctx context.Context, key string) (uint, error)
	GrantPermissionToRole(ctx context.Context, roleID, permissionID uint) error
	AssignRoleToAccount(ctx context.Context, accountID, roleID uint) error
	GetPermissionsByAccountID(ctx context.Context, accountID uint) ([]string, error)
	CreateAuditLog(ctx context.Context, value AuditLog) error
	ListAuditLogs(ctx context.Context, limit int) ([]AuditRecord, error)
}
