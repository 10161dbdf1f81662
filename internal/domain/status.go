package domain

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
	RoleAlumni Role = "alumni"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

type MentorshipStatus string

const (
	MentorshipActive    MentorshipStatus = "active"
	MentorshipCompleted MentorshipStatus = "completed"
	MentorshipCancelled MentorshipStatus = "cancelled"
)

type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingCompleted MeetingStatus = "completed"
	MeetingCancelled MeetingStatus = "cancelled"
)

type CohortStatus string

const (
	CohortUpcoming  CohortStatus = "upcoming"
	CohortActive    CohortStatus = "active"
	CohortCompleted CohortStatus = "completed"
)

// MatchState replaces the overlapping waitlisted flag and mentor reference a
// mentee would otherwise carry: an approved mentee is exactly one of these.
type MatchState string

const (
	MatchUnmatched  MatchState = "unmatched"
	MatchWaitlisted MatchState = "waitlisted"
	MatchMatched    MatchState = "matched"
)

type ResourceType string

const (
	ResourcePDF     ResourceType = "pdf"
	ResourceVideo   ResourceType = "video"
	ResourceArticle ResourceType = "article"
	ResourceWebinar ResourceType = "webinar"
	ResourceOther   ResourceType = "other"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending: {ApplicationApproved, ApplicationRejected},
}

var mentorshipTransitions = map[MentorshipStatus][]MentorshipStatus{
	MentorshipActive: {MentorshipCompleted, MentorshipCancelled},
}

var meetingTransitions = map[MeetingStatus][]MeetingStatus{
	MeetingScheduled: {MeetingCompleted, MeetingCancelled},
}

var cohortTransitions = map[CohortStatus][]CohortStatus{
	CohortUpcoming: {CohortActive},
	CohortActive:   {CohortCompleted},
}

func CanTransitionApplication(from, to ApplicationStatus) bool {
	return containsStatus(applicationTransitions[from], to)
}

func CanTransitionMentorship(from, to MentorshipStatus) bool {
	return containsStatus(mentorshipTransitions[from], to)
}

func CanTransitionMeeting(from, to MeetingStatus) bool {
	return containsStatus(meetingTransitions[from], to)
}

func CanTransitionCohort(from, to CohortStatus) bool {
	return containsStatus(cohortTransitions[from], to)
}

func containsStatus[T comparable](allowed []T, to T) bool {
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

func ValidResourceType(t ResourceType) bool {
	switch t {
	case ResourcePDF, ResourceVideo, ResourceArticle, ResourceWebinar, ResourceOther:
		return true
	}
	return false
}
