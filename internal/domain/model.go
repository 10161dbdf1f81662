package domain

import "time"

type Participant struct {
	ID        uint
	Reference string
	Name      string
	Email     string
	Role      Role
	Status    ApplicationStatus
	JobTitle  string
	Company   string
	Bio       string
	Skills    []string
	ResumeURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Mentor struct {
	Participant
	YearsOfExperience int
	Specializations   []string
	Availability      []string
	MenteeCapacity    int
	MenteeIDs         []uint
}

type Mentee struct {
	Participant
	CareerGoals     []string
	CurrentPosition string
	LookingFor      []string
	MentorID        *uint
	CohortID        *uint
	MatchState      MatchState
}

type Mentorship struct {
	ID               uint
	MentorID         uint
	MenteeID         uint
	Status           MentorshipStatus
	StartDate        time.Time
	EndDate          *time.Time
	MeetingFrequency string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type MentorshipSummary struct {
	ID                uint
	MentorID          uint
	MentorName        string
	MenteeID          uint
	MenteeName        string
	Status            MentorshipStatus
	StartDate         time.Time
	EndDate           *time.Time
	MeetingFrequency  string
	MeetingsCompleted int
	FeedbackSubmitted int
	CreatedAt         time.Time
}

type Feedback struct {
	ID           uint
	MentorshipID uint
	FromID       uint
	ToID         uint
	Rating       int
	Comment      string
	CreatedAt    time.Time
}

type Meeting struct {
	ID              uint
	MentorshipID    uint
	ScheduledAt     time.Time
	DurationMinutes int
	Status          MeetingStatus
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Cohort struct {
	ID            uint
	Name          string
	StartDate     time.Time
	EndDate       time.Time
	Capacity      int
	ActiveMentees int
	Status        CohortStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Resource struct {
	ID          uint
	Title       string
	Description string
	URL         string
	Type        ResourceType
	Tags        []string
	CreatedAt   time.Time
}

type Account struct {
	ID            uint
	Email         string
	PasswordHash  string
	ParticipantID *uint
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AuthSession struct {
	ID        uint
	AccountID uint
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type APIToken struct {
	ID        uint
	AccountID uint
	Name      string
	TokenHash string
	ExpiresAt *time.Time
	CreatedAt time.Time
}

type AccessRole struct {
	ID        uint
	Key       string
	Name      string
	CreatedAt time.Time
}

type AuditLog struct {
	ID             uint
	ActorAccountID *uint
	Action         string
	TargetType     string
	TargetID       *uint
	Metadata       string
	CreatedAt      time.Time
}

type AuditRecord struct {
	ID                uint
	ActorAccountID    *uint
	ActorAccountEmail string
	Action            string
	TargetType        string
	TargetID          *uint
	Metadata          string
	CreatedAt         time.Time
}

type Identity struct {
	Account     Account
	Permissions map[string]struct{}
}
