package sqlite

import "time"

type ParticipantModel struct {
	ID        uint   `gorm:"primaryKey"`
	Reference string `gorm:"not null;uniqueIndex"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null;uniqueIndex"`
	Role      string `gorm:"not null;index"`
	Status    string `gorm:"not null;default:'pending';index"`
	JobTitle  string
	Company   string
	Bio       string
	Skills    string
	ResumeURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ParticipantModel) TableName() string { return "participants" }

type MentorProfileModel struct {
	ID                uint `gorm:"primaryKey"`
	ParticipantID     uint `gorm:"not null;uniqueIndex"`
	YearsOfExperience int  `gorm:"not null;default:0"`
	Specializations   string
	Availability      string
	MenteeCapacity    int `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (MentorProfileModel) TableName() string { return "mentor_profiles" }

type MenteeProfileModel struct {
	ID              uint `gorm:"primaryKey"`
	ParticipantID   uint `gorm:"not null;uniqueIndex"`
	CareerGoals     string
	CurrentPosition string
	LookingFor      string
	MentorID        *uint  `gorm:"index"`
	CohortID        *uint  `gorm:"index"`
	MatchState      string `gorm:"not null;default:'unmatched'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (MenteeProfileModel) TableName() string { return "mentee_profiles" }

type MentorshipModel struct {
	ID               uint      `gorm:"primaryKey"`
	MentorID         uint      `gorm:"not null;index"`
	MenteeID         uint      `gorm:"not null;index"`
	Status           string    `gorm:"not null;default:'active';index"`
	StartDate        time.Time `gorm:"not null"`
	EndDate          *time.Time
	MeetingFrequency string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (MentorshipModel) TableName() string { return "mentorships" }

type FeedbackModel struct {
	ID           uint   `gorm:"primaryKey"`
	MentorshipID uint   `gorm:"not null;index"`
	FromID       uint   `gorm:"not null"`
	ToID         uint   `gorm:"not null"`
	Rating       int    `gorm:"not null"`
	Comment      string `gorm:"not null;default:''"`
	CreatedAt    time.Time
}

func (FeedbackModel) TableName() string { return "feedback" }

type MeetingModel struct {
	ID              uint      `gorm:"primaryKey"`
	MentorshipID    uint      `gorm:"not null;index"`
	ScheduledAt     time.Time `gorm:"not null"`
	DurationMinutes int       `gorm:"not null"`
	Status          string    `gorm:"not null;default:'scheduled'"`
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (MeetingModel) TableName() string { return "meetings" }

type CohortModel struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"not null;uniqueIndex"`
	StartDate     time.Time `gorm:"not null"`
	EndDate       time.Time `gorm:"not null"`
	Capacity      int       `gorm:"not null;default:0"`
	ActiveMentees int       `gorm:"not null;default:0"`
	Status        string    `gorm:"not null;default:'upcoming';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (CohortModel) TableName() string { return "cohorts" }

type ResourceModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	URL         string `gorm:"not null"`
	Type        string `gorm:"not null;default:'other';index"`
	Tags        string
	CreatedAt   time.Time
}

func (ResourceModel) TableName() string { return "resources" }

type AccountModel struct {
	ID            uint   `gorm:"primaryKey"`
	Email         string `gorm:"not null;uniqueIndex"`
	PasswordHash  string `gorm:"not null"`
	ParticipantID *uint  `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AccountModel) TableName() string { return "accounts" }

type SessionModel struct {
	ID        uint   `gorm:"primaryKey"`
	AccountID uint   `gorm:"not null;index"`
	TokenHash string `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (SessionModel) TableName() string { return "sessions" }

type APITokenModel struct {
	ID        uint   `gorm:"primaryKey"`
	AccountID uint   `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	TokenHash string `gorm:"not null;uniqueIndex"`
	ExpiresAt *time.Time
	CreatedAt time.Time
}

func (APITokenModel) TableName() string { return "api_tokens" }

type RoleModel struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"not null;uniqueIndex"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
}

func (RoleModel) TableName() string { return "roles" }

type PermissionModel struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
}

func (PermissionModel) TableName() string { return "permissions" }

type AccountRoleModel struct {
	ID        uint `gorm:"primaryKey"`
	AccountID uint `gorm:"not null;index:idx_account_role,unique"`
	RoleID    uint `gorm:"not null;index:idx_account_role,unique"`
	CreatedAt time.Time
}

func (AccountRoleModel) TableName() string { return "account_roles" }

type RolePermissionModel struct {
	ID           uint `gorm:"primaryKey"`
	RoleID       uint `gorm:"not null;index:idx_role_perm,unique"`
	PermissionID uint `gorm:"not null;index:idx_role_perm,unique"`
	CreatedAt    time.Time
}

func (RolePermissionModel) TableName() string { return "role_permissions" }

type AuditLogModel struct {
	ID             uint `gorm:"primaryKey"`
	ActorAccountID *uint
	Action         string `gorm:"not null;index"`
	TargetType     string `gorm:"not null;index"`
	TargetID       *uint
	Metadata       string
	CreatedAt      time.Time
}

func (AuditLogModel) TableName() string { return "audit_logs" }
