package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wanjicode/CareerBridge/internal/domain"
)

type ProgramService struct {
	repo domain.ProgramRepository
}

func NewProgramService(repo domain.ProgramRepository) *ProgramService {
	return &ProgramService{repo: repo}
}

type MentorApplicationInput struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	JobTitle          string   `json:"job_title"`
	Company           string   `json:"company"`
	Bio               string   `json:"bio"`
	Skills            []string `json:"skills"`
	ResumeURL         string   `json:"resume_url"`
	YearsOfExperience int      `json:"years_of_experience"`
	Specializations   []string `json:"specializations"`
	Availability      []string `json:"availability"`
	MenteeCapacity    int      `json:"mentee_capacity"`
}

type MenteeApplicationInput struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	JobTitle        string   `json:"job_title"`
	Company         string   `json:"company"`
	Bio             string   `json:"bio"`
	Skills          []string `json:"skills"`
	ResumeURL       string   `json:"resume_url"`
	CareerGoals     []string `json:"career_goals"`
	CurrentPosition string   `json:"current_position"`
	LookingFor      []string `json:"looking_for"`
}

// PendingApplication is one row of the intake review queue.
type PendingApplication struct {
	ID          uint        `json:"id"`
	Reference   string      `json:"reference"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        domain.Role `json:"role"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

func (s *ProgramService) SubmitMentorApplication(ctx context.Context, in MentorApplicationInput) (domain.Mentor, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return domain.Mentor{}, errors.New("name and email are required")
	}
	if in.MenteeCapacity < 0 {
		return domain.Mentor{}, fmt.Errorf("mentee capacity must not be negative: %w", domain.ErrInvariantViolation)
	}
	if in.YearsOfExperience < 0 {
		return domain.Mentor{}, fmt.Errorf("years of experience must not be negative: %w", domain.ErrInvariantViolation)
	}

	return s.repo.CreateMentor(ctx, domain.Mentor{
		Participant: domain.Participant{
			Reference: uuid.NewString(),
			Name:      strings.TrimSpace(in.Name),
			Email:     in.Email,
			Role:      domain.RoleMentor,
			Status:    domain.ApplicationPending,
			JobTitle:  in.JobTitle,
			Company:   in.Company,
			Bio:       in.Bio,
			Skills:    in.Skills,
			ResumeURL: in.ResumeURL,
		},
		YearsOfExperience: in.YearsOfExperience,
		Specializations:   in.Specializations,
		Availability:      in.Availability,
		MenteeCapacity:    in.MenteeCapacity,
	})
}

func (s *ProgramService) SubmitMenteeApplication(ctx context.Context, in MenteeApplicationInput) (domain.Mentee, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return domain.Mentee{}, errors.New("name and email are required")
	}

	return s.repo.CreateMentee(ctx, domain.Mentee{
		Participant: domain.Participant{
			Reference: uuid.NewString(),
			Name:      strings.TrimSpace(in.Name),
			Email:     in.Email,
			Role:      domain.RoleMentee,
			Status:    domain.ApplicationPending,
			JobTitle:  in.JobTitle,
			Company:   in.Company,
			Bio:       in.Bio,
			Skills:    in.Skills,
			ResumeURL: in.ResumeURL,
		},
		CareerGoals:     in.CareerGoals,
		CurrentPosition: in.CurrentPosition,
		LookingFor:      in.LookingFor,
		MatchState:      domain.MatchUnmatched,
	})
}

func (s *ProgramService) GetMentor(ctx context.Context, id uint) (domain.Mentor, error) {
	if id == 0 {
		return domain.Mentor{}, errors.New("mentor id is required")
	}
	return s.repo.GetMentorByID(ctx, id)
}

func (s *ProgramService) GetMentee(ctx context.Context, id uint) (domain.Mentee, error) {
	if id == 0 {
		return domain.Mentee{}, errors.New("mentee id is required")
	}
	return s.repo.GetMenteeByID(ctx, id)
}

func (s *ProgramService) GetParticipant(ctx context.Context, id uint) (domain.Participant, error) {
	if id == 0 {
		return domain.Participant{}, errors.New("participant id is required")
	}
	return s.repo.GetParticipantByID(ctx, id)
}

// PendingApplications returns the review queue: pending mentors first, then
// pending mentees, each group in submission order. Admin accounts live in a
// separate table and can never appear here.
func (s *ProgramService) PendingApplications(ctx context.Context) ([]PendingApplication, error) {
	pending := domain.ApplicationPending

	mentors, err := s.repo.ListMentors(ctx, &pending)
	if err != nil {
		return nil, err
	}
	mentees, err := s.repo.ListMentees(ctx, &pending)
	if err != nil {
		return nil, err
	}

	result := make([]PendingApplication, 0, len(mentors)+len(mentees))
	for _, m := range mentors {
		result = append(result, PendingApplication{
			ID:          m.ID,
			Reference:   m.Reference,
			Name:        m.Name,
			Email:       m.Email,
			Role:        domain.RoleMentor,
			SubmittedAt: m.CreatedAt,
		})
	}
	for _, m := range mentees {
		result = append(result, PendingApplication{
			ID:          m.ID,
			Reference:   m.Reference,
			Name:        m.Name,
			Email:       m.Email,
			Role:        domain.RoleMentee,
			SubmittedAt: m.CreatedAt,
		})
	}
	return result, nil
}

func (s *ProgramService) ApprovedMentors(ctx context.Context) ([]domain.Mentor, error) {
	approved := domain.ApplicationApproved
	return s.repo.ListMentors(ctx, &approved)
}

func (s *ProgramService) ApprovedMentees(ctx context.Context) ([]domain.Mentee, error) {
	approved := domain.ApplicationApproved
	return s.repo.ListMentees(ctx, &approved)
}

func (s *ProgramService) UnmatchedMentees(ctx context.Context) ([]domain.Mentee, error) {
	mentees, err := s.ApprovedMentees(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Mentee, 0, len(mentees))
	for _, m := range mentees {
		if m.MatchState == domain.MatchUnmatched {
			result = append(result, m)
		}
	}
	return result, nil
}

func (s *ProgramService) ListMentors(ctx context.Context, status string) ([]domain.Mentor, error) {
	filter, err := applicationStatusFilter(status)
	if err != nil {
		return nil, err
	}
	return s.repo.ListMentors(ctx, filter)
}

func (s *ProgramService) ListMentees(ctx context.Context, status string) ([]domain.Mentee, error) {
	filter, err := applicationStatusFilter(status)
	if err != nil {
		return nil, err
	}
	return s.repo.ListMentees(ctx, filter)
}

func applicationStatusFilter(status string) (*domain.ApplicationStatus, error) {
	trimmed := strings.TrimSpace(status)
	if trimmed == "" {
		return nil, nil
	}
	value := domain.ApplicationStatus(trimmed)
	switch value {
	case domain.ApplicationPending, domain.ApplicationApproved, domain.ApplicationRejected:
		return &value, nil
	}
	return nil, fmt.Errorf("unknown application status %q", trimmed)
}

func (s *ProgramService) ApproveMentor(ctx context.Context, mentorID uint) (domain.Mentor, error) {
	mentor, err := s.repo.GetMentorByID(ctx, mentorID)
	if err != nil {
		return domain.Mentor{}, err
	}
	if !domain.CanTransitionApplication(mentor.Status, domain.ApplicationApproved) {
		return domain.Mentor{}, fmt.Errorf("mentor %d is %s: %w", mentorID, mentor.Status, domain.ErrInvalidTransition)
	}
	if err := s.repo.UpdateParticipantStatus(ctx, mentorID, domain.ApplicationApproved); err != nil {
		return domain.Mentor{}, err
	}
	return s.repo.GetMentorByID(ctx, mentorID)
}

// ApproveMentee admits a pending mentee into a cohort. The capacity check and
// the seat increment happen atomically in the store; a full cohort surfaces
// ErrCapacityExceeded and leaves the mentee pending. With waitlist set the
// mentee is approved without taking a seat.
func (s *ProgramService) ApproveMentee(ctx context.Context, menteeID, cohortID uint, waitlist bool) (domain.Mentee, error) {
	mentee, err := s.repo.GetMenteeByID(ctx, menteeID)
	if err != nil {
		return domain.Mentee{}, err
	}
	if !domain.CanTransitionApplication(mentee.Status, domain.ApplicationApproved) {
		return domain.Mentee{}, fmt.Errorf("mentee %d is %s: %w", menteeID, mentee.Status, domain.ErrInvalidTransition)
	}

	if waitlist {
		var cohortRef *uint
		if cohortID != 0 {
			cohortRef = &cohortID
		}
		if err := s.repo.WaitlistMentee(ctx, menteeID, cohortRef); err != nil {
			return domain.Mentee{}, err
		}
		return s.repo.GetMenteeByID(ctx, menteeID)
	}

	if cohortID == 0 {
		return domain.Mentee{}, errors.New("cohort id is required")
	}
	cohort, err := s.repo.GetCohortByID(ctx, cohortID)
	if err != nil {
		return domain.Mentee{}, err
	}
	if err := s.repo.ApproveMenteeIntoCohort(ctx, menteeID, cohortID); err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			return domain.Mentee{}, fmt.Errorf("cohort %q is full (%d/%d): %w", cohort.Name, cohort.ActiveMentees, cohort.Capacity, domain.ErrCapacityExceeded)
		}
		return domain.Mentee{}, err
	}
	return s.repo.GetMenteeByID(ctx, menteeID)
}

func (s *ProgramService) RejectParticipant(ctx context.Context, participantID uint) (domain.Participant, error) {
	p, err := s.repo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return domain.Participant{}, err
	}
	if !domain.CanTransitionApplication(p.Status, domain.ApplicationRejected) {
		return domain.Participant{}, fmt.Errorf("participant %d is %s: %w", participantID, p.Status, domain.ErrInvalidTransition)
	}
	if err := s.repo.UpdateParticipantStatus(ctx, participantID, domain.ApplicationRejected); err != nil {
		return domain.Participant{}, err
	}
	return s.repo.GetParticipantByID(ctx, participantID)
}

// CreateMentorship pairs an approved mentor with an approved mentee. The
// pair must not already have an active mentorship, the mentee must be
// unmatched and the mentor must have spare capacity.
func (s *ProgramService) CreateMentorship(ctx context.Context, mentorID, menteeID uint, meetingFrequency string) (domain.Mentorship, error) {
	if mentorID == 0 || menteeID == 0 {
		return domain.Mentorship{}, errors.New("mentor and mentee ids are required")
	}

	mentor, err := s.repo.GetMentorByID(ctx, mentorID)
	if err != nil {
		return domain.Mentorship{}, err
	}
	if mentor.Status != domain.ApplicationApproved {
		return domain.Mentorship{}, fmt.Errorf("mentor %d is not approved: %w", mentorID, domain.ErrInvalidTransition)
	}
	mentee, err := s.repo.GetMenteeByID(ctx, menteeID)
	if err != nil {
		return domain.Mentorship{}, err
	}
	if mentee.Status != domain.ApplicationApproved {
		return domain.Mentorship{}, fmt.Errorf("mentee %d is not approved: %w", menteeID, domain.ErrInvalidTransition)
	}

	// A repeated request for the same pair reports the duplicate before any
	// other rule fires.
	if existing, err := s.repo.GetMentorshipByPair(ctx, mentorID, menteeID); err == nil {
		if existing.Status == domain.MentorshipActive {
			return domain.Mentorship{}, fmt.Errorf("pair already has an active mentorship: %w", domain.ErrDuplicateKey)
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Mentorship{}, err
	}
	if mentee.MatchState == domain.MatchMatched {
		return domain.Mentorship{}, fmt.Errorf("mentee %q is already matched: %w", mentee.Name, domain.ErrInvalidTransition)
	}

	active, err := s.repo.CountActiveMentorshipsByMentor(ctx, mentorID)
	if err != nil {
		return domain.Mentorship{}, err
	}
	if active >= int64(mentor.MenteeCapacity) {
		return domain.Mentorship{}, fmt.Errorf("mentor %q already has %d active mentees: %w", mentor.Name, active, domain.ErrCapacityExceeded)
	}

	mentorship, err := s.repo.CreateMentorship(ctx, domain.Mentorship{
		MentorID:         mentorID,
		MenteeID:         menteeID,
		Status:           domain.MentorshipActive,
		StartDate:        time.Now().UTC(),
		MeetingFrequency: defaultString(meetingFrequency, "biweekly"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return domain.Mentorship{}, fmt.Errorf("pair already has an active mentorship: %w", domain.ErrDuplicateKey)
		}
		return domain.Mentorship{}, err
	}

	if err := s.repo.SetMenteeMatch(ctx, menteeID, &mentorID, domain.MatchMatched); err != nil {
		return domain.Mentorship{}, err
	}
	return mentorship, nil
}

func (s *ProgramService) CompleteMentorship(ctx context.Context, mentorshipID uint) (domain.Mentorship, error) {
	return s.endMentorship(ctx, mentorshipID, domain.MentorshipCompleted)
}

func (s *ProgramService) CancelMentorship(ctx context.Context, mentorshipID uint) (domain.Mentorship, error) {
	return s.endMentorship(ctx, mentorshipID, domain.MentorshipCancelled)
}

func (s *ProgramService) endMentorship(ctx context.Context, mentorshipID uint, target domain.MentorshipStatus) (domain.Mentorship, error) {
	mentorship, err := s.repo.GetMentorshipByID(ctx, mentorshipID)
	if err != nil {
		return domain.Mentorship{}, err
	}
	if !domain.CanTransitionMentorship(mentorship.Status, target) {
		return domain.Mentorship{}, fmt.Errorf("mentorship %d is %s: %w", mentorshipID, mentorship.Status, domain.ErrInvalidTransition)
	}

	now := time.Now().UTC()
	updated, err := s.repo.UpdateMentorshipStatus(ctx, mentorshipID, target, &now)
	if err != nil {
		return domain.Mentorship{}, err
	}

	// Cancellation frees the mentee for rematching; completion keeps the
	// historical link. Only reset the mentee if this mentorship's mentor is
	// still the one they are matched with.
	if target == domain.MentorshipCancelled {
		mentee, err := s.repo.GetMenteeByID(ctx, mentorship.MenteeID)
		if err != nil {
			return domain.Mentorship{}, err
		}
		if mentee.MentorID == nil || *mentee.MentorID == mentorship.MentorID {
			if err := s.repo.SetMenteeMatch(ctx, mentorship.MenteeID, nil, domain.MatchUnmatched); err != nil {
				return domain.Mentorship{}, err
			}
		}
	}
	return updated, nil
}

func (s *ProgramService) GetMentorship(ctx context.Context, id uint) (domain.Mentorship, error) {
	if id == 0 {
		return domain.Mentorship{}, errors.New("mentorship id is required")
	}
	return s.repo.GetMentorshipByID(ctx, id)
}

func (s *ProgramService) ActiveMentorships(ctx context.Context) ([]domain.MentorshipSummary, error) {
	active := domain.MentorshipActive
	return s.repo.ListMentorships(ctx, &active)
}

func (s *ProgramService) ListMentorships(ctx context.Context, status string) ([]domain.MentorshipSummary, error) {
	trimmed := strings.TrimSpace(status)
	if trimmed == "" {
		return s.repo.ListMentorships(ctx, nil)
	}
	value := domain.MentorshipStatus(trimmed)
	switch value {
	case domain.MentorshipActive, domain.MentorshipCompleted, domain.MentorshipCancelled:
		return s.repo.ListMentorships(ctx, &value)
	}
	return nil, fmt.Errorf("unknown mentorship status %q", trimmed)
}

func (s *ProgramService) MentorshipForPair(ctx context.Context, mentorID, menteeID uint) (domain.Mentorship, error) {
	if mentorID == 0 || menteeID == 0 {
		return domain.Mentorship{}, errors.New("mentor and mentee ids are required")
	}
	return s.repo.GetMentorshipByPair(ctx, mentorID, menteeID)
}

func (s *ProgramService) ScheduleMeeting(ctx context.Context, mentorshipID uint, scheduledAt time.Time, durationMinutes int, notes string) (domain.Meeting, error) {
	if durationMinutes <= 0 {
		return domain.Meeting{}, fmt.Errorf("meeting duration must be positive: %w", domain.ErrInvariantViolation)
	}
	mentorship, err := s.repo.GetMentorshipByID(ctx, mentorshipID)
	if err != nil {
		return domain.Meeting{}, err
	}
	if mentorship.Status != domain.MentorshipActive {
		return domain.Meeting{}, fmt.Errorf("mentorship %d is %s: %w", mentorshipID, mentorship.Status, domain.ErrInvalidTransition)
	}

	return s.repo.CreateMeeting(ctx, domain.Meeting{
		MentorshipID:    mentorshipID,
		ScheduledAt:     scheduledAt.UTC(),
		DurationMinutes: durationMinutes,
		Status:          domain.MeetingScheduled,
		Notes:           notes,
	})
}

func (s *ProgramService) CompleteMeeting(ctx context.Context, meetingID uint, notes string) (domain.Meeting, error) {
	return s.endMeeting(ctx, meetingID, domain.MeetingCompleted, notes)
}

func (s *ProgramService) CancelMeeting(ctx context.Context, meetingID uint, notes string) (domain.Meeting, error) {
	return s.endMeeting(ctx, meetingID, domain.MeetingCancelled, notes)
}

func (s *ProgramService) endMeeting(ctx context.Context, meetingID uint, target domain.MeetingStatus, notes string) (domain.Meeting, error) {
	meeting, err := s.repo.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return domain.Meeting{}, err
	}
	if !domain.CanTransitionMeeting(meeting.Status, target) {
		return domain.Meeting{}, fmt.Errorf("meeting %d is %s: %w", meetingID, meeting.Status, domain.ErrInvalidTransition)
	}
	return s.repo.UpdateMeetingStatus(ctx, meetingID, target, notes)
}

func (s *ProgramService) MeetingsForMentorship(ctx context.Context, mentorshipID uint) ([]domain.Meeting, error) {
	if mentorshipID == 0 {
		return nil, errors.New("mentorship id is required")
	}
	if _, err := s.repo.GetMentorshipByID(ctx, mentorshipID); err != nil {
		return nil, err
	}
	return s.repo.ListMeetingsByMentorship(ctx, mentorshipID)
}

// SubmitFeedback records a rating between the two sides of a mentorship.
// From and to must be the pair's mentor and mentee in either direction.
func (s *ProgramService) SubmitFeedback(ctx context.Context, mentorshipID, fromID, toID uint, rating int, comment string) (domain.Feedback, error) {
	if rating < 1 || rating > 5 {
		return domain.Feedback{}, fmt.Errorf("rating must be between 1 and 5: %w", domain.ErrInvariantViolation)
	}
	mentorship, err := s.repo.GetMentorshipByID(ctx, mentorshipID)
	if err != nil {
		return domain.Feedback{}, err
	}

	mentorToMentee := fromID == mentorship.MentorID && toID == mentorship.MenteeID
	menteeToMentor := fromID == mentorship.MenteeID && toID == mentorship.MentorID
	if !mentorToMentee && !menteeToMentor {
		return domain.Feedback{}, fmt.Errorf("feedback must be between the mentorship's mentor and mentee: %w", domain.ErrInvariantViolation)
	}

	return s.repo.CreateFeedback(ctx, domain.Feedback{
		MentorshipID: mentorshipID,
		FromID:       fromID,
		ToID:         toID,
		Rating:       rating,
		Comment:      comment,
	})
}

func (s *ProgramService) FeedbackForMentorship(ctx context.Context, mentorshipID uint) ([]domain.Feedback, error) {
	if mentorshipID == 0 {
		return nil, errors.New("mentorship id is required")
	}
	if _, err := s.repo.GetMentorshipByID(ctx, mentorshipID); err != nil {
		return nil, err
	}
	return s.repo.ListFeedbackByMentorship(ctx, mentorshipID)
}

func (s *ProgramService) CreateCohort(ctx context.Context, name string, startDate, endDate time.Time, capacity int) (domain.Cohort, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Cohort{}, errors.New("cohort name is required")
	}
	if capacity < 0 {
		return domain.Cohort{}, fmt.Errorf("cohort capacity must not be negative: %w", domain.ErrInvariantViolation)
	}
	if !endDate.After(startDate) {
		return domain.Cohort{}, fmt.Errorf("cohort end date must be after start date: %w", domain.ErrInvariantViolation)
	}

	return s.repo.CreateCohort(ctx, domain.Cohort{
		Name:      strings.TrimSpace(name),
		StartDate: startDate.UTC(),
		EndDate:   endDate.UTC(),
		Capacity:  capacity,
		Status:    domain.CohortUpcoming,
	})
}

func (s *ProgramService) StartCohort(ctx context.Context, cohortID uint) (domain.Cohort, error) {
	return s.transitionCohort(ctx, cohortID, domain.CohortActive)
}

func (s *ProgramService) CompleteCohort(ctx context.Context, cohortID uint) (domain.Cohort, error) {
	return s.transitionCohort(ctx, cohortID, domain.CohortCompleted)
}

func (s *ProgramService) transitionCohort(ctx context.Context, cohortID uint, target domain.CohortStatus) (domain.Cohort, error) {
	cohort, err := s.repo.GetCohortByID(ctx, cohortID)
	if err != nil {
		return domain.Cohort{}, err
	}
	if !domain.CanTransitionCohort(cohort.Status, target) {
		return domain.Cohort{}, fmt.Errorf("cohort %q is %s: %w", cohort.Name, cohort.Status, domain.ErrInvalidTransition)
	}
	return s.repo.UpdateCohortStatus(ctx, cohortID, target)
}

func (s *ProgramService) GetCohort(ctx context.Context, id uint) (domain.Cohort, error) {
	if id == 0 {
		return domain.Cohort{}, errors.New("cohort id is required")
	}
	return s.repo.GetCohortByID(ctx, id)
}

func (s *ProgramService) ListCohorts(ctx context.Context) ([]domain.Cohort, error) {
	return s.repo.ListCohorts(ctx)
}

// ActiveCohort returns the cohort currently running. When several cohorts are
// active at once the most recently started one wins and the anomaly is logged.
func (s *ProgramService) ActiveCohort(ctx context.Context) (domain.Cohort, error) {
	cohorts, err := s.repo.ListCohortsByStatus(ctx, domain.CohortActive)
	if err != nil {
		return domain.Cohort{}, err
	}
	if len(cohorts) == 0 {
		return domain.Cohort{}, fmt.Errorf("no active cohort: %w", domain.ErrNotFound)
	}
	if len(cohorts) > 1 {
		log.Printf("warning: %d cohorts active at once, using most recently started", len(cohorts))
	}
	return cohorts[len(cohorts)-1], nil
}

func (s *ProgramService) AddResource(ctx context.Context, title, description, url string, resourceType domain.ResourceType, tags []string) (domain.Resource, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(url) == "" {
		return domain.Resource{}, errors.New("title and url are required")
	}
	if !domain.ValidResourceType(resourceType) {
		return domain.Resource{}, fmt.Errorf("unknown resource type %q: %w", resourceType, domain.ErrInvariantViolation)
	}

	return s.repo.CreateResource(ctx, domain.Resource{
		Title:       strings.TrimSpace(title),
		Description: description,
		URL:         url,
		Type:        resourceType,
		Tags:        tags,
	})
}

func (s *ProgramService) ListResources(ctx context.Context, resourceType, tag string) ([]domain.Resource, error) {
	var filter *domain.ResourceType
	if strings.TrimSpace(resourceType) != "" {
		value := domain.ResourceType(strings.TrimSpace(resourceType))
		if !domain.ValidResourceType(value) {
			return nil, fmt.Errorf("unknown resource type %q", resourceType)
		}
		filter = &value
	}
	return s.repo.ListResources(ctx, filter, tag)
}
