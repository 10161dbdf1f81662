package sqlite

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/wanjicode/CareerBridge/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

type ProgramRepository struct {
	db *gorm.DB
}

func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
	}, &gorm.Config{})
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrDuplicateKey
	}
	return err
}

func joinList(values []string) string {
	return strings.Join(values, ",")
}

func splitList(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}
	return result
}

func participantFromModel(m ParticipantModel) domain.Participant {
	return domain.Participant{
		ID:        m.ID,
		Reference: m.Reference,
		Name:      m.Name,
		Email:     m.Email,
		Role:      domain.Role(m.Role),
		Status:    domain.ApplicationStatus(m.Status),
		JobTitle:  m.JobTitle,
		Company:   m.Company,
		Bio:       m.Bio,
		Skills:    splitList(m.Skills),
		ResumeURL: m.ResumeURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *ProgramRepository) CreateMentor(ctx context.Context, value domain.Mentor) (domain.Mentor, error) {
	p := ParticipantModel{
		Reference: value.Reference,
		Name:      value.Name,
		Email:     strings.ToLower(strings.TrimSpace(value.Email)),
		Role:      string(domain.RoleMentor),
		Status:    string(value.Status),
		JobTitle:  value.JobTitle,
		Company:   value.Company,
		Bio:       value.Bio,
		Skills:    joinList(value.Skills),
		ResumeURL: value.ResumeURL,
	}
	profile := MentorProfileModel{
		YearsOfExperience: value.YearsOfExperience,
		Specializations:   joinList(value.Specializations),
		Availability:      joinList(value.Availability),
		MenteeCapacity:    value.MenteeCapacity,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		profile.ParticipantID = p.ID
		return tx.Create(&profile).Error
	})
	if err != nil {
		return domain.Mentor{}, translateErr(err)
	}

	return domain.Mentor{
		Participant:       participantFromModel(p),
		YearsOfExperience: profile.YearsOfExperience,
		Specializations:   splitList(profile.Specializations),
		Availability:      splitList(profile.Availability),
		MenteeCapacity:    profile.MenteeCapacity,
	}, nil
}

func (r *ProgramRepository) GetMentorByID(ctx context.Context, id uint) (domain.Mentor, error) {
	var p ParticipantModel
	if err := r.db.WithContext(ctx).Where("id = ? AND role = ?", id, string(domain.RoleMentor)).First(&p).Error; err != nil {
		return domain.Mentor{}, translateErr(err)
	}
	var profile MentorProfileModel
	if err := r.db.WithContext(ctx).Where("participant_id = ?", id).First(&profile).Error; err != nil {
		return domain.Mentor{}, translateErr(err)
	}

	menteeIDs, err := r.activeMenteeIDs(ctx, []uint{id})
	if err != nil {
		return domain.Mentor{}, err
	}

	return domain.Mentor{
		Participant:       participantFromModel(p),
		YearsOfExperience: profile.YearsOfExperience,
		Specializations:   splitList(profile.Specializations),
		Availability:      splitList(profile.Availability),
		MenteeCapacity:    profile.MenteeCapacity,
		MenteeIDs:         menteeIDs[id],
	}, nil
}

func (r *ProgramRepository) ListMentors(ctx context.Context, status *domain.ApplicationStatus) ([]domain.Mentor, error) {
	q := r.db.WithContext(ctx).Model(&ParticipantModel{}).Where("role = ?", string(domain.RoleMentor))
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}
	rows := make([]ParticipantModel, 0)
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, m := range rows {
		ids = append(ids, m.ID)
	}
	profiles := make([]MentorProfileModel, 0, len(rows))
	if len(ids) > 0 {
		if err := r.db.WithContext(ctx).Where("participant_id IN ?", ids).Find(&profiles).Error; err != nil {
			return nil, err
		}
	}
	profileByID := make(map[uint]MentorProfileModel, len(profiles))
	for _, profile := range profiles {
		profileByID[profile.ParticipantID] = profile
	}
	menteeIDs, err := r.activeMenteeIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Mentor, 0, len(rows))
	for _, m := range rows {
		profile := profileByID[m.ID]
		result = append(result, domain.Mentor{
			Participant:       participantFromModel(m),
			YearsOfExperience: profile.YearsOfExperience,
			Specializations:   splitList(profile.Specializations),
			Availability:      splitList(profile.Availability),
			MenteeCapacity:    profile.MenteeCapacity,
			MenteeIDs:         menteeIDs[m.ID],
		})
	}
	return result, nil
}

func (r *ProgramRepository) activeMenteeIDs(ctx context.Context, mentorIDs []uint) (map[uint][]uint, error) {
	out := make(map[uint][]uint)
	if len(mentorIDs) == 0 {
		return out, nil
	}
	type row struct {
		MentorID uint
		MenteeID uint
	}
	rows := make([]row, 0)
	err := r.db.WithContext(ctx).
		Model(&MentorshipModel{}).
		Select("mentor_id, mentee_id").
		Where("mentor_id IN ? AND status = ?", mentorIDs, string(domain.MentorshipActive)).
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, m := range rows {
		out[m.MentorID] = append(out[m.MentorID], m.MenteeID)
	}
	return out, nil
}

func (r *ProgramRepository) CreateMentee(ctx context.Context, value domain.Mentee) (domain.Mentee, error) {
	p := ParticipantModel{
		Reference: value.Reference,
		Name:      value.Name,
		Email:     strings.ToLower(strings.TrimSpace(value.Email)),
		Role:      string(domain.RoleMentee),
		Status:    string(value.Status),
		JobTitle:  value.JobTitle,
		Company:   value.Company,
		Bio:       value.Bio,
		Skills:    joinList(value.Skills),
		ResumeURL: value.ResumeURL,
	}
	state := value.MatchState
	if state == "" {
		state = domain.MatchUnmatched
	}
	profile := MenteeProfileModel{
		CareerGoals:     joinList(value.CareerGoals),
		CurrentPosition: value.CurrentPosition,
		LookingFor:      joinList(value.LookingFor),
		MentorID:        value.MentorID,
		CohortID:        value.CohortID,
		MatchState:      string(state),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		profile.ParticipantID = p.ID
		return tx.Create(&profile).Error
	})
	if err != nil {
		return domain.Mentee{}, translateErr(err)
	}

	return menteeFromModels(p, profile), nil
}

func menteeFromModels(p ParticipantModel, profile MenteeProfileModel) domain.Mentee {
	return domain.Mentee{
		Participant:     participantFromModel(p),
		CareerGoals:     splitList(profile.CareerGoals),
		CurrentPosition: profile.CurrentPosition,
		LookingFor:      splitList(profile.LookingFor),
		MentorID:        profile.MentorID,
		CohortID:        profile.CohortID,
		MatchState:      domain.MatchState(profile.MatchState),
	}
}

func (r *ProgramRepository) GetMenteeByID(ctx context.Context, id uint) (domain.Mentee, error) {
	var p ParticipantModel
	if err := r.db.WithContext(ctx).Where("id = ? AND role = ?", id, string(domain.RoleMentee)).First(&p).Error; err != nil {
		return domain.Mentee{}, translateErr(err)
	}
	var profile MenteeProfileModel
	if err := r.db.WithContext(ctx).Where("participant_id = ?", id).First(&profile).Error; err != nil {
		return domain.Mentee{}, translateErr(err)
	}
	return menteeFromModels(p, profile), nil
}

func (r *ProgramRepository) ListMentees(ctx context.Context, status *domain.ApplicationStatus) ([]domain.Mentee, error) {
	q := r.db.WithContext(ctx).Model(&ParticipantModel{}).Where("role = ?", string(domain.RoleMentee))
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}
	rows := make([]ParticipantModel, 0)
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, m := range rows {
		ids = append(ids, m.ID)
	}
	profiles := make([]MenteeProfileModel, 0, len(rows))
	if len(ids) > 0 {
		if err := r.db.WithContext(ctx).Where("participant_id IN ?", ids).Find(&profiles).Error; err != nil {
			return nil, err
		}
	}
	profileByID := make(map[uint]MenteeProfileModel, len(profiles))
	for _, profile := range profiles {
		profileByID[profile.ParticipantID] = profile
	}

	result := make([]domain.Mentee, 0, len(rows))
	for _, m := range rows {
		result = append(result, menteeFromModels(m, profileByID[m.ID]))
	}
	return result, nil
}

func (r *ProgramRepository) GetParticipantByID(ctx context.Context, id uint) (domain.Participant, error) {
	var m ParticipantModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Participant{}, translateErr(err)
	}
	return participantFromModel(m), nil
}

func (r *ProgramRepository) GetParticipantByEmail(ctx context.Context, email string) (domain.Participant, error) {
	var m ParticipantModel
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&m).Error; err != nil {
		return domain.Participant{}, translateErr(err)
	}
	return participantFromModel(m), nil
}

func (r *ProgramRepository) UpdateParticipantStatus(ctx context.Context, id uint, status domain.ApplicationStatus) error {
	res := r.db.WithContext(ctx).Model(&ParticipantModel{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ApproveMenteeIntoCohort performs the capacity check and the increment in a
// single guarded UPDATE so two concurrent approvals cannot overfill a cohort.
func (r *ProgramRepository) ApproveMenteeIntoCohort(ctx context.Context, menteeID, cohortID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&CohortModel{}).
			Where("id = ? AND active_mentees < capacity", cohortID).
			Update("active_mentees", gorm.Expr("active_mentees + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var cohort CohortModel
			if err := tx.First(&cohort, cohortID).Error; err != nil {
				return translateErr(err)
			}
			return domain.ErrCapacityExceeded
		}

		res = tx.Model(&ParticipantModel{}).
			Where("id = ? AND status = ?", menteeID, string(domain.ApplicationPending)).
			Update("status", string(domain.ApplicationApproved))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidTransition
		}

		return tx.Model(&MenteeProfileModel{}).
			Where("participant_id = ?", menteeID).
			Updates(map[string]any{"cohort_id": cohortID, "match_state": string(domain.MatchUnmatched)}).Error
	})
}

func (r *ProgramRepository) WaitlistMentee(ctx context.Context, menteeID uint, cohortID *uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&ParticipantModel{}).
			Where("id = ? AND status = ?", menteeID, string(domain.ApplicationPending)).
			Update("status", string(domain.ApplicationApproved))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidTransition
		}
		return tx.Model(&MenteeProfileModel{}).
			Where("participant_id = ?", menteeID).
			Updates(map[string]any{"cohort_id": cohortID, "match_state": string(domain.MatchWaitlisted)}).Error
	})
}

func (r *ProgramRepository) SetMenteeMatch(ctx context.Context, menteeID uint, mentorID *uint, state domain.MatchState) error {
	res := r.db.WithContext(ctx).Model(&MenteeProfileModel{}).
		Where("participant_id = ?", menteeID).
		Updates(map[string]any{"mentor_id": mentorID, "match_state": string(state)})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func mentorshipFromModel(m MentorshipModel) domain.Mentorship {
	return domain.Mentorship{
		ID:               m.ID,
		MentorID:         m.MentorID,
		MenteeID:         m.MenteeID,
		Status:           domain.MentorshipStatus(m.Status),
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		MeetingFrequency: m.MeetingFrequency,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *ProgramRepository) CreateMentorship(ctx context.Context, value domain.Mentorship) (domain.Mentorship, error) {
	m := MentorshipModel{
		MentorID:         value.MentorID,
		MenteeID:         value.MenteeID,
		Status:           string(value.Status),
		StartDate:        value.StartDate,
		EndDate:          value.EndDate,
		MeetingFrequency: value.MeetingFrequency,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Mentorship{}, translateErr(err)
	}
	return mentorshipFromModel(m), nil
}

func (r *ProgramRepository) GetMentorshipByID(ctx context.Context, id uint) (domain.Mentorship, error) {
	var m MentorshipModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Mentorship{}, translateErr(err)
	}
	return mentorshipFromModel(m), nil
}

func (r *ProgramRepository) GetMentorshipByPair(ctx context.Context, mentorID, menteeID uint) (domain.Mentorship, error) {
	var m MentorshipModel
	err := r.db.WithContext(ctx).
		Where("mentor_id = ? AND mentee_id = ?", mentorID, menteeID).
		Order("id DESC").
		First(&m).Error
	if err != nil {
		return domain.Mentorship{}, translateErr(err)
	}
	return mentorshipFromModel(m), nil
}

func (r *ProgramRepository) ListMentorships(ctx context.Context, status *domain.MentorshipStatus) ([]domain.MentorshipSummary, error) {
	type row struct {
		ID                uint
		MentorID          uint
		MentorName        string
		MenteeID          uint
		MenteeName        string
		Status            string
		StartDate         time.Time
		EndDate           *time.Time
		MeetingFrequency  string
		MeetingsCompleted int
		FeedbackSubmitted int
		CreatedAt         time.Time
	}

	statusClause := ""
	args := []any{}
	if status != nil {
		statusClause = "WHERE ms.status = ?"
		args = append(args, string(*status))
	}

	rows := make([]row, 0)
	if err := r.db.WithContext(ctx).Raw(`
SELECT ms.id,
       ms.mentor_id,
       COALESCE(pm.name, '') AS mentor_name,
       ms.mentee_id,
       COALESCE(pe.name, '') AS mentee_name,
       ms.status,
       ms.start_date,
       ms.end_date,
       ms.meeting_frequency,
       (SELECT COUNT(*) FROM meetings mt WHERE mt.mentorship_id = ms.id AND mt.status = 'completed') AS meetings_completed,
       (SELECT COUNT(*) FROM feedback fb WHERE fb.mentorship_id = ms.id) AS feedback_submitted,
       ms.created_at
FROM mentorships ms
LEFT JOIN participants pm ON pm.id = ms.mentor_id
LEFT JOIN participants pe ON pe.id = ms.mentee_id
`+statusClause+`
ORDER BY ms.id ASC
`, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]domain.MentorshipSummary, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.MentorshipSummary{
			ID:                m.ID,
			MentorID:          m.MentorID,
			MentorName:        m.MentorName,
			MenteeID:          m.MenteeID,
			MenteeName:        m.MenteeName,
			Status:            domain.MentorshipStatus(m.Status),
			StartDate:         m.StartDate,
			EndDate:           m.EndDate,
			MeetingFrequency:  m.MeetingFrequency,
			MeetingsCompleted: m.MeetingsCompleted,
			FeedbackSubmitted: m.FeedbackSubmitted,
			CreatedAt:         m.CreatedAt,
		})
	}
	return result, nil
}

func (r *ProgramRepository) UpdateMentorshipStatus(ctx context.Context, id uint, status domain.MentorshipStatus, endDate *time.Time) (domain.Mentorship, error) {
	updates := map[string]any{"status": string(status)}
	if endDate != nil {
		updates["end_date"] = endDate
	}
	res := r.db.WithContext(ctx).Model(&MentorshipModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return domain.Mentorship{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Mentorship{}, domain.ErrNotFound
	}
	var m MentorshipModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Mentorship{}, translateErr(err)
	}
	return mentorshipFromModel(m), nil
}

func (r *ProgramRepository) CountActiveMentorshipsByMentor(ctx context.Context, mentorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&MentorshipModel{}).
		Where("mentor_id = ? AND status = ?", mentorID, string(domain.MentorshipActive)).
		Count(&count).Error
	return count, err
}

func (r *ProgramRepository) CreateFeedback(ctx context.Context, value domain.Feedback) (domain.Feedback, error) {
	m := FeedbackModel{
		MentorshipID: value.MentorshipID,
		FromID:       value.FromID,
		ToID:         value.ToID,
		Rating:       value.Rating,
		Comment:      value.Comment,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Feedback{}, translateErr(err)
	}
	return domain.Feedback{
		ID:           m.ID,
		MentorshipID: m.MentorshipID,
		FromID:       m.FromID,
		ToID:         m.ToID,
		Rating:       m.Rating,
		Comment:      m.Comment,
		CreatedAt:    m.CreatedAt,
	}, nil
}

func (r *ProgramRepository) ListFeedbackByMentorship(ctx context.Context, mentorshipID uint) ([]domain.Feedback, error) {
	rows := make([]FeedbackModel, 0)
	err := r.db.WithContext(ctx).
		Where("mentorship_id = ?", mentorshipID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]domain.Feedback, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.Feedback{
			ID:           m.ID,
			MentorshipID: m.MentorshipID,
			FromID:       m.FromID,
			ToID:         m.ToID,
			Rating:       m.Rating,
			Comment:      m.Comment,
			CreatedAt:    m.CreatedAt,
		})
	}
	return result, nil
}

func meetingFromModel(m MeetingModel) domain.Meeting {
	return domain.Meeting{
		ID:              m.ID,
		MentorshipID:    m.MentorshipID,
		ScheduledAt:     m.ScheduledAt,
		DurationMinutes: m.DurationMinutes,
		Status:          domain.MeetingStatus(m.Status),
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *ProgramRepository) CreateMeeting(ctx context.Context, value domain.Meeting) (domain.Meeting, error) {
	m := MeetingModel{
		MentorshipID:    value.MentorshipID,
		ScheduledAt:     value.ScheduledAt,
		DurationMinutes: value.DurationMinutes,
		Status:          string(value.Status),
		Notes:           value.Notes,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Meeting{}, translateErr(err)
	}
	return meetingFromModel(m), nil
}

func (r *ProgramRepository) GetMeetingByID(ctx context.Context, id uint) (domain.Meeting, error) {
	var m MeetingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Meeting{}, translateErr(err)
	}
	return meetingFromModel(m), nil
}

func (r *ProgramRepository) UpdateMeetingStatus(ctx context.Context, id uint, status domain.MeetingStatus, notes string) (domain.Meeting, error) {
	updates := map[string]any{"status": string(status)}
	if notes != "" {
		updates["notes"] = notes
	}
	res := r.db.WithContext(ctx).Model(&MeetingModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return domain.Meeting{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Meeting{}, domain.ErrNotFound
	}
	var m MeetingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Meeting{}, translateErr(err)
	}
	return meetingFromModel(m), nil
}

func (r *ProgramRepository) ListMeetingsByMentorship(ctx context.Context, mentorshipID uint) ([]domain.Meeting, error) {
	rows := make([]MeetingModel, 0)
	err := r.db.WithContext(ctx).
		Where("mentorship_id = ?", mentorshipID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]domain.Meeting, 0, len(rows))
	for _, m := range rows {
		result = append(result, meetingFromModel(m))
	}
	return result, nil
}

func cohortFromModel(m CohortModel) domain.Cohort {
	return domain.Cohort{
		ID:            m.ID,
		Name:          m.Name,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Capacity:      m.Capacity,
		ActiveMentees: m.ActiveMentees,
		Status:        domain.CohortStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *ProgramRepository) CreateCohort(ctx context.Context, value domain.Cohort) (domain.Cohort, error) {
	m := CohortModel{
		Name:          value.Name,
		StartDate:     value.StartDate,
		EndDate:       value.EndDate,
		Capacity:      value.Capacity,
		ActiveMentees: value.ActiveMentees,
		Status:        string(value.Status),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Cohort{}, translateErr(err)
	}
	return cohortFromModel(m), nil
}

func (r *ProgramRepository) GetCohortByID(ctx context.Context, id uint) (domain.Cohort, error) {
	var m CohortModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Cohort{}, translateErr(err)
	}
	return cohortFromModel(m), nil
}

func (r *ProgramRepository) ListCohorts(ctx context.Context) ([]domain.Cohort, error) {
	rows := make([]CohortModel, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Cohort, 0, len(rows))
	for _, m := range rows {
		result = append(result, cohortFromModel(m))
	}
	return result, nil
}

func (r *ProgramRepository) ListCohortsByStatus(ctx context.Context, status domain.CohortStatus) ([]domain.Cohort, error) {
	rows := make([]CohortModel, 0)
	err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("start_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]domain.Cohort, 0, len(rows))
	for _, m := range rows {
		result = append(result, cohortFromModel(m))
	}
	return result, nil
}

func (r *ProgramRepository) UpdateCohortStatus(ctx context.Context, id uint, status domain.CohortStatus) (domain.Cohort, error) {
	res := r.db.WithContext(ctx).Model(&CohortModel{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return domain.Cohort{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Cohort{}, domain.ErrNotFound
	}
	var m CohortModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Cohort{}, translateErr(err)
	}
	return cohortFromModel(m), nil
}

func (r *ProgramRepository) MonthlyActivityByCohort(ctx context.Context, cohortID uint) ([]domain.ActivityPoint, error) {
	type row struct {
		Period   string
		Meetings int
		Feedback int
	}
	rows := make([]row, 0)
	err := r.db.WithContext(ctx).Raw(`
SELECT period,
       SUM(meetings) AS meetings,
       SUM(feedback) AS feedback
FROM (
    -- timestamps are stored as RFC3339 text, so the YYYY-MM prefix is the month bucket
    SELECT substr(mt.scheduled_at, 1, 7) AS period, 1 AS meetings, 0 AS feedback
    FROM meetings mt
    JOIN mentorships ms ON ms.id = mt.mentorship_id
    JOIN mentee_profiles mp ON mp.participant_id = ms.mentee_id
    WHERE mp.cohort_id = ?
    UNION ALL
    SELECT substr(fb.created_at, 1, 7) AS period, 0 AS meetings, 1 AS feedback
    FROM feedback fb
    JOIN mentorships ms ON ms.id = fb.mentorship_id
    JOIN mentee_profiles mp ON mp.participant_id = ms.mentee_id
    WHERE mp.cohort_id = ?
)
GROUP BY period
ORDER BY period ASC
`, cohortID, cohortID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]domain.ActivityPoint, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.ActivityPoint{Period: m.Period, Meetings: m.Meetings, Feedback: m.Feedback})
	}
	return result, nil
}

func (r *ProgramRepository) CreateResource(ctx context.Context, value domain.Resource) (domain.Resource, error) {
	m := ResourceModel{
		Title:       value.Title,
		Description: value.Description,
		URL:         value.URL,
		Type:        string(value.Type),
		Tags:        joinList(value.Tags),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Resource{}, translateErr(err)
	}
	return domain.Resource{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		Type:        domain.ResourceType(m.Type),
		Tags:        splitList(m.Tags),
		CreatedAt:   m.CreatedAt,
	}, nil
}

func (r *ProgramRepository) ListResources(ctx context.Context, resourceType *domain.ResourceType, tag string) ([]domain.Resource, error) {
	q := r.db.WithContext(ctx).Model(&ResourceModel{})
	if resourceType != nil {
		q = q.Where("type = ?", string(*resourceType))
	}
	if strings.TrimSpace(tag) != "" {
		like := "%" + strings.TrimSpace(tag) + "%"
		q = q.Where("tags LIKE ?", like)
	}
	rows := make([]ResourceModel, 0)
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Resource, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.Resource{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			URL:         m.URL,
			Type:        domain.ResourceType(m.Type),
			Tags:        splitList(m.Tags),
			CreatedAt:   m.CreatedAt,
		})
	}
	return result, nil
}

func (r *ProgramRepository) CreateAccount(ctx context.Context, value domain.Account) (domain.Account, error) {
	m := AccountModel{
		Email:         strings.ToLower(strings.TrimSpace(value.Email)),
		PasswordHash:  value.PasswordHash,
		ParticipantID: value.ParticipantID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Account{}, translateErr(err)
	}
	return accountFromModel(m), nil
}

func accountFromModel(m AccountModel) domain.Account {
	return domain.Account{
		ID:            m.ID,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		ParticipantID: m.ParticipantID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *ProgramRepository) CountAccounts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&AccountModel{}).Count(&count).Error
	return count, err
}

func (r *ProgramRepository) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	var m AccountModel
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&m).Error; err != nil {
		return domain.Account{}, translateErr(err)
	}
	return accountFromModel(m), nil
}

func (r *ProgramRepository) GetAccountByID(ctx context.Context, id uint) (domain.Account, error) {
	var m AccountModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return domain.Account{}, translateErr(err)
	}
	return accountFromModel(m), nil
}

func (r *ProgramRepository) CreateSession(ctx context.Context, value domain.AuthSession) (domain.AuthSession, error) {
	m := SessionModel{AccountID: value.AccountID, TokenHash: value.TokenHash, ExpiresAt: value.ExpiresAt}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.AuthSession{}, translateErr(err)
	}
	return domain.AuthSession{ID: m.ID, AccountID: m.AccountID, TokenHash: m.TokenHash, ExpiresAt: m.ExpiresAt, CreatedAt: m.CreatedAt}, nil
}

func (r *ProgramRepository) GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.AuthSession, error) {
	var m SessionModel
	if err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&m).Error; err != nil {
		return domain.AuthSession{}, translateErr(err)
	}
	return domain.AuthSession{ID: m.ID, AccountID: m.AccountID, TokenHash: m.TokenHash, ExpiresAt: m.ExpiresAt, CreatedAt: m.CreatedAt}, nil
}

func (r *ProgramRepository) DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&SessionModel{}).Error
}

func (r *ProgramRepository) CreateAPIToken(ctx context.Context, value domain.APIToken) (domain.APIToken, error) {
	m := APITokenModel{AccountID: value.AccountID, Name: value.Name, TokenHash: value.TokenHash, ExpiresAt: value.ExpiresAt}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.APIToken{}, translateErr(err)
	}
	return domain.APIToken{ID: m.ID, AccountID: m.AccountID, Name: m.Name, TokenHash: m.TokenHash, ExpiresAt: m.ExpiresAt, CreatedAt: m.CreatedAt}, nil
}

func (r *ProgramRepository) GetAPITokenByTokenHash(ctx context.Context, tokenHash string) (domain.APIToken, error) {
	var m APITokenModel
	if err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&m).Error; err != nil {
		return domain.APIToken{}, translateErr(err)
	}
	return domain.APIToken{ID: m.ID, AccountID: m.AccountID, Name: m.Name, TokenHash: m.TokenHash, ExpiresAt: m.ExpiresAt, CreatedAt: m.CreatedAt}, nil
}

func (r *ProgramRepository) CreateRoleIfMissing(ctx context.Context, key, name string) (uint, error) {
	m := RoleModel{Key: key, Name: name}
	err := r.db.WithContext(ctx).Where("key = ?", key).FirstOrCreate(&m).Error
	if err != nil {
		return 0, err
	}
	return m.ID, nil
}

func (r *ProgramRepository) ListRoles(ctx context.Context) ([]domain.AccessRole, error) {
	rows := make([]RoleModel, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]domain.AccessRole, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.AccessRole{ID: m.ID, Key: m.Key, Name: m.Name, CreatedAt: m.CreatedAt})
	}
	return result, nil
}

func (r *ProgramRepository) CreatePermissionIfMissing(ctx context.Context, key string) (uint, error) {
	m := PermissionModel{Key: key}
	err := r.db.WithContext(ctx).Where("key = ?", key).FirstOrCreate(&m).Error
	if err != nil {
		return 0, err
	}
	return m.ID, nil
}

func (r *ProgramRepository) GrantPermissionToRole(ctx context.Context, roleID, permissionID uint) error {
	m := RolePermissionModel{RoleID: roleID, PermissionID: permissionID}
	return r.db.WithContext(ctx).Where("role_id = ? AND permission_id = ?", roleID, permissionID).FirstOrCreate(&m).Error
}

func (r *ProgramRepository) AssignRoleToAccount(ctx context.Context, accountID, roleID uint) error {
	m := AccountRoleModel{AccountID: accountID, RoleID: roleID}
	return r.db.WithContext(ctx).Where("account_id = ? AND role_id = ?", accountID, roleID).FirstOrCreate(&m).Error
}

func (r *ProgramRepository) GetPermissionsByAccountID(ctx context.Context, accountID uint) ([]string, error) {
	type row struct{ Key string }
	rows := make([]row, 0)
	err := r.db.WithContext(ctx).Raw(`
SELECT p.key
FROM permissions p
JOIN role_permissions rp ON rp.permission_id = p.id
JOIN account_roles ar ON ar.role_id = rp.role_id
WHERE ar.account_id = ?
`, accountID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(rows))
	for _, m := range rows {
		result = append(result, m.Key)
	}
	return result, nil
}

func (r *ProgramRepository) CreateAuditLog(ctx context.Context, value domain.AuditLog) error {
	m := AuditLogModel{
		ActorAccountID: value.ActorAccountID,
		Action:         value.Action,
		TargetType:     value.TargetType,
		TargetID:       value.TargetID,
		Metadata:       value.Metadata,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *ProgramRepository) ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	type row struct {
		ID                uint
		ActorAccountID    *uint
		ActorAccountEmail string
		Action            string
		TargetType        string
		TargetID          *uint
		Metadata          string
		CreatedAt         time.Time
	}
	rows := make([]row, 0)
	err := r.db.WithContext(ctx).Raw(`
SELECT a.id,
       a.actor_account_id,
       COALESCE(ac.email, '') AS actor_account_email,
       a.action,
       a.target_type,
       a.target_id,
       a.metadata,
       a.created_at
FROM audit_logs a
LEFT JOIN accounts ac ON ac.id = a.actor_account_id
ORDER BY a.id DESC
LIMIT ?
`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make([]domain.AuditRecord, 0, len(rows))
	for _, m := range rows {
		result = append(result, domain.AuditRecord{
			ID:                m.ID,
			ActorAccountID:    m.ActorAccountID,
			ActorAccountEmail: m.ActorAccountEmail,
			Action:            m.Action,
			TargetType:        m.TargetType,
			TargetID:          m.TargetID,
			Metadata:          m.Metadata,
			CreatedAt:         m.CreatedAt,
		})
	}
	return result, nil
}
