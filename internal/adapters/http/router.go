package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/wanjicode/CareerBridge/internal/application"
	"github.com/wanjicode/CareerBridge/internal/domain"
)

const sessionCookieName = "cb_session"

type contextKey string

const identityKey contextKey = "identity"

type Handler struct {
	service *application.ProgramService
}

func NewRouter(service *application.ProgramService) http.Handler {
	h := &Handler{service: service}
	r := chi.NewRouter()

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", h.handleLogin)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/auth/whoami", h.handleWhoAmI)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Post("/auth/logout", h.handleLogout)

		// Intake is the public surface: applicants are not account holders.
		api.Post("/applications/mentor", h.handleSubmitMentorApplication)
		api.Post("/applications/mentee", h.handleSubmitMenteeApplication)

		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/applications/pending", h.handlePendingApplications)
		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/mentors/{id}/approve", h.handleApproveMentor)
		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/mentees/{id}/approve", h.handleApproveMentee)
		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/participants/{id}/reject", h.handleRejectParticipant)

		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/mentors", h.handleListMentors)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/mentors/{id}", h.handleGetMentor)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/mentees", h.handleListMentees)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/mentees/unmatched", h.handleUnmatchedMentees)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/mentees/{id}", h.handleGetMentee)

		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/mentorships", h.handleCreateMentorship)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/mentorships", h.handleListMentorships)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/mentorships/pair", h.handleMentorshipForPair)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/mentorships/{id}", h.handleGetMentorship)
		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/mentorships/{id}/complete", h.handleCompleteMentorship)
		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/mentorships/{id}/cancel", h.handleCancelMentorship)

		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/mentorships/{id}/meetings", h.handleScheduleMeeting)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/mentorships/{id}/meetings", h.handleListMeetings)
		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/meetings/{id}/complete", h.handleCompleteMeeting)
		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/meetings/{id}/cancel", h.handleCancelMeeting)

		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/mentorships/{id}/feedback", h.handleSubmitFeedback)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/mentorships/{id}/feedback", h.handleListFeedback)

		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/cohorts", h.handleCreateCohort)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/cohorts", h.handleListCohorts)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/cohorts/active", h.handleActiveCohort)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/cohorts/{id}/report", h.handleCohortReport)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/cohorts/{id}/activity", h.handleCohortActivity)
		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/cohorts/{id}/start", h.handleStartCohort)
		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/cohorts/{id}/complete", h.handleCompleteCohort)

		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/resources", h.handleListResources)
		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/resources", h.handleAddResource)

		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/reports/summary", h.handleSummary)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/reports/distribution", h.handleDistribution)

		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/access/accounts", h.handleCreateAccount)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/access/roles", h.handleListRoles)
		api.With(h.requireAuthAPI(application.PermissionProgramWrite)).Post("/access/assign-role", h.handleAssignRole)
		api.With(h.requireAuthAPI(application.PermissionProgramRead)).Get("/audit/logs", h.handleListAuditLogs)
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})
	return c.Handler(r)
}

func (h *Handler) requireAuthAPI(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := h.authenticateRequest(r)
			if !ok {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
				return
			}
			if !h.service.Can(identity, permission) {
				writeJSON(w, http.StatusForbidden, map[string]any{"error": "forbidden"})
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
		})
	}
}

func (h *Handler) authenticateRequest(r *http.Request) (domain.Identity, bool) {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		token := strings.TrimSpace(authHeader[7:])
		identity, err := h.service.AuthenticateBearerToken(r.Context(), token)
		if err == nil {
			return identity, true
		}
	}

	c, err := r.Cookie(sessionCookieName)
	if err == nil && strings.TrimSpace(c.Value) != "" {
		identity, authErr := h.service.AuthenticateSession(r.Context(), c.Value)
		if authErr == nil {
			return identity, true
		}
	}

	return domain.Identity{}, false
}

func identityFromContext(ctx context.Context) (domain.Identity, bool) {
	value := ctx.Value(identityKey)
	if value == nil {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

type loginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Mode      string `json:"mode"`
	TokenName string `json:"token_name"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}
	mode := strings.ToLower(strings.TrimSpace(req.Mode))
	if mode == "" {
		mode = "token"
	}

	if mode == "session" {
		account, token, err := h.service.LoginWithSession(r.Context(), req.Email, req.Password, 12*time.Hour)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "invalid credentials"})
			return
		}
		h.setSessionCookie(w, token)
		writeJSON(w, http.StatusOK, map[string]any{"account_id": account.ID, "email": account.Email, "mode": "session"})
		return
	}

	account, token, err := h.service.LoginWithAPIToken(r.Context(), req.Email, req.Password, req.TokenName, nil)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"account_id": account.ID, "email": account.Email, "token": token, "mode": "token"})
}

func (h *Handler) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
		return
	}
	perms := make([]string, 0, len(identity.Permissions))
	for p := range identity.Permissions {
		perms = append(perms, p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": identity.Account.ID, "email": identity.Account.Email, "permissions": perms})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}
	c, err := r.Cookie(sessionCookieName)
	if err == nil && c.Value != "" {
		_ = h.service.LogoutSession(r.Context(), c.Value)
		h.clearSessionCookie(w)
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) handleSubmitMentorApplication(w http.ResponseWriter, r *http.Request) {
	var req application.MentorApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}
	mentor, err := h.service.SubmitMentorApplication(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mentor)
}

func (h *Handler) handleSubmitMenteeApplication(w http.ResponseWriter, r *http.Request) {
	var req application.MenteeApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}
	mentee, err := h.service.SubmitMenteeApplication(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mentee)
}

func (h *Handler) handlePendingApplications(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.PendingApplications(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleApproveMentor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	mentor, err := h.service.ApproveMentor(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "application.approve_mentor", "participant", &id)
	writeJSON(w, http.StatusOK, mentor)
}

type approveMenteeRequest struct {
	CohortID uint `json:"cohort_id"`
	Waitlist bool `json:"waitlist"`
}

func (h *Handler) handleApproveMentee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req approveMenteeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}
	mentee, err := h.service.ApproveMentee(r.Context(), id, req.CohortID, req.Waitlist)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "application.approve_mentee", "participant", &id)
	writeJSON(w, http.StatusOK, mentee)
}

func (h *Handler) handleRejectParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	participant, err := h.service.RejectParticipant(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "application.reject", "participant", &id)
	writeJSON(w, http.StatusOK, participant)
}

func (h *Handler) handleListMentors(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMentors(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetMentor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	mentor, err := h.service.GetMentor(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mentor)
}

func (h *Handler) handleListMentees(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMentees(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleUnmatchedMentees(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.UnmatchedMentees(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGetMentee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	mentee, err := h.service.GetMentee(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mentee)
}

type createMentorshipRequest struct {
	MentorID         uint   `json:"mentor_id"`
	MenteeID         uint   `json:"mentee_id"`
	MeetingFrequency string `json:"meeting_frequency"`
}

func (h *Handler) handleCreateMentorship(w http.ResponseWriter, r *http.Request) {
	var req createMentorshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}
	mentorship, err := h.service.CreateMentorship(r.Context(), req.MentorID, req.MenteeID, req.MeetingFrequency)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "mentorship.create", "mentorship", &mentorship.ID)
	writeJSON(w, http.StatusCreated, mentorship)
}

func (h *Handler) handleListMentorships(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMentorships(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleMentorshipForPair(w http.ResponseWriter, r *http.Request) {
	mentorID, err := strconv.ParseUint(r.URL.Query().Get("mentor_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid mentor_id"})
		return
	}
	menteeID, err := strconv.ParseUint(r.URL.Query().Get("mentee_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid mentee_id"})
		return
	}
	mentorship, err := h.service.MentorshipForPair(r.Context(), uint(mentorID), uint(menteeID))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mentorship)
}

func (h *Handler) handleGetMentorship(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	mentorship, err := h.service.GetMentorship(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mentorship)
}

func (h *Handler) handleCompleteMentorship(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	mentorship, err := h.service.CompleteMentorship(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "mentorship.complete", "mentorship", &id)
	writeJSON(w, http.StatusOK, mentorship)
}

func (h *Handler) handleCancelMentorship(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	mentorship, err := h.service.CancelMentorship(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "mentorship.cancel", "mentorship", &id)
	writeJSON(w, http.StatusOK, mentorship)
}

type scheduleMeetingRequest struct {
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes"`
}

func (h *Handler) handleScheduleMeeting(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req scheduleMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}
	meeting, err := h.service.ScheduleMeeting(r.Context(), id, req.ScheduledAt, req.DurationMinutes, req.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "meeting.schedule", "meeting", &meeting.ID)
	writeJSON(w, http.StatusCreated, meeting)
}

func (h *Handler) handleListMeetings(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	items, err := h.service.MeetingsForMentorship(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type meetingNotesRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) handleCompleteMeeting(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req meetingNotesRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	meeting, err := h.service.CompleteMeeting(r.Context(), id, req.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "meeting.complete", "meeting", &id)
	writeJSON(w, http.StatusOK, meeting)
}

func (h *Handler) handleCancelMeeting(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req meetingNotesRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	meeting, err := h.service.CancelMeeting(r.Context(), id, req.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "meeting.cancel", "meeting", &id)
	writeJSON(w, http.StatusOK, meeting)
}

type submitFeedbackRequest struct {
	FromID  uint   `json:"from_id"`
	ToID    uint   `json:"to_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handler) handleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req submitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}
	feedback, err := h.service.SubmitFeedback(r.Context(), id, req.FromID, req.ToID, req.Rating, req.Comment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "feedback.submit", "mentorship", &id)
	writeJSON(w, http.StatusCreated, feedback)
}

func (h *Handler) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	items, err := h.service.FeedbackForMentorship(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type createCohortRequest struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Capacity  int       `json:"capacity"`
}

func (h *Handler) handleCreateCohort(w http.ResponseWriter, r *http.Request) {
	var req createCohortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}
	cohort, err := h.service.CreateCohort(r.Context(), req.Name, req.StartDate, req.EndDate, req.Capacity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "cohort.create", "cohort", &cohort.ID)
	writeJSON(w, http.StatusCreated, cohort)
}

func (h *Handler) handleListCohorts(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListCohorts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) handleActiveCohort(w http.ResponseWriter, r *http.Request) {
	cohort, err := h.service.ActiveCohort(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cohort)
}

func (h *Handler) handleCohortReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	report, err := h.service.CohortReport(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) handleCohortActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	series, err := h.service.CohortActivityTimeseries(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

func (h *Handler) handleStartCohort(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	cohort, err := h.service.StartCohort(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "cohort.start", "cohort", &id)
	writeJSON(w, http.StatusOK, cohort)
}

func (h *Handler) handleCompleteCohort(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	cohort, err := h.service.CompleteCohort(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "cohort.complete", "cohort", &id)
	writeJSON(w, http.StatusOK, cohort)
}

func (h *Handler) handleListResources(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListResources(r.Context(), r.URL.Query().Get("type"), r.URL.Query().Get("tag"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type addResourceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Type        string   `json:"type"`
	Tags        []string `json:"tags"`
}

func (h *Handler) handleAddResource(w http.ResponseWriter, r *http.Request) {
	var req addResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}
	resource, err := h.service.AddResource(r.Context(), req.Title, req.Description, req.URL, domain.ResourceType(req.Type), req.Tags)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "resource.add", "resource", &resource.ID)
	writeJSON(w, http.StatusCreated, resource)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleDistribution(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.MentorshipDistribution(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type createAccountRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	RoleID        uint   `json:"role_id"`
	ParticipantID *uint  `json:"participant_id"`
}

func (h *Handler) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}
	account, err := h.service.CreateAccount(r.Context(), req.Email, req.Password, req.RoleID, req.ParticipantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "access.create_account", "account", &account.ID)
	writeJSON(w, http.StatusCreated, map[string]any{"id": account.ID, "email": account.Email})
}

func (h *Handler) handleListRoles(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListRoles(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type assignRoleRequest struct {
	AccountID uint `json:"account_id"`
	RoleID    uint `json:"role_id"`
}

func (h *Handler) handleAssignRole(w http.ResponseWriter, r *http.Request) {
	var req assignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid payload"})
		return
	}
	if err := h.service.AssignRole(r.Context(), req.AccountID, req.RoleID); err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeAudit(r.Context(), "access.assign_role", "account", &req.AccountID)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) handleListAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.service.ListAuditLogs(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateKey):
		writeJSON(w, http.StatusConflict, map[string]any{"error": err.Error()})
	case errors.Is(err, domain.ErrCapacityExceeded):
		writeJSON(w, http.StatusConflict, map[string]any{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, map[string]any{"error": err.Error()})
	case errors.Is(err, domain.ErrInvariantViolation):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": err.Error()})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeAudit(ctx context.Context, action, targetType string, targetID *uint) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		h.service.WriteAudit(ctx, nil, action, targetType, targetID, "")
		return
	}
	h.service.WriteAudit(ctx, &identity.Account.ID, action, targetType, targetID, "")
}
