package rpcjson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wanjicode/CareerBridge/internal/application"
	"github.com/wanjicode/CareerBridge/internal/domain"
)

type Server struct {
	service  *application.ProgramService
	listener net.Listener
	path     string
}

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      any             `json:"id"`
}

type response struct {
	JSONRPC string      `json:"jsonrpc"`
	Result  any         `json:"result,omitempty"`
	Error   *rpcError   `json:"error,omitempty"`
	ID      interface{} `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func Start(path string, service *application.ProgramService) (*Server, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("rpc socket path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	_ = os.Remove(path)
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}
	if err := os.Chmod(path, 0o600); err != nil {
		_ = ln.Close()
		_ = os.Remove(path)
		return nil, err
	}

	s := &Server{service: service, listener: ln, path: path}
	go s.serve()
	return s, nil
}

func (s *Server) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go s.handleConn(conn)
	}
}

func (s *Server) Close() error {
	err := s.listener.Close()
	_ = os.Remove(s.path)
	return err
}

func (s *Server) handleConn(conn net.Conn) {
	defer func() { _ = conn.Close() }()
	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)

	for {
		var req request
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			_ = enc.Encode(response{JSONRPC: "2.0", Error: &rpcError{Code: -32700, Message: "parse error"}, ID: nil})
			return
		}

		resp := s.dispatch(context.Background(), req)
		if err := enc.Encode(resp); err != nil {
			return
		}
	}
}

func (s *Server) dispatch(ctx context.Context, req request) response {
	if req.JSONRPC != "2.0" || strings.TrimSpace(req.Method) == "" {
		return response{JSONRPC: "2.0", Error: &rpcError{Code: -32600, Message: "invalid request"}, ID: req.ID}
	}

	switch req.Method {
	case "auth.login":
		return s.handleAuthLogin(ctx, req)
	case "auth.whoami":
		identity, rpcResp, ok := s.authz(ctx, req, "")
		if !ok {
			return rpcResp
		}
		return response{JSONRPC: "2.0", Result: map[string]any{"id": identity.Account.ID, "email": identity.Account.Email}, ID: req.ID}
	case "applications.mentor.submit":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			application.MentorApplicationInput
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.SubmitMentorApplication(ctx, p.MentorApplicationInput)
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "application.submit_mentor", "participant", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "applications.mentee.submit":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			application.MenteeApplicationInput
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.SubmitMenteeApplication(ctx, p.MenteeApplicationInput)
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "application.submit_mentee", "participant", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "applications.pending":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		out, err := s.service.PendingApplications(ctx)
		if err != nil {
			return internalError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "mentors.list":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token  string `json:"token"`
			Status string `json:"status"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ListMentors(ctx, p.Status)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "mentors.get":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			ID    uint   `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.GetMentor(ctx, p.ID)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "mentors.approve":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			ID    uint   `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ApproveMentor(ctx, p.ID)
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "application.approve_mentor", "participant", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "mentees.list":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token  string `json:"token"`
			Status string `json:"status"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ListMentees(ctx, p.Status)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "mentees.unmatched":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		out, err := s.service.UnmatchedMentees(ctx)
		if err != nil {
			return internalError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "mentees.get":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			ID    uint   `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.GetMentee(ctx, p.ID)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "mentees.approve":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token    string `json:"token"`
			ID       uint   `json:"id"`
			CohortID uint   `json:"cohort_id"`
			Waitlist bool   `json:"waitlist"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ApproveMentee(ctx, p.ID, p.CohortID, p.Waitlist)
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "application.approve_mentee", "participant", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "participants.reject":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			ID    uint   `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.RejectParticipant(ctx, p.ID)
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "application.reject", "participant", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "mentorships.create":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token            string `json:"token"`
			MentorID         uint   `json:"mentor_id"`
			MenteeID         uint   `json:"mentee_id"`
			MeetingFrequency string `json:"meeting_frequency"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateMentorship(ctx, p.MentorID, p.MenteeID, p.MeetingFrequency)
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "mentorship.create", "mentorship", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "mentorships.list":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token  string `json:"token"`
			Status string `json:"status"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ListMentorships(ctx, p.Status)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "mentorships.get":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			ID    uint   `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.GetMentorship(ctx, p.ID)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "mentorships.pair":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token    string `json:"token"`
			MentorID uint   `json:"mentor_id"`
			MenteeID uint   `json:"mentee_id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.MentorshipForPair(ctx, p.MentorID, p.MenteeID)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "mentorships.complete", "mentorships.cancel":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			ID    uint   `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		var out domain.Mentorship
		var err error
		if req.Method == "mentorships.complete" {
			out, err = s.service.CompleteMentorship(ctx, p.ID)
		} else {
			out, err = s.service.CancelMentorship(ctx, p.ID)
		}
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "mentorship."+strings.TrimPrefix(req.Method, "mentorships."), "mentorship", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "meetings.schedule":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token           string    `json:"token"`
			MentorshipID    uint      `json:"mentorship_id"`
			ScheduledAt     time.Time `json:"scheduled_at"`
			DurationMinutes int       `json:"duration_minutes"`
			Notes           string    `json:"notes"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ScheduleMeeting(ctx, p.MentorshipID, p.ScheduledAt, p.DurationMinutes, p.Notes)
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "meeting.schedule", "meeting", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "meetings.list":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token        string `json:"token"`
			MentorshipID uint   `json:"mentorship_id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.MeetingsForMentorship(ctx, p.MentorshipID)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "meetings.complete", "meetings.cancel":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			ID    uint   `json:"id"`
			Notes string `json:"notes"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		var out domain.Meeting
		var err error
		if req.Method == "meetings.complete" {
			out, err = s.service.CompleteMeeting(ctx, p.ID, p.Notes)
		} else {
			out, err = s.service.CancelMeeting(ctx, p.ID, p.Notes)
		}
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "meeting."+strings.TrimPrefix(req.Method, "meetings."), "meeting", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "feedback.submit":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token        string `json:"token"`
			MentorshipID uint   `json:"mentorship_id"`
			FromID       uint   `json:"from_id"`
			ToID         uint   `json:"to_id"`
			Rating       int    `json:"rating"`
			Comment      string `json:"comment"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.SubmitFeedback(ctx, p.MentorshipID, p.FromID, p.ToID, p.Rating, p.Comment)
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "feedback.submit", "mentorship", &p.MentorshipID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "feedback.list":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token        string `json:"token"`
			MentorshipID uint   `json:"mentorship_id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.FeedbackForMentorship(ctx, p.MentorshipID)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "cohorts.create":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token     string    `json:"token"`
			Name      string    `json:"name"`
			StartDate time.Time `json:"start_date"`
			EndDate   time.Time `json:"end_date"`
			Capacity  int       `json:"capacity"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateCohort(ctx, p.Name, p.StartDate, p.EndDate, p.Capacity)
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "cohort.create", "cohort", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "cohorts.list":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		out, err := s.service.ListCohorts(ctx)
		if err != nil {
			return internalError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "cohorts.active":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		out, err := s.service.ActiveCohort(ctx)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "cohorts.start", "cohorts.complete":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			ID    uint   `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		var out domain.Cohort
		var err error
		if req.Method == "cohorts.start" {
			out, err = s.service.StartCohort(ctx, p.ID)
		} else {
			out, err = s.service.CompleteCohort(ctx, p.ID)
		}
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "cohort."+strings.TrimPrefix(req.Method, "cohorts."), "cohort", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "cohorts.report":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			ID    uint   `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CohortReport(ctx, p.ID)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "cohorts.activity":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			ID    uint   `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CohortActivityTimeseries(ctx, p.ID)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "resources.add":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token       string `json:"token"`
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			Type        string `json:"type"`
			Tags        string `json:"tags"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.AddResource(ctx, p.Title, p.Description, p.URL, domain.ResourceType(p.Type), splitCSV(p.Tags))
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "resource.add", "resource", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "resources.list":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			Type  string `json:"type"`
			Tag   string `json:"tag"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ListResources(ctx, p.Type, p.Tag)
		if err != nil {
			return appError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "reports.summary":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		out, err := s.service.Summary(ctx)
		if err != nil {
			return internalError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "reports.distribution":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		out, err := s.service.MentorshipDistribution(ctx)
		if err != nil {
			return internalError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "access.account.create":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token         string `json:"token"`
			Email         string `json:"email"`
			Password      string `json:"password"`
			RoleID        uint   `json:"role_id"`
			ParticipantID *uint  `json:"participant_id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.CreateAccount(ctx, p.Email, p.Password, p.RoleID, p.ParticipantID)
		if err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "access.create_account", "account", &out.ID, "rpc")
		return response{JSONRPC: "2.0", Result: map[string]any{"id": out.ID, "email": out.Email}, ID: req.ID}
	case "access.role.list":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		out, err := s.service.ListRoles(ctx)
		if err != nil {
			return internalError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	case "access.role.assign":
		identity, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramWrite)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token     string `json:"token"`
			AccountID uint   `json:"account_id"`
			RoleID    uint   `json:"role_id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		if err := s.service.AssignRole(ctx, p.AccountID, p.RoleID); err != nil {
			return appError(req.ID, err)
		}
		s.service.WriteAudit(ctx, &identity.Account.ID, "access.assign_role", "account", &p.AccountID, "rpc")
		return response{JSONRPC: "2.0", Result: map[string]any{"ok": true}, ID: req.ID}
	case "audit.list":
		_, rpcResp, ok := s.authz(ctx, req, application.PermissionProgramRead)
		if !ok {
			return rpcResp
		}
		var p struct {
			Token string `json:"token"`
			Limit int    `json:"limit"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		out, err := s.service.ListAuditLogs(ctx, p.Limit)
		if err != nil {
			return internalError(req.ID, err)
		}
		return response{JSONRPC: "2.0", Result: out, ID: req.ID}
	default:
		return response{JSONRPC: "2.0", Error: &rpcError{Code: -32601, Message: "method not found"}, ID: req.ID}
	}
}

func (s *Server) handleAuthLogin(ctx context.Context, req request) response {
	var p struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		TokenName string `json:"token_name"`
	}
	if !decodeParams(req.Params, &p) {
		return invalidParams(req.ID)
	}
	account, token, err := s.service.LoginWithAPIToken(ctx, p.Email, p.Password, p.TokenName, nil)
	if err != nil {
		return response{JSONRPC: "2.0", Error: &rpcError{Code: 40100, Message: "invalid credentials"}, ID: req.ID}
	}
	return response{JSONRPC: "2.0", Result: map[string]any{"account_id": account.ID, "email": account.Email, "token": token}, ID: req.ID}
}

func (s *Server) authz(ctx context.Context, req request, permission string) (domain.Identity, response, bool) {
	var p struct {
		Token string `json:"token"`
	}
	if !decodeParams(req.Params, &p) {
		return domain.Identity{}, invalidParams(req.ID), false
	}
	identity, err := s.service.AuthenticateBearerToken(ctx, p.Token)
	if err != nil {
		return domain.Identity{}, response{JSONRPC: "2.0", Error: &rpcError{Code: 40100, Message: "unauthorized"}, ID: req.ID}, false
	}
	if permission != "" && !s.service.Can(identity, permission) {
		return domain.Identity{}, response{JSONRPC: "2.0", Error: &rpcError{Code: 40300, Message: "forbidden"}, ID: req.ID}, false
	}
	return identity, response{}, true
}

func decodeParams(raw json.RawMessage, out any) bool {
	if len(raw) == 0 {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func splitCSV(input string) []string {
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

func invalidParams(id any) response {
	return response{JSONRPC: "2.0", Error: &rpcError{Code: -32602, Message: "invalid params"}, ID: id}
}

func appError(id any, err error) response {
	code := 40000
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = 40400
	case errors.Is(err, domain.ErrDuplicateKey),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInvalidTransition):
		code = 40900
	case errors.Is(err, domain.ErrInvariantViolation):
		code = 42200
	}
	return response{JSONRPC: "2.0", Error: &rpcError{Code: code, Message: err.Error()}, ID: id}
}

func internalError(id any, err error) response {
	return response{JSONRPC: "2.0", Error: &rpcError{Code: 50000, Message: fmt.Sprintf("internal error: %v", err)}, ID: id}
}
