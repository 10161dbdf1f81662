package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wanjicode/CareerBridge/internal/application"
)

func doLogin(ctx context.Context, cfg cliSettings, email, password, tokenName string, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "auth.login", map[string]any{
			"email":      email,
			"password":   password,
			"token_name": tokenName,
		}, out)
	}
	client := newHTTPAPI(cfg.Server, "")
	return client.do(ctx, http.MethodPost, "/api/auth/login", map[string]any{
		"email":      email,
		"password":   password,
		"mode":       "token",
		"token_name": tokenName,
	}, out)
}

func doWhoAmI(ctx context.Context, cfg cliSettings, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "auth.whoami", map[string]any{"token": cfg.Token}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/auth/whoami", nil, out)
}

func doLogout(ctx context.Context, cfg cliSettings) error {
	if cfg.Transport == "uds" {
		return nil
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func doSubmitMentorApplication(ctx context.Context, cfg cliSettings, in application.MentorApplicationInput, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "applications.mentor.submit", struct {
			Token string `json:"token"`
			application.MentorApplicationInput
		}{Token: cfg.Token, MentorApplicationInput: in}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/applications/mentor", in, out)
}

func doSubmitMenteeApplication(ctx context.Context, cfg cliSettings, in application.MenteeApplicationInput, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "applications.mentee.submit", struct {
			Token string `json:"token"`
			application.MenteeApplicationInput
		}{Token: cfg.Token, MenteeApplicationInput: in}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/applications/mentee", in, out)
}

func doPendingApplications(ctx context.Context, cfg cliSettings, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "applications.pending", map[string]any{"token": cfg.Token}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/applications/pending", nil, out)
}

func doMentorsList(ctx context.Context, cfg cliSettings, status string, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "mentors.list", map[string]any{"token": cfg.Token, "status": status}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	path := "/api/mentors"
	if status != "" {
		path += "?status=" + status
	}
	return client.do(ctx, http.MethodGet, path, nil, out)
}

func doMentorGet(ctx context.Context, cfg cliSettings, id uint, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "mentors.get", map[string]any{"token": cfg.Token, "id": id}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/mentors/"+uintToString(id), nil, out)
}

func doMentorApprove(ctx context.Context, cfg cliSettings, id uint, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "mentors.approve", map[string]any{"token": cfg.Token, "id": id}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/mentors/"+uintToString(id)+"/approve", map[string]any{}, out)
}

func doMenteesList(ctx context.Context, cfg cliSettings, status string, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "mentees.list", map[string]any{"token": cfg.Token, "status": status}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	path := "/api/mentees"
	if status != "" {
		path += "?status=" + status
	}
	return client.do(ctx, http.MethodGet, path, nil, out)
}

func doMenteesUnmatched(ctx context.Context, cfg cliSettings, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "mentees.unmatched", map[string]any{"token": cfg.Token}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/mentees/unmatched", nil, out)
}

func doMenteeGet(ctx context.Context, cfg cliSettings, id uint, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "mentees.get", map[string]any{"token": cfg.Token, "id": id}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/mentees/"+uintToString(id), nil, out)
}

func doMenteeApprove(ctx context.Context, cfg cliSettings, id, cohortID uint, waitlist bool, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "mentees.approve", map[string]any{"token": cfg.Token, "id": id, "cohort_id": cohortID, "waitlist": waitlist}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/mentees/"+uintToString(id)+"/approve", map[string]any{"cohort_id": cohortID, "waitlist": waitlist}, out)
}

func doParticipantReject(ctx context.Context, cfg cliSettings, id uint, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "participants.reject", map[string]any{"token": cfg.Token, "id": id}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/participants/"+uintToString(id)+"/reject", map[string]any{}, out)
}

func doMentorshipCreate(ctx context.Context, cfg cliSettings, mentorID, menteeID uint, frequency string, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "mentorships.create", map[string]any{"token": cfg.Token, "mentor_id": mentorID, "mentee_id": menteeID, "meeting_frequency": frequency}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/mentorships", map[string]any{"mentor_id": mentorID, "mentee_id": menteeID, "meeting_frequency": frequency}, out)
}

func doMentorshipsList(ctx context.Context, cfg cliSettings, status string, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "mentorships.list", map[string]any{"token": cfg.Token, "status": status}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	path := "/api/mentorships"
	if status != "" {
		path += "?status=" + status
	}
	return client.do(ctx, http.MethodGet, path, nil, out)
}

func doMentorshipGet(ctx context.Context, cfg cliSettings, id uint, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "mentorships.get", map[string]any{"token": cfg.Token, "id": id}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/mentorships/"+uintToString(id), nil, out)
}

func doMentorshipPair(ctx context.Context, cfg cliSettings, mentorID, menteeID uint, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "mentorships.pair", map[string]any{"token": cfg.Token, "mentor_id": mentorID, "mentee_id": menteeID}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/mentorships/pair?mentor_id="+uintToString(mentorID)+"&mentee_id="+uintToString(menteeID), nil, out)
}

func doMentorshipEnd(ctx context.Context, cfg cliSettings, id uint, verb string, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "mentorships."+verb, map[string]any{"token": cfg.Token, "id": id}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/mentorships/"+uintToString(id)+"/"+verb, map[string]any{}, out)
}

func doMeetingSchedule(ctx context.Context, cfg cliSettings, mentorshipID uint, at time.Time, duration int, notes string, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "meetings.schedule", map[string]any{"token": cfg.Token, "mentorship_id": mentorshipID, "scheduled_at": at, "duration_minutes": duration, "notes": notes}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/mentorships/"+uintToString(mentorshipID)+"/meetings", map[string]any{"scheduled_at": at, "duration_minutes": duration, "notes": notes}, out)
}

func doMeetingsList(ctx context.Context, cfg cliSettings, mentorshipID uint, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "meetings.list", map[string]any{"token": cfg.Token, "mentorship_id": mentorshipID}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/mentorships/"+uintToString(mentorshipID)+"/meetings", nil, out)
}

func doMeetingEnd(ctx context.Context, cfg cliSettings, id uint, verb, notes string, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "meetings."+verb, map[string]any{"token": cfg.Token, "id": id, "notes": notes}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/meetings/"+uintToString(id)+"/"+verb, map[string]any{"notes": notes}, out)
}

func doFeedbackSubmit(ctx context.Context, cfg cliSettings, mentorshipID, fromID, toID uint, rating int, comment string, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "feedback.submit", map[string]any{"token": cfg.Token, "mentorship_id": mentorshipID, "from_id": fromID, "to_id": toID, "rating": rating, "comment": comment}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/mentorships/"+uintToString(mentorshipID)+"/feedback", map[string]any{"from_id": fromID, "to_id": toID, "rating": rating, "comment": comment}, out)
}

func doFeedbackList(ctx context.Context, cfg cliSettings, mentorshipID uint, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "feedback.list", map[string]any{"token": cfg.Token, "mentorship_id": mentorshipID}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/mentorships/"+uintToString(mentorshipID)+"/feedback", nil, out)
}

func doCohortCreate(ctx context.Context, cfg cliSettings, name string, start, end time.Time, capacity int, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "cohorts.create", map[string]any{"token": cfg.Token, "name": name, "start_date": start, "end_date": end, "capacity": capacity}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/cohorts", map[string]any{"name": name, "start_date": start, "end_date": end, "capacity": capacity}, out)
}

func doCohortsList(ctx context.Context, cfg cliSettings, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "cohorts.list", map[string]any{"token": cfg.Token}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/cohorts", nil, out)
}

func doCohortActive(ctx context.Context, cfg cliSettings, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "cohorts.active", map[string]any{"token": cfg.Token}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/cohorts/active", nil, out)
}

func doCohortTransition(ctx context.Context, cfg cliSettings, id uint, verb string, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "cohorts."+verb, map[string]any{"token": cfg.Token, "id": id}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/cohorts/"+uintToString(id)+"/"+verb, map[string]any{}, out)
}

func doCohortReport(ctx context.Context, cfg cliSettings, id uint, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "cohorts.report", map[string]any{"token": cfg.Token, "id": id}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/cohorts/"+uintToString(id)+"/report", nil, out)
}

func doCohortActivity(ctx context.Context, cfg cliSettings, id uint, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "cohorts.activity", map[string]any{"token": cfg.Token, "id": id}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/cohorts/"+uintToString(id)+"/activity", nil, out)
}

func doResourceAdd(ctx context.Context, cfg cliSettings, title, description, url, resourceType, tags string, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "resources.add", map[string]any{"token": cfg.Token, "title": title, "description": description, "url": url, "type": resourceType, "tags": tags}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/resources", map[string]any{"title": title, "description": description, "url": url, "type": resourceType, "tags": splitTags(tags)}, out)
}

func doResourcesList(ctx context.Context, cfg cliSettings, resourceType, tag string, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "resources.list", map[string]any{"token": cfg.Token, "type": resourceType, "tag": tag}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	path := "/api/resources"
	params := ""
	if resourceType != "" {
		params += "type=" + resourceType
	}
	if tag != "" {
		if params != "" {
			params += "&"
		}
		params += "tag=" + tag
	}
	if params != "" {
		path += "?" + params
	}
	return client.do(ctx, http.MethodGet, path, nil, out)
}

func doSummary(ctx context.Context, cfg cliSettings, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "reports.summary", map[string]any{"token": cfg.Token}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/reports/summary", nil, out)
}

func doDistribution(ctx context.Context, cfg cliSettings, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "reports.distribution", map[string]any{"token": cfg.Token}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/reports/distribution", nil, out)
}

func doAccountCreate(ctx context.Context, cfg cliSettings, email, password string, roleID uint, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "access.account.create", map[string]any{"token": cfg.Token, "email": email, "password": password, "role_id": roleID}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/access/accounts", map[string]any{"email": email, "password": password, "role_id": roleID}, out)
}

func doRolesList(ctx context.Context, cfg cliSettings, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "access.role.list", map[string]any{"token": cfg.Token}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodGet, "/api/access/roles", nil, out)
}

func doAssignRole(ctx context.Context, cfg cliSettings, accountID, roleID uint, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "access.role.assign", map[string]any{"token": cfg.Token, "account_id": accountID, "role_id": roleID}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	return client.do(ctx, http.MethodPost, "/api/access/assign-role", map[string]any{"account_id": accountID, "role_id": roleID}, out)
}

func doAuditList(ctx context.Context, cfg cliSettings, limit int, out any) error {
	if cfg.Transport == "uds" {
		client := newSockClient(cfg.Socket)
		return client.invoke(ctx, "audit.list", map[string]any{"token": cfg.Token, "limit": limit}, out)
	}
	client := newHTTPAPI(cfg.Server, cfg.Token)
	path := "/api/audit/logs"
	if limit > 0 {
		path += "?limit=" + fmt.Sprintf("%d", limit)
	}
	return client.do(ctx, http.MethodGet, path, nil, out)
}

func splitTags(input string) []string {
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

func uintToString(v uint) string {
	return fmt.Sprintf("%d", v)
}
