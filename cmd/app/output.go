package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/wanjicode/CareerBridge/internal/application"
	"github.com/wanjicode/CareerBridge/internal/domain"
)

func printJSON(v any) error {
	b, err := jsonMarshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func printKV(rows [][2]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}
	_ = w.Flush()
}

func printTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Println("no results")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func formatMaybeUint(v *uint) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatUint(uint64(*v), 10)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatMaybeDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatDate(*t)
}

func printPendingApplications(items []application.PendingApplication) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Reference,
			item.Name,
			item.Email,
			string(item.Role),
			formatTime(item.SubmittedAt),
		})
	}
	printTable([]string{"ID", "REFERENCE", "NAME", "EMAIL", "ROLE", "SUBMITTED_AT"}, rows)
}

func printMentors(items []domain.Mentor) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Name,
			item.Email,
			string(item.Status),
			strconv.Itoa(item.YearsOfExperience),
			strconv.Itoa(len(item.MenteeIDs)) + "/" + strconv.Itoa(item.MenteeCapacity),
			strings.Join(item.Specializations, ","),
		})
	}
	printTable([]string{"ID", "NAME", "EMAIL", "STATUS", "EXPERIENCE", "MENTEES", "SPECIALIZATIONS"}, rows)
}

func printMentorDetail(item domain.Mentor) {
	printKV([][2]string{
		{"id", strconv.FormatUint(uint64(item.ID), 10)},
		{"reference", item.Reference},
		{"name", item.Name},
		{"email", item.Email},
		{"status", string(item.Status)},
		{"job_title", item.JobTitle},
		{"company", item.Company},
		{"experience_years", strconv.Itoa(item.YearsOfExperience)},
		{"specializations", strings.Join(item.Specializations, ",")},
		{"availability", strings.Join(item.Availability, ",")},
		{"mentee_capacity", strconv.Itoa(item.MenteeCapacity)},
		{"active_mentees", strconv.Itoa(len(item.MenteeIDs))},
	})
}

func printMentees(items []domain.Mentee) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Name,
			item.Email,
			string(item.Status),
			string(item.MatchState),
			formatMaybeUint(item.MentorID),
			formatMaybeUint(item.CohortID),
		})
	}
	printTable([]string{"ID", "NAME", "EMAIL", "STATUS", "MATCH", "MENTOR_ID", "COHORT_ID"}, rows)
}

func printMenteeDetail(item domain.Mentee) {
	printKV([][2]string{
		{"id", strconv.FormatUint(uint64(item.ID), 10)},
		{"reference", item.Reference},
		{"name", item.Name},
		{"email", item.Email},
		{"status", string(item.Status)},
		{"match_state", string(item.MatchState)},
		{"mentor_id", formatMaybeUint(item.MentorID)},
		{"cohort_id", formatMaybeUint(item.CohortID)},
		{"current_position", item.CurrentPosition},
		{"career_goals", strings.Join(item.CareerGoals, ",")},
		{"looking_for", strings.Join(item.LookingFor, ",")},
	})
}

func printMentorshipSummaries(items []domain.MentorshipSummary) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.MentorName,
			item.MenteeName,
			string(item.Status),
			formatDate(item.StartDate),
			formatMaybeDate(item.EndDate),
			item.MeetingFrequency,
			strconv.Itoa(item.MeetingsCompleted),
			strconv.Itoa(item.FeedbackSubmitted),
		})
	}
	printTable([]string{"ID", "MENTOR", "MENTEE", "STATUS", "STARTED", "ENDED", "FREQUENCY", "MEETINGS", "FEEDBACK"}, rows)
}

func printMentorship(item domain.Mentorship) {
	printKV([][2]string{
		{"id", strconv.FormatUint(uint64(item.ID), 10)},
		{"mentor_id", strconv.FormatUint(uint64(item.MentorID), 10)},
		{"mentee_id", strconv.FormatUint(uint64(item.MenteeID), 10)},
		{"status", string(item.Status)},
		{"start_date", formatDate(item.StartDate)},
		{"end_date", formatMaybeDate(item.EndDate)},
		{"meeting_frequency", item.MeetingFrequency},
	})
}

func printMeetings(items []domain.Meeting) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(item.ID), 10),
			strconv.FormatUint(uint64(item.MentorshipID), 10),
			formatTime(item.ScheduledAt),
			strconv.Itoa(item.DurationMinutes),
			string(item.Status),
			item.Notes,
		})
	}
	printTable([]string{"ID", "MENTORSHIP", "SCHEDULED_AT", "MINUTES", "STATUS", "NOTES"}, rows)
}

func printFeedback(items []domain.Feedback) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(item.ID), 10),
			strconv.FormatUint(uint64(item.FromID), 10),
			strconv.FormatUint(uint64(item.ToID), 10),
			strconv.Itoa(item.Rating),
			item.Comment,
		})
	}
	printTable([]string{"ID", "FROM", "TO", "RATING", "COMMENT"}, rows)
}

func printCohorts(items []domain.Cohort) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Name,
			string(item.Status),
			formatDate(item.StartDate),
			formatDate(item.EndDate),
			strconv.Itoa(item.ActiveMentees) + "/" + strconv.Itoa(item.Capacity),
		})
	}
	printTable([]string{"ID", "NAME", "STATUS", "START", "END", "FILL"}, rows)
}

func printCohortReport(item application.CohortReport) {
	printKV([][2]string{
		{"id", strconv.FormatUint(uint64(item.Cohort.ID), 10)},
		{"name", item.Cohort.Name},
		{"status", string(item.Cohort.Status)},
		{"start_date", formatDate(item.Cohort.StartDate)},
		{"end_date", formatDate(item.Cohort.EndDate)},
		{"capacity", strconv.Itoa(item.Cohort.Capacity)},
		{"active_mentees", strconv.Itoa(item.Cohort.ActiveMentees)},
		{"fill_percentage", strconv.FormatFloat(item.FillPercentage, 'f', 1, 64)},
		{"available_slots", strconv.Itoa(item.AvailableSlots)},
	})
}

func printActivity(items []domain.ActivityPoint) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Period,
			strconv.Itoa(item.Meetings),
			strconv.Itoa(item.Feedback),
		})
	}
	printTable([]string{"PERIOD", "MEETINGS", "FEEDBACK"}, rows)
}

func printResources(items []domain.Resource) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Title,
			string(item.Type),
			strings.Join(item.Tags, ","),
			item.URL,
		})
	}
	printTable([]string{"ID", "TITLE", "TYPE", "TAGS", "URL"}, rows)
}

func printSummary(item application.ProgramSummary) {
	printKV([][2]string{
		{"active_mentorships", strconv.Itoa(item.ActiveMentorships)},
		{"approved_mentors", strconv.Itoa(item.ApprovedMentors)},
		{"approved_mentees", strconv.Itoa(item.ApprovedMentees)},
		{"pending_applications", strconv.Itoa(item.PendingApplications)},
	})
}

func printDistribution(items []application.DistributionSlice) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Label, strconv.Itoa(item.Count)})
	}
	printTable([]string{"SPECIALIZATION", "COUNT"}, rows)
}

func printRoles(items []domain.AccessRole) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Key,
			item.Name,
		})
	}
	printTable([]string{"ID", "KEY", "NAME"}, rows)
}

func printAuditRecords(items []domain.AuditRecord) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Action,
			item.TargetType,
			formatMaybeUint(item.TargetID),
			item.ActorAccountEmail,
			formatTime(item.CreatedAt),
		})
	}
	printTable([]string{"ID", "ACTION", "TARGET_TYPE", "TARGET_ID", "ACTOR", "AT"}, rows)
}
