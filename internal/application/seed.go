package application

import (
	"context"
	"fmt"
	"time"

	"github.com/wanjicode/CareerBridge/internal/domain"
)

// SeedDemoProgram loads the Spring 2024 demo dataset: two cohorts, a pending
// and an approved mentor, three mentees in different states, one running
// mentorship with its meetings and feedback, and the resource library. It is
// a no-op when cohorts already exist.
func (s *ProgramService) SeedDemoProgram(ctx context.Context) error {
	existing, err := s.repo.ListCohorts(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	spring, err := s.repo.CreateCohort(ctx, domain.Cohort{
		Name:          "Spring 2024",
		StartDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Capacity:      15,
		ActiveMentees: 14,
		Status:        domain.CohortActive,
	})
	if err != nil {
		return fmt.Errorf("seed spring cohort: %w", err)
	}
	summer, err := s.repo.CreateCohort(ctx, domain.Cohort{
		Name:      "Summer 2024",
		StartDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC),
		Capacity:  15,
		Status:    domain.CohortUpcoming,
	})
	if err != nil {
		return fmt.Errorf("seed summer cohort: %w", err)
	}

	_, err = s.SubmitMentorApplication(ctx, MentorApplicationInput{
		Name:              "Jessica Lee",
		Email:             "jessica.lee@company.com",
		JobTitle:          "Senior Software Engineer",
		Company:           "TechCorp",
		Bio:               "Passionate about helping junior developers grow and navigate the tech industry.",
		Skills:            []string{"JavaScript", "React", "Node.js", "mentoring"},
		ResumeURL:         "https://example.com/resume/jessica-lee.pdf",
		YearsOfExperience: 8,
		Specializations:   []string{"Frontend Development", "React", "UI/UX"},
		Availability:      []string{"Mon: 5-7pm", "Thu: 6-8pm"},
		MenteeCapacity:    3,
	})
	if err != nil {
		return fmt.Errorf("seed mentor jessica: %w", err)
	}

	david, err := s.SubmitMentorApplication(ctx, MentorApplicationInput{
		Name:              "David Rodriguez",
		Email:             "david.rodriguez@company.com",
		JobTitle:          "Product Manager",
		Company:           "InnovateTech",
		Bio:               "Helping aspiring product managers understand the field and excel in their careers.",
		Skills:            []string{"Product Management", "Agile", "User Research", "Roadmapping"},
		ResumeURL:         "https://example.com/resume/david-rodriguez.pdf",
		YearsOfExperience: 6,
		Specializations:   []string{"Product Strategy", "User Research", "Agile"},
		Availability:      []string{"Tue: 7-9pm", "Sat: 10am-12pm"},
		MenteeCapacity:    2,
	})
	if err != nil {
		return fmt.Errorf("seed mentor david: %w", err)
	}
	if _, err := s.ApproveMentor(ctx, david.ID); err != nil {
		return fmt.Errorf("seed approve david: %w", err)
	}

	_, err = s.SubmitMenteeApplication(ctx, MenteeApplicationInput{
		Name:            "Ryan Taylor",
		Email:           "ryan.taylor@gmail.com",
		Bio:             "Graduating this year and eager to break into the tech industry.",
		Skills:          []string{"JavaScript", "Python", "SQL"},
		CareerGoals:     []string{"Become a Full Stack Developer", "Work at a startup"},
		CurrentPosition: "Computer Science Student",
		LookingFor:      []string{"Technical guidance", "Industry insights", "Resume review"},
	})
	if err != nil {
		return fmt.Errorf("seed mentee ryan: %w", err)
	}

	emma, err := s.SubmitMenteeApplication(ctx, MenteeApplicationInput{
		Name:            "Emma Wilson",
		Email:           "emma.wilson@gmail.com",
		Bio:             "Marketing professional looking to pivot into product management.",
		Skills:          []string{"Marketing", "Communication", "Basic HTML/CSS"},
		CareerGoals:     []string{"Transition to Product Management", "Learn Agile methodologies"},
		CurrentPosition: "Marketing Specialist",
		LookingFor:      []string{"Career transition advice", "Product skills development"},
	})
	if err != nil {
		return fmt.Errorf("seed mentee emma: %w", err)
	}
	if _, err := s.ApproveMentee(ctx, emma.ID, spring.ID, false); err != nil {
		return fmt.Errorf("seed approve emma: %w", err)
	}

	omar, err := s.SubmitMenteeApplication(ctx, MenteeApplicationInput{
		Name:            "Omar Patel",
		Email:           "omar.patel@gmail.com",
		Bio:             "Data analyst looking to advance into data science and machine learning.",
		Skills:          []string{"SQL", "Python", "Data Visualization", "Statistics"},
		CareerGoals:     []string{"Data Science career", "Machine Learning specialization"},
		CurrentPosition: "Data Analyst",
		LookingFor:      []string{"Technical mentorship", "Advanced analytics guidance"},
	})
	if err != nil {
		return fmt.Errorf("seed mentee omar: %w", err)
	}
	if _, err := s.ApproveMentee(ctx, omar.ID, summer.ID, true); err != nil {
		return fmt.Errorf("seed waitlist omar: %w", err)
	}

	mentorship, err := s.repo.CreateMentorship(ctx, domain.Mentorship{
		MentorID:         david.ID,
		MenteeID:         emma.ID,
		Status:           domain.MentorshipActive,
		StartDate:        time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		MeetingFrequency: "Biweekly",
	})
	if err != nil {
		return fmt.Errorf("seed mentorship: %w", err)
	}
	if err := s.repo.SetMenteeMatch(ctx, emma.ID, &david.ID, domain.MatchMatched); err != nil {
		return fmt.Errorf("seed match emma: %w", err)
	}

	type seedMeeting struct {
		at     time.Time
		status domain.MeetingStatus
		notes  string
	}
	for _, m := range []seedMeeting{
		{time.Date(2024, 3, 21, 19, 0, 0, 0, time.UTC), domain.MeetingCompleted, "Discussed career transition strategy and recommended resources"},
		{time.Date(2024, 4, 4, 19, 0, 0, 0, time.UTC), domain.MeetingCompleted, "Reviewed product case study and provided feedback"},
		{time.Date(2024, 4, 18, 19, 0, 0, 0, time.UTC), domain.MeetingCompleted, "Mock interview for product role"},
		{time.Date(2024, 5, 2, 19, 0, 0, 0, time.UTC), domain.MeetingScheduled, ""},
	} {
		if _, err := s.repo.CreateMeeting(ctx, domain.Meeting{
			MentorshipID:    mentorship.ID,
			ScheduledAt:     m.at,
			DurationMinutes: 60,
			Status:          m.status,
			Notes:           m.notes,
		}); err != nil {
			return fmt.Errorf("seed meeting: %w", err)
		}
	}

	if _, err := s.SubmitFeedback(ctx, mentorship.ID, emma.ID, david.ID, 5,
		"David has been incredibly helpful in explaining product management concepts. His advice on transitioning from marketing to product was spot on!"); err != nil {
		return fmt.Errorf("seed feedback: %w", err)
	}
	if _, err := s.SubmitFeedback(ctx, mentorship.ID, david.ID, emma.ID, 4,
		"Emma is making great progress. She's diligent in completing the recommended readings and asks insightful questions."); err != nil {
		return fmt.Errorf("seed feedback: %w", err)
	}

	type seedResource struct {
		title       string
		description string
		url         string
		kind        domain.ResourceType
		tags        []string
	}
	for _, r := range []seedResource{
		{"Resume Building Guide", "Comprehensive guide to crafting a standout tech resume", "https://example.com/resources/resume-guide.pdf", domain.ResourcePDF, []string{"career", "resume", "job-hunting"}},
		{"Technical Interview Preparation", "Video series on acing coding interviews", "https://example.com/resources/tech-interviews", domain.ResourceVideo, []string{"interviews", "coding", "algorithms"}},
		{"Product Management Fundamentals", "Introduction to key product management concepts and methodologies", "https://example.com/resources/pm-basics.pdf", domain.ResourcePDF, []string{"product-management", "career-transition"}},
		{"Networking Strategies for Tech Professionals", "Webinar on building your professional network in the tech industry", "https://example.com/resources/networking-webinar", domain.ResourceWebinar, []string{"networking", "career-growth"}},
		{"Data Science Learning Path", "Curated list of resources for aspiring data scientists", "https://example.com/resources/data-science-path", domain.ResourceArticle, []string{"data-science", "machine-learning", "learning-path"}},
	} {
		if _, err := s.AddResource(ctx, r.title, r.description, r.url, r.kind, r.tags); err != nil {
			return fmt.Errorf("seed resource: %w", err)
		}
	}

	return nil
}
