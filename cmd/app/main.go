package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sqliteadapter "github.com/wanjicode/CareerBridge/internal/adapters/db/sqlite"
	httpadapter "github.com/wanjicode/CareerBridge/internal/adapters/http"
	rpcadapter "github.com/wanjicode/CareerBridge/internal/adapters/rpcjson"
	"github.com/wanjicode/CareerBridge/internal/application"
	"github.com/wanjicode/CareerBridge/internal/domain"
	"github.com/urfave/cli/v3"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "careerbridge",
		Usage: "Mentorship program server and CLI",
		Commands: []*cli.Command{
			serverCommand(),
			seedCommand(),
			authCommand(),
			applicationsCommand(),
			mentorsCommand(),
			menteesCommand(),
			mentorshipsCommand(),
			meetingsCommand(),
			feedbackCommand(),
			cohortsCommand(),
			resourcesCommand(),
			reportsCommand(),
			accessCommand(),
			auditCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServer(ctx, ":8080", defaultSocket, "careerbridge.db", "admin@careerbridge.local", "admin")
		},
	}

	if err := root.Run(context.Background(), args); err != nil {
		log.Fatal(err)
	}
}

func serverCommand() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Run HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "HTTP listen address"},
			&cli.StringFlag{Name: "rpc-socket", Value: defaultSocket, Usage: "JSON-RPC unix socket path"},
			&cli.StringFlag{Name: "db-path", Value: "careerbridge.db", Usage: "SQLite database path"},
			&cli.StringFlag{Name: "bootstrap-admin-email", Value: "admin@careerbridge.local", Usage: "initial admin email"},
			&cli.StringFlag{Name: "bootstrap-admin-password", Value: "admin", Usage: "initial admin password when accounts are empty"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runServer(ctx, c.String("addr"), c.String("rpc-socket"), c.String("db-path"), c.String("bootstrap-admin-email"), c.String("bootstrap-admin-password"))
		},
	}
}

func runServer(ctx context.Context, addr, rpcSocket, dbPath, bootstrapEmail, bootstrapPassword string) error {
	db, err := sqliteadapter.Open(dbPath)
	if err != nil {
		return err
	}
	if err := sqliteadapter.RunMigrations(ctx, db); err != nil {
		return err
	}

	repo := sqliteadapter.NewProgramRepository(db)
	service := application.NewProgramService(repo)
	if err := service.BootstrapAdmin(ctx, bootstrapEmail, bootstrapPassword); err != nil {
		return err
	}

	router := httpadapter.NewRouter(service)
	srv := &http.Server{Addr: addr, Handler: router, ReadHeaderTimeout: 5 * time.Second}
	rpcSrv, err := rpcadapter.Start(rpcSocket, service)
	if err != nil {
		return err
	}

	defer func() {
		_ = rpcSrv.Close()
	}()
	log.Printf("json-rpc listening on unix://%s", rpcSocket)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load the demo mentorship program into a local database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db-path", Value: "careerbridge.db", Usage: "SQLite database path"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			db, err := sqliteadapter.Open(c.String("db-path"))
			if err != nil {
				return err
			}
			if err := sqliteadapter.RunMigrations(ctx, db); err != nil {
				return err
			}
			service := application.NewProgramService(sqliteadapter.NewProgramRepository(db))
			if err := service.SeedDemoProgram(ctx); err != nil {
				return err
			}
			fmt.Println("demo program seeded")
			return nil
		},
	}
}

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authentication commands",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Login and store CLI token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "transport", Value: "uds"},
					&cli.StringFlag{Name: "server", Value: defaultServer},
					&cli.StringFlag{Name: "socket", Value: defaultSocket},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.StringFlag{Name: "token-name", Value: "cli"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg := cliSettings{Transport: c.String("transport"), Server: c.String("server"), Socket: c.String("socket")}
					var out struct {
						Token string `json:"token"`
						Email string `json:"email"`
					}
					err := doLogin(ctx, cfg, c.String("email"), c.String("password"), c.String("token-name"), &out)
					if err != nil {
						return err
					}
					cfg.Token = out.Token
					if err := saveSettings(cfg); err != nil {
						return err
					}
					fmt.Printf("logged in as %s\n", out.Email)
					return nil
				},
			},
			{
				Name:  "whoami",
				Usage: "Show current authenticated account",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out struct {
						ID    uint   `json:"id"`
						Email string `json:"email"`
					}
					if err := doWhoAmI(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printKV([][2]string{{"id", uintToString(out.ID)}, {"email", out.Email}})
					return nil
				},
			},
			{
				Name:  "logout",
				Usage: "Clear local CLI auth token",
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					_ = doLogout(ctx, cfg)
					cfg.Token = ""
					if err := saveSettings(cfg); err != nil {
						return err
					}
					fmt.Println("logged out")
					return nil
				},
			},
		},
	}
}

func applicationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "applications",
		Usage: "Intake commands",
		Commands: []*cli.Command{
			{
				Name:  "mentor",
				Usage: "Submit a mentor application",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "job-title"},
					&cli.StringFlag{Name: "company"},
					&cli.StringFlag{Name: "bio"},
					&cli.StringFlag{Name: "skills", Usage: "csv skill list"},
					&cli.StringFlag{Name: "resume-url"},
					&cli.IntFlag{Name: "experience", Usage: "years of experience"},
					&cli.StringFlag{Name: "specializations", Usage: "csv specialization list"},
					&cli.StringFlag{Name: "availability", Usage: "csv availability slots"},
					&cli.IntFlag{Name: "capacity", Value: 1, Usage: "max concurrent mentees"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					in := application.MentorApplicationInput{
						Name:              c.String("name"),
						Email:             c.String("email"),
						JobTitle:          c.String("job-title"),
						Company:           c.String("company"),
						Bio:               c.String("bio"),
						Skills:            splitTags(c.String("skills")),
						ResumeURL:         c.String("resume-url"),
						YearsOfExperience: c.Int("experience"),
						Specializations:   splitTags(c.String("specializations")),
						Availability:      splitTags(c.String("availability")),
						MenteeCapacity:    c.Int("capacity"),
					}
					var out domain.Mentor
					if err := doSubmitMentorApplication(ctx, cfg, in, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMentorDetail(out)
					return nil
				},
			},
			{
				Name:  "mentee",
				Usage: "Submit a mentee application",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "job-title"},
					&cli.StringFlag{Name: "company"},
					&cli.StringFlag{Name: "bio"},
					&cli.StringFlag{Name: "skills", Usage: "csv skill list"},
					&cli.StringFlag{Name: "resume-url"},
					&cli.StringFlag{Name: "goals", Usage: "csv career goals"},
					&cli.StringFlag{Name: "position", Usage: "current position"},
					&cli.StringFlag{Name: "looking-for", Usage: "csv mentorship interests"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					in := application.MenteeApplicationInput{
						Name:            c.String("name"),
						Email:           c.String("email"),
						JobTitle:        c.String("job-title"),
						Company:         c.String("company"),
						Bio:             c.String("bio"),
						Skills:          splitTags(c.String("skills")),
						ResumeURL:       c.String("resume-url"),
						CareerGoals:     splitTags(c.String("goals")),
						CurrentPosition: c.String("position"),
						LookingFor:      splitTags(c.String("looking-for")),
					}
					var out domain.Mentee
					if err := doSubmitMenteeApplication(ctx, cfg, in, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMenteeDetail(out)
					return nil
				},
			},
			{
				Name:  "pending",
				Usage: "List pending applications",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out []application.PendingApplication
					if err := doPendingApplications(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printPendingApplications(out)
					return nil
				},
			},
			{
				Name:  "reject",
				Usage: "Reject a pending application",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out domain.Participant
					if err := doParticipantReject(ctx, cfg, c.Uint("id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printKV([][2]string{{"id", uintToString(out.ID)}, {"name", out.Name}, {"status", string(out.Status)}})
					return nil
				},
			},
		},
	}
}

func mentorsCommand() *cli.Command {
	return &cli.Command{
		Name:  "mentors",
		Usage: "Mentor commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List mentors",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Usage: "pending, approved or rejected"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out []domain.Mentor
					if err := doMentorsList(ctx, cfg, c.String("status"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMentors(out)
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "Show one mentor",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out domain.Mentor
					if err := doMentorGet(ctx, cfg, c.Uint("id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMentorDetail(out)
					return nil
				},
			},
			{
				Name:  "approve",
				Usage: "Approve a pending mentor",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out domain.Mentor
					if err := doMentorApprove(ctx, cfg, c.Uint("id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMentorDetail(out)
					return nil
				},
			},
		},
	}
}

func menteesCommand() *cli.Command {
	return &cli.Command{
		Name:  "mentees",
		Usage: "Mentee commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List mentees",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Usage: "pending, approved or rejected"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out []domain.Mentee
					if err := doMenteesList(ctx, cfg, c.String("status"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMentees(out)
					return nil
				},
			},
			{
				Name:  "unmatched",
				Usage: "List approved mentees without a mentor",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out []domain.Mentee
					if err := doMenteesUnmatched(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMentees(out)
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "Show one mentee",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out domain.Mentee
					if err := doMenteeGet(ctx, cfg, c.Uint("id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMenteeDetail(out)
					return nil
				},
			},
			{
				Name:  "approve",
				Usage: "Approve a pending mentee into a cohort",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.UintFlag{Name: "cohort-id", Required: true},
					&cli.BoolFlag{Name: "waitlist", Usage: "waitlist instead of taking a cohort slot"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out domain.Mentee
					if err := doMenteeApprove(ctx, cfg, c.Uint("id"), c.Uint("cohort-id"), c.Bool("waitlist"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMenteeDetail(out)
					return nil
				},
			},
		},
	}
}

func mentorshipsCommand() *cli.Command {
	return &cli.Command{
		Name:  "mentorships",
		Usage: "Mentorship commands",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Match a mentor with a mentee",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "mentor-id", Required: true},
					&cli.UintFlag{Name: "mentee-id", Required: true},
					&cli.StringFlag{Name: "frequency", Value: "biweekly"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out domain.Mentorship
					if err := doMentorshipCreate(ctx, cfg, c.Uint("mentor-id"), c.Uint("mentee-id"), c.String("frequency"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMentorship(out)
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List mentorships",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Usage: "active, completed or cancelled"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out []domain.MentorshipSummary
					if err := doMentorshipsList(ctx, cfg, c.String("status"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMentorshipSummaries(out)
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "Show one mentorship",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out domain.Mentorship
					if err := doMentorshipGet(ctx, cfg, c.Uint("id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMentorship(out)
					return nil
				},
			},
			{
				Name:  "pair",
				Usage: "Show the latest mentorship for a mentor/mentee pair",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "mentor-id", Required: true},
					&cli.UintFlag{Name: "mentee-id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out domain.Mentorship
					if err := doMentorshipPair(ctx, cfg, c.Uint("mentor-id"), c.Uint("mentee-id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMentorship(out)
					return nil
				},
			},
			mentorshipEndCommand("complete", "Complete an active mentorship"),
			mentorshipEndCommand("cancel", "Cancel an active mentorship"),
		},
	}
}

func mentorshipEndCommand(verb, usage string) *cli.Command {
	return &cli.Command{
		Name:  verb,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "id", Required: true},
			&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadSettings()
			if err != nil {
				return err
			}
			var out domain.Mentorship
			if err := doMentorshipEnd(ctx, cfg, c.Uint("id"), verb, &out); err != nil {
				return err
			}
			if c.Bool("json") {
				return printJSON(out)
			}
			printMentorship(out)
			return nil
		},
	}
}

func meetingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "meetings",
		Usage: "Meeting commands",
		Commands: []*cli.Command{
			{
				Name:  "schedule",
				Usage: "Schedule a meeting for a mentorship",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "mentorship-id", Required: true},
					&cli.StringFlag{Name: "at", Required: true, Usage: "local time, 2006-01-02 15:04"},
					&cli.IntFlag{Name: "minutes", Value: 60},
					&cli.StringFlag{Name: "notes"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					at, err := time.ParseInLocation("2006-01-02 15:04", c.String("at"), time.Local)
					if err != nil {
						return fmt.Errorf("invalid --at value: %w", err)
					}
					var out domain.Meeting
					if err := doMeetingSchedule(ctx, cfg, c.Uint("mentorship-id"), at, c.Int("minutes"), c.String("notes"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMeetings([]domain.Meeting{out})
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List meetings for a mentorship",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "mentorship-id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out []domain.Meeting
					if err := doMeetingsList(ctx, cfg, c.Uint("mentorship-id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printMeetings(out)
					return nil
				},
			},
			meetingEndCommand("complete", "Mark a scheduled meeting completed"),
			meetingEndCommand("cancel", "Cancel a scheduled meeting"),
		},
	}
}

func meetingEndCommand(verb, usage string) *cli.Command {
	return &cli.Command{
		Name:  verb,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "id", Required: true},
			&cli.StringFlag{Name: "notes"},
			&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadSettings()
			if err != nil {
				return err
			}
			var out domain.Meeting
			if err := doMeetingEnd(ctx, cfg, c.Uint("id"), verb, c.String("notes"), &out); err != nil {
				return err
			}
			if c.Bool("json") {
				return printJSON(out)
			}
			printMeetings([]domain.Meeting{out})
			return nil
		},
	}
}

func feedbackCommand() *cli.Command {
	return &cli.Command{
		Name:  "feedback",
		Usage: "Feedback commands",
		Commands: []*cli.Command{
			{
				Name:  "submit",
				Usage: "Submit feedback within a mentorship",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "mentorship-id", Required: true},
					&cli.UintFlag{Name: "from", Required: true},
					&cli.UintFlag{Name: "to", Required: true},
					&cli.IntFlag{Name: "rating", Required: true, Usage: "1 to 5"},
					&cli.StringFlag{Name: "comment"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out domain.Feedback
					if err := doFeedbackSubmit(ctx, cfg, c.Uint("mentorship-id"), c.Uint("from"), c.Uint("to"), c.Int("rating"), c.String("comment"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printFeedback([]domain.Feedback{out})
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List feedback for a mentorship",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "mentorship-id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out []domain.Feedback
					if err := doFeedbackList(ctx, cfg, c.Uint("mentorship-id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printFeedback(out)
					return nil
				},
			},
		},
	}
}

func cohortsCommand() *cli.Command {
	return &cli.Command{
		Name:  "cohorts",
		Usage: "Cohort commands",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a cohort",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "start", Required: true, Usage: "start date, 2006-01-02"},
					&cli.StringFlag{Name: "end", Required: true, Usage: "end date, 2006-01-02"},
					&cli.IntFlag{Name: "capacity", Value: 20},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					start, err := time.Parse("2006-01-02", c.String("start"))
					if err != nil {
						return fmt.Errorf("invalid --start value: %w", err)
					}
					end, err := time.Parse("2006-01-02", c.String("end"))
					if err != nil {
						return fmt.Errorf("invalid --end value: %w", err)
					}
					var out domain.Cohort
					if err := doCohortCreate(ctx, cfg, c.String("name"), start, end, c.Int("capacity"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printCohorts([]domain.Cohort{out})
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List cohorts",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out []domain.Cohort
					if err := doCohortsList(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printCohorts(out)
					return nil
				},
			},
			{
				Name:  "active",
				Usage: "Show the currently running cohort",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out domain.Cohort
					if err := doCohortActive(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printCohorts([]domain.Cohort{out})
					return nil
				},
			},
			cohortTransitionCommand("start", "Start an upcoming cohort"),
			cohortTransitionCommand("complete", "Complete an active cohort"),
			{
				Name:  "report",
				Usage: "Show cohort fill and capacity report",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out application.CohortReport
					if err := doCohortReport(ctx, cfg, c.Uint("id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printCohortReport(out)
					return nil
				},
			},
			{
				Name:  "activity",
				Usage: "Show monthly meeting and feedback activity for a cohort",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out []domain.ActivityPoint
					if err := doCohortActivity(ctx, cfg, c.Uint("id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printActivity(out)
					return nil
				},
			},
		},
	}
}

func cohortTransitionCommand(verb, usage string) *cli.Command {
	return &cli.Command{
		Name:  verb,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "id", Required: true},
			&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadSettings()
			if err != nil {
				return err
			}
			var out domain.Cohort
			if err := doCohortTransition(ctx, cfg, c.Uint("id"), verb, &out); err != nil {
				return err
			}
			if c.Bool("json") {
				return printJSON(out)
			}
			printCohorts([]domain.Cohort{out})
			return nil
		},
	}
}

func resourcesCommand() *cli.Command {
	return &cli.Command{
		Name:  "resources",
		Usage: "Resource library commands",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a resource",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "url", Required: true},
					&cli.StringFlag{Name: "type", Value: "article", Usage: "pdf, video, article, webinar or other"},
					&cli.StringFlag{Name: "tags", Usage: "csv tag list"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out domain.Resource
					if err := doResourceAdd(ctx, cfg, c.String("title"), c.String("description"), c.String("url"), c.String("type"), c.String("tags"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printResources([]domain.Resource{out})
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List resources",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type"},
					&cli.StringFlag{Name: "tag"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out []domain.Resource
					if err := doResourcesList(ctx, cfg, c.String("type"), c.String("tag"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printResources(out)
					return nil
				},
			},
		},
	}
}

func reportsCommand() *cli.Command {
	return &cli.Command{
		Name:  "reports",
		Usage: "Program report commands",
		Commands: []*cli.Command{
			{
				Name:  "summary",
				Usage: "Show program-wide summary counts",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out application.ProgramSummary
					if err := doSummary(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printSummary(out)
					return nil
				},
			},
			{
				Name:  "distribution",
				Usage: "Show active mentorships by mentor specialization",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out []application.DistributionSlice
					if err := doDistribution(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printDistribution(out)
					return nil
				},
			},
		},
	}
}

func accessCommand() *cli.Command {
	return &cli.Command{
		Name:  "access",
		Usage: "Access and accounts commands",
		Commands: []*cli.Command{
			{
				Name:  "accounts",
				Usage: "Manage accounts",
				Commands: []*cli.Command{
					{
						Name:  "create",
						Usage: "Create account",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "email", Required: true},
							&cli.StringFlag{Name: "password", Required: true},
							&cli.UintFlag{Name: "role-id"},
							&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							cfg, err := loadSettings()
							if err != nil {
								return err
							}
							var out struct {
								ID    uint   `json:"id"`
								Email string `json:"email"`
							}
							if err := doAccountCreate(ctx, cfg, c.String("email"), c.String("password"), c.Uint("role-id"), &out); err != nil {
								return err
							}
							if c.Bool("json") {
								return printJSON(out)
							}
							printKV([][2]string{{"id", uintToString(out.ID)}, {"email", out.Email}})
							return nil
						},
					},
				},
			},
			{
				Name:  "roles",
				Usage: "Manage roles",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List roles",
						Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
						Action: func(ctx context.Context, c *cli.Command) error {
							cfg, err := loadSettings()
							if err != nil {
								return err
							}
							var out []domain.AccessRole
							if err := doRolesList(ctx, cfg, &out); err != nil {
								return err
							}
							if c.Bool("json") {
								return printJSON(out)
							}
							printRoles(out)
							return nil
						},
					},
					{
						Name:  "assign",
						Usage: "Assign role to account",
						Flags: []cli.Flag{
							&cli.UintFlag{Name: "account-id", Required: true},
							&cli.UintFlag{Name: "role-id", Required: true},
							&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							cfg, err := loadSettings()
							if err != nil {
								return err
							}
							var out map[string]any
							if err := doAssignRole(ctx, cfg, c.Uint("account-id"), c.Uint("role-id"), &out); err != nil {
								return err
							}
							if c.Bool("json") {
								return printJSON(out)
							}
							fmt.Printf("assigned role %d to account %d\n", c.Uint("role-id"), c.Uint("account-id"))
							return nil
						},
					},
				},
			},
		},
	}
}

func auditCommand() *cli.Command {
	return &cli.Command{
		Name:  "audit",
		Usage: "Audit log commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List audit logs",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 100},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadSettings()
					if err != nil {
						return err
					}
					var out []domain.AuditRecord
					if err := doAuditList(ctx, cfg, c.Int("limit"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printAuditRecords(out)
					return nil
				},
			},
		},
	}
}

func jsonMarshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
