package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/tbourn/bhakti-feed/internal/app"
	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/repo"
	"github.com/tbourn/bhakti-feed/internal/services"
)

const dateLayout = "2006-01-02"

// newCLIApp creates the CLI application with all commands.
func newCLIApp(a *app.App) *cli.App {
	cliApp := &cli.App{
		Name:    "bhaktictl",
		Usage:   "Operate the Bhakti feed cache and content",
		Version: Version,
		Commands: []*cli.Command{
			statsCmd(a),
			sweepCmd(a),
			refreshCmd(a),
			panchangamCmd(a),
			gitaCmd(a),
			horoscopeCmd(a),
			recommendCmd(a),
			engagementCmd(a),
			mantraCmd(a),
		},
	}
	// Return errors from Run instead of exiting, so tests can inspect them.
	cliApp.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return cliApp
}

func statsCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show row counts and newest timestamps per content kind",
		Action: func(c *cli.Context) error {
			stats, err := repo.Stats(c.Context, a.DB)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, stats)
		},
	}
}

func sweepCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "sweep",
		Usage: "Remove cache entries from previous days and weeks",
		Action: func(c *cli.Context) error {
			removed, err := a.Spiritual.ClearOldCache(c.Context)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, map[string]int{"removed": removed})
		},
	}
}

func refreshCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "refresh",
		Usage: "Run a refresh job now",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "job", Aliases: []string{"j"}, Value: "all", Usage: "Job: all|daily|weekly|recommendations"},
		},
		Action: func(c *cli.Context) error {
			jobs := map[string]func() error{
				"all":             func() error { return a.RefreshAll(c.Context) },
				"daily":           func() error { return a.RefreshDaily(c.Context) },
				"weekly":          func() error { return a.RefreshWeekly(c.Context) },
				"recommendations": func() error { return a.RefreshRecommendations(c.Context) },
			}
			job := c.String("job")
			run, ok := jobs[job]
			if !ok {
				return cli.Exit(fmt.Sprintf("unknown job %q", job), 1)
			}
			if err := run(); err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, map[string]string{"job": job, "status": "ok"})
		},
	}
}

type panchangamOutput struct {
	domain.Panchangam
	AuspiciousNow *bool `json:"auspicious_now,omitempty"`
}

func panchangamCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "panchangam",
		Usage: "Compute the panchangam for a date",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Date as YYYY-MM-DD (default today)"},
		},
		Action: func(c *cli.Context) error {
			now := a.Cache.Now()
			date := now
			if s := c.String("date"); s != "" {
				d, err := time.ParseInLocation(dateLayout, s, now.Location())
				if err != nil {
					return cli.Exit(fmt.Sprintf("invalid --date %q: want YYYY-MM-DD", s), 1)
				}
				date = d
			}
			out := panchangamOutput{Panchangam: services.Calculate(date)}
			if !c.IsSet("date") {
				auspicious := services.IsAuspiciousTime(now)
				out.AuspiciousNow = &auspicious
			}
			return outputJSON(c.App.Writer, out)
		},
	}
}

func gitaCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "gita",
		Usage: "Show today's Gita sloka",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Value: "english", Usage: "english|hindi|telugu|sanskrit"},
		},
		Action: func(c *cli.Context) error {
			return outputJSON(c.App.Writer, a.Spiritual.DailyGitaSloka(c.Context, c.String("language")))
		},
	}
}

func horoscopeCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "horoscope",
		Usage: "Show this week's horoscope for a sign",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sign", Aliases: []string{"s"}, Usage: "Zodiac sign (default: profile sign)"},
		},
		Action: func(c *cli.Context) error {
			sign := a.Profile.ZodiacSign
			if c.IsSet("sign") {
				sign = services.NormalizeSign(c.String("sign"))
			}
			return outputJSON(c.App.Writer, map[string]string{
				"sign": sign,
				"text": a.Spiritual.WeeklyHoroscope(c.Context, sign),
			})
		},
	}
}

func recommendCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "recommend",
		Usage:     "Preview ranked recommendations for a user context",
		ArgsUsage: "<posts|reels|music|temples>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "region", Usage: "Region (default: profile)"},
			&cli.StringFlag{Name: "language", Usage: "Language (default: profile)"},
			&cli.StringFlag{Name: "deity", Usage: "Deity (default: profile)"},
			&cli.StringFlag{Name: "zodiac", Usage: "Zodiac sign (default: profile)"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: 10, Usage: "Max items"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("exactly one kind is required", 1)
			}
			uc := profileOverride(c, a.Profile)
			limit := c.Int("limit")

			var items any
			switch domain.Kind(c.Args().First()) {
			case domain.KindPosts:
				items = a.Recommendations.Posts(c.Context, uc, limit)
			case domain.KindReels:
				items = a.Recommendations.Reels(c.Context, uc, limit)
			case domain.KindMusic:
				items = a.Recommendations.Music(c.Context, uc, limit)
			case domain.KindTemples:
				items = a.Recommendations.Temples(c.Context, uc, limit)
			default:
				return outputError(services.ErrInvalidKind)
			}
			return outputJSON(c.App.Writer, map[string]any{"context": uc, "items": items})
		},
	}
}

func engagementCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "engagement",
		Usage: "Inspect or record engagement history",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the stored engagement sets",
				Action: func(c *cli.Context) error {
					e, err := a.Engagement.Get(c.Context)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(c.App.Writer, e)
				},
			},
			{
				Name:      "record",
				Usage:     "Add an item id to an engagement set",
				ArgsUsage: "<kind> <id>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("usage: engagement record <kind> <id>", 1)
					}
					added, err := a.Recommendations.RecordEngagement(c.Context,
						domain.EngagementKind(c.Args().Get(0)), c.Args().Get(1))
					if err != nil {
						return outputError(err)
					}
					return outputJSON(c.App.Writer, map[string]bool{"added": added})
				},
			},
		},
	}
}

func mantraCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "mantra",
		Usage: "Suggest a mantra for a deity and purpose",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "deity", Usage: "Deity (default: profile)"},
			&cli.StringFlag{Name: "purpose", Value: "general", Usage: "Purpose, e.g. peace, obstacles, health"},
		},
		Action: func(c *cli.Context) error {
			deity := string(a.Profile.Deity)
			if c.IsSet("deity") {
				deity = c.String("deity")
			}
			return outputJSON(c.App.Writer, map[string]string{
				"deity":  deity,
				"mantra": a.Assistant.SuggestMantra(deity, c.String("purpose")),
			})
		},
	}
}

// profileOverride applies flag values on top of the default profile.
func profileOverride(c *cli.Context, p domain.UserContext) domain.UserContext {
	if c.IsSet("region") {
		p.Region = domain.ParseRegion(c.String("region"))
	}
	if c.IsSet("language") {
		p.Language = domain.ParseLanguage(c.String("language"))
	}
	if c.IsSet("deity") {
		p.Deity = domain.ParseDeity(c.String("deity"))
	}
	if c.IsSet("zodiac") {
		p.ZodiacSign = services.NormalizeSign(c.String("zodiac"))
	}
	return p
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats err for the CLI, tagging known validation errors.
func outputError(err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidKind), errors.Is(err, services.ErrInvalidEngagement):
		return cli.Exit(fmt.Sprintf("[invalid] %s", err), 1)
	default:
		return cli.Exit(err.Error(), 1)
	}
}
