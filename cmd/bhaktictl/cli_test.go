package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tbourn/bhakti-feed/internal/app"
	"github.com/tbourn/bhakti-feed/internal/config"
	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/textgen"
)

// setupTestApp builds an app over a seeded in-memory database.
func setupTestApp(t *testing.T) *app.App {
	t.Helper()
	cfg := config.Config{
		DBPath:       fmt.Sprintf("file:cli_%s?mode=memory&cache=shared", uuid.NewString()),
		RepoTimeout:  time.Second,
		SeedFallback: true,
		Cache:        config.CacheConfig{Backend: "sqlite", RecommendationTTL: time.Hour},
		Profile:      config.ProfileConfig{Region: "kerala", Language: "malayalam", Deity: "vishnu", ZodiacSign: "leo"},
	}
	a, err := app.New(context.Background(), cfg, zerolog.Nop(), app.WithGenerator(textgen.Disabled{}))
	if err != nil {
		t.Fatalf("failed to init app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// run executes the CLI with args and returns stdout.
func run(t *testing.T, a *app.App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cliApp := newCLIApp(a)
	cliApp.Writer = &buf
	cliApp.ErrWriter = &buf
	err := cliApp.Run(append([]string{"bhaktictl"}, args...))
	return buf.String(), err
}

func TestCLIStats(t *testing.T) {
	a := setupTestApp(t)

	out, err := run(t, a, "stats")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	var stats map[string]struct {
		Count int64 `json:"count"`
	}
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}
	for _, kind := range []string{"posts", "reels", "music", "temples"} {
		if stats[kind].Count == 0 {
			t.Errorf("expected seeded %s, got %+v", kind, stats)
		}
	}
}

func TestCLIPanchangam(t *testing.T) {
	a := setupTestApp(t)

	out, err := run(t, a, "panchangam", "--date=2026-01-14")
	if err != nil {
		t.Fatalf("panchangam failed: %v", err)
	}
	var p map[string]any
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}
	if d, _ := p["date"].(string); !strings.Contains(d, "Jan 14 2026") {
		t.Errorf("expected date Jan 14 2026, got %v", p["date"])
	}
	if _, ok := p["auspicious_now"]; ok {
		t.Errorf("auspicious_now only applies to today")
	}

	out, err = run(t, a, "panchangam")
	if err != nil {
		t.Fatalf("panchangam today failed: %v", err)
	}
	if !strings.Contains(out, `"auspicious_now"`) {
		t.Errorf("expected auspicious_now for today, got %s", out)
	}

	if _, err := run(t, a, "panchangam", "--date=14/01/2026"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestCLIRecommend(t *testing.T) {
	a := setupTestApp(t)

	out, err := run(t, a, "recommend", "--deity=shiva", "--limit=3", "temples")
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	var res struct {
		Context domain.UserContext `json:"context"`
		Items   []struct {
			Score float64 `json:"score"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}
	if res.Context.Deity != domain.DeityShiva || res.Context.Region != domain.RegionKerala {
		t.Errorf("expected profile with deity override, got %+v", res.Context)
	}
	if len(res.Items) == 0 || len(res.Items) > 3 {
		t.Errorf("expected 1..3 items, got %d", len(res.Items))
	}

	if _, err := run(t, a, "recommend", "videos"); err == nil || !strings.Contains(err.Error(), "[invalid]") {
		t.Fatalf("expected invalid kind error, got %v", err)
	}
	if _, err := run(t, a, "recommend"); err == nil {
		t.Fatal("expected error without kind")
	}
}

func TestCLIEngagement(t *testing.T) {
	a := setupTestApp(t)

	out, err := run(t, a, "engagement", "record", "liked_posts", "mock-post-1")
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if !strings.Contains(out, `"added": true`) {
		t.Errorf("expected added=true, got %s", out)
	}
	out, _ = run(t, a, "engagement", "record", "liked_posts", "mock-post-1")
	if !strings.Contains(out, `"added": false`) {
		t.Errorf("expected duplicate to report added=false, got %s", out)
	}

	out, err = run(t, a, "engagement", "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "mock-post-1") {
		t.Errorf("expected recorded id in output, got %s", out)
	}

	if _, err := run(t, a, "engagement", "record", "shared_posts", "x"); err == nil {
		t.Fatal("expected error for unknown engagement kind")
	}
}

func TestCLIRefreshAndSweep(t *testing.T) {
	a := setupTestApp(t)

	for _, job := range []string{"daily", "weekly", "recommendations", "all"} {
		out, err := run(t, a, "refresh", "--job="+job)
		if err != nil {
			t.Fatalf("refresh %s failed: %v", job, err)
		}
		if !strings.Contains(out, `"status": "ok"`) {
			t.Errorf("refresh %s: unexpected output %s", job, out)
		}
	}
	if _, err := run(t, a, "refresh", "--job=hourly"); err == nil {
		t.Fatal("expected error for unknown job")
	}

	out, err := run(t, a, "sweep")
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if !strings.Contains(out, `"removed"`) {
		t.Errorf("unexpected sweep output: %s", out)
	}
}

func TestCLIContentCommands(t *testing.T) {
	a := setupTestApp(t)

	out, err := run(t, a, "gita", "--language=hindi")
	if err != nil {
		t.Fatalf("gita failed: %v", err)
	}
	var sloka domain.GitaSloka
	if err := json.Unmarshal([]byte(out), &sloka); err != nil || sloka.Chapter == 0 {
		t.Fatalf("unexpected gita output: %v %s", err, out)
	}

	out, err = run(t, a, "horoscope")
	if err != nil || !strings.Contains(out, `"sign": "leo"`) {
		t.Fatalf("horoscope default sign: %v %s", err, out)
	}
	out, err = run(t, a, "horoscope", "--sign=Aries")
	if err != nil || !strings.Contains(out, `"sign": "aries"`) {
		t.Fatalf("horoscope override: %v %s", err, out)
	}

	out, err = run(t, a, "mantra", "--deity=ganesh", "--purpose=obstacles")
	if err != nil || !strings.Contains(out, `"mantra"`) {
		t.Fatalf("mantra: %v %s", err, out)
	}
}
