package web

import (
	"context"
	"flag"
	"testing"

	"github.com/trainingken/site/internal/content"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.SanityAPIVersion != "2024-01-01" {
		t.Fatalf("SanityAPIVersion = %q, want %q", cfg.SanityAPIVersion, "2024-01-01")
	}
	if cfg.BookingURL != "https://forms.gle/MQ3cZCcbwwv6RPXF8" {
		t.Fatalf("BookingURL = %q", cfg.BookingURL)
	}
	if cfg.FacebookURL != "https://www.facebook.com/profile.php?id=100064015244172" {
		t.Fatalf("FacebookURL = %q", cfg.FacebookURL)
	}
	if got := cfg.Sections(); got != content.AllSections() {
		t.Fatalf("Sections() = %+v, want all", got)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestParseConfigFlagOverrides(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "127.0.0.1:9002",
		"-sanity-project", "p1",
		"-sanity-dataset", "production",
		"-log-level", "debug",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.SanityProjectID != "p1" || cfg.SanityDataset != "production" {
		t.Fatalf("sanity = %q/%q, want p1/production", cfg.SanityProjectID, cfg.SanityDataset)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestParseConfigRejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-log-level", "loud"}); err == nil {
		t.Fatalf("expected log level error")
	}
}

func TestParseConfigReadsEnvironment(t *testing.T) {
	t.Setenv("TRAININGKEN_WEB_HTTP_ADDR", "0.0.0.0:80")
	t.Setenv("SANITY_PROJECT_ID", "envproj")
	t.Setenv("TRAININGKEN_SECTION_PRICING", "false")
	t.Setenv("TRAININGKEN_IMAGE_WIDTH", "1200")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:1"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:1" {
		t.Fatalf("HTTPAddr = %q, want flag to win over env", cfg.HTTPAddr)
	}
	if cfg.SanityProjectID != "envproj" {
		t.Fatalf("SanityProjectID = %q, want envproj", cfg.SanityProjectID)
	}
	if cfg.Sections().Pricing {
		t.Fatalf("Sections().Pricing = true, want false")
	}
	if cfg.ImageWidth != 1200 {
		t.Fatalf("ImageWidth = %d, want 1200", cfg.ImageWidth)
	}
}

func TestParseConfigRejectsNegativeImageWidth(t *testing.T) {
	t.Setenv("TRAININGKEN_IMAGE_WIDTH", "-1")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatalf("expected image width error")
	}
}

func TestSiteCarriesLinks(t *testing.T) {
	t.Parallel()

	cfg := Config{BookingURL: "b", InstagramURL: "i", FacebookURL: "f", YouTubeEmbedURL: "y"}
	site := cfg.Site()
	if site.BookingURL != "b" || site.InstagramURL != "i" || site.FacebookURL != "f" || site.YouTubeEmbedURL != "y" {
		t.Fatalf("Site() = %+v", site)
	}
}

func TestNewContentWithoutProjectRendersFallbacks(t *testing.T) {
	t.Parallel()

	agg := NewContent(Config{SectionPosts: true}, nil)
	if got := agg.Sections(); !got.Posts || got.Venues {
		t.Fatalf("Sections() = %+v, want posts only", got)
	}
	view := agg.Home(context.Background())
	if view.Hero.Title != content.DefaultHeroTitle {
		t.Fatalf("Hero.Title = %q, want default", view.Hero.Title)
	}
	if len(view.Posts) != 0 {
		t.Fatalf("Posts = %v, want none", view.Posts)
	}
}
