// Package web parses site flags and launches the web service.
package web

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/trainingken/site/internal/content"
	"github.com/trainingken/site/internal/platform/assets/imagecdn"
	entrypoint "github.com/trainingken/site/internal/platform/cmd"
	"github.com/trainingken/site/internal/platform/logging"
	"github.com/trainingken/site/internal/sanity"
	"github.com/trainingken/site/internal/services/web"
	module "github.com/trainingken/site/internal/services/web/module"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"TRAININGKEN_WEB_HTTP_ADDR" envDefault:"localhost:8080"`

	SanityProjectID  string `env:"SANITY_PROJECT_ID"`
	SanityDataset    string `env:"SANITY_DATASET"`
	SanityAPIVersion string `env:"SANITY_API_VERSION" envDefault:"2024-01-01"`
	SanityToken      string `env:"SANITY_API_TOKEN"`

	BookingURL      string `env:"TRAININGKEN_BOOKING_URL" envDefault:"https://forms.gle/MQ3cZCcbwwv6RPXF8"`
	InstagramURL    string `env:"TRAININGKEN_INSTAGRAM_URL" envDefault:"https://www.instagram.com/trainingken12/"`
	FacebookURL     string `env:"TRAININGKEN_FACEBOOK_URL" envDefault:"https://www.facebook.com/profile.php?id=100064015244172"`
	YouTubeEmbedURL string `env:"TRAININGKEN_YOUTUBE_EMBED_URL" envDefault:"https://www.youtube.com/embed/ccMlUs1t0-E"`

	SectionPosts        bool `env:"TRAININGKEN_SECTION_POSTS" envDefault:"true"`
	SectionTestimonials bool `env:"TRAININGKEN_SECTION_TESTIMONIALS" envDefault:"true"`
	SectionVenues       bool `env:"TRAININGKEN_SECTION_VENUES" envDefault:"true"`
	SectionPricing      bool `env:"TRAININGKEN_SECTION_PRICING" envDefault:"true"`

	// ImageWidth asks the image CDN to resize to this width. Zero keeps originals.
	ImageWidth int `env:"TRAININGKEN_IMAGE_WIDTH" envDefault:"0"`

	LogLevel       string `env:"TRAININGKEN_LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"TRAININGKEN_LOG_DEVELOPMENT"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.SanityProjectID, "sanity-project", cfg.SanityProjectID, "Sanity project id")
	fs.StringVar(&cfg.SanityDataset, "sanity-dataset", cfg.SanityDataset, "Sanity dataset")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if cfg.ImageWidth < 0 {
		return Config{}, fmt.Errorf("image width must not be negative, got %d", cfg.ImageWidth)
	}
	return cfg, nil
}

// Sections returns the homepage sections enabled by cfg.
func (cfg Config) Sections() content.Sections {
	return content.Sections{
		Posts:        cfg.SectionPosts,
		Testimonials: cfg.SectionTestimonials,
		Venues:       cfg.SectionVenues,
		Pricing:      cfg.SectionPricing,
	}
}

// Site returns the outbound links rendered in page chrome.
func (cfg Config) Site() module.Site {
	return module.Site{
		BookingURL:      cfg.BookingURL,
		InstagramURL:    cfg.InstagramURL,
		FacebookURL:     cfg.FacebookURL,
		YouTubeEmbedURL: cfg.YouTubeEmbedURL,
	}
}

// NewContent builds the aggregator and the store client it reads from.
func NewContent(cfg Config, logger *zap.Logger) *content.Aggregator {
	store := sanity.New(sanity.Config{
		ProjectID:  cfg.SanityProjectID,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		Token:      cfg.SanityToken,
		Cache:      sanity.FetchFresh,
	})
	var cdn imagecdn.CDN
	if store.ProjectID() != "" && store.Dataset() != "" {
		cdn = imagecdn.New(imagecdn.SanityBaseURL(store.ProjectID(), store.Dataset()))
	}
	var delivery *imagecdn.Delivery
	if cfg.ImageWidth > 0 {
		delivery = &imagecdn.Delivery{WidthPX: cfg.ImageWidth, AutoFormat: true}
	}
	return content.New(store, content.Options{
		Sections: cfg.Sections(),
		CDN:      cdn,
		Delivery: delivery,
		Logger:   logger,
	})
}

// Run starts the web service.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(entrypoint.ServiceWeb, logging.Config{
		Level:       cfg.LogLevel,
		Development: cfg.LogDevelopment,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.SanityProjectID == "" || cfg.SanityDataset == "" {
		logger.Warn("sanity project or dataset not configured, pages will render fallback content")
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Content:  NewContent(cfg, logger),
			Site:     cfg.Site(),
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
