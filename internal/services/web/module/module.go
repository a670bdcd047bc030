// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"net/http"

	"github.com/trainingken/site/internal/content"
	"go.uber.org/zap"
)

// ContentService loads page view models.
type ContentService interface {
	Home(ctx context.Context) content.HomeView
	Posts(ctx context.Context) []content.PostSummary
	Post(ctx context.Context, slug string) (content.PostDetail, error)
	Sections() content.Sections
}

// Site holds the outbound links rendered in page chrome.
type Site struct {
	BookingURL      string
	InstagramURL    string
	FacebookURL     string
	YouTubeEmbedURL string
}

// Dependencies carries shared inputs for module mounting.
type Dependencies struct {
	Content ContentService
	Site    Site
	Logger  *zap.Logger
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
