package content

import (
	"strings"
	"time"

	"github.com/trainingken/site/internal/content/portabletext"
)

// Image is an optional resolved image.
type Image struct {
	URL string
}

// Present reports whether the image resolved to a URL.
func (i Image) Present() bool { return strings.TrimSpace(i.URL) != "" }

// Sections selects the optional homepage sections.
type Sections struct {
	Posts        bool
	Testimonials bool
	Venues       bool
	Pricing      bool
}

// AllSections enables every optional section.
func AllSections() Sections {
	return Sections{Posts: true, Testimonials: true, Venues: true, Pricing: true}
}

// Profile is the coach profile with fallbacks applied.
type Profile struct {
	Name           string
	Bio            []portabletext.Block
	Portrait       Image
	Certifications []string
	Experience     []string
	Achievements   []string
	Specialties    []string
}

// HasBio reports whether the bio has renderable content.
func (p Profile) HasBio() bool { return portabletext.HasContent(p.Bio) }

// Hero is the homepage banner.
type Hero struct {
	Title       string
	Subtitle    string
	Description string
	Image       Image
}

// PostSummary is a blog post as listed.
type PostSummary struct {
	ID          string
	Title       string
	Slug        string
	PublishedAt time.Time
	Image       Image
	Excerpt     string
}

// HasDate reports whether the post carries a publish date.
func (p PostSummary) HasDate() bool { return !p.PublishedAt.IsZero() }

// PostDetail is a full blog post.
type PostDetail struct {
	Title       string
	Slug        string
	PublishedAt time.Time
	Image       Image
	Body        []portabletext.Block
}

// HasDate reports whether the post carries a publish date.
func (p PostDetail) HasDate() bool { return !p.PublishedAt.IsZero() }

// Testimonial is a student review.
type Testimonial struct {
	StudentName string
	Program     string
	Content     string
	Before      Image
	After       Image
}

// Venue is a partner gym.
type Venue struct {
	Region      string
	Name        string
	Address     string
	Description string
	URL         string
}

// RegionGroup holds the venues of one region in input order.
type RegionGroup struct {
	Region string
	Venues []Venue
}

// PricingTier is one price list entry. Price is shown verbatim.
type PricingTier struct {
	Title string
	Price string
	Unit  string
}

// HomeView is everything the homepage renders.
type HomeView struct {
	Hero         Hero
	Profile      Profile
	Posts        []PostSummary
	Testimonials []Testimonial
	Venues       []RegionGroup
	Pricing      []PricingTier
}
