package content

import (
	"strings"
	"time"

	"github.com/trainingken/site/internal/content/portabletext"
)

// Raw records mirror the query projections. Every field may be absent.

type rawImage struct {
	URL string `json:"url"`
	Ref string `json:"ref"`
}

type rawProfile struct {
	Name           string               `json:"name"`
	Bio            []portabletext.Block `json:"bio"`
	Portrait       *rawImage            `json:"portrait"`
	Certifications []string             `json:"certifications"`
	Experience     []string             `json:"experience"`
	Achievements   []string             `json:"achievements"`
	Specialties    []string             `json:"specialties"`
}

type rawHomepage struct {
	HeroTitle       string    `json:"heroTitle"`
	HeroSubtitle    string    `json:"heroSubtitle"`
	HeroDescription string    `json:"heroDescription"`
	HeroImage       *rawImage `json:"heroImage"`
}

type rawPost struct {
	ID          string               `json:"_id"`
	Title       string               `json:"title"`
	Slug        string               `json:"slug"`
	PublishedAt string               `json:"publishedAt"`
	MainImage   *rawImage            `json:"mainImage"`
	Body        []portabletext.Block `json:"body"`
}

type rawTestimonial struct {
	ID          string    `json:"_id"`
	StudentName string    `json:"studentName"`
	Program     string    `json:"program"`
	Content     string    `json:"content"`
	BeforeImage *rawImage `json:"beforeImage"`
	AfterImage  *rawImage `json:"afterImage"`
}

type rawVenue struct {
	ID          string `json:"_id"`
	Area        string `json:"area"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type rawPricing struct {
	ID    string   `json:"_id"`
	Title string   `json:"title"`
	Price string   `json:"price"`
	Unit  string   `json:"unit"`
	Order *float64 `json:"order"`
}

type rawHome struct {
	Profile      *rawProfile      `json:"profile"`
	Homepage     *rawHomepage     `json:"homepage"`
	Posts        []rawPost        `json:"posts"`
	Testimonials []rawTestimonial `json:"testimonials"`
	Venues       []rawVenue       `json:"venues"`
	Pricing      []rawPricing     `json:"pricing"`
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

// cleanList drops blank entries, falling back when nothing remains.
func cleanList(values []string, fallback func() []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return fallback()
	}
	return out
}

// parseTime accepts RFC 3339 timestamps and plain dates. Anything else is
// treated as no date.
func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
