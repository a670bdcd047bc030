package content

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/trainingken/site/internal/content/portabletext"
	"github.com/trainingken/site/internal/platform/assets/imagecdn"
	"github.com/trainingken/site/internal/platform/logging"
	"go.uber.org/zap"
)

var (
	// ErrNotFound reports a post lookup that matched no document.
	ErrNotFound = errors.New("content: not found")
	// ErrUnavailable reports a post lookup the store could not answer.
	ErrUnavailable = errors.New("content: store unavailable")
)

// Store runs a query and decodes its result into dest.
type Store interface {
	Query(ctx context.Context, query string, params map[string]any, dest any) error
}

// Options configures an Aggregator.
type Options struct {
	Sections Sections
	// CDN resolves image asset references the store did not expand.
	CDN imagecdn.CDN
	// Delivery adds resize hints to every resolved image.
	Delivery *imagecdn.Delivery
	Logger   *zap.Logger
}

// Aggregator builds page view models from store documents.
type Aggregator struct {
	store    Store
	sections Sections
	cdn      imagecdn.CDN
	delivery *imagecdn.Delivery
	logger   *zap.Logger
}

// New builds an Aggregator reading from store.
func New(store Store, opts Options) *Aggregator {
	return &Aggregator{
		store:    store,
		sections: opts.Sections,
		cdn:      opts.CDN,
		delivery: opts.Delivery,
		logger:   logging.OrNop(opts.Logger).Named("content"),
	}
}

// Sections returns the enabled homepage sections.
func (a *Aggregator) Sections() Sections { return a.sections }

// Home loads the homepage. Store failures fall back to defaults.
func (a *Aggregator) Home(ctx context.Context) HomeView {
	var raw rawHome
	if err := a.query(ctx, HomeQuery(a.sections), nil, &raw); err != nil {
		a.logger.Warn("homepage query failed, rendering fallbacks", zap.Error(err))
		raw = rawHome{}
	}
	view := HomeView{
		Hero:    a.hero(raw.Homepage),
		Profile: a.profile(raw.Profile),
	}
	if a.sections.Posts {
		view.Posts = a.summaries(raw.Posts, homePostLimit)
	}
	if a.sections.Testimonials {
		view.Testimonials = a.testimonials(raw.Testimonials)
	}
	if a.sections.Venues {
		view.Venues = GroupVenues(venues(raw.Venues))
	}
	if a.sections.Pricing {
		view.Pricing = pricing(raw.Pricing)
	}
	return view
}

// Posts lists every post newest first. Store failures yield no posts.
func (a *Aggregator) Posts(ctx context.Context) []PostSummary {
	var raw []rawPost
	if err := a.query(ctx, PostsQuery(), nil, &raw); err != nil {
		a.logger.Warn("post listing query failed", zap.Error(err))
		return nil
	}
	return a.summaries(raw, 0)
}

// Post loads one post by slug.
func (a *Aggregator) Post(ctx context.Context, slug string) (PostDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return PostDetail{}, ErrNotFound
	}
	var raw *rawPost
	if err := a.query(ctx, PostQuery(), map[string]any{"slug": slug}, &raw); err != nil {
		a.logger.Warn("post query failed", zap.String("slug", slug), zap.Error(err))
		return PostDetail{}, fmt.Errorf("load post %q: %w: %w", slug, ErrUnavailable, err)
	}
	if raw == nil {
		return PostDetail{}, ErrNotFound
	}
	detail := PostDetail{
		Title:       strings.TrimSpace(raw.Title),
		Slug:        orDefault(raw.Slug, slug),
		PublishedAt: parseTime(raw.PublishedAt),
		Image:       a.image(raw.MainImage),
		Body:        a.resolveBody(raw.Body),
	}
	return detail, nil
}

func (a *Aggregator) query(ctx context.Context, query string, params map[string]any, dest any) error {
	if a.store == nil {
		return errors.New("content: no store configured")
	}
	return a.store.Query(ctx, query, params, dest)
}

func (a *Aggregator) hero(raw *rawHomepage) Hero {
	if raw == nil {
		raw = &rawHomepage{}
	}
	return Hero{
		Title:       orDefault(raw.HeroTitle, DefaultHeroTitle),
		Subtitle:    orDefault(raw.HeroSubtitle, DefaultHeroSubtitle),
		Description: orDefault(raw.HeroDescription, DefaultHeroDescription),
		Image:       a.image(raw.HeroImage),
	}
}

func (a *Aggregator) profile(raw *rawProfile) Profile {
	if raw == nil {
		raw = &rawProfile{}
	}
	return Profile{
		Name:           strings.TrimSpace(raw.Name),
		Bio:            raw.Bio,
		Portrait:       a.image(raw.Portrait),
		Certifications: cleanList(raw.Certifications, DefaultCertifications),
		Experience:     cleanList(raw.Experience, DefaultExperience),
		Achievements:   cleanList(raw.Achievements, DefaultAchievements),
		Specialties:    cleanList(raw.Specialties, DefaultSpecialties),
	}
}

func (a *Aggregator) summaries(raw []rawPost, limit int) []PostSummary {
	out := make([]PostSummary, 0, len(raw))
	for _, p := range raw {
		slug := strings.TrimSpace(p.Slug)
		if slug == "" {
			continue
		}
		out = append(out, PostSummary{
			ID:          p.ID,
			Title:       strings.TrimSpace(p.Title),
			Slug:        slug,
			PublishedAt: parseTime(p.PublishedAt),
			Image:       a.image(p.MainImage),
			Excerpt:     Excerpt(p.Body),
		})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (a *Aggregator) testimonials(raw []rawTestimonial) []Testimonial {
	out := make([]Testimonial, 0, len(raw))
	for _, t := range raw {
		out = append(out, Testimonial{
			StudentName: strings.TrimSpace(t.StudentName),
			Program:     strings.TrimSpace(t.Program),
			Content:     strings.TrimSpace(t.Content),
			Before:      a.image(t.BeforeImage),
			After:       a.image(t.AfterImage),
		})
		if len(out) == homeTestimonialLimit {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func venues(raw []rawVenue) []Venue {
	out := make([]Venue, 0, len(raw))
	for _, v := range raw {
		out = append(out, Venue{
			Region:      strings.TrimSpace(v.Area),
			Name:        strings.TrimSpace(v.Name),
			Address:     strings.TrimSpace(v.Address),
			Description: strings.TrimSpace(v.Description),
			URL:         strings.TrimSpace(v.URL),
		})
	}
	return out
}

// pricing orders tiers by ascending order with unordered tiers last.
func pricing(raw []rawPricing) []PricingTier {
	if len(raw) == 0 {
		return nil
	}
	sorted := slices.Clone(raw)
	slices.SortStableFunc(sorted, func(x, y rawPricing) int {
		switch {
		case x.Order == nil && y.Order == nil:
			return 0
		case x.Order == nil:
			return 1
		case y.Order == nil:
			return -1
		case *x.Order < *y.Order:
			return -1
		case *x.Order > *y.Order:
			return 1
		default:
			return 0
		}
	})
	out := make([]PricingTier, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, PricingTier{
			Title: strings.TrimSpace(p.Title),
			Price: strings.TrimSpace(p.Price),
			Unit:  strings.TrimSpace(p.Unit),
		})
	}
	return out
}

// image prefers the URL the store expanded and falls back to decoding the
// asset reference. Malformed references yield no image.
func (a *Aggregator) image(raw *rawImage) Image {
	if raw == nil {
		return Image{}
	}
	if u := strings.TrimSpace(raw.URL); u != "" {
		return Image{URL: imagecdn.ApplyDelivery(u, a.delivery)}
	}
	if u, ok := a.cdn.ResolveRef(raw.Ref, a.delivery); ok {
		return Image{URL: u}
	}
	return Image{}
}

// resolveBody fills the URL of inline image blocks so rendering needs no
// store access.
func (a *Aggregator) resolveBody(blocks []portabletext.Block) []portabletext.Block {
	if len(blocks) == 0 {
		return nil
	}
	out := slices.Clone(blocks)
	for i, b := range out {
		if b.Type != portabletext.TypeImage || b.Asset == nil {
			continue
		}
		img := a.image(&rawImage{URL: b.Asset.URL, Ref: b.Asset.Ref})
		asset := *b.Asset
		asset.URL = img.URL
		out[i].Asset = &asset
	}
	return out
}
