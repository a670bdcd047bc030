package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/trainingken/site/internal/content"
	"github.com/trainingken/site/internal/content/portabletext"
	"github.com/trainingken/site/internal/platform/markup"
	"github.com/trainingken/site/internal/services/web/routepath"
)

// HomePage renders the marketing homepage body.
func HomePage(pc PageContext, view content.HomeView) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		homeHero(m, pc, view.Hero)
		homeAbout(ctx, m, pc, view.Profile)
		homeServices(m, pc)
		if len(view.Pricing) > 0 {
			homePricing(m, pc, view.Pricing)
		}
		if len(view.Venues) > 0 {
			homeVenues(m, pc, view.Venues)
		}
		if len(view.Testimonials) > 0 {
			homeTestimonials(m, pc, view.Testimonials)
		}
		if len(view.Posts) > 0 {
			homeBlog(m, pc, view.Posts)
		}
		homeMedia(m, pc)
		homeFooter(m, pc)
	})
}

func homeHero(m *markup.Writer, pc PageContext, hero content.Hero) {
	loc := pc.Loc
	if hero.Image.Present() {
		m.Raw(`<section class="hero hero-image"`)
		m.Attr("style", "background-image: url('"+string(templ.URL(hero.Image.URL))+"')")
		m.Raw(">")
	} else {
		m.Open("section", "hero")
	}
	m.Open("div", "container hero-grid")

	m.Open("div", "hero-copy")
	m.Elem("h1", "hero-title", hero.Title)
	m.Elem("p", "hero-subtitle", hero.Subtitle)
	m.Elem("p", "hero-description", hero.Description)
	m.Open("div", "hero-actions")
	if pc.Site.BookingURL != "" {
		m.ExternalLink("btn btn-primary", pc.Site.BookingURL, T(loc, "home.cta.book"))
	}
	m.Link("btn btn-ghost", routepath.Services, T(loc, "home.cta.services"))
	m.Close("div")
	m.Elem("p", "hero-area", T(loc, "home.service_area"))
	m.Close("div")

	m.Open("div", "hero-cards")
	m.Open("div", "card")
	m.Elem("h2", "card-title", T(loc, "home.audience.title"))
	list(m, "check-list", []string{
		T(loc, "home.audience.office"),
		T(loc, "home.audience.beginner"),
		T(loc, "home.audience.returning"),
		T(loc, "home.audience.senior"),
	})
	m.Close("div")
	m.Open("div", "card")
	m.Elem("h2", "card-title", T(loc, "home.main.title"))
	list(m, "check-list", []string{
		T(loc, "home.main.private"),
		T(loc, "home.main.group"),
		T(loc, "home.main.online"),
	})
	m.Elem("p", "card-note", T(loc, "home.main.note"))
	m.Close("div")
	m.Close("div")

	m.Close("div")
	m.Close("section")
}

func homeAbout(ctx context.Context, m *markup.Writer, pc PageContext, profile content.Profile) {
	loc := pc.Loc
	m.Raw(`<section id="about" class="section">`)
	m.Open("div", "container about-grid")

	m.Open("div", "about-portrait")
	if profile.Portrait.Present() {
		m.Img("portrait", profile.Portrait.URL, T(loc, "home.about.portrait_alt"))
	} else {
		m.Elem("div", "portrait-placeholder", T(loc, "home.about.portrait_placeholder"))
	}
	m.Close("div")

	m.Open("div", "about-copy")
	m.Elem("h2", "section-title", T(loc, "home.about.title"))
	m.Open("div", "prose")
	if profile.HasBio() {
		m.Render(ctx, portabletext.Render(profile.Bio, portabletext.ProseRules()))
	} else {
		m.Elem("p", "placeholder", T(loc, "home.about.bio_placeholder"))
	}
	m.Close("div")

	m.Raw(`<details class="resume" open>`)
	m.Elem("summary", "", T(loc, "home.about.resume"))
	m.Open("div", "resume-grid")
	resumeList(m, T(loc, "home.about.certifications"), profile.Certifications)
	resumeList(m, T(loc, "home.about.experience"), profile.Experience)
	resumeList(m, T(loc, "home.about.achievements"), profile.Achievements)
	m.Close("div")
	m.Raw("</details>")

	m.Elem("h3", "specialties-title", T(loc, "home.about.specialties"))
	m.Open("div", "tags")
	for _, specialty := range profile.Specialties {
		m.Elem("span", "tag", specialty)
	}
	m.Close("div")
	m.Close("div")

	m.Close("div")
	m.Close("section")
}

func resumeList(m *markup.Writer, title string, items []string) {
	m.Open("div", "resume-block")
	m.Elem("h3", "resume-title", title)
	list(m, "resume-list", items)
	m.Close("div")
}

func list(m *markup.Writer, class string, items []string) {
	m.Open("ul", class)
	for _, item := range items {
		m.Elem("li", "", item)
	}
	m.Close("ul")
}

func homeServices(m *markup.Writer, pc PageContext) {
	loc := pc.Loc
	m.Raw(`<section id="services" class="section section-alt">`)
	m.Open("div", "container")
	m.Elem("h2", "section-title", T(loc, "home.services.title"))
	m.Open("div", "card-grid")
	for _, key := range []string{"private", "group", "online"} {
		m.Open("div", "card service-card")
		m.Elem("h3", "card-title", T(loc, "home.services."+key+".title"))
		m.Elem("p", "", T(loc, "home.services."+key+".body"))
		m.Close("div")
	}
	m.Close("div")

	m.Open("div", "card location")
	m.Elem("h3", "card-title", T(loc, "home.location.title"))
	list(m, "check-list", []string{
		T(loc, "home.location.partner"),
		T(loc, "home.location.rental"),
		T(loc, "home.location.either"),
	})
	if pc.Site.BookingURL != "" {
		m.ExternalLink("btn btn-primary", pc.Site.BookingURL, T(loc, "home.cta.book"))
	}
	m.Close("div")

	m.Close("div")
	m.Close("section")
}

func homePricing(m *markup.Writer, pc PageContext, tiers []content.PricingTier) {
	m.Raw(`<section id="pricing" class="section">`)
	m.Open("div", "container")
	m.Elem("h2", "section-title", T(pc.Loc, "home.pricing.title"))
	m.Open("div", "card-grid")
	for _, tier := range tiers {
		m.Open("div", "card price-card")
		m.Elem("h3", "card-title", tier.Title)
		m.Open("p", "price")
		m.Text(tier.Price)
		if tier.Unit != "" {
			m.Elem("span", "price-unit", " / "+tier.Unit)
		}
		m.Close("p")
		m.Close("div")
	}
	m.Close("div")
	m.Close("div")
	m.Close("section")
}

func homeVenues(m *markup.Writer, pc PageContext, groups []content.RegionGroup) {
	m.Raw(`<section id="venues" class="section section-alt">`)
	m.Open("div", "container")
	m.Elem("h2", "section-title", T(pc.Loc, "home.venues.title"))
	for _, group := range groups {
		m.Open("div", "region")
		m.Elem("h3", "region-title", group.Region)
		m.Open("div", "card-grid")
		for _, venue := range group.Venues {
			m.Open("div", "card venue-card")
			m.Elem("h4", "card-title", venue.Name)
			if venue.Address != "" {
				m.Elem("p", "venue-address", venue.Address)
			}
			if venue.Description != "" {
				m.Elem("p", "venue-description", venue.Description)
			}
			if venue.URL != "" {
				m.ExternalLink("venue-link", venue.URL, T(pc.Loc, "home.venues.link"))
			}
			m.Close("div")
		}
		m.Close("div")
		m.Close("div")
	}
	m.Close("div")
	m.Close("section")
}

func homeTestimonials(m *markup.Writer, pc PageContext, testimonials []content.Testimonial) {
	loc := pc.Loc
	m.Raw(`<section id="testimonials" class="section">`)
	m.Open("div", "container")
	m.Elem("h2", "section-title", T(loc, "home.testimonials.title"))
	m.Open("div", "card-grid")
	for _, item := range testimonials {
		m.Open("div", "card testimonial")
		if item.Before.Present() || item.After.Present() {
			m.Open("div", "before-after")
			beforeAfter(m, item.Before, T(loc, "home.testimonials.before"))
			beforeAfter(m, item.After, T(loc, "home.testimonials.after"))
			m.Close("div")
		}
		m.Elem("p", "testimonial-content", item.Content)
		m.Open("p", "testimonial-author")
		m.Text(item.StudentName)
		if item.Program != "" {
			m.Elem("span", "testimonial-program", item.Program)
		}
		m.Close("p")
		m.Close("div")
	}
	m.Close("div")
	m.Close("div")
	m.Close("section")
}

func beforeAfter(m *markup.Writer, image content.Image, label string) {
	if !image.Present() {
		return
	}
	m.Open("figure", "ba-figure")
	m.Img("ba-image", image.URL, label)
	m.Elem("figcaption", "", label)
	m.Close("figure")
}

func homeBlog(m *markup.Writer, pc PageContext, posts []content.PostSummary) {
	m.Raw(`<section id="blog" class="section section-alt">`)
	m.Open("div", "container")
	m.Elem("h2", "section-title", T(pc.Loc, "home.blog.title"))
	m.Open("div", "card-grid")
	for _, post := range posts {
		postCard(m, pc, post)
	}
	m.Close("div")
	m.Open("div", "section-more")
	m.Link("btn btn-ghost", routepath.Blog, T(pc.Loc, "home.blog.more"))
	m.Close("div")
	m.Close("div")
	m.Close("section")
}

func homeMedia(m *markup.Writer, pc PageContext) {
	loc := pc.Loc
	site := pc.Site
	m.Raw(`<section id="media" class="section">`)
	m.Open("div", "container media-grid")
	if site.YouTubeEmbedURL != "" {
		m.Open("div", "video")
		m.Raw("<iframe")
		m.URL("src", site.YouTubeEmbedURL)
		m.Attr("title", T(loc, "home.media.youtube"))
		m.Raw(` allowfullscreen loading="lazy"></iframe>`)
		m.Close("div")
	}
	m.Open("div", "media-copy")
	m.Elem("h2", "section-title", T(loc, "home.media.title"))
	m.Elem("p", "", T(loc, "home.media.intro"))
	m.Open("p", "media-follow")
	m.Text(T(loc, "home.media.follow"))
	if site.InstagramURL != "" {
		m.ExternalLink("social-link", site.InstagramURL, T(loc, "home.media.instagram"))
	}
	if site.FacebookURL != "" {
		m.ExternalLink("social-link", site.FacebookURL, T(loc, "home.media.facebook"))
	}
	m.Close("p")
	if site.BookingURL != "" {
		m.ExternalLink("btn btn-primary", site.BookingURL, T(loc, "home.media.book"))
	}
	m.Close("div")
	m.Close("div")
	m.Close("section")
}

func homeFooter(m *markup.Writer, pc PageContext) {
	loc := pc.Loc
	m.Open("section", "home-footer")
	m.Open("div", "container footer-grid")
	m.Open("div", "")
	m.Elem("p", "footer-brand", T(loc, "home.footer.brand", strconv.Itoa(pc.Year)))
	if pc.Site.BookingURL != "" {
		m.ExternalLink("footer-link", pc.Site.BookingURL, T(loc, "home.cta.book"))
	}
	m.Close("div")
	m.Open("div", "")
	m.Elem("h3", "footer-title", T(loc, "home.footer.area_title"))
	m.Elem("p", "", T(loc, "home.footer.area"))
	m.Close("div")
	m.Close("div")
	m.Close("section")
}
