package content

import (
	"fmt"
	"strings"
)

// image projects an image field into its CDN URL and raw asset reference.
func image(alias, field string) string {
	return fmt.Sprintf(`"%s": {"url": %s.asset->url, "ref": %s.asset._ref}`, alias, field, field)
}

// bodyProjection attaches asset URLs to inline image blocks.
const bodyProjection = `body[]{..., _type == "image" => {..., "asset": {"_ref": asset._ref, "url": asset->url}}}`

func profileQuery() string {
	return fmt.Sprintf(`*[_type == %q][0] {
    name,
    bio,
    %s,
    certifications,
    experience,
    achievements,
    specialties
  }`, TypeProfile, image("portrait", "portrait"))
}

func homepageQuery() string {
	return fmt.Sprintf(`*[_type == %q][0] {
    heroTitle,
    heroSubtitle,
    heroDescription,
    %s
  }`, TypeHomepage, image("heroImage", "heroImage"))
}

func postsQuery(limit int) string {
	slice := ""
	if limit > 0 {
		slice = fmt.Sprintf("[0...%d]", limit)
	}
	return fmt.Sprintf(`*[_type == %q && defined(slug.current)] | order(publishedAt desc)%s {
    _id,
    title,
    "slug": slug.current,
    publishedAt,
    %s,
    body
  }`, TypePost, slice, image("mainImage", "mainImage"))
}

func testimonialsQuery(limit int) string {
	return fmt.Sprintf(`*[_type == %q] | order(_createdAt desc)[0...%d] {
    _id,
    studentName,
    program,
    content,
    %s,
    %s
  }`, TypeTestimonial, limit, image("beforeImage", "beforeImage"), image("afterImage", "afterImage"))
}

func venuesQuery() string {
	return fmt.Sprintf(`*[_type == %q] | order(_createdAt asc) {
    _id,
    area,
    name,
    address,
    description,
    url
  }`, TypeVenue)
}

func pricingQuery() string {
	return fmt.Sprintf(`*[_type == %q] | order(order asc) {
    _id,
    title,
    price,
    unit,
    order
  }`, TypePricing)
}

// HomeQuery builds the composite homepage query for the enabled sections.
func HomeQuery(sections Sections) string {
	parts := []string{
		`"profile": ` + profileQuery(),
		`"homepage": ` + homepageQuery(),
	}
	if sections.Posts {
		parts = append(parts, `"posts": `+postsQuery(homePostLimit))
	}
	if sections.Testimonials {
		parts = append(parts, `"testimonials": `+testimonialsQuery(homeTestimonialLimit))
	}
	if sections.Venues {
		parts = append(parts, `"venues": `+venuesQuery())
	}
	if sections.Pricing {
		parts = append(parts, `"pricing": `+pricingQuery())
	}
	return "{\n  " + strings.Join(parts, ",\n  ") + "\n}"
}

// PostsQuery lists every post newest first.
func PostsQuery() string { return postsQuery(0) }

// PostQuery fetches one post by the $slug parameter.
func PostQuery() string {
	return fmt.Sprintf(`*[_type == %q && slug.current == $slug][0] {
    title,
    "slug": slug.current,
    publishedAt,
    %s,
    %s
  }`, TypePost, image("mainImage", "mainImage"), bodyProjection)
}
