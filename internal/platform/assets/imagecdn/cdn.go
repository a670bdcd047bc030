// Package imagecdn resolves uploaded image asset references into CDN URLs.
//
// Asset references arrive from the content store in the form
// "image-<assetID>-<width>x<height>-<ext>". The CDN serves the file at
// "<base>/<assetID>-<width>x<height>.<ext>" and accepts delivery hints as
// query parameters.
package imagecdn

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	sanityCDNHost = "https://cdn.sanity.io/images"
	refPrefix     = "image"
)

var (
	// ErrAssetIDRequired reports a request without an asset id.
	ErrAssetIDRequired = errors.New("imagecdn: asset id is required")
	// ErrMalformedRef reports a reference that does not split into
	// prefix, asset id, dimensions and extension.
	ErrMalformedRef = errors.New("imagecdn: malformed asset reference")
)

// Request identifies one image file and how it should be delivered.
type Request struct {
	AssetID    string
	Dimensions string
	Extension  string
	Delivery   *Delivery
}

// Delivery carries optional resize and format hints.
type Delivery struct {
	WidthPX    int
	AutoFormat bool
}

// CDN builds image URLs under one base path.
type CDN struct {
	baseURL string
}

// New returns a CDN rooted at baseURL.
func New(baseURL string) CDN {
	return CDN{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// BaseURL returns the configured base path. A zero CDN has none.
func (c CDN) BaseURL() string { return c.baseURL }

// SanityBaseURL returns the image CDN base for a project dataset.
func SanityBaseURL(projectID, dataset string) string {
	return sanityCDNHost + "/" + strings.TrimSpace(projectID) + "/" + strings.TrimSpace(dataset)
}

// URL renders the CDN URL for req.
func (c CDN) URL(req Request) (string, error) {
	assetID := strings.TrimSpace(req.AssetID)
	if assetID == "" {
		return "", ErrAssetIDRequired
	}
	name := assetID
	if dims := strings.TrimSpace(req.Dimensions); dims != "" {
		name += "-" + dims
	}
	if ext := strings.TrimPrefix(strings.TrimSpace(req.Extension), "."); ext != "" {
		name += "." + ext
	}
	return ApplyDelivery(c.baseURL+"/"+name, req.Delivery), nil
}

// ResolveRef parses ref and renders its URL. A malformed reference reports
// false so callers can omit the image.
func (c CDN) ResolveRef(ref string, delivery *Delivery) (string, bool) {
	if c.baseURL == "" {
		return "", false
	}
	req, err := ParseRef(ref)
	if err != nil {
		return "", false
	}
	req.Delivery = delivery
	u, err := c.URL(req)
	if err != nil {
		return "", false
	}
	return u, true
}

// ParseRef splits an asset reference into its file components.
func ParseRef(ref string) (Request, error) {
	parts := strings.Split(strings.TrimSpace(ref), "-")
	if len(parts) != 4 || parts[0] != refPrefix {
		return Request{}, fmt.Errorf("%w: %q", ErrMalformedRef, ref)
	}
	for _, part := range parts[1:] {
		if part == "" {
			return Request{}, fmt.Errorf("%w: %q", ErrMalformedRef, ref)
		}
	}
	return Request{AssetID: parts[1], Dimensions: parts[2], Extension: parts[3]}, nil
}

// ApplyDelivery appends delivery hints to an image URL. URLs that fail to
// parse are returned unchanged.
func ApplyDelivery(rawURL string, delivery *Delivery) string {
	if delivery == nil || (delivery.WidthPX <= 0 && !delivery.AutoFormat) {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if delivery.WidthPX > 0 {
		q.Set("w", strconv.Itoa(delivery.WidthPX))
	}
	if delivery.AutoFormat {
		q.Set("auto", "format")
	}
	u.RawQuery = q.Encode()
	return u.String()
}
