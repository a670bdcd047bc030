package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/trainingken/site/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultAPIVersion pins the query API date version.
	DefaultAPIVersion = "2024-01-01"

	tracerName   = "github.com/trainingken/site/internal/sanity"
	maxErrorBody = 64 << 10
)

// ErrNotConfigured reports a client without project or dataset.
var ErrNotConfigured = errors.New("sanity: project id and dataset are required")

// CacheMode selects which query host serves reads.
type CacheMode int

const (
	// FetchFresh reads from the live API and asks intermediaries not to cache.
	FetchFresh CacheMode = iota
	// UseCDN reads from the cached API CDN.
	UseCDN
)

// Config holds client connection settings.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	// Token authorizes reads from private datasets.
	Token string
	Cache CacheMode
	// BaseURL overrides the derived API host, mainly for tests.
	BaseURL    string
	HTTPClient *http.Client
}

// Client queries one project dataset.
type Client struct {
	projectID  string
	dataset    string
	apiVersion string
	token      string
	cache      CacheMode
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// ResponseError is a non-2xx answer from the query endpoint.
type ResponseError struct {
	StatusCode  int
	Type        string
	Description string
}

func (e *ResponseError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("sanity: query failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("sanity: query failed with status %d: %s", e.StatusCode, e.Description)
}

type envelope struct {
	Result json.RawMessage `json:"result"`
	Ms     int             `json:"ms"`
}

type errorEnvelope struct {
	Error struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	} `json:"error"`
	Message string `json:"message"`
}

// New builds a client. An incomplete config still yields a client whose
// queries fail with ErrNotConfigured.
func New(cfg Config) *Client {
	apiVersion := strings.TrimPrefix(strings.TrimSpace(cfg.APIVersion), "v")
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.StoreQuery}
	}
	return &Client{
		projectID:  strings.TrimSpace(cfg.ProjectID),
		dataset:    strings.TrimSpace(cfg.Dataset),
		apiVersion: apiVersion,
		token:      strings.TrimSpace(cfg.Token),
		cache:      cfg.Cache,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		httpClient: httpClient,
		tracer:     otel.Tracer(tracerName),
	}
}

// ProjectID returns the configured project identifier.
func (c *Client) ProjectID() string { return c.projectID }

// Dataset returns the configured dataset name.
func (c *Client) Dataset() string { return c.dataset }

// Query runs a GROQ query and decodes its result into dest.
//
// Params are sent as "$name" query parameters with JSON-encoded values. A
// null result leaves dest untouched.
func (c *Client) Query(ctx context.Context, query string, params map[string]any, dest any) (err error) {
	if c == nil || c.projectID == "" || c.dataset == "" {
		return ErrNotConfigured
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := c.tracer.Start(ctx, "sanity.query",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("sanity.project", c.projectID),
			attribute.String("sanity.dataset", c.dataset),
			attribute.Int("sanity.params", len(params)),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	endpoint, err := c.queryURL(query, params)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("sanity: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cache == FetchFresh {
		req.Header.Set("Cache-Control", "no-cache")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sanity: send query: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("sanity: decode envelope: %w", err)
	}
	span.SetAttributes(attribute.Int("sanity.ms", env.Ms))
	if dest == nil || len(env.Result) == 0 || string(env.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Result, dest); err != nil {
		return fmt.Errorf("sanity: decode result: %w", err)
	}
	return nil
}

func (c *Client) queryURL(query string, params map[string]any) (string, error) {
	base := c.baseURL
	if base == "" {
		host := "api.sanity.io"
		if c.cache == UseCDN {
			host = "apicdn.sanity.io"
		}
		base = "https://" + c.projectID + "." + host
	}
	values := url.Values{}
	values.Set("query", query)

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		encoded, err := json.Marshal(params[name])
		if err != nil {
			return "", fmt.Errorf("sanity: encode param %q: %w", name, err)
		}
		values.Set("$"+strings.TrimPrefix(name, "$"), string(encoded))
	}
	return base + "/v" + c.apiVersion + "/data/query/" + url.PathEscape(c.dataset) + "?" + values.Encode(), nil
}

func decodeError(resp *http.Response) error {
	respErr := &ResponseError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return respErr
	}
	var payload errorEnvelope
	if err := json.Unmarshal(body, &payload); err != nil {
		respErr.Description = strings.TrimSpace(string(body))
		return respErr
	}
	respErr.Type = payload.Error.Type
	respErr.Description = payload.Error.Description
	if respErr.Description == "" {
		respErr.Description = payload.Message
	}
	return respErr
}
