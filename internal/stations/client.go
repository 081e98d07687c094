package stations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nlrail/ns-stations/internal/constants"
	"github.com/ubuntu/decorate"
)

var (
	// ErrEmptyAPIKey is returned when the passed API key is incorrectly an empty string.
	ErrEmptyAPIKey = errors.New("API key cannot be an empty string")
	// ErrStatus is returned when the server answered with a non-2xx status code.
	ErrStatus = errors.New("HTTP error status")
	// ErrTransport is returned when the request could not be sent or completed.
	ErrTransport = errors.New("request error")
	// ErrDecode is returned when the response body is not a valid stations payload.
	ErrDecode = errors.New("malformed response body")
)

// Client queries the NS stations endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type options struct {
	// Private members exported for tests.
	baseURL string
	timeout time.Duration
}

// Options represents an optional function to override Client default values.
type Options func(*options)

// WithBaseURL overrides the stations endpoint URL.
func WithBaseURL(u string) Options {
	return func(o *options) {
		o.baseURL = u
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Options {
	return func(o *options) {
		o.timeout = d
	}
}

// New returns a new stations Client authenticating with apiKey.
func New(apiKey string, args ...Options) (Client, error) {
	if apiKey == "" {
		return Client{}, ErrEmptyAPIKey
	}

	opts := options{
		baseURL: constants.DefaultBaseURL,
		timeout: constants.DefaultTimeout,
	}
	for _, opt := range args {
		opt(&opts)
	}

	return Client{
		baseURL:    opts.baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: opts.timeout},
	}, nil
}

// Filters restricts the set of stations returned by Fetch.
// Zero values are omitted from the request.
type Filters struct {
	Query               string
	IncludeNonPlannable bool
	CountryCodes        string
	Limit               int
}

// Fetch performs a single GET against the stations endpoint and returns the
// decoded response. It does not retry; any failure is reported through one of
// the ErrTransport, ErrStatus or ErrDecode sentinels and a nil response.
func (c Client) Fetch(ctx context.Context, f Filters) (_ *Response, err error) {
	defer decorate.OnError(&err, "could not fetch stations")

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL %s: %v", c.baseURL, err)
	}

	q := url.Values{}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.IncludeNonPlannable {
		// The API expects the literal string "true", and the parameter must be
		// absent entirely when false.
		q.Set("includeNonPlannableStations", "true")
	}
	if f.CountryCodes != "" {
		q.Set("countryCodes", f.CountryCodes)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	u.RawQuery = q.Encode()

	slog.Debug("Fetching stations", "url", u.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Join(ErrTransport, fmt.Errorf("failed to create request: %v", err))
	}
	req.Header.Set(constants.SubscriptionKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransport, fmt.Errorf("failed to send HTTP request: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Join(ErrStatus, fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	var r Response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, errors.Join(ErrDecode, fmt.Errorf("failed to decode response body: %v", err))
	}

	slog.Debug("Fetched stations", "count", len(r.Payload))
	return &r, nil
}
