package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"solar-optimizer/internal/model"
	"solar-optimizer/pkg/logger"
)

const DefaultArchiveURL = "https://archive-api.open-meteo.com/v1/archive"

// Client fetches hourly historical weather from the Open-Meteo archive API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	// Cache is optional; nil disables caching.
	Cache  Cache
	Logger *slog.Logger
}

// NewClient creates a client. An empty baseURL uses the public archive endpoint.
func NewClient(baseURL string, cache Cache, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultArchiveURL
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		Cache:      cache,
		Logger:     log,
	}
}

// ArchiveParams selects one location and an inclusive date range.
type ArchiveParams struct {
	Location model.Location
	Range    model.DateRange
}

// Error codes carried by FetchError.
const (
	CodeAPIError         = "API_ERROR"
	CodeRateLimited      = "RATE_LIMITED"
	CodeTransportError   = "TRANSPORT_ERROR"
	CodeMalformedPayload = "MALFORMED_PAYLOAD"
)

// FetchError is any failure to obtain a usable weather series: a non-2xx
// status, a transport failure, or a payload that cannot be trusted.
type FetchError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *FetchError) Unwrap() error { return e.Err }

// providerError is the body Open-Meteo returns on 4xx.
type providerError struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// FetchArchive fetches and validates the raw archive payload. Responses are
// cached only after they pass validation.
func (c *Client) FetchArchive(ctx context.Context, params ArchiveParams) (*model.ArchiveResponse, error) {
	if err := params.Location.Validate(); err != nil {
		return nil, err
	}
	if err := params.Range.Validate(); err != nil {
		return nil, err
	}

	key := GenerateCacheKey(params)
	if c.Cache != nil {
		if cached, ok := c.Cache.Get(ctx, key); ok {
			c.Logger.Info("weather cache hit",
				"lat", params.Location.Latitude, "lon", params.Location.Longitude,
				"start", params.Range.StartString(), "end", params.Range.EndString(),
				"hours", len(cached.Hourly.Time))
			return cached, nil
		}
	}

	u, err := c.archiveURL(params)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.Logger.Info("weather request",
		"lat", params.Location.Latitude, "lon", params.Location.Longitude,
		"start", params.Range.StartString(), "end", params.Range.EndString())

	started := time.Now()
	resp, err := c.HTTPClient.Do(req)
	duration := time.Since(started)
	if err != nil {
		c.Logger.Error("weather request failed", "error", err, "duration", duration)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &FetchError{Code: CodeTransportError, Message: "weather request failed", Err: err}
	}
	defer resp.Body.Close()

	c.Logger.Info("weather response", "status", resp.StatusCode, "duration", duration)

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var result model.ArchiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.Logger.Error("weather payload decode failed", "error", err)
		return nil, &FetchError{StatusCode: resp.StatusCode, Code: CodeMalformedPayload, Message: "cannot decode weather payload", Err: err}
	}
	if _, err := result.Samples(); err != nil {
		c.Logger.Error("weather payload rejected", "error", err)
		return nil, &FetchError{StatusCode: resp.StatusCode, Code: CodeMalformedPayload, Message: "inconsistent weather payload", Err: err}
	}
	if n, want := len(result.Hourly.Time), params.Range.Hours(); n != want {
		// DST transitions or a partially published last day; accepted as-is.
		c.Logger.Warn("weather hour count differs from range", "hours", n, "expected", want)
	}

	if c.Cache != nil {
		c.Cache.Set(ctx, key, &result)
	}
	return &result, nil
}

// FetchSamples fetches the archive and resolves it into weather samples.
func (c *Client) FetchSamples(ctx context.Context, params ArchiveParams) ([]model.WeatherSample, error) {
	resp, err := c.FetchArchive(ctx, params)
	if err != nil {
		return nil, err
	}
	samples, err := resp.Samples()
	if err != nil {
		return nil, &FetchError{Code: CodeMalformedPayload, Message: "inconsistent weather payload", Err: err}
	}
	return samples, nil
}

func (c *Client) archiveURL(params ArchiveParams) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%.6f", params.Location.Latitude))
	q.Set("longitude", fmt.Sprintf("%.6f", params.Location.Longitude))
	q.Set("start_date", params.Range.StartString())
	q.Set("end_date", params.Range.EndString())
	q.Set("hourly", strings.Join(model.HourlyFields, ","))
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func statusError(resp *http.Response) *FetchError {
	e := &FetchError{
		StatusCode: resp.StatusCode,
		Code:       CodeAPIError,
		Message:    fmt.Sprintf("weather API returned status %d", resp.StatusCode),
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		e.Code = CodeRateLimited
		e.Message = "weather API rate limit exceeded"
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var pe providerError
	if json.Unmarshal(body, &pe) == nil && pe.Reason != "" {
		e.Message += ": " + pe.Reason
	}
	return e
}
