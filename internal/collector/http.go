package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"Jyotish/internal/model"
)

// HTTPSource fetches positions from an upstream ephemeris REST API.
type HTTPSource struct {
	BaseURL       string
	APIKey        string
	Client        *http.Client
	MaxRetries    uint
	RetryInterval time.Duration
}

// NewHTTPSource creates a new source with optional proxy support.
func NewHTTPSource(baseURL, apiKey, proxyURL string, timeout time.Duration, maxRetries int) *HTTPSource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		MaxRetries:    uint(max(maxRetries, 0)),
		RetryInterval: 500 * time.Millisecond,
	}
}

func (s *HTTPSource) Name() string { return "http" }

// FetchPositions requests {base}/api/v1/positions for the birth. Server errors and
// throttling are retried with exponential backoff; other client errors are not.
func (s *HTTPSource) FetchPositions(ctx context.Context, in model.BirthInput) ([]model.ExternalPosition, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(in.Year))
	q.Set("month", strconv.Itoa(in.Month))
	q.Set("day", strconv.Itoa(in.Day))
	q.Set("hour", strconv.Itoa(in.Hour))
	q.Set("minute", strconv.Itoa(in.Minute))
	q.Set("second", strconv.Itoa(in.Second))
	q.Set("tz", strconv.FormatFloat(in.UTCOffset, 'f', -1, 64))
	q.Set("lat", strconv.FormatFloat(in.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(in.Longitude, 'f', -1, 64))
	endpoint := fmt.Sprintf("%s/api/v1/positions?%s", s.BaseURL, q.Encode())

	b := backoff.NewExponentialBackOff()
	if s.RetryInterval > 0 {
		b.InitialInterval = s.RetryInterval
	}
	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		return s.get(ctx, endpoint)
	}, backoff.WithBackOff(b), backoff.WithMaxTries(s.MaxRetries+1))
	if err != nil {
		return nil, fmt.Errorf("fetch positions: %w", err)
	}
	return ParsePositions(body)
}

func (s *HTTPSource) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}
	return body, nil
}
