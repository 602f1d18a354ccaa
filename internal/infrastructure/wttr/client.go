package wttr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/item-service/pkg/errors"
)

const defaultBaseURL = "https://wttr.in"

// requestTimeout caps one fetch end to end.
const requestTimeout = 20 * time.Second

// Client fetches weather reports from wttr.in.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// NewClient creates a wttr.in client.
func NewClient(logger *zap.Logger, opts ...ClientOption) *Client {
	c := &Client{
		http: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: defaultBaseURL,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the current conditions for a city. A failed fetch is
// reported, never retried.
func (c *Client) Current(ctx context.Context, city string) (*Condition, error) {
	if city == "" {
		return nil, errors.NewAppError(errors.ErrInvalidArgument, "city must not be empty", nil)
	}

	reqURL := fmt.Sprintf("%s/%s?format=j1", c.baseURL, url.PathEscape(city))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build weather request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.NewAppError(errors.ErrTimeout, "weather request timed out", err)
		}
		return nil, errors.Wrap(err, "weather request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrInternal,
			fmt.Sprintf("wttr.in returned status %d", resp.StatusCode), nil)
	}

	var report Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, errors.Wrap(err, "failed to decode weather report")
	}

	if len(report.CurrentCondition) == 0 {
		return nil, errors.NewAppError(errors.ErrNotFound,
			fmt.Sprintf("no weather report for %q", city), nil)
	}

	c.logger.Debug("weather report fetched",
		zap.String("city", city),
		zap.String("temp_c", report.CurrentCondition[0].TempC))

	return &report.CurrentCondition[0], nil
}
