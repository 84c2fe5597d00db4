package exercism

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/programme-lv/exsubs/api"
)

const DefaultBaseURL = "https://exercism.org/api/v2"

// Client reads track and submission listings from the exercism API.
// It never retries; every failure is returned to the caller.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TrackExercises lists the exercises of a track in the order the API returns them.
func (c *Client) TrackExercises(ctx context.Context, track string) ([]api.Exercise, error) {
	path := fmt.Sprintf("/tracks/%s/exercises", url.PathEscape(track))

	var res api.TrackExercises
	err := c.get(ctx, path, nil, "track "+track, &res)
	if err != nil {
		return nil, err
	}
	return res.Exercises, nil
}

// ExerciseSubmissions fetches one page (1-based) of an exercise's community solutions.
func (c *Client) ExerciseSubmissions(ctx context.Context, track, exercise string, page int) (*api.SubmissionPage, error) {
	path := fmt.Sprintf("/tracks/%s/exercises/%s/community_solutions",
		url.PathEscape(track), url.PathEscape(exercise))
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var res api.SubmissionPage
	err := c.get(ctx, path, query, fmt.Sprintf("exercise %s/%s", track, exercise), &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, resource string, dst any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &TransportError{URL: u, Err: err}
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", acceptEncoding)
	req.Header.Set("X-Request-Id", reqID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("sending request", "url", u, "request_id", reqID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{URL: u, Err: err}
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Resource: resource, URL: u}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitedError{URL: u, RetryAfter: resp.Header.Get("Retry-After")}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &TransportError{
			URL: u,
			Err: fmt.Errorf("bad status: %s: %s", resp.Status, strings.TrimSpace(string(body))),
		}
	}

	body, err := decodeBody(resp)
	if err != nil {
		return &TransportError{URL: u, Err: err}
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(body)

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return &TransportError{URL: u, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	c.logger.Debug("received response", "url", u, "request_id", reqID, "status", resp.StatusCode)
	return nil
}
