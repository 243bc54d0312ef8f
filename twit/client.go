package twit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Client represents a TWiT API client
type Client struct {
	baseURL    string
	appID      string
	appKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new TWiT API client. The client holds no mutable
// state after construction and is safe for concurrent use.
func NewClient(appID, appKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if appID == "" {
		return nil, fmt.Errorf("%w: app id is required", ErrInvalidConfig)
	}
	if appKey == "" {
		return nil, fmt.Errorf("%w: app key is required", ErrInvalidConfig)
	}

	options := clientOptions{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		appID:      appID,
		appKey:     appKey,
		userAgent:  options.userAgent,
		httpClient: options.httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the API root the client sends requests to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request performs a single GET against path and returns the decoded JSON
// value. Failures are returned as *APIError, except a 200 response that is
// not valid JSON, which is returned as *ResponseParseError.
func (c *Client) Request(ctx context.Context, path string, params url.Values) (Payload, error) {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return Payload{}, c.transportError(path, fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("app-id", c.appID)
	req.Header.Set("app-key", c.appKey)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().
		Str("url", requestURL).
		Msg("Making TWiT API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Payload{}, c.transportError(path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, c.transportError(path, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode == http.StatusOK {
		payload, err := decodePayload(body)
		if err != nil {
			c.logger.Error().Err(err).Str("path", path).Msg("Error parsing JSON response")
			return Payload{}, &ResponseParseError{URL: requestURL, Err: err}
		}
		return payload, nil
	}

	apiErr := classify(resp.StatusCode, string(body))
	event := c.logger.Error().
		Int("status", apiErr.StatusCode).
		Str("kind", apiErr.Kind.String()).
		Str("path", path)
	if apiErr.Body != "" {
		event = event.Str("body", apiErr.Body)
	}
	event.Msg(apiErr.Message)

	return Payload{}, apiErr
}

// classify maps a non-200 status code and body to an APIError
func classify(status int, body string) *APIError {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &APIError{Kind: KindAuthenticationFailed, Message: "authentication failed", StatusCode: status}
	case status == http.StatusNotFound:
		return &APIError{Kind: KindResourceNotFound, Message: "resource not found", StatusCode: status}
	case status == http.StatusInternalServerError && strings.Contains(body, usageLimitMarker):
		return &APIError{Kind: KindUsageLimitExceeded, Message: "usage limits exceeded", StatusCode: status}
	case status == http.StatusInternalServerError:
		return &APIError{Kind: KindServerError, Message: "server error", StatusCode: status, Body: body}
	default:
		return &APIError{Kind: KindUnexpectedResponse, Message: "unexpected response", StatusCode: status, Body: body}
	}
}

func (c *Client) transportError(path string, err error) *APIError {
	c.logger.Error().Err(err).Str("path", path).Msg("Request failed")
	return &APIError{
		Kind:    KindTransportFailure,
		Message: err.Error(),
		Err:     err,
	}
}

// decodePayload decodes a single JSON value keeping numbers as json.Number.
// Any JSON value is accepted; only malformed or trailing input fails.
func decodePayload(body []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Payload{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Payload{}, fmt.Errorf("unexpected data after JSON value")
	}
	return NewPayload(v), nil
}

// ListShows retrieves all shows
func (c *Client) ListShows(ctx context.Context, params url.Values) (Payload, error) {
	return c.Request(ctx, "/shows", params)
}

// GetShow retrieves a single show by ID
func (c *Client) GetShow(ctx context.Context, id string, params url.Values) (Payload, error) {
	return c.Request(ctx, "/shows/"+url.PathEscape(id), params)
}

// ListEpisodes retrieves all episodes
func (c *Client) ListEpisodes(ctx context.Context, params url.Values) (Payload, error) {
	return c.Request(ctx, "/episodes", params)
}

// GetEpisode retrieves a single episode by ID
func (c *Client) GetEpisode(ctx context.Context, id string, params url.Values) (Payload, error) {
	return c.Request(ctx, "/episodes/"+url.PathEscape(id), params)
}

// ListStreams retrieves live stream information
func (c *Client) ListStreams(ctx context.Context, params url.Values) (Payload, error) {
	return c.Request(ctx, "/streams", params)
}

// ListPeople retrieves people information
func (c *Client) ListPeople(ctx context.Context, params url.Values) (Payload, error) {
	return c.Request(ctx, "/people", params)
}
