package twit

import (
	"context"
	"net/url"
)

// API defines the interface for TWiT API operations
type API interface {
	// Request performs a GET against an arbitrary API path
	Request(ctx context.Context, path string, params url.Values) (Payload, error)

	ListShows(ctx context.Context, params url.Values) (Payload, error)
	GetShow(ctx context.Context, id string, params url.Values) (Payload, error)
	ListEpisodes(ctx context.Context, params url.Values) (Payload, error)
	GetEpisode(ctx context.Context, id string, params url.Values) (Payload, error)
	ListStreams(ctx context.Context, params url.Values) (Payload, error)
	ListPeople(ctx context.Context, params url.Values) (Payload, error)
}

var _ API = (*Client)(nil)
