package providers

import (
	"context"
	"net/http"
)

// Fetcher is the narrow transport collaborator the resolvers call
// through. Implementations fail with an error on network failure or an
// HTTP status of 400 or above.
type Fetcher interface {
	Fetch(ctx context.Context, url string, header http.Header) (string, error)
}

// FetchFunc adapts a function to the Fetcher interface.
type FetchFunc func(ctx context.Context, url string, header http.Header) (string, error)

func (f FetchFunc) Fetch(ctx context.Context, url string, header http.Header) (string, error) {
	return f(ctx, url, header)
}
