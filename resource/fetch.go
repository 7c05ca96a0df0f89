package resource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
)

// ErrNotFound is returned by fetchers if a resource does not exist.
var ErrNotFound = errors.New("resource not found")

// Fetcher loads the raw content of a resource.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc is an adapter to use ordinary functions as Fetchers.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch calls f(ctx, url).
func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// FSFetcher loads resources from a file system. URLs are interpreted as
// paths relative to the root of the file system; a scheme, host, query and
// fragment are ignored, as is a leading slash.
type FSFetcher struct {
	FS fs.FS
}

// Fetch is part of interface Fetcher.
func (f FSFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	p = strings.TrimPrefix(p, "/")
	if !fs.ValidPath(p) {
		return nil, fmt.Errorf("resource: invalid path %q: %w", p, ErrNotFound)
	}
	data, err := fs.ReadFile(f.FS, p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("resource: %q: %w", rawURL, ErrNotFound)
	}
	return data, err
}

var _ Fetcher = FSFetcher{}
var _ Fetcher = FetcherFunc(nil)
