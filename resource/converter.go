package resource

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Options are per-call options for resource embedding. They are passed
// through unchanged by the cloning machinery.
type Options struct {
	// CacheBust appends a time-stamp to URLs before fetching, to bypass
	// caches of the fetcher.
	CacheBust bool
	// IncludeQueryParams makes the query part of a URL significant for the
	// result cache.
	IncludeQueryParams bool
	// ImagePlaceholder is a data URL to use for resources which cannot be
	// fetched. If it is empty, fetch errors are returned to the caller.
	ImagePlaceholder string
}

// Converter embeds resources as data URLs. Results are cached; a Converter
// may be shared between goroutines.
type Converter struct {
	fetcher Fetcher
	mx      sync.Mutex
	cache   map[string]string
	now     func() time.Time
}

// NewConverter creates a converter which loads resources with fetcher.
func NewConverter(fetcher Fetcher) *Converter {
	return &Converter{
		fetcher: fetcher,
		cache:   make(map[string]string),
		now:     time.Now,
	}
}

// ResourceToDataURL returns a self-contained data URL for the resource at url.
// Data URLs are returned unchanged. If mimeType is empty, the type is sniffed
// from the content.
func (c *Converter) ResourceToDataURL(ctx context.Context, url, mimeType string, opts Options) (string, error) {
	if IsDataURL(url) {
		return url, nil
	}
	key := cacheKey(url, mimeType, opts.IncludeQueryParams)
	c.mx.Lock()
	cached, ok := c.cache[key]
	c.mx.Unlock()
	if ok {
		tracer().Debugf("resource: cache hit for %s", key)
		return cached, nil
	}
	fetchURL := url
	if opts.CacheBust {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		fetchURL += sep + strconv.FormatInt(c.now().UnixMilli(), 10)
	}
	data, err := c.fetcher.Fetch(ctx, fetchURL)
	if err != nil {
		if opts.ImagePlaceholder == "" {
			tracer().Errorf("resource: cannot fetch %s: %v", url, err)
			return "", fmt.Errorf("resource: cannot fetch %s: %w", url, err)
		}
		tracer().Infof("resource: using placeholder for %s: %v", url, err)
		c.store(key, opts.ImagePlaceholder)
		return opts.ImagePlaceholder, nil
	}
	if mimeType == "" {
		mimeType = Sniff(data)
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	dataURL := DataURL(mimeType, data)
	c.store(key, dataURL)
	return dataURL, nil
}

func (c *Converter) store(key, dataURL string) {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.cache[key] = dataURL
}

var fontURL = regexp.MustCompile(`(?i)ttf|otf|eot|woff2?`)

// cacheKey normalizes a resource URL: the query is dropped unless significant,
// fonts are keyed by file name only, and the content type is prepended.
func cacheKey(url, mimeType string, includeQuery bool) string {
	key := url
	if !includeQuery {
		if i := strings.Index(key, "?"); i >= 0 {
			key = key[:i]
		}
	}
	if fontURL.MatchString(key) {
		if i := strings.LastIndex(key, "/"); i >= 0 {
			key = key[i+1:]
		}
	}
	if mimeType != "" {
		return "[" + mimeType + "]" + key
	}
	return key
}
