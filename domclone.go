package domclone

import (
	"context"
	"io"

	"github.com/npillmayer/domclone/clone"
	"github.com/npillmayer/domclone/dom"
	"github.com/npillmayer/domclone/dom/htmltree"
	"github.com/npillmayer/domclone/pseudo"
	"github.com/npillmayer/domclone/resource"
)

// New creates a cloner for visual trees rendered in env. Pseudo-elements are
// materialized as style elements, and if fetcher is non-nil, video posters are
// fetched by it and embedded as data URLs. opts are applied after the defaults
// and may override them.
func New(env dom.Environment, fetcher resource.Fetcher, opts ...clone.Option) *clone.Cloner {
	defaults := []clone.Option{
		clone.WithPseudoCloner(pseudo.New()),
	}
	if fetcher != nil {
		defaults = append(defaults, clone.WithEmbedder(resource.NewConverter(fetcher)))
	}
	return clone.New(env, append(defaults, opts...)...)
}

// Snapshot clones n and all of its descendants, using the defaults of New.
func Snapshot(ctx context.Context, n dom.Node, env dom.Environment, fetcher resource.Fetcher,
	opts ...clone.Option) (*clone.Node, error) {
	//
	return New(env, fetcher, opts...).Clone(ctx, n, true)
}

// SnapshotHTML parses an HTML document, computes the styles of its elements
// and clones the document element. Options for building the visual tree are
// given as buildOpts.
func SnapshotHTML(ctx context.Context, r io.Reader, fetcher resource.Fetcher,
	buildOpts []htmltree.Option, opts ...clone.Option) (*clone.Node, error) {
	//
	root, window, err := htmltree.Parse(r, buildOpts...)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("snapshot of HTML document %v", root)
	return Snapshot(ctx, root, window, fetcher, opts...)
}
