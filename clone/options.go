package clone

import (
	"context"

	"github.com/npillmayer/domclone/dom"
	"github.com/npillmayer/domclone/resource"
)

// Filter is an inclusion predicate. A node for which the filter returns false
// is excluded from a snapshot, together with its complete subtree.
// The root node of a snapshot is never filtered.
type Filter func(dom.Node) bool

// Embedder converts the resource at url to a self-contained data URL.
// resource.Converter is the default implementation.
type Embedder interface {
	ResourceToDataURL(ctx context.Context, url, mimeType string, opts resource.Options) (string, error)
}

// PseudoCloner transfers the styling of generated content (::before and
// ::after pseudo-elements) of original onto its clone. See package pseudo
// for the default implementation.
type PseudoCloner interface {
	ClonePseudoElements(env dom.Environment, original dom.Node, clone *Node)
}

// PseudoClonerFunc is an adapter to use ordinary functions as PseudoCloners.
type PseudoClonerFunc func(env dom.Environment, original dom.Node, clone *Node)

// ClonePseudoElements calls f(env, original, clone).
func (f PseudoClonerFunc) ClonePseudoElements(env dom.Environment, original dom.Node, clone *Node) {
	f(env, original, clone)
}

// Option is a type to help initializing Cloners at creation time.
type Option func(*Cloner)

// WithFilter sets an inclusion predicate.
func WithFilter(f Filter) Option {
	return func(c *Cloner) {
		c.filter = f
	}
}

// WithEmbedder sets the converter for video poster images.
func WithEmbedder(e Embedder) Option {
	return func(c *Cloner) {
		c.embedder = e
	}
}

// WithResourceOptions sets options which are passed through to the Embedder.
func WithResourceOptions(opts resource.Options) Option {
	return func(c *Cloner) {
		c.resources = opts
	}
}

// WithPseudoCloner sets the cloner for pseudo-elements.
func WithPseudoCloner(p PseudoCloner) Option {
	return func(c *Cloner) {
		c.pseudo = p
	}
}

// WithMIMEResolver replaces resource.MIMEType as the function to infer the
// MIME type of a poster image from its URL.
func WithMIMEResolver(f func(url string) string) Option {
	return func(c *Cloner) {
		if f != nil {
			c.mimeType = f
		}
	}
}
