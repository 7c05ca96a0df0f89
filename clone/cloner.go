package clone

import (
	"context"
	"errors"

	"github.com/npillmayer/domclone/dom"
	"github.com/npillmayer/domclone/resource"
)

// ErrNoEnvironment is returned by a Cloner without rendering environment.
var ErrNoEnvironment = errors.New("clone: no rendering environment")

// ErrNilNode is returned if a Cloner is asked to clone a nil node.
var ErrNilNode = errors.New("clone: cannot clone nil node")

// Cloner clones visual nodes. It holds the configuration of a cloning
// operation and the environment the visual tree is rendered in. A Cloner
// does not change during cloning and may be re-used.
type Cloner struct {
	env       dom.Environment
	filter    Filter
	embedder  Embedder
	resources resource.Options
	pseudo    PseudoCloner
	mimeType  func(string) string
}

// New creates a Cloner for visual trees rendered in env.
func New(env dom.Environment, opts ...Option) *Cloner {
	c := &Cloner{
		env:      env,
		mimeType: resource.MIMEType,
	}
	for _, option := range opts {
		option(c)
	}
	return c
}

// Snapshot clones a visual node and all of its descendants. It is a shortcut
// for New(env, opts...).Clone(ctx, n, true).
func Snapshot(ctx context.Context, n dom.Node, env dom.Environment, opts ...Option) (*Node, error) {
	return New(env, opts...).Clone(ctx, n, true)
}

// Environment returns the rendering environment of a Cloner.
func (c *Cloner) Environment() dom.Environment {
	return c.env
}

// Clone clones a visual node n and its descendants.
//
// If n is not the root of the snapshot and the inclusion filter rejects it,
// Clone returns nil without visiting any descendant of n.
// Otherwise the clone is shaped (media replacement or shallow copy), then
// populated with clones of the children, and finally decorated with style and
// form state. Decoration always reads from the original node.
//
// Failing to embed a resource aborts the operation and the error is returned.
func (c *Cloner) Clone(ctx context.Context, n dom.Node, isRoot bool) (*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if c.env == nil {
		return nil, ErrNoEnvironment
	}
	if !isRoot && c.filter != nil && !c.filter(n) {
		tracer().Debugf("clone: %s excluded by filter", n.NodeName())
		return nil, nil
	}
	kind := KindOf(n)
	cl, err := c.cloneSingle(ctx, n, kind)
	if err != nil {
		return nil, err
	}
	if cl, err = c.attachChildren(ctx, n, kind, cl); err != nil {
		return nil, err
	}
	return c.decorate(n, kind, cl), nil
}
