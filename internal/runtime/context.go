package runtime

import (
	"context"

	"gitlocal.dev/gitlocal/internal/binder"
	"gitlocal.dev/gitlocal/internal/config"
	"gitlocal.dev/gitlocal/internal/git"
	"gitlocal.dev/gitlocal/internal/output"
)

// Context provides access to the resolver, binder and output for commands
type Context struct {
	context.Context

	Settings *config.Settings
	Splog    *output.Splog
	Git      git.Client
	Resolver *config.Resolver
	Binder   *binder.Binder
	// Debug turns on debug output and full error chains.
	Debug bool
	// Root is the storage root commands act on.
	Root string
}

// Options configures NewContext.
type Options struct {
	Settings *config.Settings
	Splog    *output.Splog
	// Git defaults to a CommandClient in the current directory.
	Git   git.Client
	Getwd func() (string, error)
	Debug bool
}

// NewContext wires the components together. The storage root is left empty;
// callers resolve it with DefaultRoot or set it from --gitroot.
func NewContext(ctx context.Context, opts Options) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	settings := opts.Settings
	if settings == nil {
		settings = &config.Settings{DefaultRoot: config.DefaultRoot, Remote: "origin"}
	}
	splog := opts.Splog
	if splog == nil {
		splog = output.NewSplog(opts.Debug)
	}
	client := opts.Git
	if client == nil {
		client = git.NewCommandClient("")
	}

	locator := git.Locator{Override: settings.WorkTree, Getwd: opts.Getwd}
	resolver := config.NewResolver(client, locator, splog)

	return &Context{
		Context:  ctx,
		Settings: settings,
		Splog:    splog,
		Git:      client,
		Resolver: resolver,
		Binder:   binder.New(client, resolver, locator, splog),
		Debug:    opts.Debug,
	}
}

// DefaultRoot returns the effective local.storage value, falling back to
// the configured default root when it is unset or unreadable.
func (c *Context) DefaultRoot() string {
	root, _ := c.Resolver.Get(c, git.ScopeEffective, true)
	if root == "" {
		return c.Settings.DefaultRoot
	}
	return root
}

type contextKey struct{}

// WithContext stores rc in ctx.
func WithContext(ctx context.Context, rc *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the Context stored by WithContext, or nil.
func FromContext(ctx context.Context) *Context {
	if ctx == nil {
		return nil
	}
	rc, _ := ctx.Value(contextKey{}).(*Context)
	return rc
}
