package build

import "log/slog"

type buildOpts struct {
	log      *slog.Logger
	maxDepth int
}

type BuildOption func(*buildOpts)

// WithLogger sets the logger used to report overwritten struct keys. The
// default is slog.Default().
func WithLogger(l *slog.Logger) BuildOption {
	return func(o *buildOpts) { o.log = l }
}

// MaxDepth limits the nesting of lists and structs. 0, the default,
// means no limit.
func MaxDepth(n int) BuildOption {
	return func(o *buildOpts) { o.maxDepth = n }
}
