package build

import "errors"

var (
	ErrLiteral = errors.New("invalid literal")
	ErrKind    = errors.New("unknown node kind")
	ErrDepth   = errors.New("maximum depth exceeded")
)
