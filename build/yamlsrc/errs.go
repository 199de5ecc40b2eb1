package yamlsrc

import "errors"

var (
	ErrParse       = errors.New("yaml parse error")
	ErrUnsupported = errors.New("unsupported yaml")
)
