package ir

import (
	"errors"
)

var (
	// ErrDecode is returned (wrapped) when blob text is not valid
	// standard padded base64.
	ErrDecode = errors.New("base64 decode error")
)
