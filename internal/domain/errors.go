package domain

import "errors"

var (
	ErrUnknownCode       = errors.New("unknown code")
	ErrUnknownSystem     = errors.New("unknown satellite system")
	ErrNoTrackPoints     = errors.New("no track points recorded")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
