package qr

import "errors"

var (
	ErrConfiguration     = errors.New("invalid configuration")
	ErrAsset             = errors.New("logo asset unreadable")
	ErrEncoding          = errors.New("data cannot be encoded")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrIO                = errors.New("output write failed")
)
