package errors

import "errors"

var (
	ErrNoImage       = errors.New("no usable image found")
	ErrNoPublishDate = errors.New("missing or unparsable publish date")
)
