package streams

import "errors"

var (
	errUnknownEncoding = errors.New("unknown character encoding")
	errNotAnArray      = errors.New("json input is not an array of records")
	errBadRecord       = errors.New("json record is not an array of strings")
)
