package timewindow

import "errors"

var (
	ErrMalformedWindow = errors.New("malformed time window, expected HH:MM-HH:MM")
	ErrTimeOutOfRange  = errors.New("time of day out of range")
)
