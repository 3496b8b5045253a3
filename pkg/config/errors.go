package config

import "errors"

var (
	ErrUnknownFormat = errors.New("unknown config file format")
	ErrInvalidConfig = errors.New("invalid configuration")
)
