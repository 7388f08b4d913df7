package config

import "errors"

var (
	ErrParsingConfig   = errors.New("config: cannot parse environment into struct")
	ErrLoadingEnvFile  = errors.New("config: cannot load env file")
	ErrConfigNotLoaded = errors.New("config: not loaded")
	ErrNilPointer      = errors.New("config: nil destination")
)
