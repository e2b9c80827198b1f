package client

import "errors"

// ErrMissingArgument is returned when a positional argument is absent.
var ErrMissingArgument = errors.New("missing argument")
