package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidValue    = errors.New("value failed validation")
)
