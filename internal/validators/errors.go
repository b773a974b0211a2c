package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrEmptyKey            = errors.New("key is required")
	ErrKeyTooLong          = errors.New("key is too long")
	ErrInvalidKey          = errors.New("key contains control characters")
	ErrEmptyData           = errors.New("data is required")
	ErrInvalidLastModified = errors.New("lastModified must be a positive unix millisecond timestamp")
)
