package schema

import "errors"

var (
	ErrInvalidDocument     = errors.New("invalid schema document")
	ErrNoPatterns          = errors.New("schema document declares no patterns")
	ErrEmptyEndpointName   = errors.New("endpoint name can not be empty")
	ErrInvalidEndpointName = errors.New("endpoint name can not contain '/', '{', '}' or '*'")
	ErrDuplicateEndpoint   = errors.New("endpoint is declared twice")
	ErrDuplicateField      = errors.New("field is declared twice")
	ErrMissingType         = errors.New("field has no type")
)
