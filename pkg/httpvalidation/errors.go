package httpvalidation

import "errors"

// ErrMalformedBody is returned by Decode when the request body is not valid
// JSON for the target type.
var ErrMalformedBody = errors.New("malformed request body")

// ErrNoValidator is rendered by Handler when the validator factory returns
// nil.
var ErrNoValidator = errors.New("no validator for request")
