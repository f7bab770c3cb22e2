package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	ErrStatusInternalServer         = http.StatusInternalServerError
	ErrStatusClient                 = http.StatusBadRequest
	ErrStatusNotLoggedIn            = http.StatusUnauthorized
	ErrStatusNoPermission           = http.StatusForbidden
	ErrStatusNotFound               = http.StatusNotFound
	ErrStatusFileSizeExceedingLimit = http.StatusRequestEntityTooLarge
	ErrStatusConflict               = http.StatusConflict
	ErrStatusBadGateway             = http.StatusBadGateway
	ErrStatusTooManyRequests        = http.StatusTooManyRequests
)

var (
	ErrInternalServer        = errors.New("Internal server error")
	ErrClient                = errors.New("Bad request")
	ErrNotLoggedIn           = errors.New("Unauthorized access")
	ErrInvalidToken          = errors.New("Invalid or expired JWT")
	ErrUnauthorized          = errors.New("Forbidden access")
	ErrNotFound              = errors.New("Resource not found")
	ErrAccountNotFound       = errors.New("Account not found")
	ErrMissingFields         = errors.New("Missing required fields.")
	ErrNotAnImage            = errors.New("Uploaded file is not an image")
	ErrFileSizeExceedLimit   = errors.New("Uploaded file is too large")
	ErrConflict              = errors.New("Conflicting record found")
	ErrFetchCategories       = errors.New("Failed to fetch categories")
	ErrInvalidOAuthState     = errors.New("Invalid OAuth state")
	ErrBadGateway            = errors.New("Upstream service unavailable")
	ErrTooManyRequests       = errors.New("Rate limit exceeded")
	ErrSlugGenerationFailure = errors.New("Could not generate a unique slug")
)

var errorMap = map[error]int{
	ErrInternalServer:        ErrStatusInternalServer,
	ErrClient:                ErrStatusClient,
	ErrNotLoggedIn:           ErrStatusNotLoggedIn,
	ErrInvalidToken:          ErrStatusNotLoggedIn,
	ErrUnauthorized:          ErrStatusNoPermission,
	ErrNotFound:              ErrStatusNotFound,
	ErrAccountNotFound:       ErrStatusNotFound,
	ErrMissingFields:         ErrStatusClient,
	ErrNotAnImage:            ErrStatusClient,
	ErrFileSizeExceedLimit:   ErrStatusFileSizeExceedingLimit,
	ErrConflict:              ErrStatusConflict,
	ErrFetchCategories:       ErrStatusInternalServer,
	ErrInvalidOAuthState:     ErrStatusClient,
	ErrBadGateway:            ErrStatusBadGateway,
	ErrTooManyRequests:       ErrStatusTooManyRequests,
	ErrSlugGenerationFailure: ErrStatusConflict,
}

// GetErrorStatusCode resolves the HTTP status of err, unwrapping until a
// known sentinel is found. Unknown errors are internal server errors.
func GetErrorStatusCode(err error) int {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if code, ok := errorMap[e]; ok {
			return code
		}
	}

	return errorMap[ErrInternalServer]
}

// ValidationError reports every missing field of a request at once.
type ValidationError struct {
	Prefix string
	Fields []string
}

func NewMissingFieldsError(prefix string, fields []string) *ValidationError {
	return &ValidationError{Prefix: prefix, Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Prefix, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingFields
}
