package stratapay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stratapay/client-go/internal/api"
)

// Error names returned by the Strata API in the errorName field of error
// responses. Callers can branch on APIError.ErrorName or, more simply, use
// errors.Is with the matching sentinel error.
const (
	ErrNameInsufficientFunds   = api.ErrNameInsufficientFunds
	ErrNameInvalidAsset        = api.ErrNameInvalidAsset
	ErrNameAddressNotFound     = api.ErrNameAddressNotFound
	ErrNameTransactionNotFound = api.ErrNameTransactionNotFound
	ErrNameWalletNotFound      = api.ErrNameWalletNotFound
	ErrNameRateLimited         = api.ErrNameRateLimited
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIToken is returned when no API token is provided.
	ErrMissingAPIToken = errors.New("API token is required")

	// ErrMissingSecretKey is returned when no secret key is provided.
	ErrMissingSecretKey = errors.New("secret key is required")

	// ErrUnauthorized is returned when the API token or signature is rejected.
	ErrUnauthorized = errors.New("invalid API token or signature")

	// ErrInsufficientFunds is returned when the source address cannot cover
	// the requested amount plus fees.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAsset is returned for an unknown or unsupported asset code.
	ErrInvalidAsset = errors.New("invalid asset")

	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")

	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrWalletNotFound is returned when a multisig wallet is not found.
	ErrWalletNotFound = errors.New("multisig wallet not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidAmount is returned when a decimal amount string cannot be
	// parsed or exceeds the asset precision.
	ErrInvalidAmount = errors.New("invalid amount")
)

// StrataError is implemented by all SDK errors.
type StrataError interface {
	error
	StrataError() // marker method
}

// APIError represents an HTTP error response from the Strata API.
type APIError struct {
	StatusCode int
	Message    string
	ErrorName  string // machine-readable error code, if the service sent one
	Errors     []string
}

func (e *APIError) Error() string {
	if e.ErrorName != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.ErrorName, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// StrataError implements the StrataError interface.
func (e *APIError) StrataError() {}

// Is implements errors.Is for sentinel error matching. The error name takes
// priority over the status code.
func (e *APIError) Is(target error) bool {
	switch e.ErrorName {
	case ErrNameInsufficientFunds:
		return target == ErrInsufficientFunds
	case ErrNameInvalidAsset:
		return target == ErrInvalidAsset
	case ErrNameAddressNotFound:
		return target == ErrAddressNotFound
	case ErrNameTransactionNotFound:
		return target == ErrTransactionNotFound
	case ErrNameWalletNotFound:
		return target == ErrWalletNotFound
	case ErrNameRateLimited:
		return target == ErrRateLimited
	}
	switch e.StatusCode {
	case 401, 403:
		return target == ErrUnauthorized
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a transport-level failure: no response was
// obtained at all.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StrataError implements the StrataError interface.
func (e *NetworkError) StrataError() {}

// MalformedResponseError represents a success response whose body violates
// the service contract (not a JSON object or array).
type MalformedResponseError struct {
	StatusCode int
	Body       string
}

func (e *MalformedResponseError) Error() string {
	body := e.Body
	if len(body) > 120 {
		body = body[:120] + "..."
	}
	return fmt.Sprintf("malformed response (status %d): %s", e.StatusCode, strings.TrimSpace(body))
}

// StrataError implements the StrataError interface.
func (e *MalformedResponseError) StrataError() {}

// wrapError converts internal API errors to public errors. This ensures
// that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			ErrorName:  apiErr.ErrorName,
			Errors:     apiErr.Errors,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	var malErr *api.MalformedResponseError
	if errors.As(err, &malErr) {
		return &MalformedResponseError{
			StatusCode: malErr.StatusCode,
			Body:       malErr.Body,
		}
	}

	return err
}
