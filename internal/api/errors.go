package api

import (
	"errors"
	"fmt"
	"strings"
)

// Error names returned by the Strata API. Callers branch on these through
// [APIError.ErrorName] or the matching sentinel errors.
const (
	ErrNameInsufficientFunds   = "ERR_INSUFFICIENT_FUNDS"
	ErrNameInvalidAsset        = "ERR_INVALID_ASSET"
	ErrNameAddressNotFound     = "ERR_ADDRESS_NOT_FOUND"
	ErrNameTransactionNotFound = "ERR_TX_NOT_FOUND"
	ErrNameWalletNotFound      = "ERR_WALLET_NOT_FOUND"
	ErrNameRateLimited         = "ERR_RATE_LIMITED"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrMissingAPIToken is returned when no API token is provided.
	ErrMissingAPIToken = errors.New("API token is required")
	// ErrMissingSecretKey is returned when no secret key is provided.
	ErrMissingSecretKey = errors.New("secret key is required")
	// ErrMissingBaseURL is returned when no base URL is configured.
	ErrMissingBaseURL = errors.New("base URL is required")
	// ErrUnauthorized indicates the API token or signature was rejected.
	ErrUnauthorized = errors.New("invalid API token or signature")
	// ErrInsufficientFunds indicates the source address cannot cover the
	// requested amount plus fees.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAsset indicates an unknown or unsupported asset code.
	ErrInvalidAsset = errors.New("invalid asset")
	// ErrAddressNotFound indicates the requested address does not exist.
	ErrAddressNotFound = errors.New("address not found")
	// ErrTransactionNotFound indicates the requested transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrWalletNotFound indicates the requested multisig wallet does not exist.
	ErrWalletNotFound = errors.New("multisig wallet not found")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents a non-2xx response from the Strata API. The status
// code is always preserved; ErrorName and Errors are set when the service
// supplied them.
type APIError struct {
	StatusCode int
	Message    string
	ErrorName  string
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

// Is implements errors.Is for sentinel error matching. The machine-readable
// error name takes priority over the status code, so callers never have to
// string-match messages.
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

// MalformedResponseError represents a 2xx response whose body is not a JSON
// object or array: a protocol-contract violation by the remote service.
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
