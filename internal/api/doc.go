// Package api provides HTTP client functionality for communicating with the
// Strata payments API. It handles request construction, canonical HMAC
// signing, transport dispatch, and response classification.
//
// # Pipeline
//
// Every operation passes through the same four steps:
//
//   - Build: method, path, and an ordered [Params] payload become a request
//     descriptor. GET params are serialized as an RFC 3986 query string;
//     POST/PATCH params become a JSON body.
//   - Sign: an HMAC-SHA-256 digest over the canonical request (method, full
//     URL, timestamp, body) is added along with the API token and timestamp
//     headers. Signing is the last step before dispatch.
//   - Send: a single blocking HTTP round trip, no retries.
//   - Interpret: the response is classified into a decoded payload or a
//     typed error. No classification path drops the HTTP status, the
//     service's error name, or the body text.
//
// # Error Handling
//
// Failures surface as typed, inspectable values:
//
//   - [*APIError]: a non-2xx response with its status code, message, and
//     machine-readable error name when the service supplied one.
//   - [*NetworkError]: no response was obtained at all (DNS, connection
//     refused, timeout, TLS failure).
//   - [*MalformedResponseError]: a 2xx response whose body is not a JSON
//     object or array.
//
// Sentinel errors such as [ErrInsufficientFunds] match through errors.Is:
//
//	if errors.Is(err, api.ErrInsufficientFunds) {
//	    // Handle the declined payment
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Credentials are immutable
// after construction and no state is shared between calls.
package api
