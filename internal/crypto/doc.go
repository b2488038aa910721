// Package crypto implements the request-signing scheme of the Strata API.
//
// Every request is authenticated with an HMAC-SHA-256 digest computed over a
// canonical representation of the outgoing bytes: the HTTP method, the full
// URL including the query string, a unix timestamp minted at signing time,
// and the exact body to be transmitted. The shared secret key is the MAC
// key; it is never sent over the wire. The server identifies which secret to
// verify with from the API token header.
//
// The digest must be byte-exact with the server's verifier, so signing is
// the last step before dispatch: any mutation of the request after signing
// invalidates the signature.
package crypto
