package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Signature header names carried on every request.
const (
	// HeaderAPIToken identifies which secret key the server verifies with.
	HeaderAPIToken = "X-Strata-Api-Token"
	// HeaderTimestamp is the unix timestamp the signature covers. The
	// server bounds the replay window from it.
	HeaderTimestamp = "X-Strata-Timestamp"
	// HeaderSignature is the hex HMAC-SHA-256 digest of the canonical
	// request.
	HeaderSignature = "X-Strata-Signature"
)

// CanonicalMessage returns the byte string the request signature covers:
// method, full URL, timestamp, and body, newline-separated. The body bytes
// are appended verbatim, so the digest changes if any transmitted byte
// changes.
func CanonicalMessage(method, url string, timestamp int64, body []byte) []byte {
	ts := strconv.FormatInt(timestamp, 10)
	msg := make([]byte, 0, len(method)+len(url)+len(ts)+len(body)+3)
	msg = append(msg, method...)
	msg = append(msg, '\n')
	msg = append(msg, url...)
	msg = append(msg, '\n')
	msg = append(msg, ts...)
	msg = append(msg, '\n')
	msg = append(msg, body...)
	return msg
}

// SignRequest computes the hex HMAC-SHA-256 digest of the canonical message
// using the shared secret key. It is deterministic for a fixed input.
func SignRequest(secretKey []byte, method, url string, timestamp int64, body []byte) string {
	mac := hmac.New(sha256.New, secretKey)
	mac.Write(CanonicalMessage(method, url, timestamp, body))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyRequest reports whether digest is the valid signature for the given
// request in constant time. The client itself never verifies; this mirrors
// the server side for tests and tooling.
func VerifyRequest(secretKey []byte, method, url string, timestamp int64, body []byte, digest string) bool {
	want := SignRequest(secretKey, method, url, timestamp, body)
	return hmac.Equal([]byte(want), []byte(digest))
}
