package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// apiVersionPrefix is prepended to every endpoint path.
const apiVersionPrefix = "/api/v1"

// Param is a single key/value pair of a request payload.
type Param struct {
	Key   string
	Value interface{}
}

// P constructs a Param. It exists so call sites can build ordered payloads
// inline: Params{P("label", label), P("asset", asset)}.
func P(key string, value interface{}) Param {
	return Param{Key: key, Value: value}
}

// Params is an ordered key/value payload. Order is preserved through both
// query-string and JSON-body serialization so the bytes a request carries
// are deterministic for a given call.
type Params []Param

// Encode serializes the params as an &-joined, RFC 3986 percent-encoded
// query string. Slice values are comma-joined before encoding.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(percentEncode(kv.Key))
		b.WriteByte('=')
		b.WriteString(percentEncode(paramString(kv.Value)))
	}
	return b.String()
}

// MarshalJSON serializes the params as a JSON object with members in
// insertion order.
func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal param %q: %w", kv.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// paramString renders a param value for query-string use.
func paramString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(t, ",")
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// percentEncode applies strict RFC 3986 encoding: only unreserved
// characters (ALPHA / DIGIT / "-" / "." / "_" / "~") pass through.
func percentEncode(s string) string {
	const upperhex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
			c == '-' || c == '.' || c == '_' || c == '~' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

// requestDescriptor is the canonical form of an outgoing request. It is
// built fresh per call, signed exactly once, dispatched, and discarded.
type requestDescriptor struct {
	method string
	url    string
	header http.Header
	body   []byte
}

// buildRequest produces the request descriptor for a call. GET requests
// carry the params as a query string; POST and PATCH requests carry them
// as a JSON body. Any other verb, or an empty payload on a mutating verb,
// produces no body.
func (c *Client) buildRequest(method, path string, params Params) (*requestDescriptor, error) {
	d := &requestDescriptor{
		method: method,
		url:    c.baseURL + apiVersionPrefix + path,
		header: make(http.Header),
	}
	d.header.Set("Accept", "application/json")

	if len(params) == 0 {
		return d, nil
	}

	switch method {
	case http.MethodGet:
		d.url += "?" + params.Encode()
	case http.MethodPost, http.MethodPatch:
		body, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		d.body = body
		d.header.Set("Content-Type", "application/json")
	}

	return d, nil
}
