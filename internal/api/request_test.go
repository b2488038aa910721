package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(Config{
		BaseURL:   baseURL,
		APIToken:  "test-token",
		SecretKey: "test-secret",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestParams_Encode_RoundTrip(t *testing.T) {
	params := Params{
		P("label", "invoice 42"),
		P("asset", "BTC"),
		P("tags", []string{"a", "b"}),
		P("limit", 10),
	}

	encoded := params.Encode()

	// Strict RFC 3986: no '+' for space, uppercase hex.
	if strings.Contains(encoded, "+") {
		t.Errorf("Encode() = %q, contains '+'", encoded)
	}
	if !strings.Contains(encoded, "invoice%2042") {
		t.Errorf("Encode() = %q, want percent-encoded space", encoded)
	}

	decoded, err := url.ParseQuery(encoded)
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}
	want := map[string]string{
		"label": "invoice 42",
		"asset": "BTC",
		"tags":  "a,b",
		"limit": "10",
	}
	for k, v := range want {
		if got := decoded.Get(k); got != v {
			t.Errorf("decoded[%s] = %q, want %q", k, got, v)
		}
	}
}

func TestParams_Encode_Order(t *testing.T) {
	params := Params{P("b", "2"), P("a", "1"), P("c", "3")}
	if got := params.Encode(); got != "b=2&a=1&c=3" {
		t.Errorf("Encode() = %q, want insertion order preserved", got)
	}
}

func TestParams_Encode_Reserved(t *testing.T) {
	params := Params{P("q", "a&b=c/d?e:f")}
	want := "q=a%26b%3Dc%2Fd%3Fe%3Af"
	if got := params.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestParams_MarshalJSON_RoundTrip(t *testing.T) {
	params := Params{
		P("from", "hot-wallet"),
		P("to", "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"),
		P("amount", int64(125000000)),
		P("asset", "BTC"),
	}

	data, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded["from"] != "hot-wallet" {
		t.Errorf("from = %v", decoded["from"])
	}
	if decoded["amount"] != float64(125000000) {
		t.Errorf("amount = %v", decoded["amount"])
	}
	if len(decoded) != 4 {
		t.Errorf("len = %d, want 4", len(decoded))
	}
}

func TestParams_MarshalJSON_Order(t *testing.T) {
	params := Params{P("z", 1), P("a", 2), P("m", 3)}
	data, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"z":1,"a":2,"m":3}` {
		t.Errorf("Marshal() = %s, want insertion order preserved", data)
	}
}

func TestBuildRequest_Get(t *testing.T) {
	c := testClient(t, "https://api.example.com")

	d, err := c.buildRequest(http.MethodGet, "/addresses", Params{P("archived", true)})
	if err != nil {
		t.Fatalf("buildRequest() error = %v", err)
	}

	if d.url != "https://api.example.com/api/v1/addresses?archived=true" {
		t.Errorf("url = %s", d.url)
	}
	if d.body != nil {
		t.Error("GET request has a body")
	}
	if ct := d.header.Get("Content-Type"); ct != "" {
		t.Errorf("Content-Type = %q, want none", ct)
	}
}

func TestBuildRequest_Post(t *testing.T) {
	c := testClient(t, "https://api.example.com")

	d, err := c.buildRequest(http.MethodPost, "/addresses", Params{P("label", "x"), P("asset", "BTC")})
	if err != nil {
		t.Fatalf("buildRequest() error = %v", err)
	}

	if d.url != "https://api.example.com/api/v1/addresses" {
		t.Errorf("url = %s", d.url)
	}
	if string(d.body) != `{"label":"x","asset":"BTC"}` {
		t.Errorf("body = %s", d.body)
	}
	if ct := d.header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestBuildRequest_NoBodyCases(t *testing.T) {
	c := testClient(t, "https://api.example.com")

	tests := []struct {
		name   string
		method string
		params Params
	}{
		{"delete with params", http.MethodDelete, Params{P("x", "y")}},
		{"post empty params", http.MethodPost, nil},
		{"patch empty params", http.MethodPatch, Params{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := c.buildRequest(tt.method, "/x", tt.params)
			if err != nil {
				t.Fatalf("buildRequest() error = %v", err)
			}
			if d.body != nil {
				t.Errorf("body = %s, want none", d.body)
			}
		})
	}
}
