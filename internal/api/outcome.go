package api

import (
	"net/http"
	"strings"

	"github.com/stratapay/client-go/internal/jsonval"
)

// interpretResponse classifies a received HTTP response. It returns the
// decoded payload for a 2xx response with a JSON object or array body, a
// null value for 204, and a typed error for everything else. Every non-2xx
// response reaches the caller as an *APIError carrying the status code and,
// when the service supplied them, the error name and sub-messages.
func interpretResponse(status int, body []byte) (jsonval.Value, error) {
	if status == http.StatusNoContent {
		return jsonval.Value{}, nil
	}

	parsed, parseErr := jsonval.Parse(body)
	structured := parseErr == nil &&
		(parsed.Kind() == jsonval.KindObject || parsed.Kind() == jsonval.KindArray)

	if status >= 200 && status < 300 {
		if !structured {
			return jsonval.Value{}, &MalformedResponseError{StatusCode: status, Body: string(body)}
		}
		return parsed, nil
	}

	// Non-2xx: classify from the richest error shape available. An
	// unparseable or non-object body falls through to the raw-text case.
	if parsed.Kind() != jsonval.KindObject {
		parsed = jsonval.Value{}
	}
	return jsonval.Value{}, classifyError(status, parsed, body)
}

// classifyError builds the APIError for a non-2xx response, in priority
// order: errorName, errors list, message, raw body text.
func classifyError(status int, parsed jsonval.Value, body []byte) *APIError {
	message := stringMember(parsed, "message")

	if name := stringMember(parsed, "errorName"); name != "" {
		return &APIError{
			StatusCode: status,
			Message:    message,
			ErrorName:  name,
		}
	}

	if list, ok := parsed.OptMember("errors"); ok {
		if entries, err := list.Array(); err == nil {
			return &APIError{
				StatusCode: status,
				Message:    joinErrors(message, entries),
				Errors:     stringEntries(entries),
			}
		}
	}

	if message != "" {
		return &APIError{StatusCode: status, Message: message}
	}

	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}

// stringMember returns the named member if it exists and is a string.
func stringMember(v jsonval.Value, name string) string {
	m, ok := v.OptMember(name)
	if !ok {
		return ""
	}
	s, err := m.String()
	if err != nil {
		return ""
	}
	return s
}

// joinErrors concatenates the top-level message and each sub-message,
// skipping entries that merely repeat the message.
func joinErrors(message string, entries []jsonval.Value) string {
	parts := make([]string, 0, len(entries)+1)
	if message != "" {
		parts = append(parts, message)
	}
	for _, e := range entries {
		s, err := e.String()
		if err != nil || s == "" || s == message {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func stringEntries(entries []jsonval.Value) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if s, err := e.String(); err == nil {
			out = append(out, s)
		}
	}
	return out
}
