package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
)

// BookPayload returns the JSON body of a valid book, keyed by column name.
// Callers mutate the map to build invalid variants.
func BookPayload() map[string]any {
	return map[string]any{
		"isbn":       "0987654321",
		"amazon_url": "http://amazon.com/book2",
		"author":     "Author2",
		"language":   "english",
		"pages":      300,
		"publisher":  "Publisher2",
		"title":      "Test Book 2",
		"year":       2021,
	}
}

// NewRequest creates a new HTTP request for testing. A string or []byte body
// is sent verbatim, anything else is JSON encoded.
func NewRequest(method, path string, body any) *http.Request {
	var bodyBytes []byte
	switch v := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(v)
	case []byte:
		bodyBytes = v
	default:
		bodyBytes, _ = json.Marshal(v)
	}

	if bodyBytes == nil {
		return httptest.NewRequest(method, path, nil)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// RecordHTTPResponse decodes the recorded response body as a JSON object.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// ErrorMessages returns error.message as a list, wrapping a single string.
func (r RecordResponse) ErrorMessages() []string {
	errBody, ok := r.Body["error"].(map[string]any)
	if !ok {
		return nil
	}
	switch msg := errBody["message"].(type) {
	case string:
		return []string{msg}
	case []any:
		out := make([]string, 0, len(msg))
		for _, m := range msg {
			if s, ok := m.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
