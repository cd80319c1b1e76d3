package chaptersdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the wire shape of every non-2xx response: a human
// message plus optional per-field validation errors. The server side writes
// it and the SDK parses it back into an APIError.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// APIError is a typed error carrying the HTTP status and the server's
// error body.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("HTTP %d: %s %v", e.StatusCode, e.Message, e.Errors)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    er.Message,
			Errors:     er.Errors,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
