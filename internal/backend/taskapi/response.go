package taskapi

import (
	"bytes"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
)

// APIError is a classified API failure. Error() carries only the
// human-readable diagnostic; method, path and status stay available to
// callers without ever exposing a raw response body.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

const (
	hintHTML       = "Received HTML instead of JSON. Check API base URL configuration."
	hintUnexpected = "Unexpected response from server."
)

// doctypePrefix opens the HTML error pages that misrouted requests land on.
var doctypePrefix = []byte("<!DOCTYPE")

// decodeResponse turns a finished HTTP exchange into either a value decoded
// into out or a single classified error. The failure mode it exists for is a
// wrong base URL: requests silently land on a dev server or static file host
// that answers with an HTML page, and the bare JSON syntax error that falls
// out of decoding markup is useless to the user.
//
// A nil out means the caller expects no value (DELETE); a success status then
// short-circuits without inspecting the body, so 204 responses pass.
func decodeResponse(method, path string, status int, contentType string, body []byte, out any) error {
	isJSON := isJSONMediaType(contentType)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		hint := hintUnexpected
		if !isJSON && bytes.HasPrefix(body, doctypePrefix) {
			hint = hintHTML
		}
		return &APIError{
			Method:  method,
			Path:    path,
			Status:  status,
			Message: fmt.Sprintf("%s %s failed (%d). %s", method, path, status, hint),
		}
	}

	if out == nil {
		return nil
	}

	if !isJSON {
		return &APIError{
			Method:  method,
			Path:    path,
			Status:  status,
			Message: fmt.Sprintf("Unexpected non-JSON response for %s %s. Check API base URL configuration.", method, path),
		}
	}

	if err := sonic.ConfigStd.Unmarshal(body, out); err != nil {
		return &APIError{
			Method:  method,
			Path:    path,
			Status:  status,
			Message: fmt.Sprintf("Invalid JSON response for %s %s. Check API base URL configuration.", method, path),
		}
	}

	return nil
}

// isJSONMediaType reports whether the declared content type is a JSON media
// type: exactly application/json or any +json suffixed type. Parameters such
// as charset are ignored.
func isJSONMediaType(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
