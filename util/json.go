package util

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ReadJSON decodes the request body into out. The body is expected to
// be a single JSON object.
func ReadJSON(r *http.Request, out interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}

	err := json.NewDecoder(r.Body).Decode(out)
	if err != nil {
		return errors.New("request is not valid json")
	}

	return nil
}
