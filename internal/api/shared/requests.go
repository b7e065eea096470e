package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON reads the request body as JSON into v. Handlers treat any
// decode failure as a malformed request; field validation happens
// separately against the struct tags.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
