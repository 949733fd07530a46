package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
)

// ErrMalformedBody marks request bodies that could not be decoded at all
var ErrMalformedBody = errors.New("malformed request body")

// DecodeAndValidate decodes the JSON request body into out and runs
// struct validation. The caller maps the returned error onto its
// response format; Fields flattens validation errors for that purpose.
func DecodeAndValidate(r *http.Request, out interface{}, v *validatorv10.Validate) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if err := v.Struct(out); err != nil {
		return err
	}
	return nil
}

// Fields flattens validation errors into field -> message pairs
func Fields(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.StructNamespace()] = fe.Error()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}
