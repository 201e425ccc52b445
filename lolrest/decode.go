package lolrest

import (
	jsoniter "github.com/json-iterator/go"
)

// DecodeResponse unmarshals the body of the given response into the provided interface.
func DecodeResponse(resp *Response, data any) error {
	if err := jsoniter.Unmarshal(resp.Body, data); err != nil {
		return &DecodeError{err: err}
	}

	return nil
}
