package utils

import (
	"io"

	"github.com/goccy/go-json"
)

func MarshalJSON(val any) ([]byte, error) {
	return json.Marshal(val)
}

func MarshalJSONIndent(val any, indent string) ([]byte, error) {
	return json.MarshalIndent(val, "", indent)
}

func UnmarshalJSON(data []byte, val any) error {
	return json.Unmarshal(data, val)
}

func NewJSONEncoder(writer io.Writer) *json.Encoder {
	return json.NewEncoder(writer)
}

// RawJSON is a raw encoded JSON value.
type RawJSON = json.RawMessage
