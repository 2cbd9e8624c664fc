package utils

import (
	"bytes"
	"encoding/json"
)

// JSONString is a request string field that remembers whether the key was
// present and whether it carried an explicit null.
type JSONString struct {
	Value string
	Set   bool
	Null  bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *JSONString) UnmarshalJSON(data []byte) error {
	s.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		s.Null = true
		s.Value = ""
		return nil
	}
	s.Null = false
	return json.Unmarshal(data, &s.Value)
}

// MarshalJSON implements json.Marshaler.
func (s JSONString) MarshalJSON() ([]byte, error) {
	if !s.Set || s.Null {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// Ptr returns the value, or nil when the field was absent or null.
func (s JSONString) Ptr() *string {
	if !s.Set || s.Null {
		return nil
	}
	v := s.Value
	return &v
}

// String returns the value, or "" when the field was absent or null.
func (s JSONString) String() string {
	return s.Value
}

// NewJSONString returns a present, non-null field holding v.
func NewJSONString(v string) JSONString {
	return JSONString{Value: v, Set: true}
}
