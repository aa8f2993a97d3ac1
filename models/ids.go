package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a portal identifier. The portal sends some ids as JSON strings and
// others as JSON numbers; both decode to the same text. An ID always
// marshals as a JSON string.
type ID string

// UnmarshalJSON implements [json.Unmarshaler].
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number, got %s", data)
	}
	*id = ID(n)
	return nil
}

// String returns the id text.
func (id ID) String() string {
	return string(id)
}
