package book

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Field is a tri-state JSON value: absent (zero value), explicit null, or
// present with a value. It lets update payloads distinguish "set this to
// null/empty" from "don't touch this field".
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(data, []byte("null")) {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// YearField is the tri-state publication year. The catalog form submits it
// as a number or a numeric string; an empty string counts as null, same as
// an explicit null.
type YearField struct {
	Present bool
	Null    bool
	Value   int
}

func (f *YearField) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		f.Null = true
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		f.Value = v
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}
