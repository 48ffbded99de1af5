package core

import (
	"net/url"
	"sort"
	"strings"
)

type Field struct {
	Key   string
	Value string
}

// Form is an ordered list of form fields. Unlike url.Values it keeps insertion
// order and repeats a key once per value when encoded. Fields with an empty
// key are kept in the list but never encoded.
type Form []Field

func (f Form) Add(key string, value string) Form {
	return append(f, Field{Key: key, Value: value})
}

// AddAll appends one field per value, all under key.
func (f Form) AddAll(key string, values ...string) Form {
	for _, value := range values {
		f = append(f, Field{Key: key, Value: value})
	}
	return f
}

// AddIf appends the field only when value is not blank.
func (f Form) AddIf(key string, value string) Form {
	if strings.TrimSpace(value) == "" {
		return f
	}
	return f.Add(key, value)
}

func (f Form) Append(other Form) Form {
	return append(f, other...)
}

func (f Form) Get(key string) string {
	for _, field := range f {
		if field.Key == key {
			return field.Value
		}
	}
	return ""
}

// Encode renders the form as application/x-www-form-urlencoded, spaces as '+'.
// Fields with an empty key are skipped.
func (f Form) Encode() string {
	if len(f) == 0 {
		return ""
	}
	var buf strings.Builder
	for _, field := range f {
		if field.Key == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(field.Key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(field.Value))
	}
	return buf.String()
}

func (f Form) Clone() Form {
	if f == nil {
		return nil
	}
	return append(Form(nil), f...)
}

// FormFromValues converts url.Values into a Form with keys in sorted order,
// matching url.Values.Encode.
func FormFromValues(values url.Values) Form {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make(Form, 0, len(keys))
	for _, key := range keys {
		out = out.AddAll(key, values[key]...)
	}
	return out
}
