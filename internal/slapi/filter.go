package slapi

import (
	"encoding/json"
	"fmt"
)

// ObjectFilter is a server-side query predicate keyed by field path. It
// marshals to the JSON fragment SoftLayer expects in the objectFilter query
// parameter.
type ObjectFilter map[string]interface{}

// Encode renders the filter as its JSON wire form.
func (f ObjectFilter) Encode() (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("failed to encode object filter: %w", err)
	}
	return string(data), nil
}

// nest wraps an operation under the given field path, innermost last:
// nest(op, "a", "b") -> {"a":{"b":op}}.
func nest(op interface{}, path ...string) ObjectFilter {
	if len(path) == 0 {
		return ObjectFilter{}
	}
	var inner interface{} = op
	for i := len(path) - 1; i > 0; i-- {
		inner = map[string]interface{}{path[i]: inner}
	}
	return ObjectFilter{path[0]: inner}
}

// FilterEq matches a field path exactly.
func FilterEq(value interface{}, path ...string) ObjectFilter {
	return nest(map[string]interface{}{"operation": value}, path...)
}

// FilterContains matches a field path by case-insensitive substring, using
// the vendor's "*= value" operation.
func FilterContains(value string, path ...string) ObjectFilter {
	return nest(map[string]interface{}{"operation": "*= " + value}, path...)
}

// FilterIn matches a field path against a set of values.
func FilterIn(values []string, path ...string) ObjectFilter {
	op := map[string]interface{}{
		"operation": "in",
		"options": []map[string]interface{}{
			{"name": "data", "value": values},
		},
	}
	return nest(op, path...)
}

// Merge combines filters into one predicate document. Later keys win on
// collision; callers keep paths disjoint.
func Merge(filters ...ObjectFilter) ObjectFilter {
	out := ObjectFilter{}
	for _, f := range filters {
		for k, v := range f {
			out[k] = v
		}
	}
	return out
}
