package swapi

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is the semi-structured representation of one upstream entity.
// Scalar fields are strings; reference fields are URLs (or lists of URLs)
// whose trailing path segment is the referenced entity's upstream id.
type Record map[string]any

// Has reports whether the record carries a non-empty string value for key.
// The upstream signals "no such entity" by omitting the primary field
// (name/title), so Has on that field decides usability.
func (r Record) Has(key string) bool {
	return r.Str(key) != ""
}

// Str returns the string value for key, or "" when absent or not a string.
func (r Record) Str(key string) string {
	v, ok := r[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// Ref returns the single reference URL stored under key, if present.
func (r Record) Ref(key string) (string, bool) {
	s := r.Str(key)
	return s, s != ""
}

// Refs returns the list of reference URLs stored under key. A missing or
// malformed value yields an empty list; non-string elements are skipped.
func (r Record) Refs(key string) []string {
	v, ok := r[key]
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	refs := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok && s != "" {
			refs = append(refs, s)
		}
	}
	return refs
}

// RefID extracts the upstream numeric id from a reference URL by taking the
// last non-empty path segment (e.g. ".../planets/1/" yields 1).
func RefID(url string) (int64, error) {
	trimmed := strings.Trim(url, "/")
	if trimmed == "" {
		return 0, fmt.Errorf("empty reference url")
	}
	segments := strings.Split(trimmed, "/")
	last := segments[len(segments)-1]
	id, err := strconv.ParseInt(last, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("reference url %q: trailing segment %q is not a numeric id", url, last)
	}
	return id, nil
}
