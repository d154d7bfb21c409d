package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFilter = errors.New("unknown filter")

// Filter narrows the catalog view. It is UI state and is never persisted.
type Filter string

const FilterAll Filter = "all"

// Filters returns the selectable filters in button order.
func Filters() []Filter {
	out := []Filter{FilterAll}
	for _, c := range Categories() {
		out = append(out, Filter(c))
	}
	return out
}

// ParseFilter accepts "all" or a category name, case-insensitively.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if f == FilterAll || Category(f).Valid() {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Match reports whether a product in category c passes the filter.
func (f Filter) Match(c Category) bool {
	return f == FilterAll || Category(f) == c
}

func (f Filter) Label() string {
	if f == FilterAll {
		return "All"
	}
	s := string(f)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
