// Package nodeutil holds small tree and sequence helpers shared by the
// navigation builder and URL mapper.
package nodeutil

import (
	"strings"

	"git.home.luguber.info/inful/doctheme/internal/model"
)

// InPath walks start's parent chain and reports whether target lies on it.
// Project roots are never considered contained by anything, so the walk
// returns false as soon as it reaches one. A nil start is not on any path.
func InPath(target, start *model.Node) bool {
	for n := start; n != nil; n = n.Parent {
		if n.IsProject() {
			return false
		}
		if n == target {
			return true
		}
	}
	return false
}

// ClassFlag pairs a CSS class name with whether it applies.
type ClassFlag struct {
	Name string
	On   bool
}

// ClassNames returns the space-joined names whose flag is set, preserving
// input order.
func ClassNames(flags ...ClassFlag) string {
	var names []string
	for _, f := range flags {
		if f.On {
			names = append(names, f.Name)
		}
	}
	return strings.Join(names, " ")
}

// Partition splits items into those matching pred and the rest, preserving
// relative order within each half.
func Partition[T any](items []T, pred func(T) bool) (matches, rest []T) {
	for _, item := range items {
		if pred(item) {
			matches = append(matches, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matches, rest
}
