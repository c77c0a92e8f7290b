// Package color holds the color value type and the validator that decides
// whether a typed string is an acceptable color.
package color

import "strings"

// Value is a textual color such as "#ff0000", "rebeccapurple" or
// "rgb(0, 0, 0)". The empty Value means "no color".
type Value string

// None is the "no color" value. It is always valid.
const None Value = ""

// IsNone reports whether v carries no color.
func (v Value) IsNone() bool {
	return v == None
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return string(v)
}

// EqualFold reports whether two values spell the same color ignoring case.
func (v Value) EqualFold(other Value) bool {
	return strings.EqualFold(strings.TrimSpace(string(v)), strings.TrimSpace(string(other)))
}
