package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// LocatorKind tells the driver how to resolve a Locator
type LocatorKind int

const (
	LocatorCSS LocatorKind = iota
	LocatorRole
)

// Locator identifies zero, one or many elements at query time.
// It is a value: it is re-resolved by the driver on every use.
type Locator struct {
	Kind     LocatorKind `json:"kind"`
	Selector string      `json:"selector,omitempty"`
	Role     string      `json:"role,omitempty"`
	Name     string      `json:"name,omitempty"`
}

// CSS - creates a CSS/text selector locator
func CSS(selector string) Locator {
	return Locator{Kind: LocatorCSS, Selector: selector}
}

// Role - creates an accessibility role locator matched by exact accessible name
func Role(role, name string) Locator {
	return Locator{Kind: LocatorRole, Role: role, Name: name}
}

// HasText - narrows a CSS locator to elements containing text
func (l Locator) HasText(text string) Locator {
	l.Selector = fmt.Sprintf("%s:has-text(%s)", l.Selector, strconv.Quote(text))
	return l
}

// Invalid - narrows a CSS locator to elements matching the :invalid pseudo-class
func (l Locator) Invalid() Locator {
	l.Selector += ":invalid"
	return l
}

// String - returns a stable description, also used as the lookup key by fake drivers
func (l Locator) String() string {
	if l.Kind == LocatorRole {
		return fmt.Sprintf("role=%s[name=%s]", l.Role, strconv.Quote(l.Name))
	}
	return l.Selector
}

// Template is a selector with a single "{}" placeholder
type Template string

// Format - substitutes the placeholder with v
func (t Template) Format(v any) Locator {
	return CSS(strings.Replace(string(t), "{}", fmt.Sprint(v), 1))
}
