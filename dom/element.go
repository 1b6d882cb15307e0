// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrInvalidElement is returned by NewElement for an element without tag name.
var ErrInvalidElement = errors.New("invalid element")

const (
	attrID    = "id"
	attrClass = "class"
)

// ElementData is the tag name and the attributes of an element node.
type ElementData struct {
	tagName    string
	attributes AttributeMap
}

// NewElementData creates the data of an element. It does not reject an
// empty tag name, callers must not pass one. Use NewElement to get it checked.
// The attributes are copied.
func NewElementData(tagName string, attributes AttributeMap) ElementData {
	return ElementData{
		tagName:    tagName,
		attributes: attributes.Clone(),
	}
}

// NewElement is like NewElementData but fails with ErrInvalidElement if
// tagName is empty.
func NewElement(tagName string, attributes AttributeMap) (ElementData, error) {
	if tagName == "" {
		return ElementData{}, fmt.Errorf("%w: empty tag name", ErrInvalidElement)
	}

	return NewElementData(tagName, attributes), nil
}

func (ElementData) isKind() {}

// TagName returns the tag name as given on construction.
func (e ElementData) TagName() string {
	return e.tagName
}

// Attributes returns a copy of the attributes.
func (e ElementData) Attributes() AttributeMap {
	return e.attributes.Clone()
}

// Attribute returns the value of the named attribute.
func (e ElementData) Attribute(key string) (string, bool) {
	return e.attributes.Get(key)
}

// ID returns the value of the id attribute.
func (e ElementData) ID() (string, bool) {
	return e.attributes.Get(attrID)
}

// Classes returns the distinct tokens of the class attribute, split at each
// single space. Consecutive, leading or trailing spaces yield an empty token
// which is kept in the set.
func (e ElementData) Classes() ClassSet {
	set := ClassSet{}
	class, ok := e.attributes.Get(attrClass)
	if !ok {
		return set
	}

	for _, c := range strings.Split(class, " ") {
		set[c] = struct{}{}
	}

	return set
}

// String returns the tag name followed by ` key="value"` for each attribute.
func (e ElementData) String() string {
	var sb strings.Builder
	sb.WriteString(e.tagName)
	for _, a := range e.attributes.attributes {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}

	return sb.String()
}

// ClassSet is a set of class names.
type ClassSet map[string]struct{}

// Has returns true if class is in the set.
func (s ClassSet) Has(class string) bool {
	_, ok := s[class]
	return ok
}

// Len returns the number of classes.
func (s ClassSet) Len() int {
	return len(s)
}

// Sorted returns the classes in lexical order.
func (s ClassSet) Sorted() []string {
	classes := maps.Keys(s)
	slices.Sort(classes)

	return classes
}
