// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package dom

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Attribute represents a single name/value pair of an element.
type Attribute struct {
	Key   string
	Value string
}

// AttributeMap maps attribute names to values. Keys are unique and case
// sensitive. Iteration follows insertion order, which is also the order in
// which attributes are rendered. The zero value is an empty map.
type AttributeMap struct {
	attributes []Attribute
	// index holds the position of each key in attributes.
	index map[string]int
}

// NewAttributeMap creates a map from the given attributes. A later attribute
// with an already seen key replaces the earlier value.
func NewAttributeMap(attrs ...Attribute) AttributeMap {
	m := AttributeMap{}
	for _, a := range attrs {
		m.Set(a.Key, a.Value)
	}

	return m
}

// Len returns the number of attributes in the map.
func (m AttributeMap) Len() int {
	return len(m.attributes)
}

// Set the value of key. An existing key keeps its position and gets its value
// replaced. Returns true if an existing attribute got overwritten.
func (m *AttributeMap) Set(key, value string) bool {
	if i, ok := m.index[key]; ok {
		m.attributes[i].Value = value
		return true
	}

	if m.index == nil {
		m.index = make(map[string]int)
	}

	m.index[key] = len(m.attributes)
	m.attributes = append(m.attributes, Attribute{
		Key:   key,
		Value: value,
	})

	return false
}

// Get returns the value for key and whether it was present.
func (m AttributeMap) Get(key string) (string, bool) {
	i, ok := m.index[key]
	if !ok {
		return "", false
	}

	return m.attributes[i].Value, true
}

// Has returns true if key is set.
func (m AttributeMap) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// All returns a copy of the attributes in insertion order.
func (m AttributeMap) All() []Attribute {
	return slices.Clone(m.attributes)
}

// Keys returns the attribute names in insertion order.
func (m AttributeMap) Keys() []string {
	keys := make([]string, 0, len(m.attributes))
	for _, a := range m.attributes {
		keys = append(keys, a.Key)
	}

	return keys
}

// Clone returns a deep copy which shares no state with m.
func (m AttributeMap) Clone() AttributeMap {
	return AttributeMap{
		attributes: slices.Clone(m.attributes),
		index:      maps.Clone(m.index),
	}
}

// Merge returns a new map with all keys of m and other.
// Attributes in other are prioritized, new keys of other are appended.
func (m AttributeMap) Merge(other AttributeMap) AttributeMap {
	result := m.Clone()
	for _, a := range other.attributes {
		result.Set(a.Key, a.Value)
	}

	return result
}

// Equal reports whether both maps hold the same attributes in the same order.
func (m AttributeMap) Equal(other AttributeMap) bool {
	return slices.Equal(m.attributes, other.attributes)
}
