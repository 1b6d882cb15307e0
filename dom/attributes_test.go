// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeMapOrder(t *testing.T) {
	var m AttributeMap
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Set("b", "1"))
	assert.False(t, m.Set("a", "2"))
	assert.False(t, m.Set("c", "3"))
	assert.True(t, m.Set("b", "4"))

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, []Attribute{{"b", "4"}, {"a", "2"}, {"c", "3"}}, m.All())

	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, "4", v)

	_, ok = m.Get("B")
	assert.False(t, ok, "keys are case sensitive")
	assert.False(t, m.Has("missing"))
}

func TestAttributeMapCloneIsolated(t *testing.T) {
	m := NewAttributeMap(Attribute{"id", "x"})
	c := m.Clone()
	c.Set("id", "y")
	c.Set("class", "z")

	v, _ := m.Get("id")
	assert.Equal(t, "x", v)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, c.Len())
}

func TestAttributeMapMerge(t *testing.T) {
	a := NewAttributeMap(Attribute{"x", "1"}, Attribute{"y", "2"})
	b := NewAttributeMap(Attribute{"z", "3"}, Attribute{"x", "4"})

	merged := a.Merge(b)
	assert.Equal(t, []Attribute{{"x", "4"}, {"y", "2"}, {"z", "3"}}, merged.All())
	assert.True(t, a.Equal(NewAttributeMap(Attribute{"x", "1"}, Attribute{"y", "2"})))
}

func TestNewAttributeMapDuplicate(t *testing.T) {
	m := NewAttributeMap(Attribute{"k", "1"}, Attribute{"k", "2"})
	assert.Equal(t, []Attribute{{"k", "2"}}, m.All())
}
