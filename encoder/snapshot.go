// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package encoder converts document trees from and to JSON, YAML and XML.
package encoder

import (
	"errors"
	"fmt"

	"github.com/golangee/domtree/dom"
)

// Types of a Snapshot.
const (
	TypeText    = "text"
	TypeComment = "comment"
	TypeElement = "element"
)

// ErrUnknownType is returned when a Snapshot has no known Type.
var ErrUnknownType = errors.New("unknown node type")

// Attribute is a single attribute of an element snapshot.
type Attribute struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Snapshot is a plain, serializable copy of a node and its subtree.
// Attributes are a list, so that their order survives a round trip.
type Snapshot struct {
	Type       string      `json:"type" yaml:"type"`
	Tag        string      `json:"tag,omitempty" yaml:"tag,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Data       string      `json:"data,omitempty" yaml:"data,omitempty"`
	Children   []Snapshot  `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewSnapshot copies the tree rooted at n.
func NewSnapshot(n dom.Node) Snapshot {
	var s Snapshot
	switch k := n.Kind().(type) {
	case dom.ElementData:
		s.Type = TypeElement
		s.Tag = k.TagName()
		for _, a := range k.Attributes().All() {
			s.Attributes = append(s.Attributes, Attribute{Key: a.Key, Value: a.Value})
		}
	case dom.Comment:
		s.Type = TypeComment
		s.Data = string(k)
	case dom.Text:
		s.Type = TypeText
		s.Data = string(k)
	}

	for _, child := range n.Children() {
		s.Children = append(s.Children, NewSnapshot(child))
	}

	return s
}

// Node builds a document tree from the snapshot.
func (s Snapshot) Node() (dom.Node, error) {
	var kind dom.Kind
	switch s.Type {
	case TypeElement:
		attrs := dom.NewAttributeMap()
		for _, a := range s.Attributes {
			attrs.Set(a.Key, a.Value)
		}

		e, err := dom.NewElement(s.Tag, attrs)
		if err != nil {
			return dom.Node{}, err
		}

		kind = e
	case TypeComment:
		kind = dom.Comment(s.Data)
	case TypeText:
		kind = dom.Text(s.Data)
	default:
		return dom.Node{}, fmt.Errorf("%w: %q", ErrUnknownType, s.Type)
	}

	children := make([]dom.Node, 0, len(s.Children))
	for i, c := range s.Children {
		child, err := c.Node()
		if err != nil {
			return dom.Node{}, fmt.Errorf("child %d: %w", i, err)
		}

		children = append(children, child)
	}

	return dom.NewNode(kind, children), nil
}
