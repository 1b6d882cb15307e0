// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package dom contains the in-memory document tree: text, comment and element
// nodes, where every node exclusively owns its children.
package dom

import (
	"golang.org/x/exp/slices"
)

// Kind is the variant of a node. The set is closed: Text, Comment and
// ElementData are the only implementations.
type Kind interface {
	String() string
	isKind()
}

// Text is a run of character data.
type Text string

func (Text) isKind() {}

// String returns the text unmodified.
func (t Text) String() string {
	return string(t)
}

// Comment is the content of a comment, without the delimiters.
type Comment string

func (Comment) isKind() {}

// String returns the comment content unmodified.
func (c Comment) String() string {
	return string(c)
}

// Node is an entry in the document tree.
// Nodes are values and cannot be changed after construction, so a tree is
// always finite and acyclic.
type Node struct {
	kind     Kind
	children []Node
}

// NewNode creates a node of the given kind which owns a copy of children.
func NewNode(kind Kind, children []Node) Node {
	return Node{
		kind:     kind,
		children: slices.Clone(children),
	}
}

// NewTextNode creates a childless text node.
func NewTextNode(text string) Node {
	return NewNode(Text(text), nil)
}

// NewCommentNode creates a childless comment node.
func NewCommentNode(comment string) Node {
	return NewNode(Comment(comment), nil)
}

// NewElementNode creates an element node and can be used for nested literals.
func NewElementNode(tagName string, attributes AttributeMap, children ...Node) Node {
	return NewNode(NewElementData(tagName, attributes), children)
}

// Kind returns the variant of this node. It is nil for the zero Node.
func (n Node) Kind() Kind {
	return n.kind
}

// Element returns the element data if this is an element node.
func (n Node) Element() (ElementData, bool) {
	e, ok := n.kind.(ElementData)
	return e, ok
}

// Len returns the number of children.
func (n Node) Len() int {
	return len(n.children)
}

// Child returns the i-th child.
func (n Node) Child(i int) Node {
	return n.children[i]
}

// Children returns a copy of the children in document order.
func (n Node) Children() []Node {
	return slices.Clone(n.children)
}

// String returns the debug representation of the node kind: the content
// for text and comments, the tag name and attributes for elements.
func (n Node) String() string {
	if n.kind == nil {
		return ""
	}

	return n.kind.String()
}
