// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package dom

// WalkFunc is called for each node together with its depth, where the root
// has depth 0.
type WalkFunc func(n Node, depth int) error

// Walk visits root and all of its descendants depth-first in pre-order.
// The first error returned by fn stops the walk and is returned.
func Walk(root Node, fn WalkFunc) error {
	return walk(root, 0, fn)
}

func walk(n Node, depth int, fn WalkFunc) error {
	if err := fn(n, depth); err != nil {
		return err
	}

	for _, child := range n.children {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}

	return nil
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	count := 1
	for _, child := range n.children {
		count += Count(child)
	}

	return count
}

// Height returns the number of nodes on the longest path from n to a leaf.
func Height(n Node) int {
	highest := 0
	for _, child := range n.children {
		if h := Height(child); h > highest {
			highest = h
		}
	}

	return highest + 1
}

// Demo returns a small element with two text children.
func Demo() Node {
	attrs := NewAttributeMap()
	attrs.Set("attr1", "value1")
	attrs.Set("attr2", "value2")

	return NewNode(NewElementData("root", attrs), []Node{
		NewTextNode("text_node1"),
		NewTextNode("text_node2"),
	})
}
