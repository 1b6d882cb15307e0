// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/golangee/domtree/dom"
)

// EncodeJSON writes the tree rooted at n as indented JSON.
func EncodeJSON(w io.Writer, n dom.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(NewSnapshot(n)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// DecodeJSON reads a tree written by EncodeJSON.
func DecodeJSON(r io.Reader) (dom.Node, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return dom.Node{}, fmt.Errorf("failed to decode JSON: %w", err)
	}

	return s.Node()
}

// EncodeYAML writes the tree rooted at n as YAML.
func EncodeYAML(w io.Writer, n dom.Node) error {
	if err := yaml.NewEncoder(w).Encode(NewSnapshot(n)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// DecodeYAML reads a tree written by EncodeYAML.
func DecodeYAML(r io.Reader) (dom.Node, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return dom.Node{}, fmt.Errorf("failed to decode YAML: %w", err)
	}

	return s.Node()
}
