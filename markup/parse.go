// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package markup builds document trees from a small tag based markup:
//
//	<!-- a comment -->
//	<div id="main" class="a b" hidden>
//	  some text
//	  <br/>
//	</div>
//
// Every line of a text run becomes its own text node with surrounding
// whitespace trimmed, blank lines are dropped. The lines of a multi-line
// comment are trimmed and joined by single spaces. There is no error
// recovery, parsing stops at the first problem.
package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/golangee/domtree/dom"
	"go.uber.org/zap"
)

// RootName is the tag of the element which wraps multiple top-level nodes.
const RootName = "root"

// ErrSyntax is wrapped by all errors of the grammar.
var ErrSyntax = errors.New("syntax error")

// PosError describes a problem at a position in the markup.
type PosError struct {
	Pos     lexer.Position
	Message string
	Cause   error
}

// NewPosError creates a PosError for the given position.
func NewPosError(pos lexer.Position, msg string) *PosError {
	return &PosError{
		Pos:     pos,
		Message: msg,
	}
}

func (p *PosError) Error() string {
	msg := p.Pos.String() + ": " + p.Message
	if p.Cause != nil {
		msg += ": " + p.Cause.Error()
	}

	return msg
}

func (p *PosError) Unwrap() error {
	return p.Cause
}

// Option configures parsing.
type Option func(b *builder)

// WithLogger sets the logger, which defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *builder) {
		b.logger = logger
	}
}

// Parse reads markup from r and returns the document tree. A document with
// a single top-level node returns that node. Otherwise all top-level nodes
// are wrapped into an element named RootName.
func Parse(filename string, r io.Reader, opts ...Option) (dom.Node, error) {
	b := &builder{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}

	doc := &document{}
	if err := markupParser.Parse(filename, r, doc); err != nil {
		return dom.Node{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	nodes, err := b.nodes(doc.Nodes)
	if err != nil {
		return dom.Node{}, err
	}

	var root dom.Node
	switch len(nodes) {
	case 0:
		return dom.Node{}, NewPosError(lexer.Position{Filename: filename, Line: 1, Column: 1}, "document is empty")
	case 1:
		root = nodes[0]
	default:
		root = dom.NewNode(dom.NewElementData(RootName, dom.AttributeMap{}), nodes)
	}

	b.logger.Debug("parsed markup",
		zap.String("file", filename),
		zap.Int("nodes", dom.Count(root)),
		zap.Int("elements", b.elements),
	)

	return root, nil
}

// ParseString is like Parse but reads from src.
func ParseString(filename, src string, opts ...Option) (dom.Node, error) {
	return Parse(filename, strings.NewReader(src), opts...)
}

// builder converts the grammar types into dom nodes.
type builder struct {
	logger   *zap.Logger
	elements int
}

func (b *builder) nodes(in []*node) ([]dom.Node, error) {
	var out []dom.Node
	for _, n := range in {
		switch {
		case n.Comment != nil:
			c := strings.TrimSuffix(strings.TrimPrefix(*n.Comment, "<!--"), "-->")
			out = append(out, dom.NewCommentNode(joinLines(c)))
		case n.Text != nil:
			for _, line := range strings.Split(*n.Text, "\n") {
				text := strings.TrimSpace(line)
				if text == "" {
					continue
				}

				out = append(out, dom.NewTextNode(text))
			}
		case n.Element != nil:
			e, err := b.element(n.Element)
			if err != nil {
				return nil, err
			}

			out = append(out, e)
		}
	}

	return out, nil
}

// joinLines trims each line of a multi-line comment and joins them with a
// single space. Single-line comments are returned unchanged.
func joinLines(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.Join(lines, " ")
}

func (b *builder) element(e *element) (dom.Node, error) {
	if !e.SelfClosing && e.CloseName != e.Name {
		return dom.Node{}, NewPosError(e.Pos, fmt.Sprintf("expected </%s> but found </%s>", e.Name, e.CloseName))
	}

	attrs := dom.NewAttributeMap()
	for _, a := range e.Attributes {
		value := ""
		if a.Value != nil {
			value = strings.TrimSuffix(strings.TrimPrefix(*a.Value, `"`), `"`)
		}

		if attrs.Set(a.Key, value) {
			return dom.Node{}, NewPosError(a.Pos, "attribute already defined: "+a.Key)
		}
	}

	data, err := dom.NewElement(e.Name, attrs)
	if err != nil {
		return dom.Node{}, &PosError{Pos: e.Pos, Message: "invalid element", Cause: err}
	}

	children, err := b.nodes(e.Children)
	if err != nil {
		return dom.Node{}, err
	}

	b.elements++

	return dom.NewNode(data, children), nil
}
