// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package printer renders a document tree as indented text, one line per node.
package printer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golangee/domtree/dom"
	"go.uber.org/zap"
)

// indentWidth is the number of spaces per tree level.
const indentWidth = 2

// ErrUnknownKind is returned for a node without a valid kind, e.g. the zero dom.Node.
var ErrUnknownKind = errors.New("unknown node kind")

// IOError wraps a failure of the underlying writer.
type IOError struct {
	Cause error
}

func (e *IOError) Error() string {
	return "failed to write tree: " + e.Cause.Error()
}

func (e *IOError) Unwrap() error {
	return e.Cause
}

// Decorator may style the content of a line, e.g. with terminal colors.
// It never sees the indentation.
type Decorator func(kind dom.Kind, content string) string

// Option configures a Printer.
type Option func(p *Printer)

// WithLogger sets the logger, which defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Printer) {
		p.logger = logger
	}
}

// WithDecorator sets a Decorator for the line contents.
func WithDecorator(d Decorator) Option {
	return func(p *Printer) {
		p.decorate = d
	}
}

// Printer writes trees to a writer. It is not safe for concurrent use.
type Printer struct {
	out      io.Writer
	// writer buffers the output of a single Print call.
	writer   *bufio.Writer
	logger   *zap.Logger
	decorate Decorator
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:    w,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Print writes root and all of its descendants in pre-order, each line
// indented by two spaces per depth. The tree is never modified.
// Output is flushed before returning, even if an error occurred.
// A failed Print does not affect later calls.
func (p *Printer) Print(root dom.Node) error {
	p.writer = bufio.NewWriter(p.out)
	lines := 0
	err := dom.Walk(root, func(n dom.Node, depth int) error {
		if err := p.printNode(n, depth); err != nil {
			return err
		}

		lines++
		return nil
	})

	if flushErr := p.writer.Flush(); flushErr != nil && err == nil {
		err = &IOError{Cause: flushErr}
	}

	if err != nil {
		p.logger.Debug("printing tree failed", zap.Int("lines", lines), zap.Error(err))
		return err
	}

	p.logger.Debug("printed tree", zap.Int("lines", lines))

	return nil
}

func (p *Printer) printNode(n dom.Node, depth int) error {
	text, ok := content(n)
	if !ok {
		return fmt.Errorf("%w at depth %d", ErrUnknownKind, depth)
	}

	if p.decorate != nil {
		text = p.decorate(n.Kind(), text)
	}

	if err := p.writeString(indent(depth) + text + "\n"); err != nil {
		return &IOError{Cause: err}
	}

	return nil
}

// writeString is a convenience method to write strings to the underlying writer.
func (p *Printer) writeString(s string) error {
	_, err := p.writer.WriteString(s)

	return err
}

// Fprint writes the tree rooted at root to w.
func Fprint(w io.Writer, root dom.Node) error {
	return NewPrinter(w).Print(root)
}

// PrettyPrint writes the tree rooted at root to the standard output.
func PrettyPrint(root dom.Node) error {
	return Fprint(os.Stdout, root)
}

// Render returns the line of n at the given depth, without line break.
// A node without kind renders as indentation only.
func Render(n dom.Node, depth int) string {
	c, _ := content(n)

	return indent(depth) + c
}

// content returns the part of a line after the indentation.
func content(n dom.Node) (string, bool) {
	switch k := n.Kind().(type) {
	case dom.ElementData:
		return k.String(), true
	case dom.Comment:
		return "<!--" + string(k) + "-->", true
	case dom.Text:
		return string(k), true
	default:
		return "", false
	}
}

// indent returns the leading spaces for the given depth.
func indent(depth int) string {
	return strings.Repeat(" ", depth*indentWidth)
}
