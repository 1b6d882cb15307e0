// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golangee/domtree/dom"
)

// XMLEncoder writes document trees as indented XML.
type XMLEncoder struct {
	writer *bufio.Writer
	// indent is the current level of indentation for emitting XML.
	indent int
}

func NewXMLEncoder(w io.Writer) *XMLEncoder {
	return &XMLEncoder{
		writer: bufio.NewWriter(w),
	}
}

// EncodeXML writes the tree rooted at n to w.
func EncodeXML(w io.Writer, n dom.Node) error {
	return NewXMLEncoder(w).Encode(n)
}

// Encode writes the tree rooted at n and flushes the output.
// There is no up-front validation, which means that in case of an error incomplete output
// already got emitted.
func (e *XMLEncoder) Encode(n dom.Node) error {
	if err := e.encode(n); err != nil {
		return err
	}

	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush written XML: %w", err)
	}

	return nil
}

func (e *XMLEncoder) encode(n dom.Node) error {
	switch k := n.Kind().(type) {
	case dom.ElementData:
		return e.element(k, n.Children())
	case dom.Comment:
		return e.writeString(fmt.Sprintf("%s<!-- %s -->\n", e.indentString(), strings.TrimSpace(commentSafe(string(k)))))
	case dom.Text:
		return e.writeString(fmt.Sprintf("%s%s\n", e.indentString(), escapeXMLSafe(string(k))))
	default:
		return ErrUnknownType
	}
}

func (e *XMLEncoder) element(data dom.ElementData, children []dom.Node) error {
	// Build the opening tag with all attributes
	var tag strings.Builder

	tag.WriteString(e.indentString())
	tag.WriteString("<")
	tag.WriteString(data.TagName())

	for _, attr := range data.Attributes().All() {
		tag.WriteString(fmt.Sprintf(` %s="%s"`, attr.Key, escapeXMLSafe(attr.Value)))
	}

	if len(children) == 0 {
		tag.WriteString("/>\n")
		return e.writeString(tag.String())
	}

	tag.WriteString(">\n")
	if err := e.writeString(tag.String()); err != nil {
		return err
	}

	e.indent++
	for _, child := range children {
		if err := e.encode(child); err != nil {
			return err
		}
	}
	e.indent--

	return e.writeString(fmt.Sprintf("%s</%s>\n", e.indentString(), data.TagName()))
}

// writeString is a convenience method to write strings to the underlying writer.
func (e *XMLEncoder) writeString(s string) error {
	_, err := e.writer.WriteString(s)

	return err
}

// indentString returns a string with a number of spaces that matches the
// current indentation level.
func (e *XMLEncoder) indentString() string {
	return strings.Repeat("  ", e.indent)
}

// escapeXMLSafe replaces all occurrences of reserved characters in XML: <>&".
func escapeXMLSafe(s string) string {
	replacer := strings.NewReplacer("<", "&lt;", ">", "&gt;", "&", "&amp;", `"`, "&quot;")

	return replacer.Replace(s)
}

// commentSafe breaks up every "--", which must not occur inside an XML comment.
// Entities are not decoded in comments, so nothing else is escaped.
func commentSafe(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "- -")
	}

	return s
}
