// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package printer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/golangee/domtree/dom"
	"github.com/golangee/domtree/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func ExamplePrettyPrint() {
	_ = PrettyPrint(dom.Demo())
	// Output:
	// root attr1="value1" attr2="value2"
	//   text_node1
	//   text_node2
}

func document() dom.Node {
	return dom.NewElementNode("html", dom.NewAttributeMap(dom.Attribute{Key: "lang", Value: "en"}),
		dom.NewElementNode("head", dom.AttributeMap{},
			dom.NewElementNode("title", dom.AttributeMap{}, dom.NewTextNode("A <title>")),
		),
		dom.NewCommentNode(" main "),
		dom.NewElementNode("body", dom.NewAttributeMap(
			dom.Attribute{Key: "id", Value: "b"},
			dom.Attribute{Key: "class", Value: "x y"},
		),
			dom.NewElementNode("p", dom.AttributeMap{}, dom.NewTextNode("hello"), dom.NewTextNode("world")),
			dom.NewElementNode("br", dom.AttributeMap{}),
		),
	)
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name string
		root dom.Node
		want string
	}{
		{
			name: "demo",
			root: dom.Demo(),
			want: "root attr1=\"value1\" attr2=\"value2\"\n  text_node1\n  text_node2\n",
		},
		{
			name: "single text",
			root: dom.NewTextNode("hello"),
			want: "hello\n",
		},
		{
			name: "comment",
			root: dom.NewCommentNode("c"),
			want: "<!--c-->\n",
		},
		{
			name: "element with id",
			root: dom.NewElementNode("div", dom.NewAttributeMap(dom.Attribute{Key: "id", Value: "x"})),
			want: "div id=\"x\"\n",
		},
		{
			name: "document",
			root: document(),
			want: `html lang="en"
  head
    title
      A <title>
  <!-- main -->
  body id="b" class="x y"
    p
      hello
      world
    br
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Fprint(&buf, tt.root))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRender(t *testing.T) {
	assert.Equal(t, "  hello", Render(dom.NewTextNode("hello"), 1))
	assert.Equal(t, `div id="x"`, Render(dom.NewElementNode("div", dom.NewAttributeMap(dom.Attribute{Key: "id", Value: "x"})), 0))
	assert.Equal(t, "    <!--x-->", Render(dom.NewCommentNode("x"), 2))
	assert.Equal(t, "span", Render(dom.NewElementNode("span", dom.AttributeMap{}), 0))
	assert.Equal(t, "  ", Render(dom.Node{}, 1))
}

func TestOneLinePerNode(t *testing.T) {
	parsed, err := markup.ParseString("page.html", `
		<html>
			<body class="x">
				<!--
					multi line
					comment
				-->
				first line
				second line

				<p>
					a
					b
				</p>
			</body>
		</html>`)
	require.NoError(t, err)
	require.Equal(t, 8, dom.Count(parsed))

	for _, root := range []dom.Node{dom.Demo(), document(), dom.NewTextNode("x"), parsed} {
		var buf bytes.Buffer
		require.NoError(t, Fprint(&buf, root))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		assert.Len(t, lines, dom.Count(root))

		i := 0
		err := dom.Walk(root, func(n dom.Node, depth int) error {
			assert.Equal(t, Render(n, depth), lines[i])
			assert.True(t, strings.HasPrefix(lines[i], strings.Repeat(" ", 2*depth)), lines[i])
			assert.NotContains(t, lines[i], "\t")
			i++
			return nil
		})
		require.NoError(t, err)
	}
}

func TestTextWithLineBreak(t *testing.T) {
	// text is written verbatim, line breaks inside a node are not indented
	root := dom.NewElementNode("pre", dom.AttributeMap{}, dom.NewTextNode("a\nb"))
	assert.Equal(t, "  a\nb", Render(root.Child(0), 1))

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, root))
	assert.Equal(t, "pre\n  a\nb\n", buf.String())
}

func TestChildIndentation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, document()))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	// lines are in pre-order, so the expected depth follows from the walk
	i := 0
	err := dom.Walk(document(), func(n dom.Node, depth int) error {
		line := lines[i]
		indentation := len(line) - len(strings.TrimLeft(line, " "))
		assert.Equal(t, 2*depth, indentation, line)
		assert.NotContains(t, line, "\t")
		i++
		return nil
	})
	require.NoError(t, err)
}

func TestUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	root := dom.NewElementNode("div", dom.AttributeMap{}, dom.Node{})
	err := Fprint(&buf, root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Equal(t, "div\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestIOError(t *testing.T) {
	err := Fprint(failingWriter{}, dom.Demo())
	require.Error(t, err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.EqualError(t, ioErr.Cause, "broken pipe")
}

type flakyWriter struct {
	fail bool
	buf  bytes.Buffer
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	if w.fail {
		return 0, errors.New("broken pipe")
	}

	return w.buf.Write(p)
}

func TestPrintAfterIOError(t *testing.T) {
	w := &flakyWriter{fail: true}
	p := NewPrinter(w)

	var ioErr *IOError
	require.True(t, errors.As(p.Print(dom.Demo()), &ioErr))

	w.fail = false
	require.NoError(t, p.Print(dom.Demo()))
	assert.Equal(t, "root attr1=\"value1\" attr2=\"value2\"\n  text_node1\n  text_node2\n", w.buf.String())
}

func TestDecoratorAndLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	var buf bytes.Buffer
	p := NewPrinter(&buf,
		WithLogger(zap.New(core)),
		WithDecorator(func(kind dom.Kind, content string) string {
			if _, ok := kind.(dom.Text); ok {
				return strings.ToUpper(content)
			}

			return content
		}),
	)

	require.NoError(t, p.Print(dom.Demo()))
	assert.Equal(t, "root attr1=\"value1\" attr2=\"value2\"\n  TEXT_NODE1\n  TEXT_NODE2\n", buf.String())

	entries := logs.FilterMessage("printed tree").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ContextMap()["lines"])
}
