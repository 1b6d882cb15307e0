// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/alecthomas/participle/v2/lexer/stateful"
)

const (
	// sComment is a complete comment including its delimiters, which may span lines.
	sComment = `<!--(?s:.*?)-->`

	// sText is character data up to the next tag.
	sText = `[^<]+`

	// sName is a tag or attribute name like "div", "data-id" or "svg:rect".
	sName = `[a-zA-Z_][-a-zA-Z0-9_:.]*`

	// sString is a double quoted attribute value. There are no escapes.
	sString = `"[^"]*"`
)

// markupLexer switches into the "Tag" state for everything between < and >.
var markupLexer = stateful.Must(stateful.Rules{
	"Root": {
		{Name: "Comment", Pattern: sComment, Action: nil},
		{Name: "CloseTagStart", Pattern: `</`, Action: stateful.Push("Tag")},
		{Name: "TagStart", Pattern: `<`, Action: stateful.Push("Tag")},
		{Name: "Text", Pattern: sText, Action: nil},
	},
	"Tag": {
		{Name: "Whitespace", Pattern: `\s+`, Action: nil},
		{Name: "SelfClose", Pattern: `/>`, Action: stateful.Pop()},
		{Name: "TagEnd", Pattern: `>`, Action: stateful.Pop()},
		{Name: "Eq", Pattern: `=`, Action: nil},
		{Name: "String", Pattern: sString, Action: nil},
		{Name: "Ident", Pattern: sName, Action: nil},
	},
})

var markupParser = participle.MustBuild(&document{},
	participle.Lexer(markupLexer),
	participle.Elide("Whitespace"),
)

type document struct {
	Nodes []*node `parser:"@@*"`
}

// node is exactly one of a comment, an element or a text run.
type node struct {
	Pos     lexer.Position
	Comment *string  `parser:"  @Comment"`
	Element *element `parser:"| @@"`
	Text    *string  `parser:"| @Text"`
}

type element struct {
	Pos         lexer.Position
	Name        string       `parser:"TagStart @Ident"`
	Attributes  []*attribute `parser:"@@*"`
	SelfClosing bool         `parser:"( @SelfClose"`
	Children    []*node      `parser:"  | TagEnd @@*"`
	CloseName   string       `parser:"    CloseTagStart @Ident TagEnd )"`
	EndPos      lexer.Position
}

type attribute struct {
	Pos   lexer.Position
	Key   string  `parser:"@Ident"`
	Value *string `parser:"( Eq @String )?"`
}
