// Package def parses the routing description format into pin records
// and serializes routed chain graphs as net records. It is the only
// layer that knows the textual artifacts; the routers never see them.
package def

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// routeLexer defines the lexical structure shared by the routing
// description format and the routed-net output format.
var routeLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Section and property keywords (case-insensitive)
	{Name: "KwVersion", Pattern: `(?i)\bVERSION\b`},
	{Name: "KwDesign", Pattern: `(?i)\bDESIGN\b`},
	{Name: "KwDieArea", Pattern: `(?i)\bDIEAREA\b`},
	{Name: "KwDriverPins", Pattern: `(?i)\bDRIVERPINS\b`},
	{Name: "KwPins", Pattern: `(?i)\bPINS\b`},
	{Name: "KwEnd", Pattern: `(?i)\bEND\b`},
	{Name: "KwDirection", Pattern: `(?i)\bDIRECTION\b`},
	{Name: "KwInput", Pattern: `(?i)\bINPUT\b`},
	{Name: "KwOutput", Pattern: `(?i)\bOUTPUT\b`},
	{Name: "KwPlaced", Pattern: `(?i)\bPLACED\b`},

	// Numbers; Real must precede Integer so "5.8" stays one token
	{Name: "Real", Pattern: `[-+]?[0-9]+\.[0-9]+`},
	{Name: "Integer", Pattern: `[-+]?[0-9]+`},

	// Identifiers (pin and design names; must come after keywords)
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

	// Punctuation
	{Name: "Dash", Pattern: `-`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Semicolon", Pattern: `;`},
})
