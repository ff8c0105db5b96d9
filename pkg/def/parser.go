package def

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses routing description files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds a parser for the routing description format.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(routeLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a routing description from a reader.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseString parses a routing description from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseFile parses a routing description from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}

// LinksParser parses routed-net output artifacts.
type LinksParser struct {
	parser *participle.Parser[LinksFile]
}

// NewLinksParser builds a parser for the routed-net output format.
func NewLinksParser() (*LinksParser, error) {
	parser, err := participle.Build[LinksFile](
		participle.Lexer(routeLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &LinksParser{parser: parser}, nil
}

// Parse parses a routed-net artifact from a reader.
func (p *LinksParser) Parse(r io.Reader) (*LinksFile, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseString parses a routed-net artifact from a string.
func (p *LinksParser) ParseString(input string) (*LinksFile, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseFile parses a routed-net artifact from a file path.
func (p *LinksParser) ParseFile(filename string) (*LinksFile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}
