package format

import (
	"strings"
	"unicode/utf8"

	"github.com/grovetools/juju-prompt/errors"
)

// node is an element of a parsed template.
type node interface{}

type textNode struct {
	text string
}

type variableNode struct {
	name string
	pos  int
}

// groupNode is "[children](style)".
type groupNode struct {
	children []node
	style    []node
}

// conditionalNode is "(children)"; it renders only if a variable inside it
// has a value.
type conditionalNode struct {
	children []node
}

type parser struct {
	src string
	pos int
}

func parse(template string) ([]node, error) {
	p := &parser{src: template}
	return p.parseFormat(0)
}

// parseFormat reads elements until closer (']' or ')') or the end of input
// when closer is 0. The closer itself is consumed.
func (p *parser) parseFormat(closer byte) ([]node, error) {
	var nodes []node
	var text strings.Builder
	start := p.pos

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, textNode{text: text.String()})
			text.Reset()
		}
	}

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '\\':
			r, err := p.escaped()
			if err != nil {
				return nil, err
			}
			text.WriteRune(r)
		case '$':
			flush()
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, v)
		case '[':
			flush()
			g, err := p.parseGroup()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, g)
		case '(':
			flush()
			p.pos++
			children, err := p.parseFormat(')')
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, conditionalNode{children: children})
		case ']', ')':
			if c != closer {
				return nil, errors.TemplateSyntax("unexpected '"+string(c)+"'", p.pos)
			}
			p.pos++
			flush()
			return nodes, nil
		default:
			text.WriteByte(c)
			p.pos++
		}
	}

	if closer != 0 {
		return nil, errors.TemplateSyntax("missing '"+string(closer)+"'", start)
	}
	flush()
	return nodes, nil
}

func (p *parser) parseGroup() (node, error) {
	open := p.pos
	p.pos++
	children, err := p.parseFormat(']')
	if err != nil {
		return nil, err
	}
	if p.pos >= len(p.src) || p.src[p.pos] != '(' {
		return nil, errors.TemplateSyntax("text group must be followed by a (style)", open)
	}
	p.pos++
	styleNodes, err := p.parseStyle()
	if err != nil {
		return nil, err
	}
	return groupNode{children: children, style: styleNodes}, nil
}

// parseStyle reads literal style text and variables up to the closing ')'.
func (p *parser) parseStyle() ([]node, error) {
	var nodes []node
	var text strings.Builder
	start := p.pos

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '\\':
			r, err := p.escaped()
			if err != nil {
				return nil, err
			}
			text.WriteRune(r)
		case '$':
			if text.Len() > 0 {
				nodes = append(nodes, textNode{text: text.String()})
				text.Reset()
			}
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, v)
		case ')':
			p.pos++
			if text.Len() > 0 {
				nodes = append(nodes, textNode{text: text.String()})
			}
			return nodes, nil
		case '(', '[', ']':
			return nil, errors.TemplateSyntax("unexpected '"+string(c)+"' in style", p.pos)
		default:
			text.WriteByte(c)
			p.pos++
		}
	}
	return nil, errors.TemplateSyntax("missing ')' after style", start)
}

// parseVariable reads "$name" or "${name}" starting at '$'.
func (p *parser) parseVariable() (node, error) {
	start := p.pos
	p.pos++

	braced := p.pos < len(p.src) && p.src[p.pos] == '{'
	if braced {
		p.pos++
	}
	nameStart := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[nameStart:p.pos]
	if name == "" {
		return nil, errors.TemplateSyntax("expected variable name after '$'", start)
	}
	if braced {
		if p.pos >= len(p.src) || p.src[p.pos] != '}' {
			return nil, errors.TemplateSyntax("missing '}' in variable", start)
		}
		p.pos++
	}
	return variableNode{name: name, pos: start}, nil
}

// escaped consumes a backslash and returns the rune it protects.
func (p *parser) escaped() (rune, error) {
	if p.pos+1 >= len(p.src) {
		return 0, errors.TemplateSyntax("dangling '\\'", p.pos)
	}
	r, size := utf8.DecodeRuneInString(p.src[p.pos+1:])
	p.pos += 1 + size
	return r, nil
}

func isNameByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
