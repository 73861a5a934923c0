// Package format implements the prompt template language.
//
// A template mixes literal text, variables ($name or ${name}), styled groups
// ([inner](style)) and conditional groups ((inner)). Templates are parsed once
// by New and rendered by Render into a sequence of styled segments. Rendering
// either succeeds completely or returns an error and no segments.
package format

import (
	"strings"

	"github.com/grovetools/juju-prompt/errors"
	"github.com/grovetools/juju-prompt/style"
)

// Variable is the value of a recognized data variable. A variable that is
// recognized but has nothing to show has Present set to false.
type Variable struct {
	Value   string
	Present bool
}

// Value returns a present Variable holding s.
func Value(s string) Variable {
	return Variable{Value: s, Present: true}
}

// MetaFunc resolves variables backed by static configuration, such as a
// symbol. It returns false for names it does not recognize.
type MetaFunc func(name string) (string, bool)

// VariableFunc resolves variables computed at runtime. It returns false for
// names it does not recognize.
type VariableFunc func(name string) (Variable, bool)

// StyleFunc resolves variables used inside a group's style. It returns false
// for names it does not recognize.
type StyleFunc func(name string) (string, bool)

// Formatter renders a parsed template.
type Formatter struct {
	nodes  []node
	meta   MetaFunc
	vars   VariableFunc
	styles StyleFunc
}

// New parses template.
func New(template string) (*Formatter, error) {
	nodes, err := parse(template)
	if err != nil {
		return nil, err
	}
	return &Formatter{nodes: nodes}, nil
}

// MapMeta sets the meta variable resolver. Meta variables are looked up
// before data variables.
func (f *Formatter) MapMeta(fn MetaFunc) *Formatter {
	f.meta = fn
	return f
}

// Map sets the data variable resolver.
func (f *Formatter) Map(fn VariableFunc) *Formatter {
	f.vars = fn
	return f
}

// MapStyle sets the style variable resolver.
func (f *Formatter) MapStyle(fn StyleFunc) *Formatter {
	f.styles = fn
	return f
}

// Render produces the segments for the template.
func (f *Formatter) Render() ([]Segment, error) {
	var out output
	if err := f.render(f.nodes, "", &out); err != nil {
		return nil, err
	}
	return out.segments, nil
}

// Render parses and renders template in one call.
func Render(template string, vars VariableFunc, styles StyleFunc, meta MetaFunc) ([]Segment, error) {
	f, err := New(template)
	if err != nil {
		return nil, err
	}
	return f.MapMeta(meta).Map(vars).MapStyle(styles).Render()
}

// output accumulates segments, merging adjacent text of equal style.
type output struct {
	segments []Segment
	// hasValue is set once a data variable contributed non-empty text.
	hasValue bool
}

func (o *output) write(text, style string) {
	if text == "" {
		return
	}
	if n := len(o.segments); n > 0 && o.segments[n-1].Style == style {
		o.segments[n-1].Text += text
		return
	}
	o.segments = append(o.segments, Segment{Text: text, Style: style})
}

func (o *output) merge(other *output) {
	for _, seg := range other.segments {
		o.write(seg.Text, seg.Style)
	}
	o.hasValue = o.hasValue || other.hasValue
}

func (f *Formatter) render(nodes []node, active string, out *output) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case textNode:
			out.write(n.text, active)

		case variableNode:
			if f.meta != nil {
				if v, ok := f.meta(n.name); ok {
					out.write(v, active)
					continue
				}
			}
			if f.vars == nil {
				return errors.UnknownVariable(n.name).WithDetail("position", n.pos)
			}
			v, ok := f.vars(n.name)
			if !ok {
				return errors.UnknownVariable(n.name).WithDetail("position", n.pos)
			}
			if v.Present && v.Value != "" {
				out.hasValue = true
				out.write(v.Value, active)
			}

		case groupNode:
			groupStyle, err := f.resolveStyle(n.style)
			if err != nil {
				return err
			}
			if groupStyle == "" {
				groupStyle = active
			}
			if err := f.render(n.children, groupStyle, out); err != nil {
				return err
			}

		case conditionalNode:
			var inner output
			if err := f.render(n.children, active, &inner); err != nil {
				return err
			}
			if inner.hasValue {
				out.merge(&inner)
			}
		}
	}
	return nil
}

// resolveStyle expands style variables and checks that the result parses.
func (f *Formatter) resolveStyle(nodes []node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		switch n := n.(type) {
		case textNode:
			b.WriteString(n.text)
		case variableNode:
			if f.styles == nil {
				return "", errors.UnknownStyle(n.name)
			}
			v, ok := f.styles(n.name)
			if !ok {
				return "", errors.UnknownStyle(n.name)
			}
			b.WriteString(v)
		}
	}

	resolved := strings.TrimSpace(b.String())
	if _, err := style.Parse(resolved); err != nil {
		return "", errors.InvalidStyle(resolved, err)
	}
	return resolved, nil
}
