// Package document reads small YAML files into a read-only node tree with
// typed accessors. Every failure, whether IO, parse or shape mismatch, is
// reported as absence rather than as an error.
package document

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Kind identifies the variant of a Document node.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindScalar
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "null"
	}
}

// Document is a node of a parsed YAML tree. The zero value is an absent
// document; all accessors on it report absence.
type Document struct {
	node *yaml.Node
}

// Read loads path and parses it. The file is read exactly once.
func Read(path string) (Document, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, false
	}
	return Parse(data)
}

// Parse parses the first YAML document in data.
func Parse(data []byte) (Document, bool) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Document{}, false
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return Document{}, false
	}
	doc, ok := wrap(root.Content[0])
	if !ok || doc.Kind() == KindNull {
		return Document{}, false
	}
	return doc, true
}

func wrap(n *yaml.Node) (Document, bool) {
	// Alias chains are finite; the decoder rejects cycles.
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n == nil {
		return Document{}, false
	}
	return Document{node: n}, true
}

// Kind reports which variant d holds.
func (d Document) Kind() Kind {
	if d.node == nil {
		return KindNull
	}
	switch d.node.Kind {
	case yaml.MappingNode:
		return KindMapping
	case yaml.SequenceNode:
		return KindSequence
	case yaml.ScalarNode:
		switch d.node.ShortTag() {
		case "!!str":
			return KindString
		case "!!null":
			return KindNull
		}
		return KindScalar
	}
	return KindNull
}

// Field returns the value stored under name in a mapping. Only string keys
// match, so an unquoted 123: is not found as "123".
func (d Document) Field(name string) (Document, bool) {
	if d.Kind() != KindMapping {
		return Document{}, false
	}
	content := d.node.Content
	for i := 0; i+1 < len(content); i += 2 {
		key := content[i]
		if isStringKey(key) && key.Value == name {
			return wrap(content[i+1])
		}
	}
	return Document{}, false
}

// Lookup follows a path of mapping keys.
func (d Document) Lookup(path ...string) (Document, bool) {
	cur := d
	for _, name := range path {
		next, ok := cur.Field(name)
		if !ok {
			return Document{}, false
		}
		cur = next
	}
	return cur, cur.node != nil
}

// Index returns the i-th element of a sequence.
func (d Document) Index(i int) (Document, bool) {
	if d.Kind() != KindSequence || i < 0 || i >= len(d.node.Content) {
		return Document{}, false
	}
	return wrap(d.node.Content[i])
}

// Str returns the value of a string scalar. Numbers, booleans and
// timestamps are not strings even though YAML stores them as text.
func (d Document) Str() (string, bool) {
	if d.Kind() != KindString {
		return "", false
	}
	return d.node.Value, true
}

// StringField is shorthand for Field followed by Str.
func (d Document) StringField(name string) (string, bool) {
	v, ok := d.Field(name)
	if !ok {
		return "", false
	}
	return v.Str()
}

// Len returns the number of entries of a mapping or sequence, zero otherwise.
func (d Document) Len() int {
	switch d.Kind() {
	case KindMapping:
		return len(d.node.Content) / 2
	case KindSequence:
		return len(d.node.Content)
	}
	return 0
}

// Keys returns the string keys of a mapping in document order.
func (d Document) Keys() []string {
	if d.Kind() != KindMapping {
		return nil
	}
	keys := make([]string, 0, d.Len())
	for i := 0; i+1 < len(d.node.Content); i += 2 {
		if key := d.node.Content[i]; isStringKey(key) {
			keys = append(keys, key.Value)
		}
	}
	return keys
}

func isStringKey(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.ShortTag() == "!!str"
}
