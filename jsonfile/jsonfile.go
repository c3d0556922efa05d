// Package jsonfile implements reading and writing of JSON string-catalog
// files as ordered document trees.
//
// The expected file format is an arbitrarily nested JSON document whose
// translatable content lives in string leaves:
//
//	{
//	    "app": { "tagline": "Manage your finances intelligently" },
//	    "common": { "save": "Save", "cancel": "Cancel" },
//	    "steps": ["Back", "Next"]
//	}
//
// Unlike encoding/json's map-based decoding, parsing preserves object key
// order, so a written file keeps the source file's structure. Number,
// boolean and null leaves keep their original literals and round-trip
// byte-for-byte. Output uses 2-space indentation with non-ASCII characters
// emitted literally, matching the conventions of hand-maintained catalogs.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ---------------------------------------------------------------------------
// Document model
// ---------------------------------------------------------------------------

// Kind identifies the JSON value stored in a Node.
type Kind int

const (
	ObjectNode Kind = iota + 1
	ArrayNode
	StringNode
	NumberNode
	BoolNode
	NullNode
)

// Node is a single value in a parsed JSON document tree.
type Node struct {
	Kind Kind

	// Value holds the decoded string for StringNode, or the exact source
	// literal for NumberNode, BoolNode and NullNode ("42", "0.5", "true",
	// "null"). Unused for containers.
	Value string

	// Keys lists an object's field names in document order.
	Keys []string
	// Fields maps field name to child node. Object nodes only.
	Fields map[string]*Node

	// Elems lists array elements in document order. Array nodes only.
	Elems []*Node
}

// ---------------------------------------------------------------------------
// Parsing
// ---------------------------------------------------------------------------

// ParseFile reads and parses a JSON catalog file.
func ParseFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	n, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return n, nil
}

// Parse parses JSON data into a document tree, preserving object key order.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	// Numbers stay as their source literals instead of float64.
	dec.UseNumber()

	root, err := parseValue(dec)
	if err != nil {
		return nil, err
	}

	// The document must contain exactly one top-level value.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}

	return root, nil
}

// parseValue reads the next complete JSON value from the decoder.
func parseValue(dec *json.Decoder) (*Node, error) {
	t, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := t.(type) {
	case json.Delim:
		switch v {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", v.String())

	case string:
		return &Node{Kind: StringNode, Value: v}, nil

	case json.Number:
		return &Node{Kind: NumberNode, Value: v.String()}, nil

	case bool:
		if v {
			return &Node{Kind: BoolNode, Value: "true"}, nil
		}
		return &Node{Kind: BoolNode, Value: "false"}, nil

	case nil:
		return &Node{Kind: NullNode, Value: "null"}, nil
	}

	return nil, fmt.Errorf("unexpected token %v", t)
}

// parseObject reads object members up to and including the closing brace.
// The opening brace has already been consumed.
func parseObject(dec *json.Decoder) (*Node, error) {
	n := &Node{Kind: ObjectNode, Fields: make(map[string]*Node)}

	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %T", kt)
		}

		child, err := parseValue(dec)
		if err != nil {
			return nil, err
		}

		// Duplicate key: overwrite value but keep position.
		if _, exists := n.Fields[key]; !exists {
			n.Keys = append(n.Keys, key)
		}
		n.Fields[key] = child
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return n, nil
}

// parseArray reads array elements up to and including the closing bracket.
// The opening bracket has already been consumed.
func parseArray(dec *json.Decoder) (*Node, error) {
	n := &Node{Kind: ArrayNode}

	for dec.More() {
		child, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		n.Elems = append(n.Elems, child)
	}

	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Querying
// ---------------------------------------------------------------------------

// Strings returns all string-leaf values in document order: object fields
// in key order, array elements in index order.
func (n *Node) Strings() []string {
	var out []string
	n.walkStrings(&out)
	return out
}

func (n *Node) walkStrings(out *[]string) {
	switch n.Kind {
	case ObjectNode:
		for _, k := range n.Keys {
			n.Fields[k].walkStrings(out)
		}
	case ArrayNode:
		for _, el := range n.Elems {
			el.walkStrings(out)
		}
	case StringNode:
		*out = append(*out, n.Value)
	}
}

// Equal reports whether two document trees have identical shape and
// identical leaf values, including scalar literals.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind {
		return false
	}

	switch n.Kind {
	case ObjectNode:
		if len(n.Keys) != len(o.Keys) {
			return false
		}
		for i, k := range n.Keys {
			if o.Keys[i] != k {
				return false
			}
			if !n.Fields[k].Equal(o.Fields[k]) {
				return false
			}
		}
		return true

	case ArrayNode:
		if len(n.Elems) != len(o.Elems) {
			return false
		}
		for i, el := range n.Elems {
			if !el.Equal(o.Elems[i]) {
				return false
			}
		}
		return true

	default:
		return n.Value == o.Value
	}
}

// ---------------------------------------------------------------------------
// Serialization
// ---------------------------------------------------------------------------

// Marshal serialises the document with 2-space indentation, preserving key
// order and scalar literals. Non-ASCII and HTML characters are written
// literally. The output ends with a newline.
func (n *Node) Marshal() []byte {
	var b bytes.Buffer
	writeNode(&b, n, 0)
	b.WriteByte('\n')
	return b.Bytes()
}

func writeNode(b *bytes.Buffer, n *Node, depth int) {
	switch n.Kind {
	case ObjectNode:
		if len(n.Keys) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for i, k := range n.Keys {
			writeIndent(b, depth+1)
			b.WriteString(jsonString(k))
			b.WriteString(": ")
			writeNode(b, n.Fields[k], depth+1)
			if i < len(n.Keys)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, depth)
		b.WriteByte('}')

	case ArrayNode:
		if len(n.Elems) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, el := range n.Elems {
			writeIndent(b, depth+1)
			writeNode(b, el, depth+1)
			if i < len(n.Elems)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, depth)
		b.WriteByte(']')

	case StringNode:
		b.WriteString(jsonString(n.Value))

	default:
		// Number, bool and null literals pass through as parsed.
		b.WriteString(n.Value)
	}
}

func writeIndent(b *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

// jsonString returns a JSON-encoded string value with HTML escaping
// disabled, so non-ASCII text and <, >, & are written literally.
func jsonString(s string) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// Encoding a plain string cannot fail.
		return "\"\""
	}
	out := b.String()
	// Encode appends a newline after the value.
	return out[:len(out)-1]
}

// WriteFile serialises the document and writes it to the given path,
// creating parent directories as needed.
func (n *Node) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, n.Marshal(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
