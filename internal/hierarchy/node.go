// Package hierarchy parses uiautomator UI dumps and compresses them into
// compact element records.
package hierarchy

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Node is one node of a parsed UI hierarchy dump. Attribute order and names
// are preserved exactly as the dump encodes them.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []*Node    `xml:",any"`
}

// Attr returns the named attribute value, or "" if absent.
func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Flag reports whether the named boolean attribute is present and equal to
// the literal "true". Any other value, including absence, is false.
func (n *Node) Flag(name string) bool {
	return n.Attr(name) == "true"
}

// Parse decodes a UI hierarchy XML dump. The returned node is the synthetic
// <hierarchy> wrapper; its descendants are the on-screen nodes.
func Parse(data string) (*Node, error) {
	var root Node
	if err := xml.Unmarshal([]byte(strings.TrimSpace(data)), &root); err != nil {
		return nil, fmt.Errorf("parse hierarchy: %w", err)
	}
	return &root, nil
}
