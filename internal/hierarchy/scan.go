package hierarchy

import (
	"strings"

	"github.com/agentbridge/agentbridge/internal/model"
)

// maxTextLen caps text and description fields in compressed records.
const maxTextLen = 50

// IsInteractive reports whether a node is worth surfacing to an agent:
// clickable, long-clickable, scrollable, focusable, or checkable. State
// flags (checked, enabled, selected) do not qualify a node on their own.
func IsInteractive(n *Node) bool {
	return n.Flag("clickable") ||
		n.Flag("long-clickable") ||
		n.Flag("scrollable") ||
		n.Flag("focusable") ||
		n.Flag("checkable")
}

// flagString builds the compressed flag string for a node in a fixed order.
// Uppercase codes are capabilities, lowercase are state. Computed
// independently of IsInteractive: a disabled non-interactive node keeps its
// "D" flag when included via a full scan.
func flagString(n *Node) string {
	var b strings.Builder
	if n.Flag("clickable") {
		b.WriteString("C")
	}
	if n.Flag("long-clickable") {
		b.WriteString("L")
	}
	if n.Flag("scrollable") {
		b.WriteString("S")
	}
	if n.Flag("focusable") {
		b.WriteString("F")
	}
	if n.Flag("checkable") {
		b.WriteString("K")
	}
	if n.Flag("checked") {
		b.WriteString("k")
	}
	if n.Attr("enabled") == "false" {
		b.WriteString("D")
	}
	if n.Flag("selected") {
		b.WriteString("s")
	}
	return b.String()
}

// truncate slices s to at most maxTextLen bytes.
func truncate(s string) string {
	if len(s) > maxTextLen {
		return s[:maxTextLen]
	}
	return s
}

// shortClass strips the qualifying package from a class name, keeping only
// the last dot-separated segment.
func shortClass(cls string) string {
	if i := strings.LastIndex(cls, "."); i >= 0 {
		return cls[i+1:]
	}
	return cls
}

// shortResourceID strips the "package:id/" prefix from a resource id.
func shortResourceID(res string) string {
	if i := strings.Index(res, ":id/"); i >= 0 {
		return res[i+len(":id/"):]
	}
	return res
}

// Compress projects a node into its compact record with the given id.
func Compress(n *Node, id int) model.Element {
	el := model.Element{ID: id}
	el.Class = shortClass(n.Attr("class"))
	if txt := n.Attr("text"); txt != "" {
		el.Text = truncate(txt)
	}
	if desc := n.Attr("content-desc"); desc != "" {
		el.Description = truncate(desc)
	}
	if res := n.Attr("resource-id"); res != "" {
		el.ResourceID = shortResourceID(res)
	}
	el.Bounds = model.ParseBounds(n.Attr("bounds"))
	el.Flags = flagString(n)
	return el
}

// Entry binds an emitted element to the raw node it was compressed from.
type Entry struct {
	Element   model.Element
	Node      *Node
	RawBounds string
}

// Scan walks every node under the hierarchy wrapper in pre-order, skipping
// non-interactive nodes unless includeAll is set, and assigns sequential ids
// starting at 0 per emitted element. Ids are stable within one scan: strictly
// increasing with no gaps regardless of how many nodes the filter skips.
func Scan(root *Node, includeAll bool) []Entry {
	var entries []Entry
	var walk func(n *Node)
	walk = func(n *Node) {
		if includeAll || IsInteractive(n) {
			id := len(entries)
			entries = append(entries, Entry{
				Element:   Compress(n, id),
				Node:      n,
				RawBounds: n.Attr("bounds"),
			})
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	// The wrapper itself is synthetic; only its descendants are visited.
	for _, c := range root.Children {
		walk(c)
	}
	return entries
}
