package model

// Element is the compressed record for a single UI node, sized for agent
// consumption. All fields except ID are omitted when empty.
type Element struct {
	ID          int     `yaml:"id"              json:"id"`
	Class       string  `yaml:"cls,omitempty"   json:"cls,omitempty"`   // Short class name, package stripped
	Text        string  `yaml:"txt,omitempty"   json:"txt,omitempty"`   // Truncated to 50 chars
	Description string  `yaml:"desc,omitempty"  json:"desc,omitempty"`  // Truncated to 50 chars
	ResourceID  string  `yaml:"res,omitempty"   json:"res,omitempty"`   // "package:id/" prefix stripped
	Bounds      *Bounds `yaml:"bounds,omitempty" json:"bounds,omitempty"`
	Flags       string  `yaml:"flags,omitempty" json:"flags,omitempty"`
}

// Label returns the most descriptive identifier available for the element,
// used in verbose progress messages.
func (e Element) Label() string {
	switch {
	case e.Text != "":
		return e.Text
	case e.Description != "":
		return e.Description
	case e.ResourceID != "":
		return e.ResourceID
	case e.Class != "":
		return e.Class
	}
	return "unknown"
}
