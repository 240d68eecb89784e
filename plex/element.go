package plex

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// listSeparator joins repeated child-element tags into one CSV sub-field.
const listSeparator = ", "

// Element is a generic view of one parsed XML element. Attribute lookup
// tolerates absent attributes and repeated child elements keep their
// source order, so callers never have to care which optional fields a
// given record carries.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []Element  `xml:",any"`
}

// ParseDocument parses a reassembled collection document and returns
// its root element.
func ParseDocument(doc []byte) (*Element, error) {
	var root Element
	if err := unmarshalXML(doc, &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// Attr returns the named attribute's value, or "" when the element does
// not carry it.
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Child returns the first direct child with the given tag name, or nil.
func (e *Element) Child(name string) *Element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return &e.Children[i]
		}
	}
	return nil
}

// ChildrenNamed returns all direct children with the given tag name in
// source order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			out = append(out, &e.Children[i])
		}
	}
	return out
}

// TagList collects the "tag" attribute of every direct child with the
// given name, in source order, joined with ", ". Extraction walks
// structurally identified child elements, so a value containing the
// join delimiter cannot split the list.
func (e *Element) TagList(name string) string {
	var tags []string
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			if tag := e.Children[i].Attr("tag"); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return strings.Join(tags, listSeparator)
}

// unmarshalXML decodes server XML, which is not guaranteed to be
// strictly well-formed UTF-8 named-entity-wise.
func unmarshalXML(data []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	return dec.Decode(v)
}
