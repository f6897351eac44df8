package xmlutil

import "strings"

// Attr is a single serialized XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is an in-memory XML element.
//
// Attrs and Content preserve insertion order; Serialize emits both in
// exactly that order, so construction order is observable on the wire.
type Node struct {
	Name    string
	Attrs   []Attr
	Content []Content
}

// Content is one ordered item of element content: either a nested
// element (Child) or literal character data (Text).
type Content interface {
	isContent()
}

// Child is element content wrapping a nested Node.
type Child struct {
	Node *Node
}

// Text is literal character data content. It is stored unescaped;
// Serialize applies escaping.
type Text string

func (Child) isContent() {}
func (Text) isContent()  {}

// Elem returns a new element with the given name and attributes.
func Elem(name string, attrs ...Attr) *Node {
	return &Node{Name: name, Attrs: attrs}
}

// AddAttr appends an attribute, returning n for chaining.
func (n *Node) AddAttr(name, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

// AddChild appends a nested element to the content list, returning n.
func (n *Node) AddChild(child *Node) *Node {
	n.Content = append(n.Content, Child{Node: child})
	return n
}

// AddText appends literal text to the content list, returning n.
func (n *Node) AddText(text string) *Node {
	n.Content = append(n.Content, Text(text))
	return n
}

// Serialize renders the element as escaped XML text.
//
// An element with no content serializes as a self-closing tag.
// Attribute and content order match the Node's lists.
func (n *Node) Serialize() string {
	var b strings.Builder
	n.serialize(&b)
	return b.String()
}

func (n *Node) serialize(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(n.Name)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(Escape(a.Value))
		b.WriteByte('"')
	}
	if len(n.Content) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for _, c := range n.Content {
		switch c := c.(type) {
		case Child:
			c.Node.serialize(b)
		case Text:
			b.WriteString(Escape(string(c)))
		}
	}
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}

// Escape replaces the five XML special characters with their entity
// references and passes every other character through unchanged.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		case '\'':
			b.WriteString("&apos;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
