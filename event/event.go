package event

import (
	"fmt"
	"strings"

	"github.com/ondrik/xmpp-server/xmlutil"
)

// Event is a single SAX-style XML parse event.
type Event interface {
	isEvent()

	// String returns the event's textual form, used for debug traces.
	String() string
}

// StartElement is an element-open event.
type StartElement struct {
	Name  string
	Attrs []xmlutil.RawAttr
}

// EndElement is an element-close event.
type EndElement struct {
	Name string
}

// EmptyElement is a self-closed element reported as a single event.
type EmptyElement struct {
	Name  string
	Attrs []xmlutil.RawAttr
}

// CharData is a character-data event. Text is unescaped.
type CharData struct {
	Text string
}

// Other covers the event kinds the protocol has no use for: comments,
// doctype directives, processing instructions and references. Kind
// names which one was seen.
type Other struct {
	Kind string
}

func (StartElement) isEvent() {}
func (EndElement) isEvent()   {}
func (EmptyElement) isEvent() {}
func (CharData) isEvent()     {}
func (Other) isEvent()        {}

func (e StartElement) String() string {
	return "<" + e.Name + attrString(e.Attrs) + ">"
}

func (e EndElement) String() string { return "</" + e.Name + ">" }

func (e EmptyElement) String() string {
	return "<" + e.Name + attrString(e.Attrs) + "/>"
}

func (e CharData) String() string { return fmt.Sprintf("chardata %q", e.Text) }

func (e Other) String() string { return "(" + e.Kind + ")" }

// attrString renders attributes for traces without going through
// FragmentValue, so a malformed value cannot fault the trace path.
func attrString(attrs []xmlutil.RawAttr) string {
	var b strings.Builder
	for _, a := range attrs {
		var v string
		if len(a.Value) > 0 {
			if t, ok := a.Value[0].(xmlutil.TextFragment); ok {
				v = string(t)
			} else {
				v = "(ref)"
			}
		}
		fmt.Fprintf(&b, " %s=%q", a.Name, v)
	}
	return b.String()
}
