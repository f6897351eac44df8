// Package xmpperr defines the stream-level error conditions the engine
// can reply with, rendered as xmlutil element trees.
package xmpperr

import "github.com/ondrik/xmpp-server/xmlutil"

// StreamsNS is the namespace of stream error conditions.
const StreamsNS = "urn:ietf:params:xml:ns:xmpp-streams"

// StanzasNS is the namespace of stanza error conditions.
const StanzasNS = "urn:ietf:params:xml:ns:xmpp-stanzas"

// Error is an XMPP stream-level error.
type Error struct {
	// Condition is the defined-condition element name, e.g. "bad-format".
	Condition string
	// Text is the optional human-readable description.
	Text string
}

func (e *Error) Error() string {
	s := "stream error: " + e.Condition
	if e.Text != "" {
		s += ": " + e.Text
	}
	return s
}

// Node renders the error as a stream:error element.
func (e *Error) Node() *xmlutil.Node {
	n := xmlutil.Elem("stream:error").
		AddChild(xmlutil.Elem(e.Condition, xmlutil.Attr{Name: "xmlns", Value: StreamsNS}))
	if e.Text != "" {
		n.AddChild(xmlutil.Elem("text", xmlutil.Attr{Name: "xmlns", Value: StreamsNS}).
			AddText(e.Text))
	}
	return n
}

func newError(condition string, opts []Option) *Error {
	e := &Error{Condition: condition}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func BadFormat(opts ...Option) *Error { return newError("bad-format", opts) }

func HostUnknown(opts ...Option) *Error { return newError("host-unknown", opts) }

func InternalServerError(opts ...Option) *Error { return newError("internal-server-error", opts) }

func InvalidNamespace(opts ...Option) *Error { return newError("invalid-namespace", opts) }

func NotAuthorized(opts ...Option) *Error { return newError("not-authorized", opts) }

func UnsupportedVersion(opts ...Option) *Error { return newError("unsupported-version", opts) }

// NotAuthorizedStanza returns the error iq replying to a failed
// authentication request.
func NotAuthorizedStanza(requestID string) *xmlutil.Node {
	return xmlutil.Elem("iq",
		xmlutil.Attr{Name: "type", Value: "error"},
		xmlutil.Attr{Name: "id", Value: requestID}).
		AddChild(xmlutil.Elem("error",
			xmlutil.Attr{Name: "code", Value: "401"},
			xmlutil.Attr{Name: "type", Value: "auth"}).
			AddChild(xmlutil.Elem("not-authorized",
				xmlutil.Attr{Name: "xmlns", Value: StanzasNS})))
}
