package stream

import (
	"io"

	"github.com/ondrik/xmpp-server/event"
)

// XMPP namespaces recognized by the session layer.
const (
	// JabberStreamsNS is the namespace of the top-level stream element.
	JabberStreamsNS = "http://etherx.jabber.org/streams"
	// JabberClientNS is the default namespace of client streams.
	JabberClientNS = "jabber:client"
	// JabberServerNS is the default namespace of server streams.
	JabberServerNS = "jabber:server"
	// LegacyAuthNS is the namespace of legacy iq authentication.
	LegacyAuthNS = "jabber:iq:auth"
	// SASLNS is the SASL negotiation namespace.
	SASLNS = "urn:ietf:params:xml:ns:xmpp-sasl"
	// IQAuthFeatureNS is the stream feature advertising legacy iq
	// authentication.
	IQAuthFeatureNS = "http://jabber.org/features/iq-auth"
)

// DefaultLang is the stream language assumed when the client supplies
// none.
const DefaultLang = "en"

// StreamPrefix is the conventional namespace prefix of the streams
// namespace.
const StreamPrefix = "stream"

// WirePrefixes returns the prefix map used to render tokenizer names
// back into their conventional wire form.
func WirePrefixes() event.PrefixMap {
	return event.PrefixMap{JabberStreamsNS: StreamPrefix}
}

// NewSource returns a tokenizer-backed event source for a client
// connection's read side, configured with the wire prefixes.
func NewSource(r io.Reader) *event.DecoderSource {
	return event.NewDecoderSource(r, WirePrefixes())
}
