package session

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/ondrik/xmpp-server/command"
	"github.com/ondrik/xmpp-server/transport"
)

// State is a session's authentication state. The only transition is
// Unauthenticated to Authenticated; disconnection is a transport
// event, not a state here.
type State int

const (
	// StateUnauthenticated is the initial state of every session.
	StateUnauthenticated State = iota
	// StateAuthenticated is set after a successful authentication
	// exchange.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// JID is the (node, domain, resource) triple identifying an XMPP
// entity. All parts default to empty on session creation.
type JID struct {
	Node     string
	Domain   string
	Resource string
}

// Bare returns the node@domain form, or just the domain for entities
// without a node part.
func (j JID) Bare() string {
	if j.Node != "" {
		return j.Node + "@" + j.Domain
	}
	return j.Domain
}

// Full returns the bare JID extended with the resource part.
func (j JID) Full() string { return j.Bare() + "/" + j.Resource }

// Authenticator verifies a username/password pair.
type Authenticator func(username, password string) bool

// Config contains session configuration.
type Config struct {
	// Domain is the server's domain, used in stream headers and as
	// the domain part of authenticated identities.
	Domain string
	// Authenticate verifies credentials. A nil Authenticate rejects
	// every attempt.
	Authenticate Authenticator
	// ChannelCapacity bounds the command queue; zero selects the
	// default.
	ChannelCapacity int
}

// Session represents one connected client.
//
// The command channel is shared with the client's translation task
// (one producer, one consumer); everything else is owned by the
// engine. The translation layer never touches State or Identity.
type Session struct {
	Commands *command.Channel
	Out      *transport.Writer

	State    State
	Identity JID
}

// New returns a Session for an accepted connection, writing replies
// through out.
func New(out *transport.Writer, config Config) *Session {
	return &Session{
		Commands: command.NewChannel(config.ChannelCapacity),
		Out:      out,
		State:    StateUnauthenticated,
		Identity: JID{},
	}
}

// newStreamID returns a fresh random stream identifier.
func newStreamID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
