package command

import "fmt"

// Kind enumerates the closed set of protocol commands.
type Kind int

const (
	// KindError reports malformed input or an unsupported construct.
	KindError Kind = iota
	// KindEndOfStream reports that the client's event sequence is
	// exhausted.
	KindEndOfStream
	// KindOpenStream reports that the client opened the top-level
	// stream element.
	KindOpenStream
	// KindAuthenticate reports a complete authentication request.
	KindAuthenticate
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindEndOfStream:
		return "end-of-stream"
	case KindOpenStream:
		return "open-stream"
	case KindAuthenticate:
		return "authenticate"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Command is one unit of work handed from the translation layer to the
// session engine. Kind selects which payload fields are meaningful.
type Command struct {
	Kind Kind

	// Message is the error description (KindError).
	Message string

	// Lang and Version are the stream's xml:lang and protocol version
	// (KindOpenStream).
	Lang    string
	Version string

	// Credentials and RequestID carry a complete authentication
	// request and the id of the stanza that submitted it
	// (KindAuthenticate).
	Credentials *Credentials
	RequestID   string
}

// Error returns an Error command carrying message.
func Error(message string) Command {
	return Command{Kind: KindError, Message: message}
}

// EndOfStream returns an EndOfStream command.
func EndOfStream() Command {
	return Command{Kind: KindEndOfStream}
}

// OpenStream returns an OpenStream command for a stream opened with
// the given language and protocol version.
func OpenStream(lang, version string) Command {
	return Command{Kind: KindOpenStream, Lang: lang, Version: version}
}

// Authenticate returns an Authenticate command for the given
// credentials and request id.
func Authenticate(creds *Credentials, requestID string) Command {
	return Command{Kind: KindAuthenticate, Credentials: creds, RequestID: requestID}
}
