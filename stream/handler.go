package stream

import (
	"strings"

	"github.com/ondrik/xmpp-server/command"
	"github.com/ondrik/xmpp-server/event"
	"github.com/ondrik/xmpp-server/xmlutil"
)

// SessionHandler translates stream-level events into commands: stream
// opens become OpenStream, legacy auth iq stanzas become Authenticate,
// and unsupported constructs become handler-level Errors that leave
// the session running.
type SessionHandler struct {
	d *Dispatcher
}

// NewSessionHandler returns a SessionHandler dispatching via d.
func NewSessionHandler(d *Dispatcher) *SessionHandler {
	return &SessionHandler{d: d}
}

// Run is a convenience driving the handler's dispatcher over src.
func (h *SessionHandler) Run(src event.Source) { h.d.Run(src, h) }

// HandleEvent implements Handler.
func (h *SessionHandler) HandleEvent(ev event.Event, src event.Source) bool {
	switch ev := ev.(type) {
	case event.StartElement:
		return h.handleElement(ev.Name, ev.Attrs, false, src)
	case event.EmptyElement:
		return h.handleElement(ev.Name, ev.Attrs, true, src)
	case event.EndElement:
		// </stream:stream> or a stray close: nothing to emit, the
		// following end of input produces EndOfStream.
		return true
	case event.CharData:
		if strings.TrimSpace(ev.Text) == "" {
			return true
		}
		h.d.Send(command.Error("Unexpected character data in stream!"))
		return true
	case event.Other:
		h.d.Send(command.Error("Unsupported XML construct: " + ev.Kind + "!"))
		return true
	}
	h.d.Send(command.Error("Unsupported XML construct!"))
	return true
}

func (h *SessionHandler) handleElement(name string, attrs []xmlutil.RawAttr, empty bool, src event.Source) bool {
	switch {
	case xmlutil.Matches(name, "stream", StreamPrefix):
		h.d.RequireAttr(attrs, "xml:lang", func(lang string) {
			h.d.RequireAttr(attrs, "version", func(version string) {
				h.d.Send(command.OpenStream(lang, version))
			})
		})
		return true
	case name == "iq":
		cont := true
		h.d.RequireAttr(attrs, "id", func(id string) {
			if empty {
				// a childless request authenticates with everything
				// absent; the engine rejects it
				h.d.Send(command.Authenticate(&command.Credentials{}, id))
				return
			}
			cont = h.collectAuth(src, id)
		})
		return cont
	default:
		h.d.Send(command.Error("Unrecognized XML element <" + name + ">!"))
		return true
	}
}

// collectAuth consumes the remainder of an iq stanza, accumulating
// credentials from username, password and resource children, and
// emits Authenticate on the stanza's closing tag. It returns false if
// the sequence reached a terminal condition mid-stanza, in which case
// the terminal command has already been sent.
func (h *SessionHandler) collectAuth(src event.Source, requestID string) bool {
	creds := &command.Credentials{}
	depth := 1 // the open iq element
	var field string
	var text strings.Builder

	for {
		ev, ok := h.d.NextEvent(src)
		if !ok {
			return false
		}
		switch ev := ev.(type) {
		case event.StartElement:
			depth++
			if isCredentialField(ev.Name) {
				field = ev.Name
				text.Reset()
			}
		case event.EmptyElement:
			setCredentialField(creds, ev.Name, "")
		case event.CharData:
			if field != "" {
				text.WriteString(ev.Text)
			}
		case event.EndElement:
			depth--
			if depth == 0 {
				h.d.Send(command.Authenticate(creds, requestID))
				return true
			}
			if field != "" && ev.Name == field {
				setCredentialField(creds, field, text.String())
				field = ""
			}
		case event.Other:
			h.d.Send(command.Error("Unsupported XML construct: " + ev.Kind + "!"))
		}
	}
}

func isCredentialField(name string) bool {
	switch name {
	case "username", "password", "resource":
		return true
	}
	return false
}

func setCredentialField(creds *command.Credentials, name, value string) {
	switch name {
	case "username":
		creds.SetUsername(value)
	case "password":
		creds.SetPassword(value)
	case "resource":
		creds.SetResource(value)
	}
}
