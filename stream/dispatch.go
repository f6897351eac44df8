package stream

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ondrik/xmpp-server/command"
	"github.com/ondrik/xmpp-server/event"
	"github.com/ondrik/xmpp-server/xmlutil"
)

// ErrXMLFormat is the message carried by the Error command sent when
// the event sequence reports a parse failure.
const ErrXMLFormat = "XML format error!"

// Handler processes one valid parse event.
//
// The handler may pull further events from src (through the
// dispatcher's NextEvent) to assemble multi-event constructs. It
// returns false to end translation for the session.
type Handler interface {
	HandleEvent(ev event.Event, src event.Source) bool
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ev event.Event, src event.Source) bool

// HandleEvent calls f.
func (f HandlerFunc) HandleEvent(ev event.Event, src event.Source) bool { return f(ev, src) }

// Dispatcher walks a client's event sequence, delivering commands on
// the client's channel. One Dispatcher serves exactly one client; it
// is not safe for concurrent use.
type Dispatcher struct {
	sender command.Sender
	logger *zap.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the trace logger. The trace is diagnostic only and
// never affects dispatch outcomes.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// NewDispatcher returns a Dispatcher sending commands via sender.
func NewDispatcher(sender command.Sender, opts ...Option) *Dispatcher {
	d := &Dispatcher{sender: sender, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run drives dispatch until a terminal condition or until h declines
// to continue. Each pulled position produces exactly one outcome:
// EndOfStream sent, the XML format Error sent, or h invoked.
func (d *Dispatcher) Run(src event.Source, h Handler) {
	for {
		ev, ok := d.NextEvent(src)
		if !ok {
			return
		}
		if !h.HandleEvent(ev, src) {
			return
		}
	}
}

// NextEvent pulls the next event from src.
//
// On end of input it sends EndOfStream, on a parse failure it sends
// the XML format Error; both return ok false and are terminal for the
// session. A valid event is traced and returned with ok true.
func (d *Dispatcher) NextEvent(src event.Source) (ev event.Event, ok bool) {
	ev, err := src.Next()
	switch {
	case err == io.EOF:
		d.logger.Debug("end of stream")
		d.sender.Send(command.EndOfStream())
		return nil, false
	case err != nil:
		d.logger.Debug("parse failure", zap.Error(err))
		d.sender.Send(command.Error(ErrXMLFormat))
		return nil, false
	}
	d.logger.Debug("event", zap.String("event", ev.String()))
	return ev, true
}

// Send delivers cmd on the client's channel.
func (d *Dispatcher) Send(cmd command.Command) { d.sender.Send(cmd) }

// RequireAttr guards a mandatory attribute. If name is present in
// attrs its value is passed to cont and RequireAttr returns true;
// otherwise an Error command naming the attribute is sent, cont is not
// invoked, and RequireAttr returns false. A missing attribute rejects
// the current event only; it does not end the session.
func (d *Dispatcher) RequireAttr(attrs []xmlutil.RawAttr, name string, cont func(value string)) bool {
	value, found := xmlutil.AttrValue(attrs, name)
	if !found {
		d.sender.Send(command.Error(fmt.Sprintf("Could not find attribute %q in the list of attributes!", name)))
		return false
	}
	cont(value)
	return true
}
