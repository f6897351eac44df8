/*
Package stream turns a client's parse-event sequence into protocol
commands.

The Dispatcher owns the control-flow core: it pulls one event at a
time from an event.Source and applies a three-way split. An exhausted
sequence sends EndOfStream; a parse failure sends an XML format Error;
a valid event is traced and handed to the Handler together with the
live source. Both terminal arms end translation for the session; there
is no resynchronization within a corrupted stream.

Handlers may pull further events through the same three-way helper to
assemble multi-event constructs, so a stanza interrupted by end of
input or a parse failure still produces exactly one terminal command.
SessionHandler implements the protocol proper: stream opens, legacy
jabber:iq:auth authentication stanzas, and error reporting for
everything else.
*/
package stream
