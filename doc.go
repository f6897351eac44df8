/*
Package xmppserver is the session layer of a minimal XMPP-like server.

The libraries here translate a stream of XML parse events arriving from
a client connection into a small, closed set of typed protocol
commands, validate them against a per-client authentication state
machine, and produce well-formed XML replies.

The event source (package event) adapts a streaming XML tokenizer into
a lazy sequence of typed parse events. The dispatcher (package stream)
walks that sequence one event at a time, turning each logically
complete input unit into exactly one Command delivered over a
per-client channel (package command). The session engine (package
session) consumes commands, owns the client's authentication state and
Jabber identity, and writes xmlutil element trees back through the
transport writer.

Network accept loops and TLS are out of scope; callers hand each
accepted connection's reader to an event source and its writer to a
transport.Writer.
*/
package xmppserver
