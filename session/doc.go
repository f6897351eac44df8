/*
Package session holds per-client session state and the engine that
drives it.

A Session owns the client's command channel (shared with the
translation layer), the output transport writer, the authentication
state and the resolved Jabber identity. The Engine is the channel's
sole consumer and the only mutator of session state: it drains
commands in FIFO order, answers stream opens and authentication
requests, and tears the stream down on terminal commands.

Serve wires a full client: one goroutine translating parse events into
commands, the calling goroutine running the engine.
*/
package session
