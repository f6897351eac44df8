/*
Package transport implements the output half of a client connection.

A Writer is exclusively owned by one session. It writes the XML
declaration and the server's stream open tag once, serialized xmlutil
elements afterwards, and the stream trailer on Close. The read side of
the connection is not handled here: callers feed it to an event source
instead.
*/
package transport
