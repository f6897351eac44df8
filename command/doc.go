/*
Package command defines the closed vocabulary of protocol commands
produced by the event-translation layer, the credentials accumulator
for in-progress authentication attempts, and the per-client channel
that carries commands to the session engine.

Exactly one command is produced per logically complete input unit.
Unrecognized or malformed input becomes an Error command; no command is
ever dropped.
*/
package command
