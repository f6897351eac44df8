/*
Package event defines the SAX-style parse events consumed by the
session layer and the lazy Source abstraction that yields them.

A Source produces one result per pull: a valid Event, io.EOF at end of
input, or any other error for a frame-level parse failure at that
position. The three-way split is preserved all the way up to the
dispatcher, which maps each arm to exactly one protocol command.

DecoderSource adapts an encoding/xml tokenizer into the Source
contract. SliceSource replays pre-built results and exists for tests
and offline processing.
*/
package event
