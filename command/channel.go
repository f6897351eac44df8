package command

// Sender delivers commands to the session engine.
type Sender interface {
	Send(Command)
}

// Channel is the single-producer/single-consumer queue carrying
// commands from the translation layer to the session engine.
//
// The queue is bounded: a full queue blocks the producer rather than
// dropping, since losing a command would silently corrupt protocol
// state. Commands are delivered in exactly the order they were sent.
type Channel struct {
	ch chan Command
}

// DefaultCapacity is the channel capacity used when none is given.
const DefaultCapacity = 16

// NewChannel returns a Channel with the given capacity. A capacity of
// zero or less selects DefaultCapacity.
func NewChannel(capacity int) *Channel {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Channel{ch: make(chan Command, capacity)}
}

// Send enqueues cmd, blocking while the queue is full.
func (c *Channel) Send(cmd Command) { c.ch <- cmd }

// C returns the receive side for the consumer.
func (c *Channel) C() <-chan Command { return c.ch }

// Close closes the channel. Only the producer may call it, after its
// final command.
func (c *Channel) Close() { close(c.ch) }
