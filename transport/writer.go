package transport

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/ondrik/xmpp-server/stream"
	"github.com/ondrik/xmpp-server/xmlutil"
)

// xmlDeclaration opens every document-level stream.
const xmlDeclaration = `<?xml version="1.0"?>`

// Header describes the server's stream open tag.
type Header struct {
	// ID is the server-assigned stream id.
	ID string
	// From is the server's domain.
	From string
	// Lang is the negotiated stream language.
	Lang string
}

// Writer encodes serialized XML onto a session's output transport.
type Writer struct {
	dst           io.Writer
	headerWritten bool
	closed        bool
}

// NewWriter returns a Writer sending to dst. If dst is also an
// io.Closer it will be closed by Close.
func NewWriter(dst io.Writer) *Writer { return &Writer{dst: dst} }

// WriteHeader writes the XML declaration and the stream open tag.
// It may be called at most once per stream.
func (w *Writer) WriteHeader(h Header) error {
	if w.headerWritten {
		return errors.New("transport: stream header already written")
	}
	open := fmt.Sprintf(
		`%s<stream:stream from="%s" id="%s" xml:lang="%s" xmlns="%s" xmlns:stream="%s" version="1.0">`,
		xmlDeclaration,
		xmlutil.Escape(h.From), xmlutil.Escape(h.ID), xmlutil.Escape(h.Lang),
		stream.JabberClientNS, stream.JabberStreamsNS)
	if err := w.writeString(open); err != nil {
		return errors.Wrap(err, "write stream header")
	}
	w.headerWritten = true
	return nil
}

// WriteNode serializes n and writes it.
func (w *Writer) WriteNode(n *xmlutil.Node) error {
	return errors.Wrap(w.writeString(n.Serialize()), "write element")
}

// Close writes the stream trailer if a header was written, then closes
// the underlying writer if it is an io.Closer. Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	var err error
	if w.headerWritten {
		err = w.writeString("</stream:stream>")
	}
	if c, ok := w.dst.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return errors.Wrap(err, "close transport")
}

func (w *Writer) writeString(s string) error {
	n, err := io.WriteString(w.dst, s)
	if err == nil && n < len(s) {
		err = io.ErrShortWrite
	}
	return err
}
