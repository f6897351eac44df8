package event

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ondrik/xmpp-server/xmlutil"
)

// PrefixMap maps namespace URIs to the textual prefix the session
// layer knows them by. Element names in a mapped namespace are
// rendered as prefix:local; names in unmapped namespaces render as
// their bare local name.
type PrefixMap map[string]string

// Prefix returns the preferred prefix for a namespace URI, or "".
func (m PrefixMap) Prefix(nsURI string) string { return m[nsURI] }

// DecoderSource adapts a streaming XML tokenizer into the Source
// contract.
//
// The tokenizer is treated as a black box: tokens map one-to-one onto
// events, tokenizer errors other than io.EOF surface as the parse
// failure arm, and namespace handling is reduced to rendering names
// back into their prefixed wire form via the PrefixMap.
type DecoderSource struct {
	d        *xml.Decoder
	prefixes PrefixMap
	failed   bool
}

// NewDecoderSource returns a DecoderSource tokenizing r.
func NewDecoderSource(r io.Reader, prefixes PrefixMap) *DecoderSource {
	return &DecoderSource{d: xml.NewDecoder(r), prefixes: prefixes}
}

func (s *DecoderSource) Next() (Event, error) {
	if s.failed {
		return nil, errors.New("event: pull after parse failure")
	}
	tok, err := s.d.Token()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		s.failed = true
		return nil, errors.Wrap(err, "tokenize")
	}

	switch t := tok.(type) {
	case xml.StartElement:
		return StartElement{Name: s.name(t.Name), Attrs: s.attrs(t.Attr)}, nil
	case xml.EndElement:
		return EndElement{Name: s.name(t.Name)}, nil
	case xml.CharData:
		return CharData{Text: string(t)}, nil
	case xml.Comment:
		return Other{Kind: "comment"}, nil
	case xml.ProcInst:
		return Other{Kind: "processing-instruction"}, nil
	case xml.Directive:
		return Other{Kind: "directive"}, nil
	}
	return Other{Kind: "unknown"}, nil
}

// name renders a tokenizer name into its prefixed wire form.
//
// The tokenizer resolves declared prefixes to namespace URIs and
// leaves undeclared prefixes (such as xml:) in place. A mapped URI
// gets its preferred prefix back; an unmapped URI (containing URI
// punctuation) drops to the local name; anything else is a literal
// prefix and is kept verbatim.
// xmlNamespaceURL is what the tokenizer resolves the reserved xml:
// prefix to.
const xmlNamespaceURL = "http://www.w3.org/XML/1998/namespace"

func (s *DecoderSource) name(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if n.Space == xmlNamespaceURL {
		return "xml:" + n.Local
	}
	if p := s.prefixes.Prefix(n.Space); p != "" {
		return p + ":" + n.Local
	}
	if strings.ContainsAny(n.Space, ":/") {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// attrs converts tokenizer attributes into raw fragment-valued form,
// dropping namespace declarations.
func (s *DecoderSource) attrs(in []xml.Attr) []xmlutil.RawAttr {
	var out []xmlutil.RawAttr
	for _, a := range in {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		out = append(out, xmlutil.RawString(s.name(a.Name), a.Value))
	}
	return out
}
