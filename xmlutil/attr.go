package xmlutil

import "fmt"

// Fragment is one piece of a raw attribute value as reported by the
// tokenizer. A value is an ordered fragment list; for this protocol
// only a single leading text fragment is ever legitimate.
type Fragment interface {
	isFragment()
}

// TextFragment is a literal string fragment.
type TextFragment string

// RefFragment is an unresolved entity or character reference, kept
// only so the tokenizer seam can represent it. The protocol never
// produces one inside an attribute value.
type RefFragment string

func (TextFragment) isFragment() {}
func (RefFragment) isFragment()  {}

// RawAttr pairs an attribute name with its raw fragment-valued value.
type RawAttr struct {
	Name  string
	Value []Fragment
}

// RawString is shorthand for a RawAttr holding a single text fragment.
func RawString(name, value string) RawAttr {
	return RawAttr{Name: name, Value: []Fragment{TextFragment(value)}}
}

// AttrValue returns the extracted value of the first attribute whose
// name equals name exactly. Names are compared case-sensitively with
// no prefix or namespace awareness. The second return is false when no
// attribute matches or the matching raw value has no fragments.
func AttrValue(attrs []RawAttr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return FragmentValue(a.Value)
		}
	}
	return "", false
}

// FragmentValue extracts the string value of a raw attribute value.
//
// An empty fragment list yields ("", false). Otherwise only the first
// fragment is inspected: a TextFragment yields its value. Any other
// fragment kind panics: a compliant client never sends reference-valued
// attributes, so seeing one means the tokenizer seam is broken.
func FragmentValue(frags []Fragment) (string, bool) {
	if len(frags) == 0 {
		return "", false
	}
	switch f := frags[0].(type) {
	case TextFragment:
		return string(f), true
	default:
		panic(fmt.Sprintf("xmlutil: unsupported attribute value fragment %T", f))
	}
}
