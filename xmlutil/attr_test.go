package xmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrValue(t *testing.T) {
	attrs := []RawAttr{
		RawString("xml:lang", "en"),
		RawString("version", "1.0"),
		RawString("version", "shadowed"),
	}

	for _, tc := range []struct {
		name      string
		attr      string
		want      string
		wantFound bool
	}{
		{name: "first entry", attr: "xml:lang", want: "en", wantFound: true},
		{name: "first match wins", attr: "version", want: "1.0", wantFound: true},
		{name: "missing", attr: "id"},
		{name: "exact match only", attr: "lang"},
		{name: "case sensitive", attr: "Version"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, found := AttrValue(attrs, tc.attr)
			assert.Equal(t, tc.wantFound, found)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFragmentValue(t *testing.T) {
	v, ok := FragmentValue(nil)
	assert.False(t, ok)
	assert.Equal(t, "", v)

	v, ok = FragmentValue([]Fragment{TextFragment("jabber:client")})
	assert.True(t, ok)
	assert.Equal(t, "jabber:client", v)

	// Only the head fragment is inspected.
	v, ok = FragmentValue([]Fragment{TextFragment("head"), RefFragment("amp")})
	assert.True(t, ok)
	assert.Equal(t, "head", v)
}

func TestFragmentValueReferencePanics(t *testing.T) {
	assert.Panics(t, func() {
		FragmentValue([]Fragment{RefFragment("amp")})
	})
}
