package event

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSliceSource(t *testing.T) {
	parseErr := errors.New("boom")
	src := NewSliceSource(
		Ok(StartElement{Name: "iq"}),
		Ok(CharData{Text: "x"}),
		Fail(parseErr),
	)

	ev, err := src.Next()
	assert.NoError(t, err)
	assert.Equal(t, StartElement{Name: "iq"}, ev)

	ev, err = src.Next()
	assert.NoError(t, err)
	assert.Equal(t, CharData{Text: "x"}, ev)

	ev, err = src.Next()
	assert.Nil(t, ev)
	assert.Equal(t, parseErr, err)

	ev, err = src.Next()
	assert.Nil(t, ev)
	assert.Equal(t, io.EOF, err)
}

func TestSliceSourceEmpty(t *testing.T) {
	ev, err := NewSliceSource().Next()
	assert.Nil(t, ev)
	assert.Equal(t, io.EOF, err)
}

func TestEventString(t *testing.T) {
	for _, tc := range []struct {
		ev   Event
		want string
	}{
		{StartElement{Name: "iq"}, "<iq>"},
		{EndElement{Name: "iq"}, "</iq>"},
		{EmptyElement{Name: "resource"}, "<resource/>"},
		{CharData{Text: "hi"}, `chardata "hi"`},
		{Other{Kind: "comment"}, "(comment)"},
	} {
		assert.Equal(t, tc.want, tc.ev.String())
	}
}
