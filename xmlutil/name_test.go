package xmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	for _, tc := range []struct {
		actual, local, prefix string
		want                  bool
	}{
		{"stream:features", "features", "stream", true},
		{"features", "features", "stream", true},
		{"other:features", "features", "stream", false},
		{"stream:stream", "stream", "stream", true},
		{"stream", "stream", "stream", true},
		{"streamfeatures", "features", "stream", false},
		{"", "features", "stream", false},
	} {
		assert.Equal(t, tc.want, Matches(tc.actual, tc.local, tc.prefix),
			"Matches(%q, %q, %q)", tc.actual, tc.local, tc.prefix)
	}
}
