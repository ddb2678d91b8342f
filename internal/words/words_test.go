package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		elems []string
		sep   string
		want  string
	}{
		{name: "fixed sequence", elems: []string{"foo", "bar", "baz"}, sep: "-", want: "foo-bar-baz"},
		{name: "nil sequence", elems: nil, sep: "-", want: ""},
		{name: "empty sequence", elems: []string{}, sep: "-", want: ""},
		{name: "single element", elems: []string{"foo"}, sep: "-", want: "foo"},
		{name: "two elements", elems: []string{"foo", "bar"}, sep: "-", want: "foo-bar"},
		{name: "empty elements keep delimiters", elems: []string{"", "", ""}, sep: "-", want: "--"},
		{name: "multi-char delimiter", elems: []string{"foo", "bar"}, sep: ", ", want: "foo, bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.elems, tt.sep))
		})
	}
}

func TestJoined(t *testing.T) {
	assert.Equal(t, "foo-bar-baz", Joined())
}

func TestFixedReturnsIndependentCopies(t *testing.T) {
	a := Fixed()
	b := Fixed()
	a[0] = "changed"

	assert.Equal(t, []string{"foo", "bar", "baz"}, b)
	assert.Equal(t, []string{"foo", "bar", "baz"}, Fixed())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Foo", Label("foo"))
	assert.Equal(t, "Bar", Label("bar"))
	assert.Equal(t, "", Label(""))
}

func TestLine(t *testing.T) {
	assert.Equal(t, "Foo: Joined string: foo-bar-baz", Line("foo", Joined()))
	assert.Equal(t, "Bar: Joined string: foo-bar-baz", Line("bar", Joined()))
}
