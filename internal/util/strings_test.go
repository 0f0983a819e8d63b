package util_test

import (
	"testing"

	"github.com/ghettovoice/gomime/internal/util"
)

func TestLossyString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input []byte
		want  string
	}{
		{"ascii", []byte("plain"), "plain"},
		{"utf8", []byte("ハロー"), "ハロー"},
		{"invalid byte replaced", []byte{'a', 0xff, 'b'}, "a�b"},
		{"truncated rune replaced", []byte{0xe3, 0x81}, "�"},
		{"empty", nil, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := util.LossyString(c.input); got != c.want {
				t.Errorf("LossyString(%v) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestLCase(t *testing.T) {
	t.Parallel()

	if got, want := util.LCase("ISO-8859-1"), "iso-8859-1"; got != want {
		t.Errorf(`LCase("ISO-8859-1") = %q, want %q`, got, want)
	}
}

func TestStringBuilderPool(t *testing.T) {
	t.Parallel()

	sb := util.GetStringBuilder()
	sb.WriteString("abc")
	if got := sb.String(); got != "abc" {
		t.Errorf("builder contents = %q, want %q", got, "abc")
	}
	util.FreeStringBuilder(sb)

	sb = util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if got := sb.Len(); got != 0 {
		t.Errorf("pooled builder not reset, Len() = %d", got)
	}
}
