package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/gomime/header"
	"github.com/ghettovoice/gomime/internal/errorutil"
	"github.com/ghettovoice/gomime/internal/testutil/headermock"
	"github.com/ghettovoice/gomime/stream"
)

func TestParseCommaSeparated(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  header.Value
	}{
		{
			"single item",
			" one item  \n",
			header.TextValue("one item"),
		},
		{
			"simple list",
			"simple, list\n",
			header.ListValue("simple", "list"),
		},
		{
			"folded entries with crlf",
			"multi \r\n list, \r\n with, cr lf  \r\n",
			header.ListValue("multi list", "with", "cr lf"),
		},
		{
			"encoded word in list",
			"=?iso-8859-1?q?this is some text?=, in, a, list, \n",
			header.ListValue("this is some text", "in", "a", "list"),
		},
		{
			"folded adjacent encoded words",
			" =?ISO-8859-1?B?SWYgeW91IGNhbiByZWFkIHRoaXMgeW8=?=\n     " +
				"=?ISO-8859-2?B?dSB1bmRlcnN0YW5kIHRoZSBleGFtcGxlLg==?=\n" +
				" , but, in a list, which, is, more, fun!\n",
			header.ListValue(
				"If you can read this you understand the example.",
				"but", "in a list", "which", "is", "more", "fun!",
			),
		},
		{
			"adjacent encoded words space elided",
			"=?ISO-8859-1?Q?a?= =?ISO-8859-1?Q?b?=\n , listed\n",
			header.ListValue("ab", "listed"),
		},
		{
			"encoded word next to plain text",
			"hello =?ISO-8859-1?Q?world?=\n",
			header.TextValue("hello world"),
		},
		{
			"non-ascii plain text",
			"ハロー・ワールド, and also, ascii terms\n",
			header.ListValue("ハロー・ワールド", "and also", "ascii terms"),
		},
		{
			"latin1 hex escape",
			"=?ISO-8859-1?Q?caf=E9?=\n",
			header.TextValue("café"),
		},
		{
			"empty input",
			"",
			header.EmptyValue(),
		},
		{
			"bare newline",
			"\n",
			header.EmptyValue(),
		},
		{
			"whitespace only",
			" \t \r\n",
			header.EmptyValue(),
		},
		{
			"commas only",
			",,\n",
			header.EmptyValue(),
		},
		{
			"leading comma",
			", a, b\n",
			header.ListValue("a", "b"),
		},
		{
			"empty entries dropped",
			"a,,b\n",
			header.ListValue("a", "b"),
		},
		{
			"stops at unfolded line break",
			"first\nsecond\n",
			header.TextValue("first"),
		},
		{
			"no trailing line break",
			"a, b",
			header.ListValue("a", "b"),
		},
		{
			"no trailing line break single",
			" one item  ",
			header.TextValue("one item"),
		},
		{
			"cr before delimiter dropped",
			"ab\r, c\r\n",
			header.ListValue("ab", "c"),
		},
		{
			"cr mid word causes no split",
			"ab\rcd\n",
			header.TextValue("ab\rcd"),
		},
		{
			"unknown charset stays literal",
			"=?x-nope?q?data?=\n",
			header.TextValue("=?x-nope?q?data?="),
		},
		{
			"bad encoding stays literal",
			"=?iso-8859-1?x?data?=\n",
			header.TextValue("=?iso-8859-1?x?data?="),
		},
		{
			"unterminated encoded word stays literal",
			"=?iso-8859-1?q?data\n",
			header.TextValue("=?iso-8859-1?q?data"),
		},
		{
			"equals sign mid word",
			"key=value, other\n",
			header.ListValue("key=value", "other"),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := header.ParseCommaSeparated(c.input)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("ParseCommaSeparated(%q) mismatch (-want +got):\n%s", c.input, diff)
			}

			// same input bytes, same result
			again := header.ParseCommaSeparated([]byte(c.input))
			if !got.Equal(again) {
				t.Errorf("ParseCommaSeparated(%q) is not deterministic: %v != %v", c.input, got, again)
			}
		})
	}
}

func TestParseCommaSeparatedStream_stopsAtLineBreak(t *testing.T) {
	t.Parallel()

	s := stream.New([]byte("one\nrest"))

	got := header.ParseCommaSeparatedStream(s, nil)
	if diff := cmp.Diff(header.TextValue("one"), got); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
	if want := len("one\n"); s.Offset() != want {
		t.Errorf("stream Offset() = %d, want %d", s.Offset(), want)
	}
}

func TestParseCommaSeparatedStream_decoderFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	dec := headermock.NewMockWordDecoder(ctrl)
	dec.EXPECT().
		DecodeWord(gomock.Any()).
		DoAndReturn(func(s *stream.Stream) (string, error) {
			// a failing decoder may leave the stream anywhere
			for {
				if _, ok := s.Next(); !ok {
					return "", errorutil.Error("bad word")
				}
			}
		})

	got := header.ParseCommaSeparatedStream(stream.New([]byte("=?broken?=\n")), dec)

	if diff := cmp.Diff(header.TextValue("=?broken?="), got); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCommaSeparatedStream_decoderSuccess(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	dec := headermock.NewMockWordDecoder(ctrl)
	dec.EXPECT().
		DecodeWord(gomock.Any()).
		DoAndReturn(func(s *stream.Stream) (string, error) {
			// consume "?w?=" and leave the stream just past the word
			for {
				ch, ok := s.Next()
				if !ok {
					t.Fatal("decoder ran past end of input")
				}
				if ch == '=' {
					return "decoded", nil
				}
			}
		})

	got := header.ParseCommaSeparatedStream(stream.New([]byte("=?w?=, plain\n")), dec)

	if diff := cmp.Diff(header.ListValue("decoded", "plain"), got); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCommaSeparatedStream_noDecodeMidWord(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	dec := headermock.NewMockWordDecoder(ctrl)
	// "=?" not at a word start never triggers a decode attempt

	got := header.ParseCommaSeparatedStream(stream.New([]byte("a=?x?=\n")), dec)

	if diff := cmp.Diff(header.TextValue("a=?x?="), got); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCommaSeparated_concurrent(t *testing.T) {
	t.Parallel()

	const input = "=?ISO-8859-1?Q?a?= =?ISO-8859-1?Q?b?=\n , listed\n"
	want := header.ListValue("ab", "listed")

	done := make(chan header.Value)
	for range 16 {
		go func() { done <- header.ParseCommaSeparated(input) }()
	}
	for range 16 {
		if got := <-done; !want.Equal(got) {
			t.Errorf("concurrent ParseCommaSeparated = %v, want %v", got, want)
		}
	}
}
