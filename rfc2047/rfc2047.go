// Package rfc2047 implements the RFC 2047 encoded word decoder used for
// non-ASCII text in message header fields.
//
// An encoded word has the form "=?charset?encoding?payload?=" where the
// encoding is either Q (a quoted-printable variant) or B (base64). The
// decoder is deliberately lenient where the wild is: literal spaces are
// accepted inside Q payloads and hex digits may be lower case. It is strict
// about line breaks: a fold can never occur inside an encoded word, so any
// CR or LF before the terminator fails the decode.
package rfc2047

//go:generate errtrace -w .

import (
	"bytes"
	"encoding/base64"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gomime/internal/errorutil"
	"github.com/ghettovoice/gomime/internal/util"
	"github.com/ghettovoice/gomime/log"
	"github.com/ghettovoice/gomime/stream"
)

// Error represents an encoded word decoding error.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrMalformedWord is returned when the input does not follow the
	// "=?charset?encoding?payload?=" form.
	ErrMalformedWord Error = "malformed encoded word"
	// ErrUnknownCharset is returned when the charset token names no
	// charset known to the IANA MIME index.
	ErrUnknownCharset Error = "unknown charset"
)

func newMalformedWordErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedWord, args...) //errtrace:skip
}

// Decoder decodes encoded words from a byte stream.
// The zero value is ready to use and logs nothing.
type Decoder struct {
	log *slog.Logger
}

// Option configures a [Decoder].
type Option interface {
	apply(*Decoder)
}

type withLogger struct{ log *slog.Logger }

func (o withLogger) apply(d *Decoder) { d.log = o.log }

// WithLogger sets the logger used to report decode fallbacks at debug level.
func WithLogger(l *slog.Logger) Option { return withLogger{l} }

// NewDecoder returns a new decoder configured with opts.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt.apply(d)
	}
	if d.log == nil {
		d.log = log.Noop
	}
	return d
}

func (d *Decoder) logger() *slog.Logger {
	if d.log == nil {
		return log.Noop
	}
	return d.log
}

// DecodeWord decodes one encoded word from s.
//
// The stream must be positioned just past the leading "=", i.e. the caller
// has already matched "=?" and consumed the equals sign. On success the
// stream is left just past the terminating "?=". On error the stream
// position is unspecified and the caller must restore a checkpoint taken
// before the attempt.
func (d *Decoder) DecodeWord(s *stream.Stream) (string, error) {
	if ch, ok := s.Next(); !ok || ch != '?' {
		return "", errtrace.Wrap(newMalformedWordErr("missing charset delimiter"))
	}

	charset, err := readCharset(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	enc, ok := s.Next()
	if !ok {
		return "", errtrace.Wrap(newMalformedWordErr("missing encoding"))
	}
	if ch, ok := s.Next(); !ok || ch != '?' {
		return "", errtrace.Wrap(newMalformedWordErr("missing payload delimiter"))
	}

	var payload []byte
	switch enc {
	case 'q', 'Q':
		sb := util.GetBytesBuffer()
		defer util.FreeBytesBuffer(sb)
		if err := readQPayload(s, sb); err != nil {
			return "", errtrace.Wrap(err)
		}
		payload = sb.Bytes()
	case 'b', 'B':
		if payload, err = readBPayload(s); err != nil {
			return "", errtrace.Wrap(err)
		}
	default:
		return "", errtrace.Wrap(newMalformedWordErr("unsupported encoding %q", enc))
	}

	text, err := decodeCharset(charset, payload)
	if err != nil {
		d.logger().Debug("encoded word decode fallback",
			"charset", charset, "error", err)
		return "", errtrace.Wrap(err)
	}
	return text, nil
}

// readCharset consumes the charset token up to and including the "?"
// delimiter and returns the token with any RFC 2231 language suffix
// ("ISO-8859-1*en") stripped.
func readCharset(s *stream.Stream) (string, error) {
	start := s.Offset()
	lang := 0
	for {
		ch, ok := s.Next()
		if !ok {
			return "", errtrace.Wrap(newMalformedWordErr("unterminated charset"))
		}
		if ch == '?' {
			break
		}
		if ch == '*' && lang == 0 {
			lang = s.Offset() - 1
			continue
		}
		if !isTokenChar(ch) {
			return "", errtrace.Wrap(newMalformedWordErr("invalid charset character %q", ch))
		}
	}
	end := s.Offset() - 1
	if lang > 0 {
		end = lang
	}
	if end == start {
		return "", errtrace.Wrap(newMalformedWordErr("empty charset"))
	}
	return string(s.Slice(start, end)), nil
}

// readQPayload consumes a Q-encoded payload up to and including the "?="
// terminator, appending decoded bytes to buf.
func readQPayload(s *stream.Stream, buf *bytes.Buffer) error {
	for {
		ch, ok := s.Next()
		if !ok {
			return errtrace.Wrap(newMalformedWordErr("unterminated payload"))
		}
		switch ch {
		case '?':
			if c, ok := s.Next(); !ok || c != '=' {
				return errtrace.Wrap(newMalformedWordErr("invalid payload terminator"))
			}
			return nil
		case '\r', '\n':
			return errtrace.Wrap(newMalformedWordErr("line break inside payload"))
		case '_':
			buf.WriteByte(' ')
		case '=':
			h1, ok1 := s.Next()
			h2, ok2 := s.Next()
			if !ok1 || !ok2 || !ishex(h1) || !ishex(h2) {
				return errtrace.Wrap(newMalformedWordErr("invalid hex escape"))
			}
			buf.WriteByte(unhex(h1)<<4 | unhex(h2))
		default:
			buf.WriteByte(ch)
		}
	}
}

// readBPayload consumes a base64 payload up to and including the "?="
// terminator and returns the decoded bytes. Both padded and unpadded
// payloads are accepted.
func readBPayload(s *stream.Stream) ([]byte, error) {
	start := s.Offset()
	for {
		ch, ok := s.Next()
		if !ok {
			return nil, errtrace.Wrap(newMalformedWordErr("unterminated payload"))
		}
		if ch == '?' {
			if c, ok := s.Next(); !ok || c != '=' {
				return nil, errtrace.Wrap(newMalformedWordErr("invalid payload terminator"))
			}
			break
		}
		if ch == '\r' || ch == '\n' {
			return nil, errtrace.Wrap(newMalformedWordErr("line break inside payload"))
		}
	}

	raw := s.Slice(start, s.Offset()-2)
	enc := base64.StdEncoding
	if len(raw)%4 != 0 {
		enc = base64.RawStdEncoding
	}
	payload, err := enc.AppendDecode(nil, raw)
	if err != nil {
		return nil, errtrace.Wrap(newMalformedWordErr(err))
	}
	return payload, nil
}

var defaultDecoder = NewDecoder()

// Decode decodes s as a single complete encoded word, prefix and
// terminator included.
func Decode[T util.Byteseq](s T) (string, error) {
	st := stream.New([]byte(s))
	if ch, ok := st.Next(); !ok || ch != '=' {
		return "", errtrace.Wrap(newMalformedWordErr("missing encoded word prefix"))
	}
	text, err := defaultDecoder.DecodeWord(st)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if st.Offset() != st.Len() {
		return "", errtrace.Wrap(newMalformedWordErr("trailing data after encoded word"))
	}
	return text, nil
}

// isTokenChar checks the RFC 2047 token rule: printable ASCII without
// SPACE, CTLs and especials.
func isTokenChar(c byte) bool {
	return c > ' ' && c < 0x7f && !especials[c]
}

var especials = [256]bool{
	'(': true, ')': true, '<': true, '>': true, '@': true,
	',': true, ';': true, ':': true, '"': true, '/': true,
	'[': true, ']': true, '?': true, '.': true, '=': true,
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
