package header

//go:generate go tool mockgen -package headermock -destination ../internal/testutil/headermock/word_decoder.mock.go github.com/ghettovoice/gomime/header WordDecoder

import (
	"github.com/ghettovoice/gomime/internal/util"
	"github.com/ghettovoice/gomime/rfc2047"
	"github.com/ghettovoice/gomime/stream"
)

// WordDecoder decodes one encoded word from a stream positioned just past
// the leading "=" of an "=?" prefix. On success the stream is left just
// past the consumed word. On error the stream position is unspecified and
// the caller must restore a checkpoint taken before the attempt.
type WordDecoder interface {
	DecodeWord(s *stream.Stream) (string, error)
}

var defaultDecoder WordDecoder = rfc2047.NewDecoder()

// ParseCommaSeparated parses a raw header field value into a [Value]:
// empty, a single text, or an ordered list of texts split on commas.
//
// Folded lines are merged, runs of whitespace collapse to single spaces,
// and encoded words are decoded in place: adjacent encoded words separated
// only by folding whitespace concatenate without a space, while an encoded
// word next to plain text keeps exactly one. A token that merely looks
// like an encoded word stays in the output verbatim.
//
// The parse is infallible: every input produces one of the three shapes.
func ParseCommaSeparated[T ~string | ~[]byte](s T) Value {
	return ParseCommaSeparatedStream(stream.New([]byte(s)), nil)
}

// ParseCommaSeparatedStream is [ParseCommaSeparated] over a caller-owned
// stream. Parsing stops after the first line that is not continued by
// folding whitespace, leaving the stream on the following byte. A nil dec
// selects the default RFC 2047 decoder.
func ParseCommaSeparatedStream(s *stream.Stream, dec WordDecoder) Value {
	if dec == nil {
		dec = defaultDecoder
	}

	p := listParser{isTokenStart: true}

	for {
		ch, ok := s.Next()
		if !ok {
			break
		}

		switch {
		case ch == '\n':
			p.addToken(s, false)
			if !s.NextIsSpace() {
				p.flushEntry()
				return p.value()
			}
			continue
		case ch == ' ' || ch == '\t':
			p.isTokenStart = true
			continue
		case ch == '=' && p.isTokenStart && s.PeekChar('?'):
			s.Checkpoint()
			if token, err := dec.DecodeWord(s); err == nil {
				p.addToken(s, true)
				p.tokens = append(p.tokens, token)
				continue
			}
			s.Restore()
		case ch == ',':
			p.addToken(s, false)
			p.flushEntry()
			continue
		case ch == '\r':
			continue
		}

		p.isTokenStart = false
		if p.tokenStart == 0 {
			p.tokenStart = s.Offset()
		}
		p.tokenEnd = s.Offset()
	}

	// end of input without a line terminator: flush rather than truncate
	p.addToken(s, false)
	p.flushEntry()
	return p.value()
}

// listParser accumulates words into tokens for the current entry and
// completed entries into the result list. State lives for one parse call.
type listParser struct {
	// half-open byte bounds of the word being scanned; tokenStart == 0
	// means no word is open (real positions are 1-based, see
	// [stream.Stream.Offset])
	tokenStart int
	tokenEnd   int
	// true when the next significant byte starts a new word
	isTokenStart bool

	tokens []string
	list   []string
}

// addToken flushes the currently open word, if any, into the token list.
// A single space is injected before the word unless it opens the entry.
// addSpace injects a trailing space, used when a decoded encoded word
// follows so it does not merge with a preceding plain word.
func (p *listParser) addToken(s *stream.Stream, addSpace bool) {
	if p.tokenStart == 0 {
		return
	}
	if len(p.tokens) > 0 {
		p.tokens = append(p.tokens, " ")
	}
	p.tokens = append(p.tokens, util.LossyString(s.Slice(p.tokenStart-1, p.tokenEnd)))
	if addSpace {
		p.tokens = append(p.tokens, " ")
	}
	p.tokenStart = 0
	p.isTokenStart = true
}

// flushEntry concatenates the accumulated tokens into one entry string and
// appends it to the list. It is the only place entries are appended, and a
// no-op when no tokens accumulated, so no entry is ever empty.
func (p *listParser) flushEntry() {
	if len(p.tokens) == 0 {
		return
	}
	entry := p.tokens[0]
	if len(p.tokens) > 1 {
		sb := util.GetStringBuilder()
		for _, tok := range p.tokens {
			sb.WriteString(tok)
		}
		entry = sb.String()
		util.FreeStringBuilder(sb)
	}
	p.list = append(p.list, entry)
	p.tokens = p.tokens[:0]
}

func (p *listParser) value() Value {
	switch len(p.list) {
	case 0:
		return Value{}
	case 1:
		return Value{Kind: KindText, Text: p.list[0]}
	default:
		return Value{Kind: KindTextList, List: p.list}
	}
}
