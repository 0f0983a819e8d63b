// Package stream provides a byte cursor over an in-memory message buffer.
//
// Field parsers scan a Stream byte by byte and may attempt speculative
// sub-parses: Checkpoint saves the current position and Restore rewinds to
// it. Exactly one checkpoint slot exists, the scan never nests attempts.
package stream

// Stream is a forward cursor over an immutable byte buffer.
type Stream struct {
	data []byte
	pos  int
	mark int
}

// New returns a cursor positioned at the start of data.
// The buffer is not copied and must not be mutated while the stream is in use.
func New(data []byte) *Stream {
	return &Stream{data: data}
}

// Next consumes and returns the next byte.
// It returns false at the end of the buffer.
func (s *Stream) Next() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	b := s.data[s.pos]
	s.pos++
	return b, true
}

// Peek returns the next byte without consuming it.
func (s *Stream) Peek() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	return s.data[s.pos], true
}

// PeekChar reports whether the next byte equals c, without consuming it.
func (s *Stream) PeekChar(c byte) bool {
	return s.pos < len(s.data) && s.data[s.pos] == c
}

// NextIsSpace reports whether the next byte is a space or a horizontal tab.
// It is the fold-continuation lookahead: a line break followed by leading
// whitespace continues the same logical header value.
func (s *Stream) NextIsSpace() bool {
	return s.pos < len(s.data) && (s.data[s.pos] == ' ' || s.data[s.pos] == '\t')
}

// Checkpoint saves the current position. A later Restore rewinds to it.
// There is a single slot: a second Checkpoint overwrites the first.
func (s *Stream) Checkpoint() { s.mark = s.pos }

// Restore rewinds the cursor to the last checkpointed position.
func (s *Stream) Restore() { s.pos = s.mark }

// Offset returns the number of consumed bytes. The byte returned by the
// last Next sits at Offset()-1, so a real position is never zero and zero
// can serve as a "no position" sentinel.
func (s *Stream) Offset() int { return s.pos }

// Slice returns the input bytes in the half-open range [start, end).
func (s *Stream) Slice(start, end int) []byte { return s.data[start:end] }

// Len returns the total length of the underlying buffer.
func (s *Stream) Len() int { return len(s.data) }

// Data returns the underlying buffer.
func (s *Stream) Data() []byte { return s.data }
