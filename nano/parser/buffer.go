package parser

// InputBuffer is a minimal input buffer with a cursor. It operates on runes
// so that column counting and multi-character matches are independent of the
// source encoding. The cursor only ever moves forward.
type InputBuffer struct {
	text []rune
	pos  int
}

func NewInputBuffer(text string) *InputBuffer {
	return &InputBuffer{text: []rune(text)}
}

func (b *InputBuffer) EOF() bool {
	return b.pos >= len(b.text)
}

// Peek returns the next n runes without consuming them. At the end of the
// text it returns the empty string; a short read returns what is left.
func (b *InputBuffer) Peek(n int) string {
	if b.EOF() || n <= 0 {
		return ""
	}
	end := b.pos + n
	if end > len(b.text) {
		end = len(b.text)
	}
	return string(b.text[b.pos:end])
}

// Advance consumes and returns the next n runes, clamped to the end of the
// text. n <= 0 consumes nothing.
func (b *InputBuffer) Advance(n int) string {
	if n <= 0 {
		return ""
	}
	start := b.pos
	b.pos += n
	if b.pos > len(b.text) {
		b.pos = len(b.text)
	}
	return string(b.text[start:b.pos])
}

// Remaining returns the unconsumed tail of the text.
func (b *InputBuffer) Remaining() string {
	return string(b.text[b.pos:])
}

func (b *InputBuffer) Len() int {
	return len(b.text)
}
