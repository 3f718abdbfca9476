package jsx

// StringTracker iterates over source bytes while tracking whether the
// cursor sits inside a string literal or a comment. Every scanner in
// this package that looks for braces, parens or markers goes through
// it, so literals like "})();" or '{' never confuse span detection.
type StringTracker struct {
	src string
	i   int // next byte to return
	pos int // index of the byte last returned

	strCh   byte // active quote char, 0 when outside a string
	escaped bool

	lineComment  bool
	blockComment bool
	justOpened   bool // the '*' of "/*" must not also close the comment
	prevStar     bool

	exitString  bool // the byte last returned closed the string
	exitComment bool // the byte last returned closed the block comment
}

func NewStringTracker(src string) *StringTracker {
	return &StringTracker{src: src}
}

// Next returns the next byte, or ok=false at end of input.
func (t *StringTracker) Next() (byte, bool) {
	// Apply exits deferred from the previous byte: the closing quote
	// and the '/' of "*/" still report as inside.
	if t.exitString {
		t.strCh = 0
		t.exitString = false
		t.escaped = false
	}
	if t.exitComment {
		t.blockComment = false
		t.exitComment = false
		t.prevStar = false
	}

	if t.i >= len(t.src) {
		return 0, false
	}
	ch := t.src[t.i]
	t.pos = t.i
	t.i++

	switch {
	case t.strCh != 0:
		switch {
		case t.escaped:
			t.escaped = false
		case ch == '\\':
			t.escaped = true
		case ch == t.strCh:
			t.exitString = true
		case ch == '\n':
			// The dialect has no multiline strings; treat an unterminated
			// literal as closed at the newline rather than poisoning the
			// rest of the scan.
			t.strCh = 0
		}
	case t.lineComment:
		if ch == '\n' {
			t.lineComment = false
		}
	case t.blockComment:
		if t.justOpened {
			t.justOpened = false
			t.prevStar = false
			break
		}
		if t.prevStar && ch == '/' {
			t.exitComment = true
		}
		t.prevStar = ch == '*'
	default:
		switch ch {
		case '"', '\'':
			t.strCh = ch
		case '/':
			if t.i < len(t.src) {
				switch t.src[t.i] {
				case '/':
					t.lineComment = true
				case '*':
					t.blockComment = true
					t.justOpened = true
				}
			}
		}
	}
	return ch, true
}

// Pos returns the index of the byte last returned by Next.
func (t *StringTracker) Pos() int { return t.pos }

// InString reports whether the byte last returned is part of a string
// literal, including the opening and closing quotes.
func (t *StringTracker) InString() bool { return t.strCh != 0 }

// InComment reports whether the byte last returned is part of a //
// or /* */ comment. The terminating newline of a line comment is not
// part of the comment; the "*/" of a block comment is.
func (t *StringTracker) InComment() bool { return t.lineComment || t.blockComment }

// InCode reports whether the byte last returned is plain code, outside
// any string literal or comment.
func (t *StringTracker) InCode() bool { return !t.InString() && !t.InComment() }
