package classify

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// Line is one input line without its terminator, with its origin
type Line struct {
	Source string
	Number int
	Text   string
}

// Scanner reads lines from a stream. A line ends at "\n", "\r", "\r\n",
// U+0085, U+2028 or U+2029; a final line without a terminator is returned
// too. Line length is not limited.
type Scanner struct {
	source string
	r      *bufio.Reader
	buf    strings.Builder
	line   Line
	number int
	err    error
	done   bool
}

// NewScanner creates a scanner reading from r. source names the stream in
// the returned lines.
func NewScanner(source string, r io.Reader) *Scanner {
	return &Scanner{
		source: source,
		r:      bufio.NewReader(r),
	}
}

// Scan advances to the next line. It returns false at end of input or on a
// read error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	s.buf.Reset()
	for {
		r, size, err := s.r.ReadRune()
		if err != nil {
			s.finish(err)
			if s.buf.Len() == 0 {
				return false
			}
			break
		}
		if r == utf8.RuneError && size == 1 {
			// keep invalid bytes as they are
			_ = s.r.UnreadRune()
			b, _ := s.r.ReadByte()
			s.buf.WriteByte(b)
			continue
		}
		if r == '\r' {
			s.skipLineFeed()
			break
		}
		if isLineBreak(r) {
			break
		}
		s.buf.WriteRune(r)
	}

	s.number++
	s.line = Line{Source: s.source, Number: s.number, Text: s.buf.String()}
	return true
}

// skipLineFeed consumes the "\n" of a "\r\n" pair
func (s *Scanner) skipLineFeed() {
	r, _, err := s.r.ReadRune()
	switch {
	case err != nil:
		s.finish(err)
	case r != '\n':
		_ = s.r.UnreadRune()
	}
}

func (s *Scanner) finish(err error) {
	s.done = true
	if err != io.EOF {
		s.err = err
	}
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Line returns the line read by the last successful Scan
func (s *Scanner) Line() Line {
	return s.line
}

// Err returns the first non-EOF read error
func (s *Scanner) Err() error {
	return s.err
}
