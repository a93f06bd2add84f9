package classify

import (
	"fmt"
	"strings"
	"unicode"
)

// Policy decides how much of a line a numeric leading token claims
type Policy int

const (
	// PolicyLeadingToken classifies a line by its first token. A numeric
	// first token wins and the rest of the line is discarded, so "7 world"
	// yields 7.
	PolicyLeadingToken Policy = iota

	// PolicyWholeLine classifies a line as numeric only when it holds exactly
	// one numeric token; "7 world" is text.
	PolicyWholeLine
)

// String returns the configuration name of the policy
func (p Policy) String() string {
	switch p {
	case PolicyLeadingToken:
		return "leading-token"
	case PolicyWholeLine:
		return "whole-line"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name as written in configuration files
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "leading-token", "leading":
		return PolicyLeadingToken, nil
	case "whole-line", "strict":
		return PolicyWholeLine, nil
	default:
		return PolicyLeadingToken, fmt.Errorf("unknown classification policy %q", s)
	}
}

// Classifier turns lines into values, trying integer, then float, then text
type Classifier struct {
	policy Policy
}

// New creates a classifier with the given policy
func New(policy Policy) *Classifier {
	return &Classifier{policy: policy}
}

// Classify classifies one line, given without its line terminator. A line
// without any token (empty or whitespace only) is an empty text value. Text
// values keep the line verbatim.
func (c *Classifier) Classify(line string) Value {
	token, rest, ok := leadingToken(line)
	if !ok {
		return TextValue("")
	}

	if c.policy == PolicyWholeLine && strings.TrimFunc(rest, isSeparator) != "" {
		return TextValue(line)
	}

	if v, ok := ParseInteger(token); ok {
		return IntegerValue(v)
	}
	if v, ok := ParseFloat(token); ok {
		return FloatValue(v)
	}
	return TextValue(line)
}

// leadingToken splits off the first maximal run of non-separators
func leadingToken(line string) (token, rest string, ok bool) {
	start := strings.IndexFunc(line, func(r rune) bool { return !isSeparator(r) })
	if start < 0 {
		return "", "", false
	}
	s := line[start:]
	end := strings.IndexFunc(s, isSeparator)
	if end < 0 {
		return s, "", true
	}
	return s[:end], s[end:], true
}

// isSeparator reports whether r splits tokens. No-break spaces and NEL
// belong to the token; the ASCII information separators do not.
func isSeparator(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f', '\u0085':
		return false
	case '\u001c', '\u001d', '\u001e', '\u001f':
		return true
	}
	return unicode.IsSpace(r)
}
