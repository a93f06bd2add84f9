// Package classify decides, line by line, whether input content is an
// integer, a floating-point number or text.
//
// Integers are tried first, then floats, then the line is kept as text.
// Number parsing is locale independent: '.' is the only decimal separator
// and grouping separators are never accepted. With the default
// PolicyLeadingToken a numeric first token claims the whole line and the
// remaining words are dropped.
package classify
