package asm

import "strings"

// CommentMarker starts a comment that runs to the end of the line.
const CommentMarker = ';'

// StripComment drops everything from the first comment marker on.
func StripComment(line string) string {
	if i := strings.IndexByte(line, CommentMarker); i >= 0 {
		return line[:i]
	}

	return line
}

// StripBlanks removes every space and tab, including interior ones.
func StripBlanks(line string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, line)
}

// Sanitize turns a raw source line into the token it carries. An empty
// result means the line is blank.
func Sanitize(line string) string {
	return StripBlanks(StripComment(line))
}
