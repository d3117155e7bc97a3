package asm

import "strings"

// A Word is one instruction memory word rendered as binary digits, MSB
// first.
type Word string

// ZeroWord returns an all-zero word of the given width.
func ZeroWord(width int) Word {
	return Word(strings.Repeat("0", width))
}

// IsBinary tells if s is a non-empty string of '0' and '1'.
func IsBinary(s string) bool {
	return s != "" && strings.Trim(s, "01") == ""
}

// Pad left-pads a binary literal with zeros up to width. Literals that are
// already width long or longer come back unchanged.
func Pad(literal string, width int) Word {
	if len(literal) >= width {
		return Word(literal)
	}

	return Word(strings.Repeat("0", width-len(literal)) + literal)
}
