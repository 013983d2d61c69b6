package ui

import "unicode/utf8"

const (
	cjkFirst = '\u4e00'
	cjkLast  = '\u9fa5'
)

// IsTwoCNChar reports whether text is exactly two CJK unified ideographs.
// The text is checked as rendered, without trimming or normalization.
func IsTwoCNChar(text string) bool {
	if utf8.RuneCountInString(text) != 2 {
		return false
	}
	for _, r := range text {
		if r < cjkFirst || r > cjkLast {
			return false
		}
	}
	return true
}
