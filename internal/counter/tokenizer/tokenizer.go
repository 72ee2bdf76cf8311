// Package tokenizer extracts identifier-like words from raw bytes.
// A word is a maximal run of ASCII letters, digits, and underscores;
// every other byte is a separator. Classification uses a fixed 256-entry
// lookup table so the hot loop is a single index per byte.
package tokenizer

var wordChars = func() [256]bool {
	var t [256]bool
	for _, c := range []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_") {
		t[c] = true
	}
	return t
}()

// IsWordChar reports whether c may appear inside a word.
func IsWordChar(c byte) bool {
	return wordChars[c]
}

// CountWords scans data in a single pass and increments the count of every
// word it finds in counts. A word that runs to the end of the buffer is
// still counted. Empty words are never produced.
func CountWords(data []byte, counts map[string]uint64) {
	start := -1
	for i, c := range data {
		if wordChars[c] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			counts[string(data[start:i])]++
			start = -1
		}
	}
	if start >= 0 {
		counts[string(data[start:])]++
	}
}
