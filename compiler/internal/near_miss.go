package internal

import "github.com/hbollon/go-edlib"

// isNearMiss reports whether name looks like a misspelling of word: different
// from it, but within limit edits. An adjacent swap counts as one edit.
func isNearMiss(name, word string, limit int) bool {
	if name == word {
		return false
	}
	return editDistance(name, word) <= limit
}

// editDistance is the optimal string alignment distance between a and b,
// counted in runes.
func editDistance(a, b string) int {
	return edlib.OSADamerauLevenshteinDistance(a, b)
}
