package utils

import "strings"

// NormalizeCode folds user-supplied link codes into the stored form.
// Tokens are never normalized, only codes.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// DisplayName turns an item id like "bronze_sword" into "Bronze Sword".
func DisplayName(itemID string) string {
	words := strings.Split(itemID, "_")
	for i, word := range words {
		words[i] = Capitalize(word)
	}
	return strings.Join(words, " ")
}
