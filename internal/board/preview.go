package board

import "strings"

// DefaultPreviewWords is how many words of a body show before "Read More".
const DefaultPreviewWords = 10

// Ellipsis marks a truncated preview.
const Ellipsis = "..."

// Preview shortens body to its first maxWords whitespace-separated words
// plus an ellipsis. Bodies with maxWords words or fewer come back whole
// and truncated is false.
func Preview(body string, maxWords int) (preview string, truncated bool) {
	if maxWords <= 0 {
		maxWords = DefaultPreviewWords
	}

	words := strings.Fields(body)
	if len(words) <= maxWords {
		return body, false
	}
	return strings.Join(words[:maxWords], " ") + Ellipsis, true
}
