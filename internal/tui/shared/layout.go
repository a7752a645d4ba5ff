package shared

import "strings"

// PinBottom renders content top-aligned in the available height, with
// hint text pinned to the very bottom line.
func PinBottom(content, hints string, height int) string {
	content = strings.TrimRight(content, "\n")
	hints = strings.TrimRight(hints, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	hintLines := strings.Split(hints, "\n")

	if len(contentLines)+len(hintLines) >= height {
		if content == "" {
			return hints
		}
		return content + "\n" + hints
	}

	lines := make([]string, 0, height)
	lines = append(lines, contentLines...)
	for len(lines)+len(hintLines) < height {
		lines = append(lines, "")
	}
	lines = append(lines, hintLines...)

	return strings.Join(lines, "\n")
}

// LineCount returns the number of lines s renders to.
func LineCount(s string) int {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
