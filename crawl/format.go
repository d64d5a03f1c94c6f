package crawl

import (
	"fmt"
	"unicode/utf8"
)

// TruncateURL keeps the last width characters of rawURL, the part that names
// the book and page, and marks the cut with "...". It never returns more
// than width characters.
func TruncateURL(rawURL string, width int) string {
	n := utf8.RuneCountInString(rawURL)
	switch {
	case width <= 0:
		return ""
	case n <= width:
		return rawURL
	case width <= len("..."):
		return string([]rune(rawURL)[:width])
	}
	runes := []rune(rawURL)
	return "..." + string(runes[n-width+len("..."):])
}

var sizeUnits = []string{"KB", "MB", "GB"}

// FormatBytes renders a byte count with a binary unit, e.g. "1.5 KB".
func FormatBytes(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	size := float64(bytes) / 1024
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[unit])
}
