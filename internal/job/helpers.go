package job

import (
	"strings"

	"github.com/dustin/go-humanize"
)

func comma(n int) string {
	return humanize.Comma(int64(n))
}

// splitLines turns a textarea's contents into bullet items, dropping
// blank lines and leading list markers.
func splitLines(s string) []string {
	var items []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimLeft(line, "-*•"))
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}
