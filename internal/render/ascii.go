package render

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Bar renders a fixed-width percentage bar like `[████▓░░░░░]`. The filled
// portion is proportional to the percentage; a single transition cell sits
// between the filled and unfilled portions unless the bar is completely full.
func Bar(percentage float64, width int) string {
	filled := int(math.Round(percentage / 100.0 * float64(width)))

	var bar strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i < filled:
			bar.WriteRune('█')
		case i == filled:
			bar.WriteRune('▓')
		default:
			bar.WriteRune('░')
		}
	}

	return "[" + bar.String() + "]"
}

// Badge renders a three-line box-drawing badge with a label cell and a value
// cell. The badge is widened to minWidth when the content alone is narrower.
func Badge(label, value string, minWidth int) string {
	total := utf8.RuneCountInString(label) + utf8.RuneCountInString(value) + 4
	if minWidth > total {
		total = minWidth
	}
	labelWidth := utf8.RuneCountInString(label) + 2
	valueWidth := total - labelWidth

	topBottom := strings.Repeat("─", total)
	labelPart := " " + padRight(label, labelWidth-2)
	valuePart := " " + padRight(value, valueWidth-2) + " "

	return "╭" + topBottom + "╮\n" +
		"│" + labelPart + "│" + valuePart + "│\n" +
		"╰" + topBottom + "╯"
}

// SideBySide lays out two line slices as columns. The right column starts
// offset rows down, and the left column is padded to width before the
// gutter. Trailing whitespace is trimmed from each combined line.
func SideBySide(left, right []string, offset, width int) []string {
	rows := len(left)
	if r := len(right) + offset; r > rows {
		rows = r
	}

	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i >= offset && i-offset < len(right) {
			r = right[i-offset]
		}
		line := padRight(l, width) + " " + r
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

// padRight pads s with spaces to the given rune width. Strings already at
// or beyond the width are returned unchanged.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
