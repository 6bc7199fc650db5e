package schedule

import (
	"strconv"
	"strings"
)

// TextColor picks black-ish or white text for the given "#RRGGBB"
// background, using the perceived-luminance weights. Unparseable
// colors get white text. Both the TUI cards and the exported HTML
// grid use this so a course stays readable on its own color.
func TextColor(background string) string {
	if luminance(background) > 0.5 {
		return "#1f2937"
	}
	return "#ffffff"
}

// luminance returns the perceived luminance of a "#RRGGBB" color in
// [0,1], or 0 when unparseable.
func luminance(hex string) float64 {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0
	}
	r, err1 := strconv.ParseInt(hex[0:2], 16, 32)
	g, err2 := strconv.ParseInt(hex[2:4], 16, 32)
	b, err3 := strconv.ParseInt(hex[4:6], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0
	}
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}
