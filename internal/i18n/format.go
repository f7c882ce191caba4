package i18n

import (
	"golang.org/x/text/message"
)

// FormatCount renders n with the digit grouping of lang.
func FormatCount(lang Language, n int) string {
	return message.NewPrinter(lang.Tag()).Sprintf("%d", n)
}

// FormatPercent renders a whole-number percentage.
func FormatPercent(lang Language, pct int) string {
	return message.NewPrinter(lang.Tag()).Sprintf("%d%%", pct)
}
