package xkcd

import (
	"strconv"
	"strings"
)

// ExpandFilename substitutes comic metadata into an output filename format.
// Placeholders:
//
//	%y  two-digit year (e.g. 25)
//	%m  two-digit month (e.g. 06)
//	%d  two-digit day (e.g. 22)
//	%n  comic number
//	%t  comic title
//
// Everything else is copied through verbatim.
func ExpandFilename(format string, meta *Metadata) string {
	return strings.NewReplacer(
		"%y", twoDigit(lastTwo(meta.Year)),
		"%m", twoDigit(meta.Month),
		"%d", twoDigit(meta.Day),
		"%n", strconv.Itoa(meta.Num),
		"%t", meta.SafeTitle,
	).Replace(format)
}

func lastTwo(s string) string {
	if len(s) > 2 {
		return s[len(s)-2:]
	}
	return s
}

// twoDigit zero-pads single-digit API date fields.
func twoDigit(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
