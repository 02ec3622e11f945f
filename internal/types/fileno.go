package types

import "strings"

// NormalizeFileNo upper-cases a file number and collapses runs of
// whitespace, so "06ggb1025  10" and "06GGB1025 10" name the same report.
func NormalizeFileNo(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
