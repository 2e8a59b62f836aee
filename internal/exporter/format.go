package exporter

import "strconv"

// formatInt formats an int value for CSV output.
func formatInt(i int) string {
	return strconv.Itoa(i)
}
