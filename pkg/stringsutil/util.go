package stringsutil

// RemoveEmptyStrings filters empty entries out of a slice, preserving order.
// Splitting a comma-separated env value leaves empties behind trailing or
// doubled commas; this cleans them up.
func RemoveEmptyStrings(slice []string) []string {
	var result []string
	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}
