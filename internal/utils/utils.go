package utils

import "strings"

// Ratio - Returns a / b as a float, or 0 (zero) if b is 0 (zero)
func Ratio(a, b int64) float64 {
	if b == 0 {
		return 0
	}

	return float64(a) / float64(b)
}

// CleanKeys - Trims surrounding whitespace from every line and drops the ones left empty.
// Order of surviving lines is preserved.
func CleanKeys(lines []string) (keys []string) {
	keys = make([]string, 0, len(lines))
	for _, line := range lines {
		key := strings.TrimSpace(line)
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}

	return
}
