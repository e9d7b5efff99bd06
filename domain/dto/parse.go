package dto

import "strconv"

// parseID parses a positive integer identifier.
func parseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(trim(s), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// ParseID is exported for handlers that read ids from path params.
func ParseID(s string) (uint, bool) {
	return parseID(s)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
