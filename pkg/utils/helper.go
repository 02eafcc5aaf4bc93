package utils

import (
	"fmt"
	"strconv"
)

// ParseInt converts a query value to int, falling back to defaultValue when empty.
func ParseInt(value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid integer", value)
	}

	return result, nil
}

// ParseID converts a path segment to an int64 record id.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid id", value)
	}
	return id, nil
}
