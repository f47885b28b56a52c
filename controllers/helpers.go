package controllers

import (
	"errors"
	"strconv"
)

// parsePositiveInt parses a query string value as a positive integer
func parsePositiveInt(value string) (int, error) {
	if value == "" {
		return 0, errors.New("empty value")
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("value must be positive")
	}
	return n, nil
}

// parseUintParam parses a path parameter as an unsigned integer ID
func parseUintParam(value string) (uint, error) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
