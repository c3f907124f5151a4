package handlers

import (
	"errors"
	"strconv"
)

var errEmptyPayload = errors.New("one of hex or base64 must be set")

func itoa[T ~uint8 | ~uint16 | ~uint32 | ~int](v T) string {
	return strconv.FormatInt(int64(v), 10)
}
