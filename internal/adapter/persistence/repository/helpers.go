package repository

import (
	"os"
	"strconv"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// floatToString keeps monetary values lossless in string attributes.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
