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

// Monetary and physical figures are stored as strings to avoid float
// precision drift across the DynamoDB number type.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
