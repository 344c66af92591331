package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Round2 rounds an amount to two decimal places, half up.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatHour renders an hour-of-day as the canonical "HH:00" slot label.
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// ParseHour parses an "HH:00" (or "H:00") slot label into the hour of day.
func ParseHour(label string) (int, error) {
	parts := strings.Split(label, ":")
	if len(parts) != 2 || parts[1] != "00" {
		return 0, fmt.Errorf("invalid time %q: expected HH:00", label)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time %q: expected HH:00", label)
	}
	return hour, nil
}
