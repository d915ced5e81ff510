package utils

import "fmt"

// FormatMinutes переводит минуты в строку вида "2h 15m".
// Часы опускаются, когда их ноль.
func FormatMinutes(total int) string {
	if total <= 0 {
		return "0m"
	}
	hours := total / 60
	minutes := total % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
