package lexer

import (
	"fmt"
	"strconv"
)

func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
