package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatRupeeASCII renders an amount with Indian digit grouping and an
// ASCII "Rs" symbol for the PDF core fonts, e.g. 420000 -> "Rs 4,20,000".
// Paise are shown only when present.
func FormatRupeeASCII(amount float64) string {
	return formatINR("Rs ", amount)
}

func formatINR(symbol string, amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	rounded := math.Round(amount*100) / 100
	whole := int64(rounded)
	paise := int64(math.Round((rounded - float64(whole)) * 100))

	out := sign + symbol + groupIndian(whole)
	if paise > 0 {
		out += fmt.Sprintf(".%02d", paise)
	}
	return out
}

// groupIndian groups the last three digits, then pairs (12,34,567).
func groupIndian(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}
	head, tail := str[:len(str)-3], str[len(str)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
