package utils

import (
	"testing"
	"time"
)

func TestFormatRupeeASCII(t *testing.T) {
	cases := map[float64]string{
		0:         "Rs 0",
		999:       "Rs 999",
		1000:      "Rs 1,000",
		420000:    "Rs 4,20,000",
		12345678:  "Rs 1,23,45,678",
		1500.5:    "Rs 1,500.50",
		-29000:    "-Rs 29,000",
		100000.25: "Rs 1,00,000.25",
	}
	for in, want := range cases {
		if got := FormatRupeeASCII(in); got != want {
			t.Fatalf("FormatRupeeASCII(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey("2024-01-15"); got != "2024-01" {
		t.Fatalf("MonthKey = %q", got)
	}
	if got := MonthKey("2024-1"); got != "2024-1" {
		t.Fatalf("short invalid date should pass through, got %q", got)
	}
	if got := CurrentMonthKey(time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)); got != "2024-03" {
		t.Fatalf("CurrentMonthKey = %q", got)
	}
}

func TestDateInRange(t *testing.T) {
	cases := []struct {
		date, from, to string
		want           bool
	}{
		{"2024-01-15", "", "", true},
		{"garbage", "", "", true},
		{"garbage", "2024-01-01", "", false},
		{"2024-01-15", "2024-01-15", "2024-01-15", true},
		{"2024-01-14", "2024-01-15", "", false},
		{"2024-01-16", "", "2024-01-15", false},
	}
	for _, tc := range cases {
		if got := DateInRange(tc.date, tc.from, tc.to); got != tc.want {
			t.Fatalf("DateInRange(%q, %q, %q) = %v", tc.date, tc.from, tc.to, got)
		}
	}
}

func TestPadIDAndSequenceOf(t *testing.T) {
	id := PadID("TRK", 7)
	if id != "TRK007" {
		t.Fatalf("PadID = %q", id)
	}
	if n, ok := SequenceOf("TRK", id); !ok || n != 7 {
		t.Fatalf("SequenceOf(%q) = %d, %v", id, n, ok)
	}
	if _, ok := SequenceOf("TRK", "TRP007"); ok {
		t.Fatalf("foreign prefix should not parse")
	}
	if got := NormalizeSpace("  Tata   LPT \t709 "); got != "Tata LPT 709" {
		t.Fatalf("NormalizeSpace = %q", got)
	}
}
