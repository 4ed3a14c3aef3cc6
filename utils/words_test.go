package utils

import "testing"

func TestAmountInWordsIndian(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Zero Rupees"},
		{7, "Seven Rupees"},
		{19, "Nineteen Rupees"},
		{42, "Forty Two Rupees"},
		{100, "One Hundred Rupees"},
		{230, "Two Hundred and Thirty Rupees"},
		{999, "Nine Hundred and Ninety Nine Rupees"},
		{1000, "One Thousand Rupees"},
		{7200, "Seven Thousand Two Hundred Rupees"},
		{12345, "Twelve Thousand Three Hundred and Forty Five Rupees"},
		{100000, "One Lakh Rupees"},
		{250001, "Two Lakh Fifty Thousand and One Rupees"},
		{10000000, "One Crore Rupees"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight Rupees"},
	}

	for _, tt := range tests {
		if got := AmountInWordsIndian(tt.amount); got != tt.want {
			t.Errorf("AmountInWordsIndian(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
