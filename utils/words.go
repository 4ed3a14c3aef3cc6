package utils

import "strings"

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen",
	"Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty",
	"Seventy", "Eighty", "Ninety",
}

func inWords(n int64) string {
	switch {
	case n < 20:
		return onesWords[n]
	case n < 100:
		s := tensWords[n/10]
		if n%10 != 0 {
			s += " " + onesWords[n%10]
		}
		return s
	case n < 1000:
		s := onesWords[n/100] + " Hundred"
		if n%100 != 0 {
			s += " and " + inWords(n%100)
		}
		return s
	}
	return ""
}

// AmountInWordsIndian renders a rounded rupee amount in the Indian numbering
// system (crore/lakh/thousand), the form printed on the bill.
func AmountInWordsIndian(num int64) string {
	if num == 0 {
		return "Zero Rupees"
	}

	crore := num / 10000000
	num %= 10000000
	lakh := num / 100000
	num %= 100000
	thousand := num / 1000
	num %= 1000
	hundred := num / 100
	rest := num % 100

	var b strings.Builder
	if crore > 0 {
		b.WriteString(inWords(crore) + " Crore ")
	}
	if lakh > 0 {
		b.WriteString(inWords(lakh) + " Lakh ")
	}
	if thousand > 0 {
		b.WriteString(inWords(thousand) + " Thousand ")
	}
	if hundred > 0 {
		b.WriteString(onesWords[hundred] + " Hundred ")
	}
	if rest > 0 {
		if b.Len() > 0 {
			b.WriteString("and ")
		}
		b.WriteString(inWords(rest) + " ")
	}
	return strings.TrimSpace(b.String()) + " Rupees"
}
