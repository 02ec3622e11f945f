package money

import "strings"

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// Words spells the rupee part of p in the Indian system, e.g.
// "Fifty Nine Lac Fifty One Thousand Four Hundred & Ninety Nine Rupees Only".
// With amp set, "&" joins the hundreds to the trailing tens. Paise are not
// spelled.
func Words(p Paise, amp bool) string {
	n := p.Rupees()
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return "Zero Rupees Only"
	}

	var parts []string
	if crore := n / 10000000; crore > 0 {
		// crores above 99 read as a plain number of crores
		if crore > 99 {
			parts = append(parts, strings.TrimSuffix(Words(Rupees(crore), false), " Rupees Only"), "Crore")
		} else {
			parts = append(parts, belowHundred(crore), "Crore")
		}
		n %= 10000000
	}
	if lac := n / 100000; lac > 0 {
		parts = append(parts, belowHundred(lac), "Lac")
		n %= 100000
	}
	if th := n / 1000; th > 0 {
		parts = append(parts, belowHundred(th), "Thousand")
		n %= 1000
	}
	if h := n / 100; h > 0 {
		parts = append(parts, ones[h], "Hundred")
		n %= 100
		if n > 0 && amp {
			parts = append(parts, "&")
		}
	}
	if n > 0 {
		parts = append(parts, belowHundred(n))
	}
	return strings.Join(parts, " ") + " Rupees Only"
}

func belowHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}
