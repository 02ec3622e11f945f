package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Paise is an amount of Indian rupees held in hundredths so that the report
// arithmetic never touches floating point.
type Paise int64

// Rupees builds an amount from whole rupees.
func Rupees(r int64) Paise { return Paise(r * 100) }

// Rupees returns the whole-rupee part, truncated toward zero.
func (p Paise) Rupees() int64 { return int64(p) / 100 }

// String formats the amount with Indian digit grouping, e.g. 59,51,499.40.
func (p Paise) String() string {
	neg := p < 0
	if neg {
		p = -p
	}
	s := groupIndian(int64(p)/100) + fmt.Sprintf(".%02d", int64(p)%100)
	if neg {
		return "-" + s
	}
	return s
}

// Percent returns pct percent of p, rounded half up to the paisa.
func (p Paise) Percent(pct int64) Paise {
	return Paise(roundDiv(int64(p)*pct, 100))
}

// Area is a floor area in hundredths of a square metre.
type Area int64

// String formats the area with two decimals (68.93).
func (a Area) String() string {
	return fmt.Sprintf("%d.%02d", int64(a)/100, int64(a)%100)
}

// Times multiplies a per-square-metre rate by the area.
func (a Area) Times(rate Paise) Paise {
	return Paise(roundDiv(int64(a)*int64(rate), 100))
}

// ParseArea parses "68.93" style figures. Commas are ignored.
func ParseArea(s string) (Area, error) {
	n, err := parseHundredths(s)
	if err != nil {
		return 0, fmt.Errorf("parse area: %w", err)
	}
	return Area(n), nil
}

// ParsePaise parses an amount as String prints it ("59,51,499.40").
func ParsePaise(s string) (Paise, error) {
	n, err := parseHundredths(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount: %w", err)
	}
	return Paise(n), nil
}

func parseHundredths(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(digits, ".")
	if len(frac) > 2 {
		return 0, fmt.Errorf("%q: more than two decimals", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	f, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	n := int64(w)*100 + int64(f)
	if neg {
		n = -n
	}
	return n, nil
}

// groupIndian inserts separators in the 3-2-2 pattern used on Indian
// documents: 5951499 -> 59,51,499.
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
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

func roundDiv(n, d int64) int64 {
	if n < 0 {
		return -((-n + d/2) / d)
	}
	return (n + d/2) / d
}
