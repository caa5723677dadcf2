package job

import (
	"strconv"
	"strings"
)

// ParseSalaryLowerBound extracts the lower bound out of a free-text
// salary string such as "ZMW 8,000 - ZMW 12,000". The rule is fixed:
// strip the currency code, commas and whitespace, split on "-" and
// parse the leading run of digits of the first segment. The second
// return value reports whether a number was found; callers treat a
// failed parse as a pass, never as an exclusion.
func ParseSalaryLowerBound(salary string) (int, bool) {
	s := strings.ReplaceAll(salary, "ZMW", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	first := strings.SplitN(s, "-", 2)[0]
	end := 0
	for end < len(first) && first[end] >= '0' && first[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(first[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
