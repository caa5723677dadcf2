package job

import (
	"sort"
	"strings"
	"time"
)

// Filter produces the ordered subset of listings a seeker should see:
// the recency gate first, then every set predicate (logical AND), then
// a stable sort by posting date, most recent first. It is a pure
// function of its inputs and never fails; an empty result is valid.
func Filter(listings []Listing, f FilterState, now time.Time) []Listing {
	cutoff := now.AddDate(0, 0, -RecencyWindowDays)
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if !l.PostedDate.After(cutoff) {
			continue
		}
		if !matchesSalary(l, f) {
			continue
		}
		if !matchesKeyword(l, f.Keyword) {
			continue
		}
		if !matchesLocation(l, f.Province) || !matchesLocation(l, f.City) {
			continue
		}
		if !matchesType(l, f.JobTypes) {
			continue
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PostedDate.After(out[j].PostedDate)
	})
	return out
}

func matchesSalary(l Listing, f FilterState) bool {
	if f.salaryUnset() {
		return true
	}
	low, ok := ParseSalaryLowerBound(l.Salary)
	if !ok {
		// "Negotiable" and friends always pass
		return true
	}
	return low >= f.SalaryMin && low <= f.SalaryMax
}

func matchesKeyword(l Listing, keyword string) bool {
	if keyword == "" {
		return true
	}
	k := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(l.Title), k) ||
		strings.Contains(strings.ToLower(l.Company), k) ||
		strings.Contains(strings.ToLower(l.Description), k)
}

func matchesLocation(l Listing, value string) bool {
	if value == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Location), strings.ToLower(value))
}

func matchesType(l Listing, types map[string]struct{}) bool {
	if len(types) == 0 {
		return true
	}
	_, ok := types[l.Type]
	return ok
}
