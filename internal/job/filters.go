package job

import (
	"net/url"
	"strconv"
	"strings"
)

// SalaryCeiling is the upper end of the salary slider; a filter whose
// range still spans [0, SalaryCeiling] is considered unset.
const SalaryCeiling = 100000

// FilterState is the seeker's current query. Zero values mean "any"
// for every field except the salary range, whose unset value is the
// full [0, SalaryCeiling] interval.
type FilterState struct {
	Keyword   string
	Province  string
	City      string
	SalaryMin int
	SalaryMax int
	JobTypes  map[string]struct{}
	Page      int
}

// DefaultFilterState returns a FilterState with every filter unset.
func DefaultFilterState() FilterState {
	return FilterState{
		SalaryMin: 0,
		SalaryMax: SalaryCeiling,
		JobTypes:  map[string]struct{}{},
		Page:      1,
	}
}

func (f FilterState) salaryUnset() bool {
	return f.SalaryMin <= 0 && f.SalaryMax >= SalaryCeiling
}

// ParseFilterState builds a FilterState out of request query values.
// Unparseable numbers fall back to the unset value; the page index is
// normalised to be at least 1 (the paginator clamps the upper end).
func ParseFilterState(query url.Values) FilterState {
	f := DefaultFilterState()
	f.Keyword = strings.TrimSpace(query.Get("q"))
	f.Province = strings.TrimSpace(query.Get("province"))
	f.City = strings.TrimSpace(query.Get("city"))
	if v, err := strconv.Atoi(query.Get("salary_min")); err == nil && v > 0 {
		f.SalaryMin = v
	}
	if v, err := strconv.Atoi(query.Get("salary_max")); err == nil && v > 0 {
		f.SalaryMax = v
	}
	if f.SalaryMax < f.SalaryMin {
		f.SalaryMin, f.SalaryMax = f.SalaryMax, f.SalaryMin
	}
	// job types come in as repeated params or a CSV, checked against
	// the known vocabulary
	valid := make(map[string]struct{}, len(Types))
	for _, t := range Types {
		valid[t] = struct{}{}
	}
	for _, param := range query["types"] {
		for _, raw := range strings.Split(param, ",") {
			t := strings.TrimSpace(raw)
			if _, ok := valid[t]; ok {
				f.JobTypes[t] = struct{}{}
			}
		}
	}
	if p, err := strconv.Atoi(query.Get("p")); err == nil && p > 1 {
		f.Page = p
	}
	return f
}

// Encode round-trips the filter state back into query values so that
// pagination links can carry the current filters. The page parameter
// is intentionally left out: any filter change restarts at page 1.
func (f FilterState) Encode() url.Values {
	v := url.Values{}
	if f.Keyword != "" {
		v.Set("q", f.Keyword)
	}
	if f.Province != "" {
		v.Set("province", f.Province)
	}
	if f.City != "" {
		v.Set("city", f.City)
	}
	if !f.salaryUnset() {
		v.Set("salary_min", strconv.Itoa(f.SalaryMin))
		v.Set("salary_max", strconv.Itoa(f.SalaryMax))
	}
	if len(f.JobTypes) > 0 {
		types := make([]string, 0, len(f.JobTypes))
		for _, t := range Types {
			if _, ok := f.JobTypes[t]; ok {
				types = append(types, t)
			}
		}
		v.Set("types", strings.Join(types, ","))
	}
	return v
}
