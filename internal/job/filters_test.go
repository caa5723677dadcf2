package job

import (
	"net/url"
	"testing"
)

func TestParseFilterState_Defaults(t *testing.T) {
	f := ParseFilterState(url.Values{})
	if f.Keyword != "" || f.Province != "" || f.City != "" {
		t.Errorf("text filters should default to empty: %+v", f)
	}
	if f.SalaryMin != 0 || f.SalaryMax != SalaryCeiling {
		t.Errorf("salary should default to [0, %d]: got [%d, %d]", SalaryCeiling, f.SalaryMin, f.SalaryMax)
	}
	if len(f.JobTypes) != 0 {
		t.Errorf("job types should default to empty set")
	}
	if f.Page != 1 {
		t.Errorf("page should default to 1, got %d", f.Page)
	}
}

func TestParseFilterState_ReadsQuery(t *testing.T) {
	q := url.Values{}
	q.Set("q", " nurse ")
	q.Set("province", "Copperbelt")
	q.Set("city", "Ndola")
	q.Set("salary_min", "5000")
	q.Set("salary_max", "15000")
	q.Set("types", "Healthcare,Government,NotAType")
	q.Set("p", "3")

	f := ParseFilterState(q)
	if f.Keyword != "nurse" {
		t.Errorf("keyword = %q", f.Keyword)
	}
	if f.SalaryMin != 5000 || f.SalaryMax != 15000 {
		t.Errorf("salary = [%d, %d]", f.SalaryMin, f.SalaryMax)
	}
	if _, ok := f.JobTypes[TypeHealthcare]; !ok {
		t.Error("Healthcare missing from job types")
	}
	if _, ok := f.JobTypes["NotAType"]; ok {
		t.Error("unknown job type should be dropped")
	}
	if f.Page != 3 {
		t.Errorf("page = %d", f.Page)
	}
}

func TestParseFilterState_SwapsInvertedSalaryRange(t *testing.T) {
	q := url.Values{}
	q.Set("salary_min", "20000")
	q.Set("salary_max", "5000")
	f := ParseFilterState(q)
	if f.SalaryMin != 5000 || f.SalaryMax != 20000 {
		t.Errorf("salary = [%d, %d], want [5000, 20000]", f.SalaryMin, f.SalaryMax)
	}
}

func TestFilterStateEncode_DropsPageParameter(t *testing.T) {
	q := url.Values{}
	q.Set("q", "nurse")
	q.Set("p", "4")
	f := ParseFilterState(q)
	enc := f.Encode()
	if enc.Get("p") != "" {
		t.Error("encoded filter state must not carry the page index")
	}
	if enc.Get("q") != "nurse" {
		t.Errorf("encoded keyword = %q", enc.Get("q"))
	}
}
