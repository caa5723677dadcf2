package analytics

import (
	"testing"

	"github.com/career-compass-zm/job-board/internal/application"
)

func TestSummariseRecruiterJobs(t *testing.T) {
	jobs := []application.RecruiterJobStat{
		{Title: "Secondary School Teacher", Status: "Open", Applicants: 42, Interviews: 5},
		{Title: "Accountant", Status: "Open", Applicants: 31, Interviews: 3},
		{Title: "Civil Engineer", Status: "Closed", Applicants: 58, Interviews: 8},
	}
	got := SummariseRecruiterJobs(jobs)
	if got.TotalJobs != 3 || got.OpenJobs != 2 {
		t.Errorf("jobs = %d open %d, want 3 open 2", got.TotalJobs, got.OpenJobs)
	}
	if got.TotalApplicants != 131 {
		t.Errorf("total applicants = %d, want 131", got.TotalApplicants)
	}
	if got.TotalInterviews != 16 {
		t.Errorf("total interviews = %d, want 16", got.TotalInterviews)
	}
	if got.MinApplicants != 31 || got.MaxApplicants != 58 {
		t.Errorf("bounds = %d..%d, want 31..58", got.MinApplicants, got.MaxApplicants)
	}
	if got.MeanApplicants < 43.66 || got.MeanApplicants > 43.67 {
		t.Errorf("mean = %v, want 43.67", got.MeanApplicants)
	}
	if got.P50Applicants != 42 {
		t.Errorf("median = %v, want 42", got.P50Applicants)
	}
	if got.P90Applicants < got.P50Applicants || got.P90Applicants > float64(got.MaxApplicants) {
		t.Errorf("p90 = %v out of range [%v, %d]", got.P90Applicants, got.P50Applicants, got.MaxApplicants)
	}
}

func TestSummariseRecruiterJobs_Empty(t *testing.T) {
	got := SummariseRecruiterJobs(nil)
	if got.TotalJobs != 0 || got.TotalApplicants != 0 || got.MeanApplicants != 0 {
		t.Errorf("empty summary not zeroed: %+v", got)
	}
}

func TestTrendFromSeries(t *testing.T) {
	series := []application.MonthlyCount{
		{Month: "May", Applications: 98},
		{Month: "Jun", Applications: 112},
	}
	got := TrendFromSeries(series)
	if got.LastMonth != "Jun" || got.Applications != 112 {
		t.Errorf("last point = %s/%d", got.LastMonth, got.Applications)
	}
	if got.Change != 14 {
		t.Errorf("change = %d, want 14", got.Change)
	}
	if got.ChangePercent < 14.28 || got.ChangePercent > 14.29 {
		t.Errorf("change percent = %v, want 14.29", got.ChangePercent)
	}
}

func TestTrendFromSeries_SinglePoint(t *testing.T) {
	got := TrendFromSeries([]application.MonthlyCount{{Month: "Jan", Applications: 45}})
	if got.Change != 0 || got.ChangePercent != 0 {
		t.Errorf("single point should have no change: %+v", got)
	}
}
