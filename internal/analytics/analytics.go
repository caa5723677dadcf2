package analytics

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/career-compass-zm/job-board/internal/application"
)

// ApplicantSummary aggregates applicant counts across a recruiter's
// posted jobs for the dashboard header cards.
type ApplicantSummary struct {
	TotalJobs       int
	OpenJobs        int
	TotalApplicants int
	TotalInterviews int
	MeanApplicants  float64
	P50Applicants   float64
	P90Applicants   float64
	MinApplicants   int
	MaxApplicants   int
}

// SummariseRecruiterJobs computes applicant statistics over the
// recruiter's job postings. A recruiter with no postings gets zeroes.
func SummariseRecruiterJobs(jobs []application.RecruiterJobStat) ApplicantSummary {
	summary := ApplicantSummary{TotalJobs: len(jobs)}
	if len(jobs) == 0 {
		return summary
	}
	var sample stats.Sample
	for _, j := range jobs {
		if j.Status == "Open" {
			summary.OpenJobs++
		}
		summary.TotalApplicants += j.Applicants
		summary.TotalInterviews += j.Interviews
		sample.Xs = append(sample.Xs, float64(j.Applicants))
	}
	min, max := sample.Bounds()
	summary.MinApplicants = int(min)
	summary.MaxApplicants = int(max)
	summary.MeanApplicants = round2(sample.Mean())
	summary.P50Applicants = round2(sample.Quantile(0.5))
	summary.P90Applicants = round2(sample.Quantile(0.9))
	return summary
}

// MonthlyTrend reports the absolute and percentage change between the
// last two points of the applications series.
type MonthlyTrend struct {
	LastMonth     string
	Applications  int
	Change        int
	ChangePercent float64
}

func TrendFromSeries(series []application.MonthlyCount) MonthlyTrend {
	var trend MonthlyTrend
	if len(series) == 0 {
		return trend
	}
	last := series[len(series)-1]
	trend.LastMonth = last.Month
	trend.Applications = last.Applications
	if len(series) < 2 {
		return trend
	}
	prev := series[len(series)-2]
	trend.Change = last.Applications - prev.Applications
	if prev.Applications > 0 {
		trend.ChangePercent = round2(float64(trend.Change) / float64(prev.Applications) * 100)
	}
	return trend
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
