package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/ksuid"
)

// Status is the lifecycle stage of one application. Transitions only
// move forward; Shortlisted and Rejected are terminal.
type Status string

const (
	StatusSubmitted   Status = "Submitted"
	StatusViewed      Status = "Viewed"
	StatusShortlisted Status = "Shortlisted"
	StatusRejected    Status = "Rejected"
)

var allowedTransitions = map[Status][]Status{
	StatusSubmitted: {StatusViewed, StatusRejected},
	StatusViewed:    {StatusShortlisted, StatusRejected},
}

// IsTransitionAllowed reports whether an application may move from one
// status to another.
func IsTransitionAllowed(from, to Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Application is one seeker's submission against a listing.
type Application struct {
	ID          string
	UserID      string
	JobID       string
	JobTitle    string
	Company     string
	CoverLetter string
	Status      Status
	AppliedDate time.Time
}

// RecruiterJobStat summarises one posted job for the recruiter
// dashboard.
type RecruiterJobStat struct {
	ID         string
	Title      string
	Status     string // Open or Closed
	Applicants int
	Interviews int
}

// MonthlyCount is one point of the dashboard applications chart.
type MonthlyCount struct {
	Month        string
	Applications int
}

// Store keeps the session's applications plus the recruiter-side
// aggregates the dashboard renders.
type Store struct {
	mu            sync.RWMutex
	applications  []Application
	recruiterJobs []RecruiterJobStat
	monthly       []MonthlyCount
}

func NewStore(seed []Application, recruiterJobs []RecruiterJobStat, monthly []MonthlyCount) *Store {
	applications := make([]Application, len(seed))
	copy(applications, seed)
	return &Store{
		applications:  applications,
		recruiterJobs: recruiterJobs,
		monthly:       monthly,
	}
}

// Submit records a new application and returns it.
func (s *Store) Submit(userID, jobID, jobTitle, company, coverLetter string, now time.Time) Application {
	a := Application{
		ID:          ksuid.New().String(),
		UserID:      userID,
		JobID:       jobID,
		JobTitle:    jobTitle,
		Company:     company,
		CoverLetter: coverLetter,
		Status:      StatusSubmitted,
		AppliedDate: now,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = append([]Application{a}, s.applications...)
	return a
}

// ListForUser returns the seeker's applications, newest first.
func (s *Store) ListForUser(userID string) []Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Application, 0, len(s.applications))
	for _, a := range s.applications {
		if a.UserID == userID || a.UserID == "" {
			out = append(out, a)
		}
	}
	return out
}

// UpdateStatus applies a forward-only status transition.
func (s *Store) UpdateStatus(id string, to Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.applications {
		if s.applications[i].ID != id {
			continue
		}
		from := s.applications[i].Status
		if !IsTransitionAllowed(from, to) {
			return fmt.Errorf("application %s: transition %s to %s not allowed", id, from, to)
		}
		s.applications[i].Status = to
		return nil
	}
	return fmt.Errorf("application %s not found", id)
}

// RecruiterJobs returns the per-job stats for the recruiter dashboard.
func (s *Store) RecruiterJobs() []RecruiterJobStat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RecruiterJobStat, len(s.recruiterJobs))
	copy(out, s.recruiterJobs)
	return out
}

// MonthlySeries returns the applications-per-month chart data.
func (s *Store) MonthlySeries() []MonthlyCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MonthlyCount, len(s.monthly))
	copy(out, s.monthly)
	return out
}

// Seed returns the session's starting applications and the recruiter
// aggregates.
func Seed(now time.Time) ([]Application, []RecruiterJobStat, []MonthlyCount) {
	applications := []Application{
		{
			ID:          ksuid.New().String(),
			JobTitle:    "ICT Officer",
			Company:     "Zambia Revenue Authority",
			Status:      StatusSubmitted,
			AppliedDate: now.AddDate(0, 0, -2),
		},
		{
			ID:          ksuid.New().String(),
			JobTitle:    "Secondary School Teacher",
			Company:     "Ministry of Education",
			Status:      StatusViewed,
			AppliedDate: now.AddDate(0, 0, -4),
		},
		{
			ID:          ksuid.New().String(),
			JobTitle:    "Registered Nurse",
			Company:     "Ndola Central Hospital",
			Status:      StatusShortlisted,
			AppliedDate: now.AddDate(0, 0, -6),
		},
	}
	recruiterJobs := []RecruiterJobStat{
		{ID: ksuid.New().String(), Title: "Secondary School Teacher", Status: "Open", Applicants: 42, Interviews: 5},
		{ID: ksuid.New().String(), Title: "Accountant", Status: "Open", Applicants: 31, Interviews: 3},
		{ID: ksuid.New().String(), Title: "Civil Engineer", Status: "Closed", Applicants: 58, Interviews: 8},
	}
	monthly := []MonthlyCount{
		{Month: "Jan", Applications: 45},
		{Month: "Feb", Applications: 62},
		{Month: "Mar", Applications: 81},
		{Month: "Apr", Applications: 74},
		{Month: "May", Applications: 98},
		{Month: "Jun", Applications: 112},
	}
	return applications, recruiterJobs, monthly
}
