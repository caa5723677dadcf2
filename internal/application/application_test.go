package application

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestIsTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusSubmitted, StatusViewed, true},
		{StatusSubmitted, StatusRejected, true},
		{StatusSubmitted, StatusShortlisted, false},
		{StatusViewed, StatusShortlisted, true},
		{StatusViewed, StatusRejected, true},
		{StatusViewed, StatusSubmitted, false},
		{StatusShortlisted, StatusRejected, false},
		{StatusRejected, StatusViewed, false},
	}
	for _, c := range cases {
		if got := IsTransitionAllowed(c.from, c.to); got != c.want {
			t.Errorf("IsTransitionAllowed(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestStore_SubmitStartsSubmittedAndPrepends(t *testing.T) {
	apps, jobs, monthly := Seed(testNow)
	store := NewStore(apps, jobs, monthly)

	a := store.Submit("user1", "job1", "Registered Nurse", "Ndola Central Hospital", "Dear hiring manager...", testNow)
	if a.Status != StatusSubmitted {
		t.Errorf("new application status = %s, want %s", a.Status, StatusSubmitted)
	}
	got := store.ListForUser("user1")
	if len(got) == 0 || got[0].ID != a.ID {
		t.Error("newest application should be listed first")
	}
}

func TestStore_UpdateStatusForwardOnly(t *testing.T) {
	store := NewStore(nil, nil, nil)
	a := store.Submit("user1", "job1", "Accountant", "Airtel Zambia", "", testNow)

	if err := store.UpdateStatus(a.ID, StatusShortlisted); err == nil {
		t.Error("Submitted to Shortlisted should be rejected")
	}
	if err := store.UpdateStatus(a.ID, StatusViewed); err != nil {
		t.Fatalf("Submitted to Viewed: %v", err)
	}
	if err := store.UpdateStatus(a.ID, StatusShortlisted); err != nil {
		t.Fatalf("Viewed to Shortlisted: %v", err)
	}
	if err := store.UpdateStatus(a.ID, StatusRejected); err == nil {
		t.Error("Shortlisted is terminal, transition should be rejected")
	}
}

func TestStore_UpdateStatusUnknownID(t *testing.T) {
	store := NewStore(nil, nil, nil)
	if err := store.UpdateStatus("missing", StatusViewed); err == nil {
		t.Error("UpdateStatus should error for unknown ids")
	}
}

func TestSeed_RecruiterJobs(t *testing.T) {
	_, jobs, monthly := Seed(testNow)
	store := NewStore(nil, jobs, monthly)

	got := store.RecruiterJobs()
	if len(got) != 3 {
		t.Fatalf("recruiter jobs = %d, want 3", len(got))
	}
	open := 0
	for _, j := range got {
		if j.Status == "Open" {
			open++
		}
	}
	if open != 2 {
		t.Errorf("open jobs = %d, want 2", open)
	}
	if len(store.MonthlySeries()) != 6 {
		t.Errorf("monthly series = %d points, want 6", len(store.MonthlySeries()))
	}
}
