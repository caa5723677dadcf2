package job

import (
	"testing"
	"time"
)

func TestStore_AddPrepends(t *testing.T) {
	store := NewStore(Seed(testNow))
	before := store.Count()

	rq := &ListingRq{
		Title:              "Agronomist",
		Company:            "Zambeef Products PLC",
		Province:           "Central",
		City:               "Chisamba",
		SalaryMin:          6000,
		SalaryMax:          9000,
		Type:               TypeFullTime,
		Description:        "Oversee crop production programmes across our Chisamba farming operations.",
		Tasks:              "Plan planting schedules\nMonitor crop health",
		TaskExamples:       "Trial new maize varieties on demonstration plots",
		WhoWeAreLookingFor: "Degree in agronomy or crop science",
		WillBeAPlus:        "Irrigation experience",
		WhatWeOffer:        "Farm housing and production bonuses",
	}
	l := NewListing(rq, testNow)
	store.Add(l)

	got := store.List()
	if len(got) != before+1 {
		t.Fatalf("store has %d listings, want %d", len(got), before+1)
	}
	if got[0].ID != l.ID {
		t.Errorf("new listing is not first: got %s", got[0].ID)
	}
}

func TestStore_ListReturnsACopy(t *testing.T) {
	store := NewStore(Seed(testNow))
	first := store.List()
	first[0].Title = "mutated"
	if store.List()[0].Title == "mutated" {
		t.Error("mutating the returned slice leaked into the store")
	}
}

func TestNewListing_MintsIDSlugAndSalary(t *testing.T) {
	rq := &ListingRq{
		Title:     "Mining Engineer",
		Company:   "First Quantum Minerals",
		Province:  "North-Western",
		City:      "Solwezi",
		SalaryMin: 20000,
		SalaryMax: 35000,
		Type:      TypeFullTime,
	}
	a := NewListing(rq, testNow)
	b := NewListing(rq, testNow)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("listing IDs must be unique and non-empty, got %q and %q", a.ID, b.ID)
	}
	if a.Slug != "mining-engineer-first-quantum-minerals" {
		t.Errorf("slug = %q", a.Slug)
	}
	if a.Salary != "ZMW 20,000 - ZMW 35,000" {
		t.Errorf("salary = %q", a.Salary)
	}
	if a.Location != "Solwezi, North-Western" {
		t.Errorf("location = %q", a.Location)
	}
}

func TestStore_NewLastWeekOrMonth(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	store := NewStore([]Listing{
		{ID: "a", PostedDate: now.AddDate(0, 0, -2)},
		{ID: "b", PostedDate: now.AddDate(0, 0, -10)},
		{ID: "c", PostedDate: now.AddDate(0, 0, -40)},
	})
	week, month := store.NewLastWeekOrMonth(now)
	if week != 1 || month != 2 {
		t.Errorf("NewLastWeekOrMonth = (%d, %d), want (1, 2)", week, month)
	}
}
