package profile

import (
	"reflect"
	"strings"
	"testing"
)

func str(s string) *string { return &s }

func TestMergeCV_OnlyPresentFieldsOverwrite(t *testing.T) {
	p := Profile{
		FullName: "John Doe",
		Email:    "john@example.zm",
		Phone:    "+260 97 0000000",
		Summary:  "Old summary",
		Skills:   []string{"Nursing"},
	}
	p.MergeCV(ParsedCV{
		FullName: str("John M. Doe"),
		Summary:  str("Registered nurse with five years of ward experience."),
		Skills:   []string{"Nursing", "Patient Care"},
	})

	if p.FullName != "John M. Doe" {
		t.Errorf("FullName = %q", p.FullName)
	}
	if p.Email != "john@example.zm" {
		t.Errorf("absent email overwrote existing value: %q", p.Email)
	}
	if p.Phone != "+260 97 0000000" {
		t.Errorf("absent phone overwrote existing value: %q", p.Phone)
	}
	if !strings.HasPrefix(p.Summary, "Registered nurse") {
		t.Errorf("Summary = %q", p.Summary)
	}
	if !reflect.DeepEqual(p.Skills, []string{"Nursing", "Patient Care"}) {
		t.Errorf("Skills = %v", p.Skills)
	}
}

func TestMergeCV_ListsReplaceWholesale(t *testing.T) {
	p := Profile{
		Experience: []Experience{{Title: "Clerk", Company: "Old Co", Years: "2018 - 2020"}},
	}
	parsed := []Experience{
		{Title: "Accountant", Company: "Airtel Zambia", Years: "2020 - Present", Description: "Ledger work."},
	}
	p.MergeCV(ParsedCV{Experience: parsed})
	if !reflect.DeepEqual(p.Experience, parsed) {
		t.Errorf("Experience = %v", p.Experience)
	}
}

func TestMergeCV_EmptyParseIsNoOp(t *testing.T) {
	p := Profile{FullName: "John Doe", Skills: []string{"Nursing"}}
	before := p
	p.MergeCV(ParsedCV{})
	if p.FullName != before.FullName || !reflect.DeepEqual(p.Skills, before.Skills) {
		t.Errorf("empty parse changed profile: %+v", p)
	}
}

func TestStore_ApplyCVCreatesProfile(t *testing.T) {
	store := NewStore()
	got := store.ApplyCV("u1", ParsedCV{FullName: str("Grace Mwila")})
	if got.FullName != "Grace Mwila" {
		t.Errorf("FullName = %q", got.FullName)
	}
	stored, ok := store.ByUserID("u1")
	if !ok || stored.FullName != "Grace Mwila" {
		t.Error("profile not persisted after ApplyCV")
	}
}

func TestProfileText_ContainsSections(t *testing.T) {
	p := Profile{
		FullName:   "John Doe",
		Summary:    "Nurse.",
		Skills:     []string{"Nursing", "Patient Care"},
		Experience: []Experience{{Title: "Nurse", Company: "Ndola Central Hospital", Years: "2019 - Present"}},
		Education:  []Education{{Degree: "BSc Nursing", School: "University of Zambia", Year: "2018"}},
	}
	text := p.ProfileText()
	for _, want := range []string{"John Doe", "Nursing, Patient Care", "Ndola Central Hospital", "University of Zambia"} {
		if !strings.Contains(text, want) {
			t.Errorf("profile text missing %q", want)
		}
	}
}
