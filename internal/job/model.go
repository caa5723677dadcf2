package job

import "time"

// RecencyWindowDays is the hard posting-age cutoff applied before any
// seeker filter. Listings older than this never show up in search.
const RecencyWindowDays = 30

const (
	TypeFullTime   = "Full-time"
	TypePartTime   = "Part-time"
	TypeContract   = "Contract"
	TypeInternship = "Internship"
	TypeVolunteer  = "Volunteer"
	TypeGovernment = "Government"
	TypeRemote     = "Remote"
	TypeHybrid     = "Hybrid"
	TypeHealthcare = "Healthcare"
	TypeNGO        = "NGO"
)

// Types is the job-type vocabulary offered in the filter sidebar.
var Types = []string{
	TypeFullTime,
	TypePartTime,
	TypeContract,
	TypeInternship,
	TypeVolunteer,
	TypeGovernment,
	TypeRemote,
	TypeHybrid,
	TypeHealthcare,
	TypeNGO,
}

// Provinces lists the ten provinces of Zambia used for the province filter.
var Provinces = []string{
	"Lusaka",
	"Copperbelt",
	"Central",
	"Eastern",
	"Luapula",
	"Muchinga",
	"Northern",
	"North-Western",
	"Southern",
	"Western",
}

// Details holds the free-text bullet sections of a listing.
type Details struct {
	Tasks              []string
	TaskExamples       []string
	WhoWeAreLookingFor []string
	WillBeAPlus        []string
	WhatWeOffer        []string
}

// Listing is one posted job. Salary is a free-text string such as
// "ZMW 8,000 - ZMW 12,000" and is not guaranteed to be parseable.
type Listing struct {
	ID          string
	Slug        string
	Title       string
	Company     string
	LogoURL     string
	Location    string // free text "city, province"
	Salary      string
	Type        string
	Description string
	Tags        []string
	PostedDate  time.Time
	Details     Details

	// presentation-only, populated at render time
	TimeAgo string
}

// ListingRq is the post-a-job submission payload.
type ListingRq struct {
	Title              string   `json:"title" validate:"required,min=5"`
	Company            string   `json:"company" validate:"required,min=2"`
	LogoURL            string   `json:"logo_url" validate:"omitempty,url"`
	Province           string   `json:"province" validate:"required,min=2"`
	City               string   `json:"city" validate:"required,min=2"`
	SalaryMin          int      `json:"salary_min" validate:"min=0"`
	SalaryMax          int      `json:"salary_max" validate:"gtefield=SalaryMin"`
	Type               string   `json:"job_type" validate:"required"`
	Description        string   `json:"description" validate:"required,min=50"`
	Tags               []string `json:"tags"`
	Tasks              string   `json:"tasks" validate:"required,min=20"`
	TaskExamples       string   `json:"task_examples" validate:"required,min=20"`
	WhoWeAreLookingFor string   `json:"who_we_are_looking_for" validate:"required,min=20"`
	WillBeAPlus        string   `json:"will_be_a_plus" validate:"required,min=10"`
	WhatWeOffer        string   `json:"what_we_offer" validate:"required,min=20"`
}
