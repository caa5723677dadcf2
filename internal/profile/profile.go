package profile

import (
	"sync"
)

type Experience struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Years       string `json:"years" validate:"required"`
	Description string `json:"description"`
}

type Education struct {
	Degree string `json:"degree" validate:"required"`
	School string `json:"school" validate:"required"`
	Year   string `json:"year" validate:"required,min=4"`
}

type Certification struct {
	Name        string `json:"name" validate:"required"`
	IssuingBody string `json:"issuingBody" validate:"required"`
	Year        string `json:"year"`
}

type DriversLicense struct {
	HasLicense     bool   `json:"hasLicense"`
	LicenseDetails string `json:"licenseDetails"`
}

// Profile is the seeker's full professional record.
type Profile struct {
	FullName       string          `json:"fullName" validate:"required,min=2"`
	Email          string          `json:"email" validate:"required,email"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	NationalID     string          `json:"nationalId"`
	Portfolio      string          `json:"portfolio" validate:"omitempty,url"`
	DriversLicense DriversLicense  `json:"driversLicense"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Skills         []string        `json:"skills"`
	Summary        string          `json:"summary"`
}

// ParsedCV is the subset of profile data a CV parser can extract. All
// fields are optional; only non-nil fields overwrite the profile.
type ParsedCV struct {
	FullName       *string         `json:"fullName,omitempty"`
	Email          *string         `json:"email,omitempty"`
	Phone          *string         `json:"phone,omitempty"`
	Address        *string         `json:"address,omitempty"`
	Portfolio      *string         `json:"portfolio,omitempty"`
	Summary        *string         `json:"summary,omitempty"`
	Skills         []string        `json:"skills,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}

// MergeCV copies the parsed fields into the profile. Fields the parser
// did not return are left untouched; extracted lists replace the
// existing ones wholesale.
func (p *Profile) MergeCV(cv ParsedCV) {
	if cv.FullName != nil {
		p.FullName = *cv.FullName
	}
	if cv.Email != nil {
		p.Email = *cv.Email
	}
	if cv.Phone != nil {
		p.Phone = *cv.Phone
	}
	if cv.Address != nil {
		p.Address = *cv.Address
	}
	if cv.Portfolio != nil {
		p.Portfolio = *cv.Portfolio
	}
	if cv.Summary != nil {
		p.Summary = *cv.Summary
	}
	if cv.Skills != nil {
		p.Skills = append([]string(nil), cv.Skills...)
	}
	if cv.Experience != nil {
		p.Experience = append([]Experience(nil), cv.Experience...)
	}
	if cv.Education != nil {
		p.Education = append([]Education(nil), cv.Education...)
	}
	if cv.Certifications != nil {
		p.Certifications = append([]Certification(nil), cv.Certifications...)
	}
}

// ProfileText flattens the profile into the plain text the summariser
// consumes.
func (p Profile) ProfileText() string {
	text := p.FullName + "\n" + p.Summary + "\n\nSkills: "
	for i, s := range p.Skills {
		if i > 0 {
			text += ", "
		}
		text += s
	}
	text += "\n\nExperience:\n"
	for _, e := range p.Experience {
		text += e.Title + " at " + e.Company + " (" + e.Years + "): " + e.Description + "\n"
	}
	text += "\nEducation:\n"
	for _, e := range p.Education {
		text += e.Degree + ", " + e.School + " (" + e.Year + ")\n"
	}
	return text
}

// Store holds each user's profile for the session.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

func NewStore() *Store {
	return &Store{profiles: make(map[string]Profile)}
}

func (s *Store) ByUserID(userID string) (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	return p, ok
}

func (s *Store) Save(userID string, p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = p
}

// ApplyCV merges parsed CV data into the user's stored profile,
// creating it if absent, and returns the result.
func (s *Store) ApplyCV(userID string, cv ParsedCV) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.profiles[userID]
	p.MergeCV(cv)
	s.profiles[userID] = p
	return p
}
